package context

import (
	"printhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	// KeyPrincipal is the key for the authenticated principal in echo.Context.
	KeyPrincipal ContextKey = "principal"

	// KeyRole is the key for the resolved role in echo.Context.
	KeyRole ContextKey = "role"

	// KeyAccessToken is the key for the bearer token of the current request.
	KeyAccessToken ContextKey = "access_token"
)

// SetPrincipal stores the authenticated principal and its resolved role.
func SetPrincipal(c echo.Context, principal *entity.Principal, role entity.Role) {
	c.Set(string(KeyPrincipal), principal)
	c.Set(string(KeyRole), role)
}

// GetPrincipal returns the authenticated principal, or nil for anonymous requests.
func GetPrincipal(c echo.Context) *entity.Principal {
	principal, _ := c.Get(string(KeyPrincipal)).(*entity.Principal)

	return principal
}

// GetRole returns the resolved role of the current principal, or RoleUnknown.
func GetRole(c echo.Context) entity.Role {
	if role, ok := c.Get(string(KeyRole)).(entity.Role); ok {
		return role
	}

	return entity.RoleUnknown
}
