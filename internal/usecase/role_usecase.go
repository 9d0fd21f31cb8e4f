package usecase

import (
	"context"

	"printhub/internal/domain/entity"
)

// RoleResolver determines the authoritative role of a principal.
type RoleResolver interface {
	// ResolveRole returns the principal's role. It prefers the cached session metadata,
	// falls back to the profile record, and returns entity.RoleUnknown when neither has one.
	ResolveRole(ctx context.Context, principal *entity.Principal) (entity.Role, error)

	// Wait blocks until pending metadata back-fills have finished.
	Wait()
}

// RouteGuard decides whether a principal may enter a route and where to send them otherwise.
type RouteGuard interface {
	// Decide authorizes principal for a route. A nil required role admits any principal
	// without resolving its role; the decision then reports the role from the claims, or
	// entity.RoleUnknown.
	Decide(ctx context.Context, principal *entity.Principal, required *entity.Role) entity.GuardDecision

	// LandingRoute returns the dashboard path for principal, or the login path when
	// there is no principal or its role cannot be resolved.
	LandingRoute(ctx context.Context, principal *entity.Principal) string

	// NavLinks returns the navigation entries for principal.
	NavLinks(ctx context.Context, principal *entity.Principal) []entity.NavLink
}
