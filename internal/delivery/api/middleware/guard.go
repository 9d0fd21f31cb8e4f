package middleware

import (
	"log/slog"
	"strings"

	"printhub/internal/delivery/api/response"
	deliverycontext "printhub/internal/delivery/context"
	"printhub/internal/domain/entity"
	"printhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GuardMiddlewareParams holds dependencies for GuardMiddleware, injected by Fx.
type GuardMiddlewareParams struct {
	fx.In

	Session usecase.SessionUsecase
	Guard   usecase.RouteGuard
	Logger  *slog.Logger
}

// GuardMiddleware authenticates the bearer token and authorizes the route before any
// handler runs. Denials are answered with a 303 to the decided path.
type GuardMiddleware struct {
	session usecase.SessionUsecase
	guard   usecase.RouteGuard
	logger  *slog.Logger
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(params GuardMiddlewareParams) *GuardMiddleware {
	return &GuardMiddleware{
		session: params.Session,
		guard:   params.Guard,
		logger:  params.Logger,
	}
}

// Require admits principals whose resolved role is role.
func (m *GuardMiddleware) Require(role entity.Role) echo.MiddlewareFunc {
	return m.guardRoute(&role)
}

// Authenticated admits any signed-in principal.
func (m *GuardMiddleware) Authenticated() echo.MiddlewareFunc {
	return m.guardRoute(nil)
}

// Optional attaches the principal when the request carries a valid session and
// lets anonymous requests through.
func (m *GuardMiddleware) Optional() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, token := m.principalFrom(c)
			if principal != nil {
				decision := m.guard.Decide(c.Request().Context(), principal, nil)
				m.attach(c, principal, decision.Role, token)
			}

			return next(c)
		}
	}
}

func (m *GuardMiddleware) guardRoute(required *entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, token := m.principalFrom(c)

			decision := m.guard.Decide(c.Request().Context(), principal, required)
			if !decision.Authorized() {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Route denied",
					slog.String("path", c.Path()),
					slog.String("redirect", decision.Redirect),
				)

				return response.Deny(c, decision)
			}
			m.attach(c, principal, decision.Role, token)

			return next(c)
		}
	}
}

// principalFrom returns the principal of a valid bearer token, or nil.
func (m *GuardMiddleware) principalFrom(c echo.Context) (*entity.Principal, string) {
	token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if token == "" {
		return nil, ""
	}

	session, err := m.session.GetSession(c.Request().Context(), token)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Ignoring invalid session", slog.Any("error", err))

		return nil, ""
	}

	return &session.Principal, token
}

func (m *GuardMiddleware) attach(c echo.Context, principal *entity.Principal, role entity.Role, token string) {
	deliverycontext.SetPrincipal(c, principal, role)
	c.Set(string(deliverycontext.KeyAccessToken), token)

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).With(slog.String("user_id", principal.ID.String()))
	c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(c.Request().Context(), logger)))
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}

	return strings.TrimSpace(header[len(prefix):])
}
