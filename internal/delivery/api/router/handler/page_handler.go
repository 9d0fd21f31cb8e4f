package handler

import (
	"log/slog"
	"net/http"

	"printhub/config"
	"printhub/internal/delivery/api/response"
	deliverycontext "printhub/internal/delivery/context"
	"printhub/internal/domain/entity"
	"printhub/internal/errors"
	"printhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	Guard  usecase.RouteGuard
	Orders usecase.OrderUsecase
	Shops  usecase.ShopUsecase
	Config *config.Config
	Logger *slog.Logger
}

// PageHandler serves the landing pages, the navbar and the dashboard redirect.
type PageHandler struct {
	guard       usecase.RouteGuard
	orders      usecase.OrderUsecase
	shops       usecase.ShopUsecase
	serviceName string
	logger      *slog.Logger
}

// NewPageHandler is the constructor for PageHandler.
func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{
		guard:       params.Guard,
		orders:      params.Orders,
		shops:       params.Shops,
		serviceName: params.Config.Env.ServiceName,
		logger:      params.Logger,
	}
}

// NavbarResponse is the navigation state of the current visitor.
type NavbarResponse struct {
	Authenticated bool             `json:"authenticated"`
	Email         string           `json:"email,omitempty"`
	Role          entity.Role      `json:"role,omitempty"`
	Links         []entity.NavLink `json:"links"`
}

// Home returns service information and the number of shops taking orders.
func (h *PageHandler) Home(c echo.Context) error {
	count, err := h.shops.CountActiveShops(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"service":      h.serviceName,
		"active_shops": count,
	})
}

// Navbar returns the links for the current visitor.
func (h *PageHandler) Navbar(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)

	nav := NavbarResponse{
		Authenticated: principal != nil,
		Links:         h.guard.NavLinks(c.Request().Context(), principal),
	}
	if principal != nil {
		nav.Email = principal.Email
		nav.Role = deliverycontext.GetRole(c)
		// NavLinks records a role it had to resolve on the principal.
		if resolved := principal.Metadata.Role; resolved != nil && resolved.IsValid() {
			nav.Role = *resolved
		}
	}

	return response.Success(c, http.StatusOK, nav)
}

// DashboardRedirect sends the visitor to the dashboard of their role.
func (h *PageHandler) DashboardRedirect(c echo.Context) error {
	return response.SeeOther(c, h.guard.LandingRoute(c.Request().Context(), deliverycontext.GetPrincipal(c)), nil)
}

// UserDashboard lists the principal's orders.
func (h *PageHandler) UserDashboard(c echo.Context) error {
	orders, err := h.orders.ListUserOrders(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"orders": orders})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
