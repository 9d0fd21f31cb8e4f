package handler

import (
	"log/slog"
	"net/http"

	"printhub/internal/delivery/api/response"
	"printhub/internal/domain/entity"
	"printhub/internal/errors"
	"printhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	Admin  usecase.AdminUsecase
	Logger *slog.Logger
}

// AdminHandler serves the admin dashboard.
type AdminHandler struct {
	admin  usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		admin:  params.Admin,
		logger: params.Logger,
	}
}

// RoleRequest carries a role to assign.
type RoleRequest struct {
	Role string `json:"role" validate:"required,assignable_role"`
}

// ShopStatusRequest carries a shop status.
type ShopStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// Dashboard lists every user and every shop.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.admin.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"users": dashboard.Users,
		"shops": dashboard.Shops,
	})
}

// SetUserRole assigns a role to a user.
func (h *AdminHandler) SetUserRole(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req RoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.admin.SetUserRole(c.Request().Context(), userID, entity.Role(req.Role)); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetShopStatus activates or deactivates a shop.
func (h *AdminHandler) SetShopStatus(c echo.Context) error {
	shopID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ShopStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.admin.SetShopStatus(c.Request().Context(), shopID, entity.ShopStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
