package handler

import (
	"log/slog"
	"net/http"

	"printhub/internal/delivery/api/response"
	deliverycontext "printhub/internal/delivery/context"
	"printhub/internal/domain/entity"
	"printhub/internal/errors"
	"printhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	Shops  usecase.ShopUsecase
	Orders usecase.OrderUsecase
	Logger *slog.Logger
}

// ShopHandler serves the shopkeeper pages.
type ShopHandler struct {
	shops  usecase.ShopUsecase
	orders usecase.OrderUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler.
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shops:  params.Shops,
		orders: params.Orders,
		logger: params.Logger,
	}
}

// ShopRequest represents the editable profile of a shop.
type ShopRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postal_code"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Description string `json:"description" validate:"max=2000"`
}

// PriceRequest is one price list row.
type PriceRequest struct {
	PaperSize        string          `json:"paper_size" validate:"required,paper_size"`
	ColorMode        string          `json:"color_mode" validate:"required,color_mode"`
	SingleSidedPrice decimal.Decimal `json:"single_sided_price"`
	DoubleSidedPrice decimal.Decimal `json:"double_sided_price"`
}

// PricingRequest replaces rows of the shop's price list.
type PricingRequest struct {
	Prices []PriceRequest `json:"prices" validate:"required,min=1,dive"`
}

// StatusRequest carries a new order status.
type StatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

func (r ShopRequest) input() usecase.ShopInput {
	return usecase.ShopInput{
		Name:        r.Name,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		PostalCode:  r.PostalCode,
		Phone:       r.Phone,
		Email:       r.Email,
		Description: r.Description,
	}
}

// Setup creates the shopkeeper's shop.
func (h *ShopHandler) Setup(c echo.Context) error {
	var req ShopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shop, err := h.shops.SetupShop(c.Request().Context(), deliverycontext.GetPrincipal(c), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, shop)
}

// Update edits the shopkeeper's shop.
func (h *ShopHandler) Update(c echo.Context) error {
	var req ShopRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shop, err := h.shops.UpdateShop(c.Request().Context(), deliverycontext.GetPrincipal(c), req.input())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// UpsertPricing writes price list rows and returns the full list.
func (h *ShopHandler) UpsertPricing(c echo.Context) error {
	var req PricingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	prices := make([]usecase.PriceInput, 0, len(req.Prices))
	for _, p := range req.Prices {
		prices = append(prices, usecase.PriceInput{
			PaperSize:        entity.PaperSize(p.PaperSize),
			ColorMode:        entity.ColorMode(p.ColorMode),
			SingleSidedPrice: p.SingleSidedPrice,
			DoubleSidedPrice: p.DoubleSidedPrice,
		})
	}

	list, err := h.shops.UpsertPricing(c.Request().Context(), deliverycontext.GetPrincipal(c), prices)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"pricing": list})
}

// Dashboard returns the shop, its price list and its orders. A shopkeeper without a
// shop gets an empty dashboard pointing at the setup page.
func (h *ShopHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.shops.Dashboard(c.Request().Context(), deliverycontext.GetPrincipal(c))
	if err != nil {
		return errors.WithStack(err)
	}

	body := map[string]any{
		"shop":    dashboard.Shop,
		"pricing": dashboard.Pricing,
		"orders":  dashboard.Orders,
	}
	if dashboard.Shop == nil {
		body["setup"] = entity.RouteShopSetup
	}

	return response.Success(c, http.StatusOK, body)
}

// UpdateOrderStatus moves an order of the shopkeeper's shop to a new status.
func (h *ShopHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req StatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orders.UpdateStatus(c.Request().Context(), deliverycontext.GetPrincipal(c), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}
