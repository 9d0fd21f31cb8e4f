package handler

import (
	"net/http"
	"testing"

	"printhub/internal/domain/entity"
	domainerrors "printhub/internal/domain/errors"
	"printhub/internal/errors"
	mockUsecase "printhub/internal/mocks/usecase"
	"printhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newShopTestEcho(t *testing.T, principal *entity.Principal) (*echo.Echo, *mockUsecase.MockShopUsecase, *mockUsecase.MockOrderUsecase) {
	t.Helper()

	shops := mockUsecase.NewMockShopUsecase(t)
	orders := mockUsecase.NewMockOrderUsecase(t)
	h := NewShopHandler(ShopHandlerParams{Shops: shops, Orders: orders, Logger: newDiscardLogger()})

	e := newTestEcho()
	auth := as(principal, entity.RoleShopkeeper)
	e.POST("/shop-setup", h.Setup, auth)
	e.GET("/shop-dashboard", h.Dashboard, auth)
	e.PUT("/shop-dashboard/shop", h.Update, auth)
	e.PUT("/shop-dashboard/pricing", h.UpsertPricing, auth)
	e.PATCH("/shop-dashboard/orders/:id/status", h.UpdateOrderStatus, auth)

	return e, shops, orders
}

func TestShopHandler_Setup(t *testing.T) {
	principal := &entity.Principal{ID: uuid.New()}
	e, shops, _ := newShopTestEcho(t, principal)

	shops.EXPECT().SetupShop(mock.Anything, principal, usecase.ShopInput{Name: "Campus Prints", City: "Leeds"}).
		Return(&entity.Shop{ID: uuid.New(), Name: "Campus Prints", Status: entity.ShopStatusActive}, nil)

	rec := serve(e, http.MethodPost, "/shop-setup", ShopRequest{Name: "Campus Prints", City: "Leeds"})

	requireStatus(t, rec, http.StatusCreated)
}

func TestShopHandler_Setup_SecondShop(t *testing.T) {
	principal := &entity.Principal{ID: uuid.New()}
	e, shops, _ := newShopTestEcho(t, principal)

	shops.EXPECT().SetupShop(mock.Anything, principal, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrConflict.WithDetails("shop already exists"), "owner already has a shop"))

	rec := serve(e, http.MethodPost, "/shop-setup", ShopRequest{Name: "Second"})

	requireStatus(t, rec, http.StatusConflict)
	assert.Equal(t, "CONFLICT", decode(t, rec).Error.Code)
}

func TestShopHandler_Dashboard_NoShop(t *testing.T) {
	principal := &entity.Principal{ID: uuid.New()}
	e, shops, _ := newShopTestEcho(t, principal)

	shops.EXPECT().Dashboard(mock.Anything, principal).Return(&usecase.ShopDashboard{}, nil)

	rec := serve(e, http.MethodGet, "/shop-dashboard", nil)

	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), `"setup":"/shop-setup"`)
}

func TestShopHandler_UpsertPricing(t *testing.T) {
	principal := &entity.Principal{ID: uuid.New()}
	e, shops, _ := newShopTestEcho(t, principal)

	shops.EXPECT().UpsertPricing(mock.Anything, principal, mock.MatchedBy(func(prices []usecase.PriceInput) bool {
		return len(prices) == 1 &&
			prices[0].PaperSize == entity.PaperSizeA4 &&
			prices[0].SingleSidedPrice.Equal(decimal.RequireFromString("2.00")) &&
			prices[0].DoubleSidedPrice.Equal(decimal.RequireFromString("3.50"))
	})).Return([]entity.PriceEntry{{PaperSize: entity.PaperSizeA4}}, nil)

	rec := serve(e, http.MethodPut, "/shop-dashboard/pricing", map[string]any{
		"prices": []map[string]any{{
			"paper_size": "a4", "color_mode": "color", "single_sided_price": "2.00", "double_sided_price": 3.5,
		}},
	})

	requireStatus(t, rec, http.StatusOK)
}

func TestShopHandler_UpsertPricing_Validation(t *testing.T) {
	e, _, _ := newShopTestEcho(t, &entity.Principal{ID: uuid.New()})

	rec := serve(e, http.MethodPut, "/shop-dashboard/pricing", map[string]any{
		"prices": []map[string]any{{"paper_size": "a5", "color_mode": "color"}},
	})

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestShopHandler_UpdateOrderStatus(t *testing.T) {
	principal := &entity.Principal{ID: uuid.New()}
	orderID := uuid.New()

	t.Run("updated", func(t *testing.T) {
		e, _, orders := newShopTestEcho(t, principal)
		orders.EXPECT().UpdateStatus(mock.Anything, principal, orderID, entity.OrderStatusReady).
			Return(&entity.Order{ID: orderID, Status: entity.OrderStatusReady}, nil)

		rec := serve(e, http.MethodPatch, "/shop-dashboard/orders/"+orderID.String()+"/status", StatusRequest{Status: "ready"})

		requireStatus(t, rec, http.StatusOK)
		assert.Contains(t, rec.Body.String(), `"status":"ready"`)
	})

	t.Run("invalid transition", func(t *testing.T) {
		e, _, orders := newShopTestEcho(t, principal)
		orders.EXPECT().UpdateStatus(mock.Anything, principal, orderID, entity.OrderStatusPending).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidStatusTransition.WithDetails("ready -> pending"), "update order status"))

		rec := serve(e, http.MethodPatch, "/shop-dashboard/orders/"+orderID.String()+"/status", StatusRequest{Status: "pending"})

		requireStatus(t, rec, http.StatusConflict)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_STATUS_TRANSITION", env.Error.Code)
		assert.Equal(t, "ready -> pending", env.Error.Details)
	})

	t.Run("unknown status", func(t *testing.T) {
		e, _, _ := newShopTestEcho(t, principal)

		rec := serve(e, http.MethodPatch, "/shop-dashboard/orders/"+orderID.String()+"/status", StatusRequest{Status: "shipped"})

		requireStatus(t, rec, http.StatusBadRequest)
	})
}
