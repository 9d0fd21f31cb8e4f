package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"printhub/config"
	"printhub/internal/domain/entity"
	mockUsecase "printhub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pageFixture struct {
	handler *PageHandler
	guard   *mockUsecase.MockRouteGuard
	orders  *mockUsecase.MockOrderUsecase
	shops   *mockUsecase.MockShopUsecase
}

func newPageFixture(t *testing.T) *pageFixture {
	t.Helper()

	f := &pageFixture{
		guard:  mockUsecase.NewMockRouteGuard(t),
		orders: mockUsecase.NewMockOrderUsecase(t),
		shops:  mockUsecase.NewMockShopUsecase(t),
	}
	cfg := &config.Config{}
	cfg.Env.ServiceName = "printhub"
	f.handler = NewPageHandler(PageHandlerParams{
		Guard: f.guard, Orders: f.orders, Shops: f.shops, Config: cfg, Logger: newDiscardLogger(),
	})

	return f
}

func TestPageHandler_DashboardRedirect(t *testing.T) {
	principal := &entity.Principal{ID: uuid.New()}

	tests := []struct {
		name      string
		principal *entity.Principal
		landing   string
	}{
		{name: "anonymous", landing: entity.RouteLogin},
		{name: "admin", principal: principal, landing: entity.RouteAdminDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPageFixture(t)
			e := newTestEcho()
			e.GET("/dashboard-redirect", f.handler.DashboardRedirect, as(tt.principal, entity.RoleUnknown))

			f.guard.EXPECT().LandingRoute(mock.Anything, tt.principal).Return(tt.landing)

			rec := serve(e, http.MethodGet, "/dashboard-redirect", nil)

			requireStatus(t, rec, http.StatusSeeOther)
			assert.Equal(t, tt.landing, rec.Header().Get(echo.HeaderLocation))
		})
	}
}

func TestPageHandler_Navbar(t *testing.T) {
	f := newPageFixture(t)
	principal := &entity.Principal{ID: uuid.New(), Email: "owner@example.com"}
	links := entity.NavLinksFor(true, entity.RoleShopkeeper)

	e := newTestEcho()
	e.GET("/navbar", f.handler.Navbar, as(principal, entity.RoleShopkeeper))
	f.guard.EXPECT().NavLinks(mock.Anything, principal).Return(links)

	rec := serve(e, http.MethodGet, "/navbar", nil)

	requireStatus(t, rec, http.StatusOK)
	var nav NavbarResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &nav))
	assert.True(t, nav.Authenticated)
	assert.Equal(t, entity.RoleShopkeeper, nav.Role)
	assert.Equal(t, links, nav.Links)
}

func TestPageHandler_Navbar_ReportsResolvedRole(t *testing.T) {
	f := newPageFixture(t)
	principal := &entity.Principal{ID: uuid.New(), Email: "owner@example.com"}
	links := entity.NavLinksFor(true, entity.RoleShopkeeper)

	e := newTestEcho()
	e.GET("/navbar", f.handler.Navbar, as(principal, entity.RoleUnknown))
	f.guard.EXPECT().NavLinks(mock.Anything, principal).
		RunAndReturn(func(_ context.Context, p *entity.Principal) []entity.NavLink {
			p.Metadata.Role = entity.RoleShopkeeper.Ptr()

			return links
		}).Once()

	rec := serve(e, http.MethodGet, "/navbar", nil)

	requireStatus(t, rec, http.StatusOK)
	var nav NavbarResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &nav))
	assert.Equal(t, entity.RoleShopkeeper, nav.Role)
}

func TestPageHandler_Home(t *testing.T) {
	f := newPageFixture(t)
	e := newTestEcho()
	e.GET("/", f.handler.Home)

	f.shops.EXPECT().CountActiveShops(mock.Anything).Return(int64(4), nil)

	rec := serve(e, http.MethodGet, "/", nil)

	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `{"service":"printhub","active_shops":4}`, string(decode(t, rec).Data))
}

func TestPageHandler_UserDashboard(t *testing.T) {
	f := newPageFixture(t)
	principal := &entity.Principal{ID: uuid.New()}
	e := newTestEcho()
	e.GET("/dashboard", f.handler.UserDashboard, as(principal, entity.RoleUser))

	f.orders.EXPECT().ListUserOrders(mock.Anything, principal).Return([]*entity.Order{{ID: uuid.New()}}, nil)

	rec := serve(e, http.MethodGet, "/dashboard", nil)

	requireStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), `"orders"`)
}
