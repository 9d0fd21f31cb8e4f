// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"printhub/internal/delivery/api/middleware"
	"printhub/internal/delivery/api/router/handler"
	"printhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	PageHandler     *handler.PageHandler
	OrderHandler    *handler.OrderHandler
	ShopHandler     *handler.ShopHandler
	AdminHandler    *handler.AdminHandler
	DocumentHandler *handler.DocumentHandler
	GuardMiddleware *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler  *handler.SessionHandler
	pageHandler     *handler.PageHandler
	orderHandler    *handler.OrderHandler
	shopHandler     *handler.ShopHandler
	adminHandler    *handler.AdminHandler
	documentHandler *handler.DocumentHandler
	guard           *middleware.GuardMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:  params.SessionHandler,
		pageHandler:     params.PageHandler,
		orderHandler:    params.OrderHandler,
		shopHandler:     params.ShopHandler,
		adminHandler:    params.AdminHandler,
		documentHandler: params.DocumentHandler,
		guard:           params.GuardMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET(entity.RouteHome, r.pageHandler.Home)

	// Session routes
	e.POST(entity.RouteSignUp, r.sessionHandler.SignUp)
	e.POST(entity.RouteLogin, r.sessionHandler.Login)
	e.POST("/token/refresh", r.sessionHandler.Refresh)
	e.POST(entity.RouteLogout, r.sessionHandler.Logout)

	optional := r.guard.Optional()
	e.GET("/navbar", r.pageHandler.Navbar, optional)
	e.GET(entity.RouteDashboardRedirect, r.pageHandler.DashboardRedirect, optional)

	// Signed document links of file and memory buckets
	e.GET("/documents", r.documentHandler.Serve)
	e.GET("/documents/*", r.documentHandler.Serve)

	// Customer routes
	e.GET(entity.RouteUserDashboard, r.pageHandler.UserDashboard, r.guard.Require(entity.RoleUser))
	newOrder := e.Group(entity.RouteNewOrder, r.guard.Require(entity.RoleUser))
	{
		newOrder.GET("", r.orderHandler.ListShops)
		newOrder.POST("", r.orderHandler.CreateOrder)
		newOrder.GET("/shops/:id/pricing", r.orderHandler.ShopPricing)
		newOrder.POST("/quote", r.orderHandler.Quote)
	}

	// Order pages are visible to the customer and the shop owner
	order := e.Group("/order/:id", r.guard.Authenticated())
	{
		order.GET("", r.orderHandler.GetOrder)
		order.GET("/document", r.orderHandler.Document)
		order.GET("/pickup-qr", r.orderHandler.PickupQR)
	}

	// Shopkeeper routes
	e.POST(entity.RouteShopSetup, r.shopHandler.Setup, r.guard.Require(entity.RoleShopkeeper))
	shop := e.Group(entity.RouteShopDashboard, r.guard.Require(entity.RoleShopkeeper))
	{
		shop.GET("", r.shopHandler.Dashboard)
		shop.PUT("/shop", r.shopHandler.Update)
		shop.PUT("/pricing", r.shopHandler.UpsertPricing)
		shop.PATCH("/orders/:id/status", r.shopHandler.UpdateOrderStatus)
	}

	// Admin routes
	admin := e.Group(entity.RouteAdminDashboard, r.guard.Require(entity.RoleAdmin))
	{
		admin.GET("", r.adminHandler.Dashboard)
		admin.PATCH("/users/:id/role", r.adminHandler.SetUserRole)
		admin.PATCH("/shops/:id/status", r.adminHandler.SetShopStatus)
	}
}
