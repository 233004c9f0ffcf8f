// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler    *handler.ProductHandler
	SaleHandler       *handler.SaleHandler
	AnalyticsHandler  *handler.AnalyticsHandler
	AuthHandler       *handler.AuthHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler    *handler.ProductHandler
	saleHandler       *handler.SaleHandler
	analyticsHandler  *handler.AnalyticsHandler
	authHandler       *handler.AuthHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:    params.ProductHandler,
		saleHandler:       params.SaleHandler,
		analyticsHandler:  params.AnalyticsHandler,
		authHandler:       params.AuthHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	requireAdmin := r.sessionMiddleware.RequireAdmin

	// Public catalog routes
	api.GET("/products", r.productHandler.ListProducts)
	api.GET("/products/:id", r.productHandler.GetProduct)

	// Admin-only catalog mutations
	api.POST("/products", r.productHandler.CreateProduct, requireAdmin)
	api.PUT("/products/:id", r.productHandler.UpdateProduct, requireAdmin)
	api.DELETE("/products/:id", r.productHandler.DeleteProduct, requireAdmin)

	// Sales routes, all admin-only
	api.POST("/sales", r.saleHandler.CreateSale, requireAdmin)
	api.GET("/sales", r.saleHandler.ListSales, requireAdmin)
	api.GET("/sales/recent", r.saleHandler.RecentSales, requireAdmin)

	// Analytics routes, all admin-only
	api.GET("/analytics/overview", r.analyticsHandler.Overview, requireAdmin)
	api.GET("/analytics/inventory", r.analyticsHandler.Inventory, requireAdmin)

	// Auth routes
	api.GET("/setup/check", r.authHandler.SetupCheck)
	api.POST("/setup", r.authHandler.Setup)
	api.POST("/login", r.authHandler.Login)
	api.POST("/logout", r.authHandler.Logout, requireAdmin)
	api.GET("/auth/admin", r.authHandler.CurrentAdmin, requireAdmin)
}
