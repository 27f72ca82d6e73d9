package routes

import (
	"github.com/gin-gonic/gin"

	"farmgate/internal/interfaces/http/handlers"
	"farmgate/internal/interfaces/http/middleware"
)

// OrderRouteConfig holds dependencies for order routes.
type OrderRouteConfig struct {
	OrderHandler   *handlers.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupOrderRoutes configures produce order routes.
func SetupOrderRoutes(engine *gin.Engine, cfg *OrderRouteConfig) {
	orders := engine.Group("/orders")
	orders.Use(cfg.AuthMiddleware.RequireAuth())
	{
		orders.POST("", cfg.OrderHandler.CreateOrder)
		orders.GET("", cfg.OrderHandler.ListOrders)
		orders.GET("/:id", cfg.OrderHandler.GetOrder)
		orders.POST("/:id/cancel", cfg.OrderHandler.CancelOrder)
		orders.POST("/:id/delivery/code", cfg.OrderHandler.IssueDeliveryCode)
		orders.POST("/:id/delivery/verify", cfg.OrderHandler.VerifyDeliveryCode)
	}
}
