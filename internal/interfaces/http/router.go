package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmgate/internal/interfaces/http/middleware"
	"farmgate/internal/interfaces/http/routes"
)

func (c *Container) setupEngine() {
	switch c.cfg.Server.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupListingRoutes(c.engine, &routes.ListingRouteConfig{
		ListingHandler: c.hdlrs.listingHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupClaimRoutes(c.engine, &routes.ClaimRouteConfig{
		ClaimHandler:   c.hdlrs.claimHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupOrderRoutes(c.engine, &routes.OrderRouteConfig{
		OrderHandler:   c.hdlrs.orderHandler,
		AuthMiddleware: c.authMiddleware,
	})
}
