package routes

import (
	"github.com/gin-gonic/gin"

	"farmgate/internal/interfaces/http/handlers"
	"farmgate/internal/interfaces/http/middleware"
)

// ListingRouteConfig holds dependencies for listing routes.
type ListingRouteConfig struct {
	ListingHandler *handlers.ListingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupListingRoutes configures land listing routes. Browsing is public;
// anything that mutates a listing requires the owner (or an admin).
func SetupListingRoutes(engine *gin.Engine, cfg *ListingRouteConfig) {
	listings := engine.Group("/listings")
	{
		listings.GET("", cfg.ListingHandler.ListListings)
		listings.GET("/:id", cfg.ListingHandler.GetListing)

		listingsProtected := listings.Group("")
		listingsProtected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			listingsProtected.POST("", cfg.ListingHandler.CreateListing)
			listingsProtected.PUT("/:id", cfg.ListingHandler.UpdateListing)
			listingsProtected.POST("/:id/delist", cfg.ListingHandler.DelistListing)
		}
	}
}
