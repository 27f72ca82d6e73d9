package routes

import (
	"github.com/gin-gonic/gin"

	"farmgate/internal/interfaces/http/handlers"
	"farmgate/internal/interfaces/http/middleware"
)

// ClaimRouteConfig holds dependencies for claim routes.
type ClaimRouteConfig struct {
	ClaimHandler   *handlers.ClaimHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupClaimRoutes configures rental claim routes. Every claim route
// requires authentication; per-claim authorization (owner, claimant,
// admin) is enforced in the use cases.
func SetupClaimRoutes(engine *gin.Engine, cfg *ClaimRouteConfig) {
	claims := engine.Group("/claims")
	claims.Use(cfg.AuthMiddleware.RequireAuth())
	{
		claims.POST("", cfg.ClaimHandler.SubmitClaim)
		claims.GET("", cfg.ClaimHandler.ListClaims)
		claims.GET("/:id", cfg.ClaimHandler.GetClaim)
		claims.POST("/:id/decision", cfg.ClaimHandler.DecideClaim)
		claims.POST("/:id/handover/code", cfg.ClaimHandler.IssueHandoverCode)
		claims.POST("/:id/handover/verify", cfg.ClaimHandler.VerifyHandoverCode)
	}
}
