package routes

import (
	"github.com/gin-gonic/gin"

	"farmgate/internal/interfaces/http/handlers"
	"farmgate/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for auth routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures account and session routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/verify-email", cfg.AuthHandler.VerifyEmail)
		auth.POST("/password-reset", cfg.AuthHandler.RequestPasswordReset)
		auth.POST("/password-reset/confirm", cfg.AuthHandler.ResetPassword)

		authProtected := auth.Group("")
		authProtected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			authProtected.GET("/me", cfg.AuthHandler.GetMe)
		}
	}
}
