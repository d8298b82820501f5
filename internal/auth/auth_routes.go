package auth

import (
	"go-talento/internal/authz"
	"go-talento/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
		auth.POST("/refresh", handler.RefreshToken)
		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/logout", middleware.AuthMiddleware(), handler.Logout)
		auth.POST("/register",
			middleware.AuthMiddleware(),
			middleware.RoleMiddleware(authz.RoleAdmin, authz.RoleSuperAdmin),
			handler.Register,
		)
	}
}
