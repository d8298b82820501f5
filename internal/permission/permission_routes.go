package permission

import (
	"go-talento/internal/authz"
	"go-talento/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	permisos := r.Group("/permisos")
	permisos.Use(middleware.AuthMiddleware())
	permisos.Use(middleware.ContextLogger(logger))
	{
		permisos.GET("", handler.GetAll)
		permisos.GET("/stats", handler.Stats)
		permisos.GET("/:id", handler.GetById)
		permisos.GET("/:id/constancia", handler.Certificate)

		permisos.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		permisos.PUT("/:id/estado",
			middleware.RoleMiddleware(
				authz.RoleAreaHead, authz.RoleManager, authz.RoleAdmin, authz.RoleSuperAdmin,
			),
			handler.UpdateStatus,
		)
	}
}
