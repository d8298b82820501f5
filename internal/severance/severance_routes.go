package severance

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
	cesantias := r.Group("/cesantias")
	cesantias.Use(middleware.AuthMiddleware())
	cesantias.Use(middleware.ContextLogger(logger))
	{
		cesantias.GET("", handler.GetAll)
		cesantias.GET("/stats", handler.Stats)
		cesantias.GET("/:id", handler.GetById)

		cesantias.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		cesantias.PUT("/:id/aprobar",
			middleware.RoleMiddleware(
				authz.RoleAreaHead, authz.RoleManager, authz.RoleAdmin, authz.RoleSuperAdmin,
			),
			handler.Approve,
		)
		cesantias.PUT("/:id/rechazar",
			middleware.RoleMiddleware(
				authz.RoleAreaHead, authz.RoleManager, authz.RoleAdmin, authz.RoleSuperAdmin,
			),
			handler.Reject,
		)
	}
}
