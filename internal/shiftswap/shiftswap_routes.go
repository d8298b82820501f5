package shiftswap

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
	cambios := r.Group("/cambio-turno")
	cambios.Use(middleware.AuthMiddleware())
	cambios.Use(middleware.ContextLogger(logger))
	{
		cambios.GET("", handler.GetAll)
		cambios.GET("/stats", handler.Stats)
		cambios.GET("/visto-bueno", handler.PendingSignOff)
		cambios.GET("/:id", handler.GetById)

		cambios.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Idempotency(rdb),
			handler.Create,
		)

		// El visto bueno lo da el reemplazante, sin importar su rol; el
		// servicio verifica que el actor sea el nominado.
		cambios.POST("/:id/aprobar-visto-bueno", handler.ApproveSignOff)
		cambios.POST("/:id/rechazar-visto-bueno", handler.RejectSignOff)

		cambios.GET("/en-revision",
			middleware.RoleMiddleware(
				authz.RoleAreaHead, authz.RoleManager, authz.RoleAdmin, authz.RoleSuperAdmin,
			),
			handler.ReviewQueue,
		)
		cambios.POST("/:id/aprobar-por-jefe",
			middleware.RoleMiddleware(
				authz.RoleAreaHead, authz.RoleManager, authz.RoleAdmin, authz.RoleSuperAdmin,
			),
			handler.ApproveByHead,
		)
		cambios.POST("/:id/rechazar-por-jefe",
			middleware.RoleMiddleware(
				authz.RoleAreaHead, authz.RoleManager, authz.RoleAdmin, authz.RoleSuperAdmin,
			),
			handler.RejectByHead,
		)
	}
}
