package notification

import (
	"go-talento/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	notifications := r.Group("/notificaciones")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", handler.GetMine)
		notifications.POST("/:id/leida", handler.MarkRead)
		notifications.POST("/leidas", handler.MarkAllRead)
	}
}
