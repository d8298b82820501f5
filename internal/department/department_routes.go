package department

import (
	"go-talento/internal/middleware"
	"go-talento/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
) {
	areas := r.Group("/areas")

	areas.Use(middleware.AuthMiddleware())

	{
		areas.GET("", middleware.RBACAuthorize(rbacService, "area", "read"), h.GetAll)
		areas.POST("", middleware.RBACAuthorize(rbacService, "area", "create"), h.Create)
		areas.GET("/:id", middleware.RBACAuthorize(rbacService, "area", "read"), h.GetById)
		areas.PUT("/:id", middleware.RBACAuthorize(rbacService, "area", "update"), h.Update)
		areas.DELETE("/:id", middleware.RBACAuthorize(rbacService, "area", "delete"), h.Delete)
	}
}
