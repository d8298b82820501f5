package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RBACService es una interface local: cualquier servicio con Enforce
// (en la práctica, el módulo rbac sobre Casbin) sirve aquí.
type RBACService interface {
	Enforce(employeeID, resource, action string) (bool, error)
}

// RBACAuthorize corta la petición si el actor no tiene la pareja
// recurso/acción asignada vía sus roles.
func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		employeeID := c.GetString("employee_id")
		if employeeID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			c.Abort()
			return
		}

		allowed, err := service.Enforce(employeeID, resource, action)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "forbidden",
				"message":  "No tiene permiso para acceder a este recurso",
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
