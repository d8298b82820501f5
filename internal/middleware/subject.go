package middleware

import (
	"go-talento/internal/authz"

	"github.com/gin-gonic/gin"
)

// SubjectFrom arma el contexto explícito del actor a partir de lo que
// AuthMiddleware dejó en el gin.Context. Los servicios nunca leen claims
// directamente.
func SubjectFrom(c *gin.Context) authz.Subject {
	return authz.Subject{
		EmployeeID: c.GetString("employee_id"),
		Roles:      GetRoles(c),
		Department: c.GetString("department"),
	}
}
