package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "go-talento/internal/auth/errors"
	"go-talento/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware valida el bearer token (o la cookie access_token) y deja
// en el contexto la identidad del actor: user_id, employee_id, roles y
// departamento, que es lo que consume el resolver de autorización.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token no encontrado", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Claims del token inválidos", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "El token no contiene user_id", nil)
			c.Abort()
			return
		}

		employeeID, ok := claims["employee_id"].(string)
		if !ok || employeeID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "El token no contiene employee_id", nil)
			c.Abort()
			return
		}

		department, _ := claims["department"].(string)

		roles := make([]string, 0, 2)
		if rawRoles, ok := claims["roles"].([]interface{}); ok {
			for _, r := range rawRoles {
				if name, ok := r.(string); ok && name != "" {
					roles = append(roles, name)
				}
			}
		}

		c.Set("user_id", userID)
		c.Set("employee_id", employeeID)
		c.Set("department", department)
		c.Set("roles", roles)

		c.Next()
	}
}

// RoleMiddleware corta la petición si el actor no tiene alguno de los
// roles indicados.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles, exists := c.Get("roles")
		if !exists {
			response.Error(c, autherrors.ErrForbidden.HTTPStatus, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		held, _ := roles.([]string)
		isAllowed := false
	outer:
		for _, want := range allowedRoles {
			for _, have := range held {
				if want == have {
					isAllowed = true
					break outer
				}
			}
		}

		if !isAllowed {
			response.Error(c, autherrors.ErrForbidden.HTTPStatus, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetRoles lee los roles dejados por AuthMiddleware.
func GetRoles(c *gin.Context) []string {
	if v, ok := c.Get("roles"); ok {
		if roles, ok := v.([]string); ok {
			return roles
		}
	}
	return nil
}
