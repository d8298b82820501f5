package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-talento/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Idempotency protege los POST de mutación contra doble envío (doble clic,
// doble pestaña). Si llega Idempotency-Key, la primera petición toma un
// lock en Redis y cachea su respuesta; las repetidas devuelven la
// respuesta cacheada o 409 mientras la original sigue en curso.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		employeeID := c.GetString("employee_id")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), employeeID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			if replayCached(c, val) {
				return
			}
			// Cache corrupta: se descarta y la petición se procesa de nuevo.
			rdb.Del(c.Request.Context(), cacheKey)
		}

		// Lock con expiración corta: si el proceso muere, el lock se libera solo.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()

		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "Su solicitud está en proceso, por favor espere.",
			})
			return
		}

		// El handler borra el lock y cachea la respuesta al terminar.
		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}

// replayCached reproduce la respuesta de la primera petición: mismo 201 y
// mismo sobre que escribió el handler al crear. Devuelve false si el
// valor cacheado no es JSON válido.
func replayCached(c *gin.Context, val string) bool {
	var cached json.RawMessage
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		zap.L().Named("middleware.idempotency").Warn("respuesta idempotente cacheada ilegible",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		return false
	}

	c.AbortWithStatusJSON(http.StatusCreated, response.ApiEnvelope{
		Ok:   true,
		Data: cached,
	})
	return true
}
