package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestReplayCached(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("repite el 201 y el sobre de la respuesta original", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/permisos", nil)

		cached := `{"id":"9b6c1d2e","radicado":"PER-000042","estado":"PENDING"}`

		replayed := replayCached(c, cached)

		assert.True(t, replayed)
		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"ok":true,"data":`+cached+`}`, w.Body.String())
	})

	t.Run("cache ilegible no se reproduce y deja seguir al handler", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/permisos", nil)

		replayed := replayCached(c, `{"radicado": truncado`)

		assert.False(t, replayed)
		assert.False(t, c.IsAborted())
		assert.Empty(t, w.Body.String())
	})
}
