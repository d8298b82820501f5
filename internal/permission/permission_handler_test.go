package permission_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-talento/internal/authz"
	"go-talento/internal/permission"
	permissionerrors "go-talento/internal/permission/errors"
	"go-talento/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePermissionService struct {
	CreateFn      func(ctx context.Context, sub authz.Subject, req permission.CreatePermissionRequest) (permission.PermissionResponse, error)
	ListFn        func(ctx context.Context, sub authz.Subject) ([]permission.PermissionResponse, error)
	GetByIDFn     func(ctx context.Context, sub authz.Subject, id string) (permission.PermissionResponse, error)
	DecideFn      func(ctx context.Context, sub authz.Subject, id string, req permission.DecidePermissionRequest) (permission.PermissionResponse, error)
	StatsFn       func(ctx context.Context, sub authz.Subject) (permission.PermissionStatsResponse, error)
	CertificateFn func(ctx context.Context, sub authz.Subject, id string) ([]byte, string, error)
}

func (f *fakePermissionService) Create(ctx context.Context, sub authz.Subject, req permission.CreatePermissionRequest) (permission.PermissionResponse, error) {
	return f.CreateFn(ctx, sub, req)
}
func (f *fakePermissionService) List(ctx context.Context, sub authz.Subject) ([]permission.PermissionResponse, error) {
	return f.ListFn(ctx, sub)
}
func (f *fakePermissionService) GetByID(ctx context.Context, sub authz.Subject, id string) (permission.PermissionResponse, error) {
	return f.GetByIDFn(ctx, sub, id)
}
func (f *fakePermissionService) Decide(ctx context.Context, sub authz.Subject, id string, req permission.DecidePermissionRequest) (permission.PermissionResponse, error) {
	return f.DecideFn(ctx, sub, id, req)
}
func (f *fakePermissionService) Stats(ctx context.Context, sub authz.Subject) (permission.PermissionStatsResponse, error) {
	return f.StatsFn(ctx, sub)
}
func (f *fakePermissionService) Certificate(ctx context.Context, sub authz.Subject, id string) ([]byte, string, error) {
	return f.CertificateFn(ctx, sub, id)
}

func setSubject(c *gin.Context, sub authz.Subject) {
	c.Set("employee_id", sub.EmployeeID)
	c.Set("department", sub.Department)
	c.Set("roles", sub.Roles)
}

func TestPermissionHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		sub := plainEmployee("Urgencias")
		svc := &fakePermissionService{
			CreateFn: func(ctx context.Context, got authz.Subject, req permission.CreatePermissionRequest) (permission.PermissionResponse, error) {
				assert.Equal(t, sub.EmployeeID, got.EmployeeID)
				assert.Equal(t, "Urgencias", got.Department)
				return permission.PermissionResponse{ID: uuid.New().String(), Status: workflow.StatusPending}, nil
			},
		}

		h := permission.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"tipo":"CITA MEDICA","fecha_inicio":"2026-09-01","fecha_fin":"2026-09-02"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/permisos", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		setSubject(c, sub)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		h := permission.NewHandler(&fakePermissionService{}, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/permisos", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPermissionHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("transición ilegal -> 400", func(t *testing.T) {
		svc := &fakePermissionService{
			DecideFn: func(ctx context.Context, sub authz.Subject, id string, req permission.DecidePermissionRequest) (permission.PermissionResponse, error) {
				return permission.PermissionResponse{}, workflow.ErrIllegalTransition
			},
		}

		h := permission.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		body := `{"estado":"REJECTED","motivo":"tarde"}`
		c.Request = httptest.NewRequest(http.MethodPut, "/permisos/"+id+"/estado", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}
		setSubject(c, areaHead("Urgencias"))

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})

	t.Run("sin permiso -> 403", func(t *testing.T) {
		svc := &fakePermissionService{
			DecideFn: func(ctx context.Context, sub authz.Subject, id string, req permission.DecidePermissionRequest) (permission.PermissionResponse, error) {
				return permission.PermissionResponse{}, permissionerrors.ErrNotDepartmentHead
			},
		}

		h := permission.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		body := `{"estado":"APPROVED"}`
		c.Request = httptest.NewRequest(http.MethodPut, "/permisos/"+id+"/estado", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}
		setSubject(c, areaHead("Farmacia"))

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("estado fuera del enum -> 400 antes del servicio", func(t *testing.T) {
		h := permission.NewHandler(&fakePermissionService{}, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodPut, "/permisos/"+id+"/estado", strings.NewReader(`{"estado":"CANCELLED"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPermissionHandler_Certificate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("descarga PDF", func(t *testing.T) {
		svc := &fakePermissionService{
			CertificateFn: func(ctx context.Context, sub authz.Subject, id string) ([]byte, string, error) {
				return []byte("%PDF-1.4"), "constancia-PER-000009.pdf", nil
			},
		}

		h := permission.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodGet, "/permisos/"+id+"/constancia", nil)
		c.Params = []gin.Param{{Key: "id", Value: id}}
		setSubject(c, plainEmployee("Urgencias"))

		h.Certificate(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "constancia-PER-000009.pdf")
	})
}
