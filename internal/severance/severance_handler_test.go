package severance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-talento/internal/authz"
	"go-talento/internal/severance"
	severanceerrors "go-talento/internal/severance/errors"
	"go-talento/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSeveranceService struct {
	CreateFn  func(ctx context.Context, sub authz.Subject, req severance.CreateSeveranceRequest) (severance.SeveranceResponse, error)
	ListFn    func(ctx context.Context, sub authz.Subject) ([]severance.SeveranceResponse, error)
	GetByIDFn func(ctx context.Context, sub authz.Subject, id string) (severance.SeveranceResponse, error)
	ApproveFn func(ctx context.Context, sub authz.Subject, id string, req severance.ApproveSeveranceRequest) (severance.SeveranceResponse, error)
	RejectFn  func(ctx context.Context, sub authz.Subject, id string, req severance.RejectSeveranceRequest) (severance.SeveranceResponse, error)
	StatsFn   func(ctx context.Context, sub authz.Subject) (severance.SeveranceStatsResponse, error)
}

func (f *fakeSeveranceService) Create(ctx context.Context, sub authz.Subject, req severance.CreateSeveranceRequest) (severance.SeveranceResponse, error) {
	return f.CreateFn(ctx, sub, req)
}
func (f *fakeSeveranceService) List(ctx context.Context, sub authz.Subject) ([]severance.SeveranceResponse, error) {
	return f.ListFn(ctx, sub)
}
func (f *fakeSeveranceService) GetByID(ctx context.Context, sub authz.Subject, id string) (severance.SeveranceResponse, error) {
	return f.GetByIDFn(ctx, sub, id)
}
func (f *fakeSeveranceService) Approve(ctx context.Context, sub authz.Subject, id string, req severance.ApproveSeveranceRequest) (severance.SeveranceResponse, error) {
	return f.ApproveFn(ctx, sub, id, req)
}
func (f *fakeSeveranceService) Reject(ctx context.Context, sub authz.Subject, id string, req severance.RejectSeveranceRequest) (severance.SeveranceResponse, error) {
	return f.RejectFn(ctx, sub, id, req)
}
func (f *fakeSeveranceService) Stats(ctx context.Context, sub authz.Subject) (severance.SeveranceStatsResponse, error) {
	return f.StatsFn(ctx, sub)
}

func setSubject(c *gin.Context, sub authz.Subject) {
	c.Set("employee_id", sub.EmployeeID)
	c.Set("department", sub.Department)
	c.Set("roles", sub.Roles)
}

func TestSeveranceHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeSeveranceService{
			CreateFn: func(ctx context.Context, sub authz.Subject, req severance.CreateSeveranceRequest) (severance.SeveranceResponse, error) {
				assert.Equal(t, int64(2_000_000), req.RequestedAmount)
				return severance.SeveranceResponse{ID: uuid.New().String(), Status: workflow.StatusPending}, nil
			},
		}

		h := severance.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"metodo_retiro":"VIVIENDA","monto_solicitado":2000000}`
		c.Request = httptest.NewRequest(http.MethodPost, "/cesantias", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		setSubject(c, subject(authz.RoleEmployee, "Urgencias"))

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("monto no positivo -> 400 antes del servicio", func(t *testing.T) {
		h := severance.NewHandler(&fakeSeveranceService{}, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"metodo_retiro":"VIVIENDA","monto_solicitado":-100}`
		c.Request = httptest.NewRequest(http.MethodPost, "/cesantias", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestSeveranceHandler_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("aprueba con monto distinto al solicitado", func(t *testing.T) {
		svc := &fakeSeveranceService{
			ApproveFn: func(ctx context.Context, sub authz.Subject, id string, req severance.ApproveSeveranceRequest) (severance.SeveranceResponse, error) {
				assert.Equal(t, int64(1_500_000), req.ApprovedAmount)
				amount := req.ApprovedAmount
				return severance.SeveranceResponse{
					ID:              id,
					Status:          workflow.StatusApproved,
					RequestedAmount: 2_000_000,
					ApprovedAmount:  &amount,
				}, nil
			},
		}

		h := severance.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodPut, "/cesantias/"+id+"/aprobar", strings.NewReader(`{"monto_aprobado":1500000}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}
		setSubject(c, subject(authz.RoleAreaHead, "Urgencias"))

		h.Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "1500000")
		assert.Contains(t, w.Body.String(), "2000000")
	})

	t.Run("sin monto aprobado -> 400 antes del servicio", func(t *testing.T) {
		h := severance.NewHandler(&fakeSeveranceService{}, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodPut, "/cesantias/"+id+"/aprobar", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("revisor no autorizado -> 403", func(t *testing.T) {
		svc := &fakeSeveranceService{
			ApproveFn: func(ctx context.Context, sub authz.Subject, id string, req severance.ApproveSeveranceRequest) (severance.SeveranceResponse, error) {
				return severance.SeveranceResponse{}, severanceerrors.ErrNotAuthorizedReviewer
			},
		}

		h := severance.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodPut, "/cesantias/"+id+"/aprobar", strings.NewReader(`{"monto_aprobado":1000000}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}
		setSubject(c, subject(authz.RoleAreaHead, "Farmacia"))

		h.Approve(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestSeveranceHandler_Reject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rechaza con motivo", func(t *testing.T) {
		svc := &fakeSeveranceService{
			RejectFn: func(ctx context.Context, sub authz.Subject, id string, req severance.RejectSeveranceRequest) (severance.SeveranceResponse, error) {
				reason := req.Reason
				return severance.SeveranceResponse{ID: id, Status: workflow.StatusRejected, RejectionReason: &reason}, nil
			},
		}

		h := severance.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodPut, "/cesantias/"+id+"/rechazar", strings.NewReader(`{"motivo":"documentación incompleta"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}
		setSubject(c, subject(authz.RoleAreaHead, "Urgencias"))

		h.Reject(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), workflow.StatusRejected)
	})

	t.Run("sin motivo -> 400 antes del servicio", func(t *testing.T) {
		h := severance.NewHandler(&fakeSeveranceService{}, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodPut, "/cesantias/"+id+"/rechazar", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.Reject(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
