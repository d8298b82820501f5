package shiftswap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-talento/internal/authz"
	"go-talento/internal/shiftswap"
	shiftswaperrors "go-talento/internal/shiftswap/errors"
	"go-talento/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeShiftSwapService struct {
	CreateFn         func(ctx context.Context, sub authz.Subject, req shiftswap.CreateShiftSwapRequest) (shiftswap.ShiftSwapResponse, error)
	ListFn           func(ctx context.Context, sub authz.Subject) ([]shiftswap.ShiftSwapResponse, error)
	GetByIDFn        func(ctx context.Context, sub authz.Subject, id string) (shiftswap.ShiftSwapResponse, error)
	PendingSignOffFn func(ctx context.Context, sub authz.Subject) ([]shiftswap.ShiftSwapResponse, error)
	SignOffFn        func(ctx context.Context, sub authz.Subject, id string, approve bool, comment string) (shiftswap.ShiftSwapResponse, error)
	ReviewQueueFn    func(ctx context.Context, sub authz.Subject) ([]shiftswap.ShiftSwapResponse, error)
	HeadDecideFn     func(ctx context.Context, sub authz.Subject, id string, approve bool, comment string) (shiftswap.ShiftSwapResponse, error)
	StatsFn          func(ctx context.Context, sub authz.Subject) (shiftswap.ShiftSwapStatsResponse, error)
}

func (f *fakeShiftSwapService) Create(ctx context.Context, sub authz.Subject, req shiftswap.CreateShiftSwapRequest) (shiftswap.ShiftSwapResponse, error) {
	return f.CreateFn(ctx, sub, req)
}
func (f *fakeShiftSwapService) List(ctx context.Context, sub authz.Subject) ([]shiftswap.ShiftSwapResponse, error) {
	return f.ListFn(ctx, sub)
}
func (f *fakeShiftSwapService) GetByID(ctx context.Context, sub authz.Subject, id string) (shiftswap.ShiftSwapResponse, error) {
	return f.GetByIDFn(ctx, sub, id)
}
func (f *fakeShiftSwapService) PendingSignOff(ctx context.Context, sub authz.Subject) ([]shiftswap.ShiftSwapResponse, error) {
	return f.PendingSignOffFn(ctx, sub)
}
func (f *fakeShiftSwapService) SignOff(ctx context.Context, sub authz.Subject, id string, approve bool, comment string) (shiftswap.ShiftSwapResponse, error) {
	return f.SignOffFn(ctx, sub, id, approve, comment)
}
func (f *fakeShiftSwapService) ReviewQueue(ctx context.Context, sub authz.Subject) ([]shiftswap.ShiftSwapResponse, error) {
	return f.ReviewQueueFn(ctx, sub)
}
func (f *fakeShiftSwapService) HeadDecide(ctx context.Context, sub authz.Subject, id string, approve bool, comment string) (shiftswap.ShiftSwapResponse, error) {
	return f.HeadDecideFn(ctx, sub, id, approve, comment)
}
func (f *fakeShiftSwapService) Stats(ctx context.Context, sub authz.Subject) (shiftswap.ShiftSwapStatsResponse, error) {
	return f.StatsFn(ctx, sub)
}

func setSubject(c *gin.Context, sub authz.Subject) {
	c.Set("employee_id", sub.EmployeeID)
	c.Set("department", sub.Department)
	c.Set("roles", sub.Roles)
}

func TestShiftSwapHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		sub := subject(authz.RoleEmployee, "Urgencias")
		svc := &fakeShiftSwapService{
			CreateFn: func(ctx context.Context, got authz.Subject, req shiftswap.CreateShiftSwapRequest) (shiftswap.ShiftSwapResponse, error) {
				assert.Equal(t, sub.EmployeeID, got.EmployeeID)
				assert.Equal(t, "NOCHE", req.ShiftType)
				return shiftswap.ShiftSwapResponse{ID: uuid.New().String(), Status: workflow.StatusPending}, nil
			},
		}

		h := shiftswap.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"reemplazo_id":"` + uuid.New().String() + `","fecha_turno":"2026-09-10","tipo_turno":"NOCHE","fecha_propuesta":"2026-09-12"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/cambio-turno", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		setSubject(c, sub)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("reemplazo_id debe ser uuid", func(t *testing.T) {
		h := shiftswap.NewHandler(&fakeShiftSwapService{}, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"reemplazo_id":"no-es-uuid","fecha_turno":"2026-09-10","tipo_turno":"NOCHE","fecha_propuesta":"2026-09-12"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/cambio-turno", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestShiftSwapHandler_SignOff(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("aprobar visto bueno", func(t *testing.T) {
		svc := &fakeShiftSwapService{
			SignOffFn: func(ctx context.Context, sub authz.Subject, id string, approve bool, comment string) (shiftswap.ShiftSwapResponse, error) {
				assert.True(t, approve)
				assert.Equal(t, "de acuerdo", comment)
				return shiftswap.ShiftSwapResponse{ID: id, Status: workflow.StatusInReview}, nil
			},
		}

		h := shiftswap.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodPost, "/cambio-turno/"+id+"/aprobar-visto-bueno", strings.NewReader(`{"comentario":"de acuerdo"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}
		setSubject(c, subject(authz.RoleEmployee, "Urgencias"))

		h.ApproveSignOff(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), workflow.StatusInReview)
	})

	t.Run("actor que no es el reemplazante -> 403", func(t *testing.T) {
		svc := &fakeShiftSwapService{
			SignOffFn: func(ctx context.Context, sub authz.Subject, id string, approve bool, comment string) (shiftswap.ShiftSwapResponse, error) {
				return shiftswap.ShiftSwapResponse{}, shiftswaperrors.ErrNotReplacement
			},
		}

		h := shiftswap.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodPost, "/cambio-turno/"+id+"/aprobar-visto-bueno", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}
		setSubject(c, subject(authz.RoleEmployee, "Urgencias"))

		h.ApproveSignOff(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rechazar sin motivo -> 400", func(t *testing.T) {
		svc := &fakeShiftSwapService{
			SignOffFn: func(ctx context.Context, sub authz.Subject, id string, approve bool, comment string) (shiftswap.ShiftSwapResponse, error) {
				assert.False(t, approve)
				return shiftswap.ShiftSwapResponse{}, shiftswaperrors.ErrRejectionReasonRequired
			},
		}

		h := shiftswap.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodPost, "/cambio-turno/"+id+"/rechazar-visto-bueno", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}
		setSubject(c, subject(authz.RoleEmployee, "Urgencias"))

		h.RejectSignOff(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestShiftSwapHandler_HeadDecide(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("aprobar por jefe", func(t *testing.T) {
		svc := &fakeShiftSwapService{
			HeadDecideFn: func(ctx context.Context, sub authz.Subject, id string, approve bool, comment string) (shiftswap.ShiftSwapResponse, error) {
				assert.True(t, approve)
				return shiftswap.ShiftSwapResponse{ID: id, Status: workflow.StatusApproved}, nil
			},
		}

		h := shiftswap.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodPost, "/cambio-turno/"+id+"/aprobar-por-jefe", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}
		setSubject(c, subject(authz.RoleAreaHead, "Urgencias"))

		h.ApproveByHead(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), workflow.StatusApproved)
	})

	t.Run("sin visto bueno previo -> 400 INVALID_STATE", func(t *testing.T) {
		svc := &fakeShiftSwapService{
			HeadDecideFn: func(ctx context.Context, sub authz.Subject, id string, approve bool, comment string) (shiftswap.ShiftSwapResponse, error) {
				return shiftswap.ShiftSwapResponse{}, workflow.ErrIllegalTransition
			},
		}

		h := shiftswap.NewHandler(svc, nil)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodPost, "/cambio-turno/"+id+"/aprobar-por-jefe", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = []gin.Param{{Key: "id", Value: id}}
		setSubject(c, subject(authz.RoleAreaHead, "Urgencias"))

		h.ApproveByHead(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})
}

func TestShiftSwapHandler_PendingSignOff(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeShiftSwapService{
		PendingSignOffFn: func(ctx context.Context, sub authz.Subject) ([]shiftswap.ShiftSwapResponse, error) {
			return []shiftswap.ShiftSwapResponse{{RequestNumber: "CT-000031", Status: workflow.StatusPending}}, nil
		},
	}

	h := shiftswap.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodGet, "/cambio-turno/visto-bueno", nil)
	setSubject(c, subject(authz.RoleEmployee, "Urgencias"))

	h.PendingSignOff(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "CT-000031")
}
