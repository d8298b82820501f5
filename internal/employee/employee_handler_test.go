package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-talento/internal/employee"
	employeeerrors "go-talento/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn          func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn          func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetByDepartmentFn func(ctx context.Context, departmentID string) ([]employee.EmployeeResponse, error)
	GetOptionsFn      func(ctx context.Context) ([]employee.EmployeeResponse, error)
	GetByIDFn         func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	UpdateFn          func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn          func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx)
}
func (f *fakeEmployeeService) GetByDepartment(ctx context.Context, departmentID string) ([]employee.EmployeeResponse, error) {
	return f.GetByDepartmentFn(ctx, departmentID)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.GetOptionsFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func TestEmployeeHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, "Ana Pérez", req.FullName)
				return employee.EmployeeResponse{ID: uuid.New().String(), FullName: req.FullName}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"full_name":"Ana Pérez","email":"aperez@clinica.example","department_id":"` + uuid.New().String() + `","hire_date":"2021-01-10"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/empleados", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("correo duplicado", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"full_name":"Ana Pérez","email":"aperez@clinica.example","department_id":"` + uuid.New().String() + `","hire_date":"2021-01-10"}`
		c.Request = httptest.NewRequest(http.MethodPost, "/empleados", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/empleados", strings.NewReader(`{"full_name":""}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filtra por área cuando llega area_id", func(t *testing.T) {
		deptID := uuid.New().String()
		svc := &fakeEmployeeService{
			GetByDepartmentFn: func(ctx context.Context, id string) ([]employee.EmployeeResponse, error) {
				assert.Equal(t, deptID, id)
				return []employee.EmployeeResponse{{FullName: "Ana Pérez"}}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/empleados?area_id="+deptID, nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("busca por texto", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) {
				return []employee.EmployeeResponse{
					{FullName: "Ana Pérez", Email: "aperez@clinica.example"},
					{FullName: "Juan Díaz", Email: "jdiaz@clinica.example"},
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/empleados?q=ana", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ana")
		assert.NotContains(t, w.Body.String(), "Juan")
	})
}

func TestEmployeeHandler_GetById(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		id := uuid.New().String()
		c.Request = httptest.NewRequest(http.MethodGet, "/empleados/"+id, nil)
		c.Params = []gin.Param{{Key: "id", Value: id}}

		h.GetById(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
