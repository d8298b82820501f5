package department_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-talento/internal/department"
	departmenterrors "go-talento/internal/department/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDepartmentRepo struct {
	CreateFn     func(ctx context.Context, dept *department.Department) error
	FindAllFn    func(ctx context.Context) ([]department.Department, error)
	FindByIDFn   func(ctx context.Context, id string) (*department.Department, error)
	FindByNameFn func(ctx context.Context, name string) (*department.Department, error)
	UpdateFn     func(ctx context.Context, dept *department.Department) error
	DeleteFn     func(ctx context.Context, id string) error
}

func (f *fakeDepartmentRepo) WithTx(tx *sql.Tx) department.Repository { return f }

func (f *fakeDepartmentRepo) Create(ctx context.Context, dept *department.Department) error {
	return f.CreateFn(ctx, dept)
}

func (f *fakeDepartmentRepo) FindAll(ctx context.Context) ([]department.Department, error) {
	return f.FindAllFn(ctx)
}

func (f *fakeDepartmentRepo) FindByID(ctx context.Context, id string) (*department.Department, error) {
	return f.FindByIDFn(ctx, id)
}

func (f *fakeDepartmentRepo) FindByName(ctx context.Context, name string) (*department.Department, error) {
	return f.FindByNameFn(ctx, name)
}

func (f *fakeDepartmentRepo) Update(ctx context.Context, dept *department.Department) error {
	return f.UpdateFn(ctx, dept)
}

func (f *fakeDepartmentRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestDepartmentService_Create(t *testing.T) {
	db, sqlMock, _ := sqlmock.New()
	defer db.Close()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			CreateFn: func(ctx context.Context, dept *department.Department) error {
				assert.Equal(t, "Asistencial", dept.Name)
				assert.NotEqual(t, uuid.Nil, dept.ID)
				return nil
			},
		}
		svc := department.NewService(db, repo)

		expectTx(t, sqlMock, true)

		resp, err := svc.Create(ctx, department.CreateDepartmentRequest{
			Name:        "Asistencial",
			Description: "Personal asistencial de la sede principal",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Asistencial", resp.Name)
		assert.NotEmpty(t, resp.ID)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("nombre duplicado -> conflicto", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			CreateFn: func(ctx context.Context, dept *department.Department) error {
				return gorm.ErrDuplicatedKey
			},
		}
		svc := department.NewService(db, repo)

		expectTx(t, sqlMock, false)

		_, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "Asistencial"})

		assert.Error(t, err)
	})

	t.Run("head_id inválido", func(t *testing.T) {
		badID := "no-es-un-uuid"
		svc := department.NewService(db, &fakeDepartmentRepo{})

		_, err := svc.Create(ctx, department.CreateDepartmentRequest{
			Name:   "Administrativa",
			HeadID: &badID,
		})

		assert.ErrorIs(t, err, departmenterrors.ErrInvalidHeadID)
	})
}

func TestDepartmentService_GetByID(t *testing.T) {
	db, _, _ := sqlmock.New()
	defer db.Close()

	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			FindByIDFn: func(ctx context.Context, id string) (*department.Department, error) {
				assert.Equal(t, targetID.String(), id)
				return &department.Department{ID: targetID, Name: "Asistencial"}, nil
			},
		}
		svc := department.NewService(db, repo)

		resp, err := svc.GetByID(ctx, targetID.String())

		assert.NoError(t, err)
		assert.Equal(t, targetID.String(), resp.ID)
		assert.Equal(t, "Asistencial", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			FindByIDFn: func(ctx context.Context, id string) (*department.Department, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := department.NewService(db, repo)

		_, err := svc.GetByID(ctx, targetID.String())

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	db, sqlMock, _ := sqlmock.New()
	defer db.Close()

	ctx := context.Background()
	targetID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			FindByIDFn: func(ctx context.Context, id string) (*department.Department, error) {
				return &department.Department{ID: targetID, Name: "Vieja"}, nil
			},
			UpdateFn: func(ctx context.Context, dept *department.Department) error {
				assert.Equal(t, "Urgencias", dept.Name)
				return nil
			},
		}
		svc := department.NewService(db, repo)

		expectTx(t, sqlMock, true)

		resp, err := svc.Update(ctx, targetID.String(), department.UpdateDepartmentRequest{Name: "Urgencias"})

		assert.NoError(t, err)
		assert.Equal(t, "Urgencias", resp.Name)
	})

	t.Run("update failed -> rollback", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			FindByIDFn: func(ctx context.Context, id string) (*department.Department, error) {
				return &department.Department{ID: targetID}, nil
			},
			UpdateFn: func(ctx context.Context, dept *department.Department) error {
				return errors.New("db connection error")
			},
		}
		svc := department.NewService(db, repo)

		expectTx(t, sqlMock, false)

		_, err := svc.Update(ctx, targetID.String(), department.UpdateDepartmentRequest{Name: "Urgencias"})

		assert.Error(t, err)
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	db, sqlMock, _ := sqlmock.New()
	defer db.Close()

	ctx := context.Background()
	targetID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			FindByIDFn: func(ctx context.Context, id string) (*department.Department, error) {
				return &department.Department{ID: uuid.MustParse(targetID)}, nil
			},
			DeleteFn: func(ctx context.Context, id string) error {
				assert.Equal(t, targetID, id)
				return nil
			},
		}
		svc := department.NewService(db, repo)

		expectTx(t, sqlMock, true)

		err := svc.Delete(ctx, targetID)

		assert.NoError(t, err)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeDepartmentRepo{
			FindByIDFn: func(ctx context.Context, id string) (*department.Department, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := department.NewService(db, repo)

		expectTx(t, sqlMock, false)

		err := svc.Delete(ctx, targetID)

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}
