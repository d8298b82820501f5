package severance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *SeveranceRequest) error
	FindByID(ctx context.Context, id string) (*SeveranceRequest, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]SeveranceRequest, error)
	FindByDepartment(ctx context.Context, department string) ([]SeveranceRequest, error)
	FindAll(ctx context.Context) ([]SeveranceRequest, error)
	Update(ctx context.Context, s *SeveranceRequest) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, s *SeveranceRequest) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*SeveranceRequest, error) {
	var s SeveranceRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]SeveranceRequest, error) {
	var reqs []SeveranceRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindByDepartment(ctx context.Context, department string) ([]SeveranceRequest, error) {
	var reqs []SeveranceRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("department = ?", department).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindAll(ctx context.Context) ([]SeveranceRequest, error) {
	var reqs []SeveranceRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) Update(ctx context.Context, s *SeveranceRequest) error {
	return r.db.WithContext(ctx).Save(s).Error
}
