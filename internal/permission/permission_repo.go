package permission

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *PermissionRequest) error
	FindByID(ctx context.Context, id string) (*PermissionRequest, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]PermissionRequest, error)
	FindByDepartment(ctx context.Context, department string) ([]PermissionRequest, error)
	FindAll(ctx context.Context) ([]PermissionRequest, error)
	Update(ctx context.Context, p *PermissionRequest) error
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

func (r *repository) Create(ctx context.Context, p *PermissionRequest) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*PermissionRequest, error) {
	var p PermissionRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]PermissionRequest, error) {
	var reqs []PermissionRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindByDepartment(ctx context.Context, department string) ([]PermissionRequest, error) {
	var reqs []PermissionRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("department = ?", department).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindAll(ctx context.Context) ([]PermissionRequest, error) {
	var reqs []PermissionRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) Update(ctx context.Context, p *PermissionRequest) error {
	return r.db.WithContext(ctx).Save(p).Error
}
