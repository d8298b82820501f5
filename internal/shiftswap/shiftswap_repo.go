package shiftswap

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *ShiftSwapRequest) error
	FindByID(ctx context.Context, id string) (*ShiftSwapRequest, error)
	FindByRequester(ctx context.Context, requesterID string) ([]ShiftSwapRequest, error)
	FindPendingSignOff(ctx context.Context, replacementID string) ([]ShiftSwapRequest, error)
	FindInReviewByDepartment(ctx context.Context, department string) ([]ShiftSwapRequest, error)
	FindInReview(ctx context.Context) ([]ShiftSwapRequest, error)
	FindByDepartment(ctx context.Context, department string) ([]ShiftSwapRequest, error)
	FindAll(ctx context.Context) ([]ShiftSwapRequest, error)
	Update(ctx context.Context, s *ShiftSwapRequest) error
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

func (r *repository) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Replacement")
}

func (r *repository) Create(ctx context.Context, s *ShiftSwapRequest) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*ShiftSwapRequest, error) {
	var s ShiftSwapRequest
	err := r.base(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindByRequester(ctx context.Context, requesterID string) ([]ShiftSwapRequest, error) {
	var reqs []ShiftSwapRequest
	err := r.base(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindPendingSignOff(ctx context.Context, replacementID string) ([]ShiftSwapRequest, error) {
	var reqs []ShiftSwapRequest
	err := r.base(ctx).
		Where("replacement_id = ?", replacementID).
		Where("status = ?", "PENDING").
		Order("created_at ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindInReviewByDepartment(ctx context.Context, department string) ([]ShiftSwapRequest, error) {
	var reqs []ShiftSwapRequest
	err := r.base(ctx).
		Where("department = ?", department).
		Where("status = ?", "IN_REVIEW").
		Order("created_at ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindInReview(ctx context.Context) ([]ShiftSwapRequest, error) {
	var reqs []ShiftSwapRequest
	err := r.base(ctx).
		Where("status = ?", "IN_REVIEW").
		Order("created_at ASC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindByDepartment(ctx context.Context, department string) ([]ShiftSwapRequest, error) {
	var reqs []ShiftSwapRequest
	err := r.base(ctx).
		Where("department = ?", department).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) FindAll(ctx context.Context) ([]ShiftSwapRequest, error) {
	var reqs []ShiftSwapRequest
	err := r.base(ctx).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *repository) Update(ctx context.Context, s *ShiftSwapRequest) error {
	return r.db.WithContext(ctx).Save(s).Error
}
