package notification

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	FindByEmployee(ctx context.Context, employeeID string, onlyUnread bool) ([]Notification, error)
	MarkRead(ctx context.Context, employeeID, id string) error
	MarkAllRead(ctx context.Context, employeeID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string, onlyUnread bool) ([]Notification, error) {
	var notifications []Notification
	q := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Limit(100)
	if onlyUnread {
		q = q.Where("read = false")
	}
	err := q.Find(&notifications).Error
	return notifications, err
}

func (r *repository) MarkRead(ctx context.Context, employeeID, id string) error {
	return r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("employee_id = ?", employeeID).
		Where("id = ?", id).
		Update("read", true).Error
}

func (r *repository) MarkAllRead(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).
		Model(&Notification{}).
		Where("employee_id = ?", employeeID).
		Where("read = false").
		Update("read", true).Error
}
