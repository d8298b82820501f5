package notification

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_employee_read"`

	RequestKind   string `gorm:"type:varchar(30);not null"`
	RequestID     uuid.UUID `gorm:"type:uuid;not null"`
	RequestNumber string `gorm:"type:varchar(30)"`
	Status        string `gorm:"type:varchar(20);not null"`
	Message       string `gorm:"type:text;not null"`

	Read      bool `gorm:"not null;default:false;index:idx_notifications_employee_read"`
	CreatedAt time.Time
}
