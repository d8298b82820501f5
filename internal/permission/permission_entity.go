package permission

import (
	"time"

	"go-talento/internal/employee"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PermissionRequest es una solicitud de permiso laboral. Department se
// desnormaliza al radicar porque el alcance de visibilidad se evalúa
// contra el área del solicitante en ese momento, no contra traslados
// posteriores.
type PermissionRequest struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestNumber string    `gorm:"type:varchar(20);uniqueIndex:uq_permission_number"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;not null;index:idx_permissions_employee"`
	Department    string    `gorm:"type:varchar(100);index:idx_permissions_department"`

	PermissionType string    `gorm:"type:varchar(40);not null"`
	StartDate      time.Time `gorm:"type:date;not null"`
	EndDate        time.Time `gorm:"type:date;not null"`
	TotalDays      int       `gorm:"type:int;not null;default:1"`
	Reason         string    `gorm:"type:text"`

	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_permissions_status"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	RejectionReason *string `gorm:"type:text"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
