package severance

import (
	"time"

	"go-talento/internal/employee"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeveranceRequest es una solicitud de retiro de cesantías. Los montos se
// guardan en pesos enteros; el monto aprobado puede diferir del
// solicitado y ambos quedan registrados.
type SeveranceRequest struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestNumber string    `gorm:"type:varchar(20);uniqueIndex:uq_severance_number"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;not null;index:idx_severances_employee"`
	Department    string    `gorm:"type:varchar(100);index:idx_severances_department"`

	WithdrawalMethod string `gorm:"type:varchar(50);not null"`
	RequestedAmount  int64  `gorm:"not null"`
	ApprovedAmount   *int64
	Reason           string `gorm:"type:text"`

	Status string `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_severances_status"`

	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	RejectionReason *string `gorm:"type:text"`

	Employee *employee.Employee `gorm:"foreignKey:EmployeeID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
