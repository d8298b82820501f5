package shiftswap

import (
	"time"

	"go-talento/internal/employee"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftSwapRequest es una solicitud de cambio de turno. El reemplazante
// nominado debe dar su visto bueno antes de que el jefe del área del
// solicitante pueda decidir; ambas decisiones quedan registradas por
// separado.
type ShiftSwapRequest struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RequestNumber string    `gorm:"type:varchar(20);uniqueIndex:uq_shiftswap_number"`
	RequesterID   uuid.UUID `gorm:"type:uuid;not null;index:idx_shiftswaps_requester"`
	ReplacementID uuid.UUID `gorm:"type:uuid;not null;index:idx_shiftswaps_replacement"`
	Department    string    `gorm:"type:varchar(100);index:idx_shiftswaps_department"`

	ShiftDate    time.Time `gorm:"type:date;not null"`
	ShiftType    string    `gorm:"type:varchar(30);not null"`
	ProposedDate time.Time `gorm:"type:date;not null"`
	Reason       string    `gorm:"type:text"`

	Status string `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_shiftswaps_status"`

	// Visto bueno del reemplazante.
	SignOffComment *string `gorm:"type:text"`
	SignOffAt      *time.Time

	// Decisión del jefe de área.
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	RejectionReason *string `gorm:"type:text"`

	Requester   *employee.Employee `gorm:"foreignKey:RequesterID"`
	Replacement *employee.Employee `gorm:"foreignKey:ReplacementID"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
