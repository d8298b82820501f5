package department

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Department es un área o servicio de la organización (URGENCIAS,
// FACTURACION, ASISTENCIAL, ...).
type Department struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string     `gorm:"size:255;uniqueIndex;not null"`
	Description string     `gorm:"type:text"`
	HeadID      *uuid.UUID `gorm:"type:uuid"` // jefe de área
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
