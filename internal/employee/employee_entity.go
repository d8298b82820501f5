package employee

import (
	"time"

	"go-talento/internal/department"

	"github.com/google/uuid"
)

type Employee struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DepartmentID     *uuid.UUID `gorm:"type:uuid;index"`
	FullName         string
	Email            string `gorm:"uniqueIndex:uq_employee_email"`
	EmployeeNumber   string `gorm:"uniqueIndex:uq_employee_number"`
	Phone            string
	HireDate         time.Time
	EmploymentStatus string

	Department *department.Department `gorm:"foreignKey:DepartmentID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
