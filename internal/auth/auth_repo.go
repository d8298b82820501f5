package auth

import (
	"context"

	"go-talento/internal/authz"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	if err := r.resolveClaims(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	if err := r.resolveClaims(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// resolveClaims completa los roles y el área del empleado, que viajan en
// el token y alimentan el resolver de autorización.
func (r *repository) resolveClaims(ctx context.Context, user *User) error {
	var roles []string
	err := r.db.WithContext(ctx).
		Table("employee_roles er").
		Select("roles.name").
		Joins("JOIN roles ON roles.id = er.role_id").
		Where("er.employee_id = ?", user.EmployeeID).
		Order("roles.name").
		Scan(&roles).Error
	if err != nil {
		return err
	}
	if len(roles) == 0 {
		roles = []string{authz.RoleEmployee}
	}
	user.Roles = roles

	var department string
	err = r.db.WithContext(ctx).
		Table("employees").
		Select("COALESCE(departments.name, '')").
		Joins("LEFT JOIN departments ON departments.id = employees.department_id").
		Where("employees.id = ?", user.EmployeeID).
		Scan(&department).Error
	if err != nil {
		return err
	}
	user.Department = department

	return nil
}
