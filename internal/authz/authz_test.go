package authz_test

import (
	"testing"

	"go-talento/internal/authz"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("plain employee", func(t *testing.T) {
		res := authz.Resolve(authz.Subject{
			Roles:      []string{authz.RoleEmployee},
			Department: "URGENCIAS",
		})

		assert.True(t, res.IsEmployee)
		assert.False(t, res.IsAreaHead)
		assert.False(t, res.CanSupervise)
		assert.Equal(t, "URGENCIAS", res.ManagedDepartment)
	})

	t.Run("area head manages own department", func(t *testing.T) {
		res := authz.Resolve(authz.Subject{
			Roles:      []string{authz.RoleEmployee, authz.RoleAreaHead},
			Department: "FACTURACION",
		})

		assert.False(t, res.IsEmployee)
		assert.True(t, res.IsAreaHead)
		assert.True(t, res.CanSupervise)
		assert.Equal(t, "FACTURACION", res.ManagedDepartment)
	})

	t.Run("gerente always manages ASISTENCIAL", func(t *testing.T) {
		// Regla fija: no depende del área propia del gerente.
		for _, own := range []string{"", "FACTURACION", "ASISTENCIAL", "TALENTO HUMANO"} {
			res := authz.Resolve(authz.Subject{
				Roles:      []string{authz.RoleManager},
				Department: own,
			})
			assert.Equal(t, "ASISTENCIAL", res.ManagedDepartment, "own=%q", own)
			assert.True(t, res.CanSupervise)
		}
	})

	t.Run("administrators manage all departments", func(t *testing.T) {
		for _, role := range []string{authz.RoleAdmin, authz.RoleSuperAdmin} {
			res := authz.Resolve(authz.Subject{Roles: []string{role}, Department: "SISTEMAS"})
			assert.Equal(t, authz.DepartmentAll, res.ManagedDepartment)
			assert.True(t, res.CanSupervise)
			assert.False(t, res.IsAreaHead)
		}
	})

	t.Run("admin wins over gerente", func(t *testing.T) {
		res := authz.Resolve(authz.Subject{
			Roles: []string{authz.RoleManager, authz.RoleAdmin},
		})
		assert.Equal(t, authz.DepartmentAll, res.ManagedDepartment)
	})

	t.Run("deterministic on repeated calls", func(t *testing.T) {
		sub := authz.Subject{
			Roles:      []string{authz.RoleEmployee, authz.RoleAreaHead},
			Department: "URGENCIAS",
		}
		first := authz.Resolve(sub)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, authz.Resolve(sub))
		}
	})
}

func TestCanViewDepartment(t *testing.T) {
	t.Run("plain employee sees no queue", func(t *testing.T) {
		res := authz.Resolve(authz.Subject{Roles: []string{authz.RoleEmployee}, Department: "URGENCIAS"})
		assert.False(t, authz.CanViewDepartment(res, "URGENCIAS"))
	})

	t.Run("area head sees only own department", func(t *testing.T) {
		res := authz.Resolve(authz.Subject{Roles: []string{authz.RoleAreaHead}, Department: "FACTURACION"})
		assert.True(t, authz.CanViewDepartment(res, "FACTURACION"))
		assert.False(t, authz.CanViewDepartment(res, "URGENCIAS"))
	})

	t.Run("admin sees everything", func(t *testing.T) {
		res := authz.Resolve(authz.Subject{Roles: []string{authz.RoleSuperAdmin}})
		assert.True(t, authz.CanViewDepartment(res, "URGENCIAS"))
		assert.True(t, authz.CanViewDepartment(res, "CUALQUIERA"))
	})

	t.Run("unresolvable department denies", func(t *testing.T) {
		res := authz.Resolve(authz.Subject{Roles: []string{authz.RoleAreaHead}, Department: ""})
		assert.False(t, authz.CanViewDepartment(res, "URGENCIAS"))
		assert.False(t, authz.CanViewDepartment(res, ""))
	})
}
