package authz

// Nombres de rol tal como existen en la tabla roles.
const (
	RoleEmployee   = "EMPLOYEE"
	RoleAreaHead   = "JEFE AREA"
	RoleManager    = "GERENTE"
	RoleAdmin      = "ADMINISTRADOR"
	RoleSuperAdmin = "SUPER ADMIN"
)

// DepartmentAll is the sentinel for administrators who supervise every
// department.
const DepartmentAll = "ALL"

// ManagerDepartment es regla organizacional: el GERENTE siempre supervisa
// el servicio ASISTENCIAL, sin importar su propia área.
const ManagerDepartment = "ASISTENCIAL"

// Subject is the acting user's explicit context. It is assembled from the
// token claims by the HTTP layer; nothing here reads ambient state.
type Subject struct {
	EmployeeID string
	Roles      []string
	Department string
}

// Resolution is the derived capability set of a Subject.
type Resolution struct {
	IsEmployee bool
	IsAreaHead bool
	// CanSupervise is true when the subject holds any supervising role.
	CanSupervise bool
	// ManagedDepartment is the department whose requests the subject may
	// review, DepartmentAll for administrators, or the subject's own
	// department (without supervision semantics) for plain employees.
	// Empty when it cannot be resolved.
	ManagedDepartment string
}

// Resolve derives the capability set from a subject's role list and
// department. Pure and deterministic.
func Resolve(sub Subject) Resolution {
	res := Resolution{
		IsEmployee: len(sub.Roles) == 1 && sub.Roles[0] == RoleEmployee,
	}

	for _, role := range sub.Roles {
		switch role {
		case RoleAreaHead:
			res.IsAreaHead = true
			res.CanSupervise = true
		case RoleManager, RoleAdmin, RoleSuperAdmin:
			res.CanSupervise = true
		}
	}

	switch {
	case hasRole(sub.Roles, RoleAdmin), hasRole(sub.Roles, RoleSuperAdmin):
		res.ManagedDepartment = DepartmentAll
	case hasRole(sub.Roles, RoleManager):
		res.ManagedDepartment = ManagerDepartment
	case res.IsAreaHead:
		res.ManagedDepartment = sub.Department
	default:
		res.ManagedDepartment = sub.Department
	}

	return res
}

// CanViewDepartment reports whether a supervising subject may see requests
// filed from dept. Plain employees always get false; they only see their
// own requests.
func CanViewDepartment(res Resolution, dept string) bool {
	if !res.CanSupervise {
		return false
	}
	if res.ManagedDepartment == DepartmentAll {
		return true
	}
	return res.ManagedDepartment != "" && res.ManagedDepartment == dept
}

// CanDecideFor reports whether the subject may run an area-head decision
// over a request filed from dept.
func CanDecideFor(res Resolution, dept string) bool {
	return CanViewDepartment(res, dept)
}

func hasRole(roles []string, want string) bool {
	for _, r := range roles {
		if r == want {
			return true
		}
	}
	return false
}
