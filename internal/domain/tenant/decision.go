package tenant

import "github.com/tu-usuario/crm-suite/internal/domain"

// Role rol de un usuario autenticado.
type Role string

// Roles válidos. Solo super_admin opera sin empresa asignada.
const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleSales      Role = "sales"
	RoleSupport    Role = "support"
	RoleUser       Role = "user"
)

// ValidRole indica si s es uno de los roles conocidos.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleSales, RoleSupport, RoleUser:
		return true
	}
	return false
}

// Caller identidad autenticada de la request. Inmutable durante la request;
// la construye el middleware de auth a partir de los claims del JWT.
type Caller struct {
	ID        string
	Role      Role
	CompanyID string // vacío para super_admin
}

// IsAdmin indica si el caller puede administrar registros de otros usuarios
// (asignaciones, roles elevados).
func (c Caller) IsAdmin() bool {
	return c.Role == RoleSuperAdmin || c.Role == RoleAdmin
}

// Op tipo de operación sobre un registro.
type Op string

// Operaciones evaluadas por la decisión de acceso.
const (
	OpRead   Op = "read"
	OpWrite  Op = "write"
	OpDelete Op = "delete"
)

// Decide es la decisión base de acceso: función pura de
// (caller, empresa dueña del registro, operación).
//
// Reglas en orden de prioridad:
//  1. super_admin: siempre permitido.
//  2. rol ligado a empresa sin empresa asignada: ErrMissingTenant.
//  3. misma empresa: permitido.
//  4. resto: CrossTenantError (con ambos IDs, solo para auditoría).
func Decide(c Caller, targetCompany string, op Op) error {
	if c.Role == RoleSuperAdmin {
		return nil
	}
	if c.CompanyID == "" {
		return domain.ErrMissingTenant
	}
	if targetCompany == c.CompanyID {
		return nil
	}
	return &domain.CrossTenantError{
		Op:            string(op),
		CallerCompany: c.CompanyID,
		TargetCompany: targetCompany,
	}
}

// ── Guardas secundarias ───────────────────────────────────────────────────────
//
// Se evalúan después de que la decisión base permita la operación. Cada una
// deniega con una razón propia, distinta del rechazo por empresa, para que
// sean verificables por separado.

// CanAssignOther verifica si el caller puede asignar o reasignar un registro
// a un usuario distinto de sí mismo.
func CanAssignOther(c Caller) error {
	if c.IsAdmin() {
		return nil
	}
	return &domain.RoleGuardError{Reason: "solo un administrador puede asignar registros a otros usuarios"}
}

// CanGrantRole verifica si el caller puede crear o promover usuarios con el rol dado.
func CanGrantRole(c Caller, role Role) error {
	if role != RoleAdmin && role != RoleSuperAdmin {
		return nil
	}
	if c.IsAdmin() {
		return nil
	}
	return &domain.RoleGuardError{Reason: "no autorizado para otorgar ese rol"}
}

// CanDeleteUser verifica las reglas de borrado de usuarios:
// nadie borra su propia cuenta, y un no-administrador no borra administradores.
func CanDeleteUser(c Caller, targetID string, targetRole Role) error {
	if targetID == c.ID {
		return &domain.RoleGuardError{Reason: "no puedes borrar tu propia cuenta"}
	}
	if (targetRole == RoleAdmin || targetRole == RoleSuperAdmin) && !c.IsAdmin() {
		return &domain.RoleGuardError{Reason: "no autorizado para borrar un administrador"}
	}
	return nil
}
