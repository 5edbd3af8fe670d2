package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrMissingTenant      = errors.New("el usuario no tiene empresa asignada")
	ErrCrossTenant        = errors.New("el recurso pertenece a otra empresa")
)

// CrossTenantError describe un acceso entre empresas distintas. Los IDs de
// empresa son solo para el log de auditoría: la respuesta HTTP nunca los expone
// (se presenta igual que un recurso inexistente).
type CrossTenantError struct {
	Op            string // read, write, delete
	CallerCompany string
	TargetCompany string
}

func (e *CrossTenantError) Error() string {
	return fmt.Sprintf("acceso %s denegado: empresa %s intenta acceder a recurso de empresa %s",
		e.Op, e.CallerCompany, e.TargetCompany)
}

// Unwrap permite errors.Is(err, ErrCrossTenant).
func (e *CrossTenantError) Unwrap() error { return ErrCrossTenant }

// RoleGuardError describe el fallo de una regla secundaria de roles
// (auto-borrado, escalada de privilegios, reasignación no permitida).
// Reason es legible y sí se expone al cliente: no filtra datos entre empresas.
type RoleGuardError struct {
	Reason string
}

func (e *RoleGuardError) Error() string { return e.Reason }

// Unwrap permite errors.Is(err, ErrForbidden).
func (e *RoleGuardError) Unwrap() error { return ErrForbidden }

// BrokenReferenceError indica que un FK de la cadena de tenencia apunta a un
// registro inexistente. Para el cliente equivale a "no encontrado"; en logs se
// distingue porque es un problema de consistencia interna.
type BrokenReferenceError struct {
	Kind string // tipo de entidad que se estaba resolviendo
	ID   string // id del registro que falta
}

func (e *BrokenReferenceError) Error() string {
	return fmt.Sprintf("referencia rota: %s %s no existe", e.Kind, e.ID)
}

// Unwrap permite errors.Is(err, ErrNotFound).
func (e *BrokenReferenceError) Unwrap() error { return ErrNotFound }
