// Package usecase implementa los casos de uso del CRM. Cada operación sobre
// un registro pasa por el mismo embudo: resolver la empresa dueña por la
// cadena de pertenencia, decidir el acceso y recién entonces tocar el
// repositorio.
package usecase

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// Access agrupa el resolver de tenencia y el builder de alcance que comparten
// todos los casos de uso.
type Access struct {
	resolver *tenant.Resolver
	scopes   *tenant.ScopeBuilder
}

// NewAccess construye el helper de acceso.
func NewAccess(resolver *tenant.Resolver, scopes *tenant.ScopeBuilder) *Access {
	return &Access{resolver: resolver, scopes: scopes}
}

// Authorize resuelve la empresa dueña de (kind, id) y decide la operación.
// Devuelve la empresa para que el caso de uso la reutilice. Un registro
// inexistente o ajeno sale como error; el mapper HTTP colapsa ambos en el
// mismo 404.
func (a *Access) Authorize(ctx context.Context, c tenant.Caller, kind tenant.Kind, id string, op tenant.Op) (string, error) {
	company, err := a.resolver.CompanyOf(ctx, kind, id)
	if err != nil {
		return "", err
	}
	if err := tenant.Decide(c, company, op); err != nil {
		return "", err
	}
	return company, nil
}

// authorizeAssignee verifica que el usuario asignado exista y pertenezca a la
// empresa dueña del registro. Un asignado ajeno es indistinguible de uno
// inexistente para el cliente.
func (a *Access) authorizeAssignee(ctx context.Context, c tenant.Caller, userID, recordCompany string) error {
	company, err := a.Authorize(ctx, c, tenant.KindUser, userID, tenant.OpRead)
	if err != nil {
		return err
	}
	if company != recordCompany {
		return domain.ErrNotFound
	}
	return nil
}

// Scope construye el filtro de visibilidad de un listado.
func (a *Access) Scope(ctx context.Context, c tenant.Caller, kind tenant.Kind, opts tenant.ScopeOptions) (*tenant.Scope, error) {
	return a.scopes.Scope(ctx, c, kind, opts)
}
