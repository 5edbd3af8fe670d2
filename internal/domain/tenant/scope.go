package tenant

import (
	"context"
	"fmt"

	"github.com/tu-usuario/crm-suite/internal/domain"
)

// IDStore es el puerto de recolección de IDs por nivel: dado un tipo y los IDs
// de sus padres, devuelve los IDs de los hijos. Lo implementa la capa postgres
// con un SELECT id WHERE fk = ANY(...).
type IDStore interface {
	ChildIDs(ctx context.Context, kind Kind, parentIDs []string) ([]string, error)
}

// ScopeOptions parámetros opcionales del filtro de listado.
type ScopeOptions struct {
	// ParentID restringe explícitamente al padre directo (p.ej. ?client_id=X
	// en /api/leads). Para callers ligados a empresa, el padre se valida
	// contra su empresa antes de usarse: un padre ajeno se rechaza igual que
	// un padre inexistente.
	ParentID string
	// OwnerColumn + Personal intersectan el filtro con "columna = caller.ID"
	// (p.ej. leads propios, tareas asignadas a mí).
	OwnerColumn string
	Personal    bool
}

// Scope filtro base de visibilidad para un listado.
type Scope struct {
	All    bool     // sin restricción de empresa (super_admin)
	Column string   // columna FK a restringir cuando !All
	IDs    []string // valores permitidos; vacío = ninguna fila visible

	OwnerColumn string // si no vacío, intersectar con OwnerColumn = OwnerID
	OwnerID     string
}

// ScopeBuilder construye filtros de visibilidad descendiendo la cadena de
// tenencia por conjuntos de IDs: empresa → clientes → leads → interacciones,
// un nivel por consulta, hasta llegar al padre directo del tipo objetivo.
type ScopeBuilder struct {
	resolver *Resolver
	ids      IDStore
}

// NewScopeBuilder construye el builder.
func NewScopeBuilder(resolver *Resolver, ids IDStore) *ScopeBuilder {
	return &ScopeBuilder{resolver: resolver, ids: ids}
}

// Scope devuelve el filtro de visibilidad de kind para el caller.
//
// super_admin sin ParentID: sin restricción. Caller ligado a empresa: el
// filtro restringe la columna del padre directo al conjunto de IDs de ese
// nivel que pertenecen a su empresa. Un ParentID explícito que no resuelve a
// la empresa del caller se rechaza con CrossTenantError (nunca se confía en
// un chequeo posterior).
func (b *ScopeBuilder) Scope(ctx context.Context, c Caller, kind Kind, opts ScopeOptions) (*Scope, error) {
	parentKind, parentCol, ok := ParentOf(kind)
	if !ok {
		return nil, fmt.Errorf("tenant: tipo sin cadena de pertenencia: %s", kind)
	}

	s := &Scope{}
	if opts.Personal && opts.OwnerColumn != "" {
		s.OwnerColumn = opts.OwnerColumn
		s.OwnerID = c.ID
	}

	if c.Role != RoleSuperAdmin && c.CompanyID == "" {
		return nil, domain.ErrMissingTenant
	}

	if opts.ParentID != "" {
		if c.Role != RoleSuperAdmin {
			company, err := b.resolver.CompanyOf(ctx, parentKind, opts.ParentID)
			if err != nil {
				return nil, err
			}
			if company != c.CompanyID {
				return nil, &domain.CrossTenantError{
					Op:            string(OpRead),
					CallerCompany: c.CompanyID,
					TargetCompany: company,
				}
			}
		}
		s.Column = parentCol
		s.IDs = []string{opts.ParentID}
		return s, nil
	}

	if c.Role == RoleSuperAdmin {
		s.All = true
		return s, nil
	}

	// Descenso por niveles: IDs de cada tipo intermedio entre la empresa y el
	// padre directo del tipo objetivo.
	ids := []string{c.CompanyID}
	for _, level := range descent(parentKind) {
		childIDs, err := b.ids.ChildIDs(ctx, level, ids)
		if err != nil {
			return nil, fmt.Errorf("tenant: recolectar ids de %s: %w", level, err)
		}
		ids = childIDs
		if len(ids) == 0 {
			break // empresa sin registros en este nivel: el listado queda vacío
		}
	}

	s.Column = parentCol
	s.IDs = ids
	return s, nil
}

// descent devuelve los tipos entre la empresa (exclusive) y kind (inclusive),
// de arriba hacia abajo. Para KindCompany devuelve vacío.
func descent(kind Kind) []Kind {
	var up []Kind
	for k := kind; k != KindCompany; {
		up = append(up, k)
		ref, ok := parentRefs[k]
		if !ok {
			break
		}
		k = ref.kind
	}
	// invertir: de la raíz hacia abajo
	for i, j := 0, len(up)-1; i < j; i, j = i+1, j-1 {
		up[i], up[j] = up[j], up[i]
	}
	return up
}
