// Package tenant implementa el núcleo de multi-tenencia: resolución de la
// cadena de pertenencia (entidad → ... → empresa), la decisión de acceso y la
// construcción del filtro de visibilidad para listados.
//
// La cadena por tipo de entidad es configuración estática, no se descubre en
// runtime: cada tipo tiene exactamente un padre y la profundidad máxima
// observada es 3 (task → interaction → lead → client → company).
package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/tu-usuario/crm-suite/internal/domain"
)

// Kind identifica un tipo de entidad con cadena de pertenencia.
type Kind string

// Tipos de entidad conocidos por el resolver.
const (
	KindCompany Kind = "company"
	KindUser    Kind = "user"

	// CRM
	KindClient      Kind = "client"
	KindContact     Kind = "contact"
	KindLead        Kind = "lead"
	KindNote        Kind = "note"
	KindInteraction Kind = "interaction"
	KindTask        Kind = "task"

	// CMS (todos con company_id directo)
	KindContent        Kind = "content"
	KindCategory       Kind = "category"
	KindMedia          Kind = "media"
	KindTag            Kind = "tag"
	KindTemplate       Kind = "template"
	KindCourse         Kind = "course"
	KindCourseCategory Kind = "course_category"
	KindBlog           Kind = "blog"
	KindBlogCategory   Kind = "blog_category"
)

// parentRef describe el único salto hacia arriba de un tipo de entidad:
// la columna FK y el tipo al que apunta.
type parentRef struct {
	kind   Kind
	column string
}

// Tabla de saltos. Es la única fuente de verdad de la cadena de tenencia;
// los controladores no la reimplementan por entidad.
var parentRefs = map[Kind]parentRef{
	KindUser:    {KindCompany, "company_id"},
	KindClient:  {KindCompany, "company_id"},
	KindContact: {KindClient, "client_id"},
	KindLead:    {KindClient, "client_id"},
	KindNote:    {KindClient, "client_id"},

	KindInteraction: {KindLead, "lead_id"},
	KindTask:        {KindInteraction, "interaction_id"},

	KindContent:        {KindCompany, "company_id"},
	KindCategory:       {KindCompany, "company_id"},
	KindMedia:          {KindCompany, "company_id"},
	KindTag:            {KindCompany, "company_id"},
	KindTemplate:       {KindCompany, "company_id"},
	KindCourse:         {KindCompany, "company_id"},
	KindCourseCategory: {KindCompany, "company_id"},
	KindBlog:           {KindCompany, "company_id"},
	KindBlogCategory:   {KindCompany, "company_id"},
}

// ParentOf devuelve el tipo padre y la columna FK de un tipo.
func ParentOf(k Kind) (Kind, string, bool) {
	ref, ok := parentRefs[k]
	return ref.kind, ref.column, ok
}

// RefStore es el puerto mínimo que necesita el resolver: leer el valor del FK
// padre de un registro. Lo implementa la capa postgres.
type RefStore interface {
	// ParentID devuelve el valor de la columna FK padre del registro (kind, id).
	// Debe devolver domain.ErrNotFound si el registro no existe.
	ParentID(ctx context.Context, kind Kind, id string) (string, error)
}

// Resolver camina la cadena de pertenencia hasta la empresa raíz.
// No cachea: cada request re-resuelve (el coste está acotado por la
// profundidad fija de la cadena).
type Resolver struct {
	store RefStore
}

// NewResolver construye el resolver sobre el puerto de lectura de referencias.
func NewResolver(store RefStore) *Resolver {
	return &Resolver{store: store}
}

// CompanyOf resuelve la empresa dueña del registro (kind, id).
//
//   - Si el propio registro no existe: domain.ErrNotFound.
//   - Si falta un ancestro de la cadena (FK roto): domain.BrokenReferenceError,
//     que para el cliente equivale a "no encontrado" pero se distingue en logs.
func (r *Resolver) CompanyOf(ctx context.Context, kind Kind, id string) (string, error) {
	cur, curID := kind, id
	first := true
	for cur != KindCompany {
		ref, ok := parentRefs[cur]
		if !ok {
			return "", fmt.Errorf("tenant: tipo sin cadena de pertenencia: %s", cur)
		}
		parentID, err := r.store.ParentID(ctx, cur, curID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				if first {
					return "", domain.ErrNotFound
				}
				return "", &domain.BrokenReferenceError{Kind: string(cur), ID: curID}
			}
			return "", fmt.Errorf("tenant: resolver %s %s: %w", cur, curID, err)
		}
		if parentID == "" {
			// FK nullable (p.ej. company_id de un super_admin): no hay empresa.
			return "", nil
		}
		cur, curID = ref.kind, parentID
		first = false
	}
	return curID, nil
}
