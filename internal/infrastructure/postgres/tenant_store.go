package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

var _ tenant.RefStore = (*TenantStore)(nil)
var _ tenant.IDStore = (*TenantStore)(nil)

// Tabla física por tipo de entidad.
var tableByKind = map[tenant.Kind]string{
	tenant.KindCompany:        "companies",
	tenant.KindUser:           "users",
	tenant.KindClient:         "clients",
	tenant.KindContact:        "contacts",
	tenant.KindLead:           "leads",
	tenant.KindNote:           "notes",
	tenant.KindInteraction:    "interactions",
	tenant.KindTask:           "tasks",
	tenant.KindContent:        "contents",
	tenant.KindCategory:       "categories",
	tenant.KindMedia:          "media",
	tenant.KindTag:            "tags",
	tenant.KindTemplate:       "templates",
	tenant.KindCourse:         "courses",
	tenant.KindCourseCategory: "course_categories",
	tenant.KindBlog:           "blogs",
	tenant.KindBlogCategory:   "blog_categories",
}

// TenantStore implementación de los puertos del resolver de tenencia y del
// builder de alcance: lecturas de una sola columna guiadas por la tabla de
// saltos del dominio.
type TenantStore struct {
	q Querier
}

// NewTenantStore construye el adaptador. Pasar pool o tx (Querier).
func NewTenantStore(q Querier) *TenantStore {
	return &TenantStore{q: q}
}

// ParentID lee el FK padre del registro (kind, id). NULL se devuelve como
// cadena vacía (FK anulable); registro inexistente, como domain.ErrNotFound.
func (s *TenantStore) ParentID(ctx context.Context, kind tenant.Kind, id string) (string, error) {
	table, ok := tableByKind[kind]
	if !ok {
		return "", fmt.Errorf("tenant store: tipo desconocido: %s", kind)
	}
	_, column, ok := tenant.ParentOf(kind)
	if !ok {
		return "", fmt.Errorf("tenant store: tipo sin padre: %s", kind)
	}
	var parentID string
	err := s.q.QueryRow(ctx,
		fmt.Sprintf("SELECT COALESCE(%s::text, '') FROM %s WHERE id = $1", column, table),
		id,
	).Scan(&parentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("parent id de %s: %w", kind, err)
	}
	return parentID, nil
}

// ChildIDs devuelve los IDs de kind cuyos padres están en parentIDs.
func (s *TenantStore) ChildIDs(ctx context.Context, kind tenant.Kind, parentIDs []string) ([]string, error) {
	table, ok := tableByKind[kind]
	if !ok {
		return nil, fmt.Errorf("tenant store: tipo desconocido: %s", kind)
	}
	_, column, ok := tenant.ParentOf(kind)
	if !ok {
		return nil, fmt.Errorf("tenant store: tipo sin padre: %s", kind)
	}
	rows, err := s.q.Query(ctx,
		fmt.Sprintf("SELECT id FROM %s WHERE %s = ANY($1)", table, column),
		parentIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("child ids de %s: %w", kind, err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
