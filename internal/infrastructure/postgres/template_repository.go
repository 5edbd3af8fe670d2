package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/repository"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

const templateColumns = `id, company_id, name, description, structure, created_at, updated_at`

// TemplateRepo implementación del puerto TemplateRepository sobre PostgreSQL.
type TemplateRepo struct {
	q Querier
}

// NewTemplateRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTemplateRepository(q Querier) *TemplateRepo {
	return &TemplateRepo{q: q}
}

func scanTemplate(row pgx.Row) (*entity.Template, error) {
	var t entity.Template
	err := row.Scan(&t.ID, &t.CompanyID, &t.Name, &t.Description, &t.Structure, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una nueva plantilla.
func (r *TemplateRepo) Create(ctx context.Context, t *entity.Template) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO templates (id, company_id, name, description, structure, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.CompanyID, t.Name, t.Description, t.Structure, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla por ID. Devuelve (nil, nil) si no existe.
func (r *TemplateRepo) GetByID(ctx context.Context, id string) (*entity.Template, error) {
	t, err := scanTemplate(r.q.QueryRow(ctx,
		`SELECT `+templateColumns+` FROM templates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return t, nil
}

// List lista plantillas con alcance de visibilidad, paginación y búsqueda.
func (r *TemplateRepo) List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Template], error) {
	lq := listQuery{
		columns:    templateColumns,
		from:       "templates",
		searchCols: []string{"name", "description"},
		sort:       "name ASC",
	}
	lq.scope(scope)
	return queryPage(ctx, r.q, lq, spec, func(rows pgx.Rows) (entity.Template, error) {
		t, err := scanTemplate(rows)
		if err != nil {
			return entity.Template{}, err
		}
		return *t, nil
	})
}

// Update actualiza una plantilla existente.
func (r *TemplateRepo) Update(ctx context.Context, t *entity.Template) error {
	_, err := r.q.Exec(ctx, `
		UPDATE templates SET name = $2, description = $3, structure = $4, updated_at = $5
		WHERE id = $1`,
		t.ID, t.Name, t.Description, t.Structure, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	return nil
}

// Delete elimina una plantilla por ID.
func (r *TemplateRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}
