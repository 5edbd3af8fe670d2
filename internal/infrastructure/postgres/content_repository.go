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

var _ repository.ContentRepository = (*ContentRepo)(nil)

const contentColumns = `id, company_id, COALESCE(category_id::text, ''), author_id, title, slug, body, excerpt, cover_url, status, COALESCE(published_at, 'epoch'::timestamptz), created_at, updated_at`

// ContentRepo implementación del puerto ContentRepository sobre PostgreSQL.
type ContentRepo struct {
	q Querier
}

// NewContentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContentRepository(q Querier) *ContentRepo {
	return &ContentRepo{q: q}
}

func scanContent(row pgx.Row) (*entity.Content, error) {
	var c entity.Content
	err := row.Scan(&c.ID, &c.CompanyID, &c.CategoryID, &c.AuthorID, &c.Title, &c.Slug,
		&c.Body, &c.Excerpt, &c.CoverURL, &c.Status, &c.PublishedAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo contenido. El slug es único por empresa.
func (r *ContentRepo) Create(ctx context.Context, c *entity.Content) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO contents (id, company_id, category_id, author_id, title, slug, body, excerpt, cover_url, status, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		c.ID, c.CompanyID, textOrNil(c.CategoryID), c.AuthorID, c.Title, c.Slug,
		c.Body, c.Excerpt, c.CoverURL, c.Status, timeOrNil(c.PublishedAt), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert content: %w", err)
	}
	return nil
}

// GetByID obtiene un contenido por ID. Devuelve (nil, nil) si no existe.
func (r *ContentRepo) GetByID(ctx context.Context, id string) (*entity.Content, error) {
	c, err := scanContent(r.q.QueryRow(ctx,
		`SELECT `+contentColumns+` FROM contents WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get content: %w", err)
	}
	return c, nil
}

// GetBySlug resuelve un contenido por slug dentro de una empresa.
func (r *ContentRepo) GetBySlug(ctx context.Context, companyID, slug string) (*entity.Content, error) {
	c, err := scanContent(r.q.QueryRow(ctx,
		`SELECT `+contentColumns+` FROM contents WHERE company_id = $1 AND slug = $2`, companyID, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get content by slug: %w", err)
	}
	return c, nil
}

// SlugExists indica si el slug ya está tomado en la empresa, excluyendo
// opcionalmente un ID (para updates).
func (r *ContentRepo) SlugExists(ctx context.Context, companyID, slug, excludeID string) (bool, error) {
	return slugExists(ctx, r.q, "contents", companyID, slug, excludeID)
}

// List lista contenidos con alcance de visibilidad, filtros, paginación y búsqueda.
func (r *ContentRepo) List(ctx context.Context, scope *tenant.Scope, spec query.Spec, filter repository.ContentFilter) (*query.Page[entity.Content], error) {
	lq := listQuery{
		columns:    contentColumns,
		from:       "contents",
		searchCols: []string{"title", "excerpt", "body"},
		sort:       "created_at DESC",
	}
	lq.scope(scope)
	if filter.Status != "" {
		lq.where("status = $%d", filter.Status)
	}
	if filter.CategoryID != "" {
		lq.where("category_id = $%d", filter.CategoryID)
	}
	return queryPage(ctx, r.q, lq, spec, func(rows pgx.Rows) (entity.Content, error) {
		c, err := scanContent(rows)
		if err != nil {
			return entity.Content{}, err
		}
		return *c, nil
	})
}

// Update actualiza un contenido existente.
func (r *ContentRepo) Update(ctx context.Context, c *entity.Content) error {
	_, err := r.q.Exec(ctx, `
		UPDATE contents SET category_id = $2, title = $3, slug = $4, body = $5, excerpt = $6,
			cover_url = $7, status = $8, published_at = $9, updated_at = $10
		WHERE id = $1`,
		c.ID, textOrNil(c.CategoryID), c.Title, c.Slug, c.Body, c.Excerpt,
		c.CoverURL, c.Status, timeOrNil(c.PublishedAt), c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update content: %w", err)
	}
	return nil
}

// Delete elimina un contenido por ID.
func (r *ContentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM contents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	return nil
}
