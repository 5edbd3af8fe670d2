package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/repository"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

var _ repository.TagRepository = (*TagRepo)(nil)

const tagColumns = `id, company_id, name, slug, usage_count, created_at, updated_at`

// TagRepo implementación del puerto TagRepository sobre PostgreSQL.
// Necesita DB porque la fila de asociación y el contador de uso se escriben
// en una transacción.
type TagRepo struct {
	db DB
}

// NewTagRepository construye el adaptador.
func NewTagRepository(db DB) *TagRepo {
	return &TagRepo{db: db}
}

func scanTag(row pgx.Row) (*entity.Tag, error) {
	var t entity.Tag
	err := row.Scan(&t.ID, &t.CompanyID, &t.Name, &t.Slug, &t.UsageCount, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste una nueva etiqueta con contador en cero.
func (r *TagRepo) Create(ctx context.Context, t *entity.Tag) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO tags (id, company_id, name, slug, usage_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, $5, $6)`,
		t.ID, t.CompanyID, t.Name, t.Slug, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// GetByID obtiene una etiqueta por ID. Devuelve (nil, nil) si no existe.
func (r *TagRepo) GetByID(ctx context.Context, id string) (*entity.Tag, error) {
	t, err := scanTag(r.db.QueryRow(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return t, nil
}

// GetBySlug obtiene una etiqueta por slug dentro de una empresa.
func (r *TagRepo) GetBySlug(ctx context.Context, companyID, slug string) (*entity.Tag, error) {
	t, err := scanTag(r.db.QueryRow(ctx,
		`SELECT `+tagColumns+` FROM tags WHERE company_id = $1 AND slug = $2`, companyID, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tag by slug: %w", err)
	}
	return t, nil
}

// List lista etiquetas con alcance de visibilidad, paginación y búsqueda.
func (r *TagRepo) List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Tag], error) {
	lq := listQuery{
		columns:    tagColumns,
		from:       "tags",
		searchCols: []string{"name"},
		sort:       "usage_count DESC, name ASC",
	}
	lq.scope(scope)
	return queryPage(ctx, r.db, lq, spec, func(rows pgx.Rows) (entity.Tag, error) {
		t, err := scanTag(rows)
		if err != nil {
			return entity.Tag{}, err
		}
		return *t, nil
	})
}

// ByMinUsage devuelve las etiquetas con al menos min asociaciones dentro del
// alcance, ordenadas por uso descendente.
func (r *TagRepo) ByMinUsage(ctx context.Context, scope *tenant.Scope, min int) ([]entity.Tag, error) {
	lq := listQuery{}
	lq.scope(scope)
	lq.where("usage_count >= $%d", min)
	rows, err := r.db.Query(ctx,
		`SELECT `+tagColumns+` FROM tags`+lq.whereSQL()+` ORDER BY usage_count DESC, name ASC`,
		lq.args...)
	if err != nil {
		return nil, fmt.Errorf("tags by usage: %w", err)
	}
	defer rows.Close()
	var tags []entity.Tag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, *t)
	}
	return tags, rows.Err()
}

// Update actualiza nombre y slug de una etiqueta (el contador solo se toca
// vía Attach/Detach).
func (r *TagRepo) Update(ctx context.Context, t *entity.Tag) error {
	_, err := r.db.Exec(ctx, `
		UPDATE tags SET name = $2, slug = $3, updated_at = $4 WHERE id = $1`,
		t.ID, t.Name, t.Slug, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update tag: %w", err)
	}
	return nil
}

// Delete elimina una etiqueta por ID junto con sus asociaciones.
func (r *TagRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM content_tags WHERE tag_id = $1`, id); err != nil {
		return fmt.Errorf("delete content tags: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Attach asocia la etiqueta al contenido e incrementa usage_count en la misma
// transacción. Si la asociación ya existía, no toca el contador.
func (r *TagRepo) Attach(ctx context.Context, contentID, tagID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx, `
		INSERT INTO content_tags (content_id, tag_id, created_at)
		VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		contentID, tagID, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert content tag: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		if _, err := tx.Exec(ctx,
			`UPDATE tags SET usage_count = usage_count + 1, updated_at = now() WHERE id = $1`, tagID,
		); err != nil {
			return fmt.Errorf("increment usage count: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Detach elimina la asociación y decrementa usage_count en la misma
// transacción. Si no existía, no toca el contador.
func (r *TagRepo) Detach(ctx context.Context, contentID, tagID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cmd, err := tx.Exec(ctx,
		`DELETE FROM content_tags WHERE content_id = $1 AND tag_id = $2`, contentID, tagID,
	)
	if err != nil {
		return fmt.Errorf("delete content tag: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		if _, err := tx.Exec(ctx,
			`UPDATE tags SET usage_count = GREATEST(usage_count - 1, 0), updated_at = now() WHERE id = $1`, tagID,
		); err != nil {
			return fmt.Errorf("decrement usage count: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// TagsOf devuelve las etiquetas asociadas a un contenido.
func (r *TagRepo) TagsOf(ctx context.Context, contentID string) ([]entity.Tag, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.company_id, t.name, t.slug, t.usage_count, t.created_at, t.updated_at
		FROM tags t
		JOIN content_tags ct ON ct.tag_id = t.id
		WHERE ct.content_id = $1
		ORDER BY t.name`, contentID)
	if err != nil {
		return nil, fmt.Errorf("tags of content: %w", err)
	}
	defer rows.Close()
	var tags []entity.Tag
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, *t)
	}
	return tags, rows.Err()
}

// ContentsWith lista paginado los contenidos asociados a una etiqueta.
func (r *TagRepo) ContentsWith(ctx context.Context, tagID string, spec query.Spec) (*query.Page[entity.Content], error) {
	lq := listQuery{
		columns: `c.id, c.company_id, COALESCE(c.category_id::text, ''), c.author_id, c.title, c.slug, c.body, c.excerpt, c.cover_url, c.status, COALESCE(c.published_at, 'epoch'::timestamptz), c.created_at, c.updated_at`,
		from: `contents c
			JOIN content_tags ct ON ct.content_id = c.id`,
		searchCols: []string{"c.title", "c.excerpt"},
		sort:       "c.created_at DESC",
	}
	lq.where("ct.tag_id = $%d", tagID)
	return queryPage(ctx, r.db, lq, spec, func(rows pgx.Rows) (entity.Content, error) {
		c, err := scanContent(rows)
		if err != nil {
			return entity.Content{}, err
		}
		return *c, nil
	})
}
