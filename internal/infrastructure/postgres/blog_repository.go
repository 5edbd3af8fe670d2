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

var _ repository.BlogRepository = (*BlogRepo)(nil)

const blogColumns = `id, company_id, COALESCE(category_id::text, ''), author_id, title, slug, body, excerpt, cover_url, published, COALESCE(published_at, 'epoch'::timestamptz), created_at, updated_at`

const blogCategoryColumns = `id, company_id, name, slug, description, created_at, updated_at`

// BlogRepo implementación del puerto BlogRepository sobre PostgreSQL.
type BlogRepo struct {
	q Querier
}

// NewBlogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBlogRepository(q Querier) *BlogRepo {
	return &BlogRepo{q: q}
}

func scanBlog(row pgx.Row) (*entity.Blog, error) {
	var b entity.Blog
	err := row.Scan(&b.ID, &b.CompanyID, &b.CategoryID, &b.AuthorID, &b.Title, &b.Slug,
		&b.Body, &b.Excerpt, &b.CoverURL, &b.Published, &b.PublishedAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBlogCategory(row pgx.Row) (*entity.BlogCategory, error) {
	var c entity.BlogCategory
	err := row.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva entrada de blog.
func (r *BlogRepo) Create(ctx context.Context, b *entity.Blog) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO blogs (id, company_id, category_id, author_id, title, slug, body, excerpt, cover_url, published, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		b.ID, b.CompanyID, textOrNil(b.CategoryID), b.AuthorID, b.Title, b.Slug,
		b.Body, b.Excerpt, b.CoverURL, b.Published, timeOrNil(b.PublishedAt), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID. Devuelve (nil, nil) si no existe.
func (r *BlogRepo) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	b, err := scanBlog(r.q.QueryRow(ctx,
		`SELECT `+blogColumns+` FROM blogs WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blog: %w", err)
	}
	return b, nil
}

// GetBySlug obtiene una entrada por slug dentro de una empresa.
func (r *BlogRepo) GetBySlug(ctx context.Context, companyID, slug string) (*entity.Blog, error) {
	b, err := scanBlog(r.q.QueryRow(ctx,
		`SELECT `+blogColumns+` FROM blogs WHERE company_id = $1 AND slug = $2`, companyID, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blog by slug: %w", err)
	}
	return b, nil
}

// SlugExists indica si el slug ya está tomado en la empresa.
func (r *BlogRepo) SlugExists(ctx context.Context, companyID, slug, excludeID string) (bool, error) {
	return slugExists(ctx, r.q, "blogs", companyID, slug, excludeID)
}

// List lista entradas con alcance de visibilidad, paginación y búsqueda.
func (r *BlogRepo) List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Blog], error) {
	lq := listQuery{
		columns:    blogColumns,
		from:       "blogs",
		searchCols: []string{"title", "excerpt", "body"},
		sort:       "created_at DESC",
	}
	lq.scope(scope)
	return queryPage(ctx, r.q, lq, spec, func(rows pgx.Rows) (entity.Blog, error) {
		b, err := scanBlog(rows)
		if err != nil {
			return entity.Blog{}, err
		}
		return *b, nil
	})
}

// ListPublished lista las entradas publicadas de una empresa (lectura pública).
func (r *BlogRepo) ListPublished(ctx context.Context, companyID string, spec query.Spec) (*query.Page[entity.Blog], error) {
	lq := listQuery{
		columns:    blogColumns,
		from:       "blogs",
		searchCols: []string{"title", "excerpt", "body"},
		sort:       "published_at DESC NULLS LAST, created_at DESC",
	}
	lq.where("company_id = $%d", companyID)
	lq.where("published = $%d", true)
	return queryPage(ctx, r.q, lq, spec, func(rows pgx.Rows) (entity.Blog, error) {
		b, err := scanBlog(rows)
		if err != nil {
			return entity.Blog{}, err
		}
		return *b, nil
	})
}

// Update actualiza una entrada existente.
func (r *BlogRepo) Update(ctx context.Context, b *entity.Blog) error {
	_, err := r.q.Exec(ctx, `
		UPDATE blogs SET category_id = $2, title = $3, slug = $4, body = $5, excerpt = $6,
			cover_url = $7, published = $8, published_at = $9, updated_at = $10
		WHERE id = $1`,
		b.ID, textOrNil(b.CategoryID), b.Title, b.Slug, b.Body, b.Excerpt,
		b.CoverURL, b.Published, timeOrNil(b.PublishedAt), b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update blog: %w", err)
	}
	return nil
}

// Delete elimina una entrada por ID.
func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog: %w", err)
	}
	return nil
}

// CreateCategory persiste una nueva categoría de blog.
func (r *BlogRepo) CreateCategory(ctx context.Context, c *entity.BlogCategory) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO blog_categories (id, company_id, name, slug, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.CompanyID, c.Name, c.Slug, c.Description, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert blog category: %w", err)
	}
	return nil
}

// GetCategoryByID obtiene una categoría de blog por ID. Devuelve (nil, nil) si no existe.
func (r *BlogRepo) GetCategoryByID(ctx context.Context, id string) (*entity.BlogCategory, error) {
	c, err := scanBlogCategory(r.q.QueryRow(ctx,
		`SELECT `+blogCategoryColumns+` FROM blog_categories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get blog category: %w", err)
	}
	return c, nil
}

// ListCategories lista categorías de blog con alcance, paginación y búsqueda.
func (r *BlogRepo) ListCategories(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.BlogCategory], error) {
	lq := listQuery{
		columns:    blogCategoryColumns,
		from:       "blog_categories",
		searchCols: []string{"name", "description"},
		sort:       "name ASC",
	}
	lq.scope(scope)
	return queryPage(ctx, r.q, lq, spec, func(rows pgx.Rows) (entity.BlogCategory, error) {
		c, err := scanBlogCategory(rows)
		if err != nil {
			return entity.BlogCategory{}, err
		}
		return *c, nil
	})
}

// UpdateCategory actualiza una categoría de blog existente.
func (r *BlogRepo) UpdateCategory(ctx context.Context, c *entity.BlogCategory) error {
	_, err := r.q.Exec(ctx, `
		UPDATE blog_categories SET name = $2, slug = $3, description = $4, updated_at = $5
		WHERE id = $1`,
		c.ID, c.Name, c.Slug, c.Description, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update blog category: %w", err)
	}
	return nil
}

// DeleteCategory elimina una categoría de blog por ID.
func (r *BlogRepo) DeleteCategory(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM blog_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog category: %w", err)
	}
	return nil
}
