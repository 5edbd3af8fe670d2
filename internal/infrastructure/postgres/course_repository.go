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

var _ repository.CourseRepository = (*CourseRepo)(nil)

const courseColumns = `id, company_id, COALESCE(category_id::text, ''), title, slug, description, cover_url, price, published, created_at, updated_at`

const courseCategoryColumns = `id, company_id, name, slug, description, created_at, updated_at`

// CourseRepo implementación del puerto CourseRepository sobre PostgreSQL.
type CourseRepo struct {
	q Querier
}

// NewCourseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCourseRepository(q Querier) *CourseRepo {
	return &CourseRepo{q: q}
}

func scanCourse(row pgx.Row) (*entity.Course, error) {
	var c entity.Course
	err := row.Scan(&c.ID, &c.CompanyID, &c.CategoryID, &c.Title, &c.Slug,
		&c.Description, &c.CoverURL, &c.Price, &c.Published, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCourseCategory(row pgx.Row) (*entity.CourseCategory, error) {
	var c entity.CourseCategory
	err := row.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo curso.
func (r *CourseRepo) Create(ctx context.Context, c *entity.Course) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO courses (id, company_id, category_id, title, slug, description, cover_url, price, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		c.ID, c.CompanyID, textOrNil(c.CategoryID), c.Title, c.Slug,
		c.Description, c.CoverURL, c.Price, c.Published, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

// GetByID obtiene un curso por ID. Devuelve (nil, nil) si no existe.
func (r *CourseRepo) GetByID(ctx context.Context, id string) (*entity.Course, error) {
	c, err := scanCourse(r.q.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get course: %w", err)
	}
	return c, nil
}

// GetBySlug obtiene un curso por slug dentro de una empresa.
func (r *CourseRepo) GetBySlug(ctx context.Context, companyID, slug string) (*entity.Course, error) {
	c, err := scanCourse(r.q.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE company_id = $1 AND slug = $2`, companyID, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get course by slug: %w", err)
	}
	return c, nil
}

// SlugExists indica si el slug ya está tomado en la empresa.
func (r *CourseRepo) SlugExists(ctx context.Context, companyID, slug, excludeID string) (bool, error) {
	return slugExists(ctx, r.q, "courses", companyID, slug, excludeID)
}

// List lista cursos con alcance de visibilidad, paginación y búsqueda.
func (r *CourseRepo) List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Course], error) {
	lq := listQuery{
		columns:    courseColumns,
		from:       "courses",
		searchCols: []string{"title", "description"},
		sort:       "created_at DESC",
	}
	lq.scope(scope)
	return queryPage(ctx, r.q, lq, spec, func(rows pgx.Rows) (entity.Course, error) {
		c, err := scanCourse(rows)
		if err != nil {
			return entity.Course{}, err
		}
		return *c, nil
	})
}

// ListPublished lista los cursos publicados de una empresa (lectura pública).
func (r *CourseRepo) ListPublished(ctx context.Context, companyID string, spec query.Spec) (*query.Page[entity.Course], error) {
	lq := listQuery{
		columns:    courseColumns,
		from:       "courses",
		searchCols: []string{"title", "description"},
		sort:       "created_at DESC",
	}
	lq.where("company_id = $%d", companyID)
	lq.where("published = $%d", true)
	return queryPage(ctx, r.q, lq, spec, func(rows pgx.Rows) (entity.Course, error) {
		c, err := scanCourse(rows)
		if err != nil {
			return entity.Course{}, err
		}
		return *c, nil
	})
}

// Update actualiza un curso existente.
func (r *CourseRepo) Update(ctx context.Context, c *entity.Course) error {
	_, err := r.q.Exec(ctx, `
		UPDATE courses SET category_id = $2, title = $3, slug = $4, description = $5,
			cover_url = $6, price = $7, published = $8, updated_at = $9
		WHERE id = $1`,
		c.ID, textOrNil(c.CategoryID), c.Title, c.Slug, c.Description,
		c.CoverURL, c.Price, c.Published, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

// Delete elimina un curso por ID.
func (r *CourseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

// CreateCategory persiste una nueva categoría de curso.
func (r *CourseRepo) CreateCategory(ctx context.Context, c *entity.CourseCategory) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO course_categories (id, company_id, name, slug, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.CompanyID, c.Name, c.Slug, c.Description, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert course category: %w", err)
	}
	return nil
}

// GetCategoryByID obtiene una categoría de curso por ID. Devuelve (nil, nil) si no existe.
func (r *CourseRepo) GetCategoryByID(ctx context.Context, id string) (*entity.CourseCategory, error) {
	c, err := scanCourseCategory(r.q.QueryRow(ctx,
		`SELECT `+courseCategoryColumns+` FROM course_categories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get course category: %w", err)
	}
	return c, nil
}

// ListCategories lista categorías de curso con alcance, paginación y búsqueda.
func (r *CourseRepo) ListCategories(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.CourseCategory], error) {
	lq := listQuery{
		columns:    courseCategoryColumns,
		from:       "course_categories",
		searchCols: []string{"name", "description"},
		sort:       "name ASC",
	}
	lq.scope(scope)
	return queryPage(ctx, r.q, lq, spec, func(rows pgx.Rows) (entity.CourseCategory, error) {
		c, err := scanCourseCategory(rows)
		if err != nil {
			return entity.CourseCategory{}, err
		}
		return *c, nil
	})
}

// UpdateCategory actualiza una categoría de curso existente.
func (r *CourseRepo) UpdateCategory(ctx context.Context, c *entity.CourseCategory) error {
	_, err := r.q.Exec(ctx, `
		UPDATE course_categories SET name = $2, slug = $3, description = $4, updated_at = $5
		WHERE id = $1`,
		c.ID, c.Name, c.Slug, c.Description, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update course category: %w", err)
	}
	return nil
}

// DeleteCategory elimina una categoría de curso por ID.
func (r *CourseRepo) DeleteCategory(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM course_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete course category: %w", err)
	}
	return nil
}
