package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/repository"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
	"github.com/tu-usuario/crm-suite/pkg/slug"
)

// CourseUseCase casos de uso de cursos y sus categorías.
type CourseUseCase struct {
	repo   repository.CourseRepository
	access *Access
}

// NewCourseUseCase construye el caso de uso.
func NewCourseUseCase(repo repository.CourseRepository, access *Access) *CourseUseCase {
	return &CourseUseCase{repo: repo, access: access}
}

// Create crea un curso en la empresa del caller.
func (uc *CourseUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	companyID, err := resolveCompany(c, in.CompanyID)
	if err != nil {
		return nil, err
	}
	s := slug.Ensure(slug.Make(in.Slug), in.Title)
	if s == "" {
		return nil, domain.ErrInvalidInput
	}
	taken, err := uc.repo.SlugExists(ctx, companyID, s, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicate
	}
	if in.CategoryID != "" {
		if _, err := uc.access.Authorize(ctx, c, tenant.KindCourseCategory, in.CategoryID, tenant.OpRead); err != nil {
			return nil, err
		}
	}
	now := time.Now().UTC()
	course := &entity.Course{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		CategoryID:  in.CategoryID,
		Title:       in.Title,
		Slug:        s,
		Description: in.Description,
		CoverURL:    in.CoverURL,
		Price:       in.Price,
		Published:   in.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, course); err != nil {
		return nil, err
	}
	return dto.ToCourseResponse(course), nil
}

// GetByID obtiene un curso autorizando por empresa.
func (uc *CourseUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.CourseResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindCourse, id, tenant.OpRead); err != nil {
		return nil, err
	}
	course, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToCourseResponse(course), nil
}

// List lista los cursos visibles.
func (uc *CourseUseCase) List(ctx context.Context, c tenant.Caller, q dto.PageQuery) (*dto.CourseListResponse, error) {
	scope, err := uc.access.Scope(ctx, c, tenant.KindCourse, tenant.ScopeOptions{})
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, scope, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CourseResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToCourseResponse(&page.Data[i]))
	}
	return &dto.CourseListResponse{Courses: items, PageMeta: dto.Meta(page)}, nil
}

// Update actualiza un curso.
func (uc *CourseUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindCourse, id, tenant.OpWrite); err != nil {
		return nil, err
	}
	course, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		course.Title = *in.Title
	}
	if in.Slug != nil {
		s := slug.Ensure(slug.Make(*in.Slug), course.Title)
		if s != course.Slug {
			taken, err := uc.repo.SlugExists(ctx, course.CompanyID, s, course.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, domain.ErrDuplicate
			}
			course.Slug = s
		}
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			if _, err := uc.access.Authorize(ctx, c, tenant.KindCourseCategory, *in.CategoryID, tenant.OpRead); err != nil {
				return nil, err
			}
		}
		course.CategoryID = *in.CategoryID
	}
	if in.Description != nil {
		course.Description = *in.Description
	}
	if in.CoverURL != nil {
		course.CoverURL = *in.CoverURL
	}
	if in.Price != nil {
		course.Price = *in.Price
	}
	if in.Published != nil {
		course.Published = *in.Published
	}
	course.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, course); err != nil {
		return nil, err
	}
	return dto.ToCourseResponse(course), nil
}

// Delete elimina un curso.
func (uc *CourseUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindCourse, id, tenant.OpDelete); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// ── Categorías de curso ───────────────────────────────────────────────────────

// CreateCategory crea una categoría de curso en la empresa del caller.
func (uc *CourseUseCase) CreateCategory(ctx context.Context, c tenant.Caller, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	companyID, err := resolveCompany(c, in.CompanyID)
	if err != nil {
		return nil, err
	}
	s := slug.Ensure(slug.Make(in.Slug), in.Name)
	if s == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now().UTC()
	category := &entity.CourseCategory{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Name:        in.Name,
		Slug:        s,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return dto.ToCourseCategoryResponse(category), nil
}

// GetCategoryByID obtiene una categoría de curso.
func (uc *CourseUseCase) GetCategoryByID(ctx context.Context, c tenant.Caller, id string) (*dto.CategoryResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindCourseCategory, id, tenant.OpRead); err != nil {
		return nil, err
	}
	category, err := uc.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToCourseCategoryResponse(category), nil
}

// ListCategories lista las categorías de curso visibles.
func (uc *CourseUseCase) ListCategories(ctx context.Context, c tenant.Caller, q dto.PageQuery) (*dto.CategoryListResponse, error) {
	scope, err := uc.access.Scope(ctx, c, tenant.KindCourseCategory, tenant.ScopeOptions{})
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.ListCategories(ctx, scope, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToCourseCategoryResponse(&page.Data[i]))
	}
	return &dto.CategoryListResponse{Categories: items, PageMeta: dto.Meta(page)}, nil
}

// UpdateCategory actualiza una categoría de curso.
func (uc *CourseUseCase) UpdateCategory(ctx context.Context, c tenant.Caller, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindCourseCategory, id, tenant.OpWrite); err != nil {
		return nil, err
	}
	category, err := uc.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Slug != nil {
		s := slug.Ensure(slug.Make(*in.Slug), category.Name)
		if s == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Slug = s
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now().UTC()
	if err := uc.repo.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}
	return dto.ToCourseCategoryResponse(category), nil
}

// DeleteCategory elimina una categoría de curso.
func (uc *CourseUseCase) DeleteCategory(ctx context.Context, c tenant.Caller, id string) error {
	if _, err := uc.access.Authorize(ctx, c, tenant.KindCourseCategory, id, tenant.OpDelete); err != nil {
		return err
	}
	return uc.repo.DeleteCategory(ctx, id)
}
