package usecase

import (
	"context"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/repository"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// PublicUseCase lectura pública del CMS: solo piezas publicadas, resueltas
// por slug dentro de una empresa. Sin autenticación; lo no publicado es
// indistinguible de lo inexistente.
type PublicUseCase struct {
	contents repository.ContentRepository
	blogs    repository.BlogRepository
	courses  repository.CourseRepository
	tags     repository.TagRepository
}

// NewPublicUseCase construye el caso de uso.
func NewPublicUseCase(
	contents repository.ContentRepository,
	blogs repository.BlogRepository,
	courses repository.CourseRepository,
	tags repository.TagRepository,
) *PublicUseCase {
	return &PublicUseCase{contents: contents, blogs: blogs, courses: courses, tags: tags}
}

// Content devuelve un contenido publicado por slug.
func (uc *PublicUseCase) Content(ctx context.Context, companyID, slugValue string) (*dto.ContentResponse, error) {
	content, err := uc.contents.GetBySlug(ctx, companyID, slugValue)
	if err != nil {
		return nil, err
	}
	if content == nil || content.Status != "published" {
		return nil, domain.ErrNotFound
	}
	out := dto.ToContentResponse(content)
	tagList, err := uc.tags.TagsOf(ctx, content.ID)
	if err != nil {
		return nil, err
	}
	for i := range tagList {
		out.Tags = append(out.Tags, *dto.ToTagResponse(&tagList[i]))
	}
	return out, nil
}

// Contents lista los contenidos publicados de una empresa.
func (uc *PublicUseCase) Contents(ctx context.Context, companyID string, q dto.PageQuery) (*dto.ContentListResponse, error) {
	scope := &tenant.Scope{Column: "company_id", IDs: []string{companyID}}
	page, err := uc.contents.List(ctx, scope, q.ToSpec(), repository.ContentFilter{Status: "published"})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContentResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToContentResponse(&page.Data[i]))
	}
	return &dto.ContentListResponse{Contents: items, PageMeta: dto.Meta(page)}, nil
}

// Blog devuelve una entrada de blog publicada por slug.
func (uc *PublicUseCase) Blog(ctx context.Context, companyID, slugValue string) (*dto.BlogResponse, error) {
	blog, err := uc.blogs.GetBySlug(ctx, companyID, slugValue)
	if err != nil {
		return nil, err
	}
	if blog == nil || !blog.Published {
		return nil, domain.ErrNotFound
	}
	return dto.ToBlogResponse(blog), nil
}

// Blogs lista las entradas publicadas de una empresa.
func (uc *PublicUseCase) Blogs(ctx context.Context, companyID string, q dto.PageQuery) (*dto.BlogListResponse, error) {
	page, err := uc.blogs.ListPublished(ctx, companyID, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.BlogResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToBlogResponse(&page.Data[i]))
	}
	return &dto.BlogListResponse{Blogs: items, PageMeta: dto.Meta(page)}, nil
}

// Course devuelve un curso publicado por slug.
func (uc *PublicUseCase) Course(ctx context.Context, companyID, slugValue string) (*dto.CourseResponse, error) {
	course, err := uc.courses.GetBySlug(ctx, companyID, slugValue)
	if err != nil {
		return nil, err
	}
	if course == nil || !course.Published {
		return nil, domain.ErrNotFound
	}
	return dto.ToCourseResponse(course), nil
}

// Courses lista los cursos publicados de una empresa.
func (uc *PublicUseCase) Courses(ctx context.Context, companyID string, q dto.PageQuery) (*dto.CourseListResponse, error) {
	page, err := uc.courses.ListPublished(ctx, companyID, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CourseResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToCourseResponse(&page.Data[i]))
	}
	return &dto.CourseListResponse{Courses: items, PageMeta: dto.Meta(page)}, nil
}
