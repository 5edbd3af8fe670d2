package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/application/usecase"
)

// PublicHandler expone la lectura pública del CMS, sin autenticación.
// Solo resuelve piezas publicadas; todo lo demás es 404.
type PublicHandler struct {
	uc *usecase.PublicUseCase
}

// NewPublicHandler construye el handler.
func NewPublicHandler(uc *usecase.PublicUseCase) *PublicHandler {
	return &PublicHandler{uc: uc}
}

// Content godoc
// @Summary      Contenido publicado por slug
// @Tags         public
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        slug       path  string  true  "Slug del contenido"
// @Success      200  {object}  dto.ContentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /public/{companyId}/contents/{slug} [get]
func (h *PublicHandler) Content(c *fiber.Ctx) error {
	out, err := h.uc.Content(c.Context(), c.Params("companyId"), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Contents godoc
// @Summary      Contenidos publicados de una empresa
// @Tags         public
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Límite"  default(10)
// @Param        search     query  string  false  "Búsqueda"
// @Success      200  {object}  dto.ContentListResponse
// @Router       /public/{companyId}/contents [get]
func (h *PublicHandler) Contents(c *fiber.Ctx) error {
	var q dto.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.Contents(c.Context(), c.Params("companyId"), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Blog godoc
// @Summary      Entrada de blog publicada por slug
// @Tags         public
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        slug       path  string  true  "Slug de la entrada"
// @Success      200  {object}  dto.BlogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /public/{companyId}/blogs/{slug} [get]
func (h *PublicHandler) Blog(c *fiber.Ctx) error {
	out, err := h.uc.Blog(c.Context(), c.Params("companyId"), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Blogs godoc
// @Summary      Entradas de blog publicadas de una empresa
// @Tags         public
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Límite"  default(10)
// @Param        search     query  string  false  "Búsqueda"
// @Success      200  {object}  dto.BlogListResponse
// @Router       /public/{companyId}/blogs [get]
func (h *PublicHandler) Blogs(c *fiber.Ctx) error {
	var q dto.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.Blogs(c.Context(), c.Params("companyId"), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Course godoc
// @Summary      Curso publicado por slug
// @Tags         public
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        slug       path  string  true  "Slug del curso"
// @Success      200  {object}  dto.CourseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /public/{companyId}/courses/{slug} [get]
func (h *PublicHandler) Course(c *fiber.Ctx) error {
	out, err := h.uc.Course(c.Context(), c.Params("companyId"), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Courses godoc
// @Summary      Cursos publicados de una empresa
// @Tags         public
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Límite"  default(10)
// @Param        search     query  string  false  "Búsqueda"
// @Success      200  {object}  dto.CourseListResponse
// @Router       /public/{companyId}/courses [get]
func (h *PublicHandler) Courses(c *fiber.Ctx) error {
	var q dto.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.Courses(c.Context(), c.Params("companyId"), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
