package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/application/usecase"
)

// ContentHandler maneja las peticiones HTTP para contenidos del CMS (protegido).
type ContentHandler struct {
	uc *usecase.ContentUseCase
}

// NewContentHandler construye el handler.
func NewContentHandler(uc *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// Create godoc
// @Summary      Crear contenido
// @Tags         contents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContentRequest  true  "Datos del contenido"
// @Success      201   {object}  dto.ContentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contents [post]
func (h *ContentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
	}
	out, err := h.uc.Create(c.Context(), GetCaller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener contenido por ID
// @Tags         contents
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contenido"
// @Success      200  {object}  dto.ContentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contents/{id} [get]
func (h *ContentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contenidos visibles
// @Tags         contents
// @Security     Bearer
// @Produce      json
// @Param        page         query  int     false  "Página"  default(1)
// @Param        limit        query  int     false  "Límite"  default(10)
// @Param        search       query  string  false  "Búsqueda por título o extracto"
// @Param        status       query  string  false  "draft | published | archived"
// @Param        category_id  query  string  false  "Filtrar por categoría"
// @Success      200          {object}  dto.ContentListResponse
// @Router       /api/contents [get]
func (h *ContentHandler) List(c *fiber.Ctx) error {
	var q dto.ContentListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.List(c.Context(), GetCaller(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar contenido
// @Tags         contents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contenido"
// @Param        body  body  dto.UpdateContentRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ContentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contents/{id} [put]
func (h *ContentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetCaller(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar contenido
// @Tags         contents
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del contenido"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contents/{id} [delete]
func (h *ContentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCaller(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contenido eliminado"})
}
