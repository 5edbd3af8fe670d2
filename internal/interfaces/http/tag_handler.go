package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/application/usecase"
)

// TagHandler maneja etiquetas y sus asociaciones con contenidos (protegido).
type TagHandler struct {
	uc *usecase.TagUseCase
}

// NewTagHandler construye el handler.
func NewTagHandler(uc *usecase.TagUseCase) *TagHandler {
	return &TagHandler{uc: uc}
}

// Create godoc
// @Summary      Crear etiqueta
// @Tags         tags
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTagRequest  true  "Datos de la etiqueta"
// @Success      201   {object}  dto.TagResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tags [post]
func (h *TagHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTagRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(c.Context(), GetCaller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener etiqueta por ID
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la etiqueta"
// @Success      200  {object}  dto.TagResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tags/{id} [get]
func (h *TagHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar etiquetas visibles
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Límite"  default(10)
// @Param        search  query  string  false  "Búsqueda por nombre"
// @Success      200     {object}  dto.TagListResponse
// @Router       /api/tags [get]
func (h *TagHandler) List(c *fiber.Ctx) error {
	var q dto.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.List(c.Context(), GetCaller(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Usage godoc
// @Summary      Etiquetas con un mínimo de usos
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Param        minCount  path  int  true  "Mínimo de asociaciones"
// @Success      200  {array}   dto.TagResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/tags/usage/{minCount} [get]
func (h *TagHandler) Usage(c *fiber.Ctx) error {
	min, err := c.ParamsInt("minCount")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "minCount debe ser numérico"})
	}
	out, err := h.uc.Usage(c.Context(), GetCaller(c), min)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Renombrar etiqueta
// @Tags         tags
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la etiqueta"
// @Param        body  body  dto.UpdateTagRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.TagResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tags/{id} [put]
func (h *TagHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTagRequest
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
// @Summary      Eliminar etiqueta
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la etiqueta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tags/{id} [delete]
func (h *TagHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCaller(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "etiqueta eliminada"})
}

// Attach godoc
// @Summary      Asociar etiqueta a contenido
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Param        contentId  path  string  true  "ID del contenido"
// @Param        tagId      path  string  true  "ID de la etiqueta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contents/{contentId}/tags/{tagId} [post]
func (h *TagHandler) Attach(c *fiber.Ctx) error {
	if err := h.uc.Attach(c.Context(), GetCaller(c), c.Params("contentId"), c.Params("tagId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "etiqueta asociada"})
}

// Detach godoc
// @Summary      Quitar etiqueta de contenido
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Param        contentId  path  string  true  "ID del contenido"
// @Param        tagId      path  string  true  "ID de la etiqueta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contents/{contentId}/tags/{tagId} [delete]
func (h *TagHandler) Detach(c *fiber.Ctx) error {
	if err := h.uc.Detach(c.Context(), GetCaller(c), c.Params("contentId"), c.Params("tagId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "etiqueta desasociada"})
}

// Contents godoc
// @Summary      Contenidos asociados a una etiqueta
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID de la etiqueta"
// @Param        page   query  int     false  "Página"  default(1)
// @Param        limit  query  int     false  "Límite"  default(10)
// @Success      200  {object}  dto.ContentListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tags/{id}/contents [get]
func (h *TagHandler) Contents(c *fiber.Ctx) error {
	var q dto.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.Contents(c.Context(), GetCaller(c), c.Params("id"), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
