package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/application/usecase"
)

// InteractionHandler maneja las peticiones HTTP para interacciones (protegido).
type InteractionHandler struct {
	uc *usecase.InteractionUseCase
}

// NewInteractionHandler construye el handler.
func NewInteractionHandler(uc *usecase.InteractionUseCase) *InteractionHandler {
	return &InteractionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear interacción
// @Tags         interactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInteractionRequest  true  "Datos de la interacción"
// @Success      201   {object}  dto.InteractionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/interactions [post]
func (h *InteractionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInteractionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.LeadID == "" || in.TypeInteraction == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lead_id y type_interaction son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), GetCaller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener interacción por ID
// @Tags         interactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la interacción"
// @Success      200  {object}  dto.InteractionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/interactions/{id} [get]
func (h *InteractionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar interacciones visibles
// @Tags         interactions
// @Security     Bearer
// @Produce      json
// @Param        page     query  int     false  "Página"  default(1)
// @Param        limit    query  int     false  "Límite"  default(10)
// @Param        search   query  string  false  "Búsqueda por descripción"
// @Param        lead_id  query  string  false  "Filtrar por lead"
// @Success      200      {object}  dto.InteractionListResponse
// @Router       /api/interactions [get]
func (h *InteractionHandler) List(c *fiber.Ctx) error {
	var q dto.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.List(c.Context(), GetCaller(c), q, c.Query("lead_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar interacción
// @Tags         interactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la interacción"
// @Param        body  body  dto.UpdateInteractionRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.InteractionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/interactions/{id} [put]
func (h *InteractionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInteractionRequest
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
// @Summary      Eliminar interacción
// @Tags         interactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la interacción"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/interactions/{id} [delete]
func (h *InteractionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCaller(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "interacción eliminada"})
}

// AddContact godoc
// @Summary      Asociar contacto a interacción
// @Tags         interactions
// @Security     Bearer
// @Produce      json
// @Param        id         path  string  true  "ID de la interacción"
// @Param        contactId  path  string  true  "ID del contacto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/interactions/{id}/contacts/{contactId} [post]
func (h *InteractionHandler) AddContact(c *fiber.Ctx) error {
	if err := h.uc.AddContact(c.Context(), GetCaller(c), c.Params("id"), c.Params("contactId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contacto asociado"})
}

// RemoveContact godoc
// @Summary      Quitar contacto de interacción
// @Tags         interactions
// @Security     Bearer
// @Produce      json
// @Param        id         path  string  true  "ID de la interacción"
// @Param        contactId  path  string  true  "ID del contacto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/interactions/{id}/contacts/{contactId} [delete]
func (h *InteractionHandler) RemoveContact(c *fiber.Ctx) error {
	if err := h.uc.RemoveContact(c.Context(), GetCaller(c), c.Params("id"), c.Params("contactId")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contacto desasociado"})
}
