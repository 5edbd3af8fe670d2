package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/application/usecase"
)

// MediaHandler maneja los archivos del CMS (protegido). Si el bucket no está
// configurado, el router no registra estas rutas y /api/media responde 503.
type MediaHandler struct {
	uc *usecase.MediaUseCase
}

// NewMediaHandler construye el handler.
func NewMediaHandler(uc *usecase.MediaUseCase) *MediaHandler {
	return &MediaHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir archivo (multipart)
// @Tags         media
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file        formData  file    true   "Archivo"
// @Param        title       formData  string  false  "Título"
// @Param        alt_text    formData  string  false  "Texto alternativo"
// @Param        caption     formData  string  false  "Pie de foto"
// @Param        company_id  formData  string  false  "Empresa destino (solo super_admin)"
// @Success      201  {object}  dto.MediaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/media [post]
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "file es requerido"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()
	body, err := io.ReadAll(f)
	if err != nil {
		return respondError(c, err)
	}
	in := dto.UploadMediaRequest{
		FileName:  fileHeader.Filename,
		MimeType:  fileHeader.Header.Get("Content-Type"),
		Body:      body,
		Title:     c.FormValue("title"),
		AltText:   c.FormValue("alt_text"),
		Caption:   c.FormValue("caption"),
		CompanyID: c.FormValue("company_id"),
	}
	out, err := h.uc.Upload(c.Context(), GetCaller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SignedURL godoc
// @Summary      URL firmada para subida directa al bucket
// @Tags         media
// @Security     Bearer
// @Produce      json
// @Param        file_name     query  string  true  "Nombre del archivo"
// @Param        content_type  query  string  true  "Content-Type del archivo"
// @Success      200  {object}  dto.SignedURLResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/media/signed-url [get]
func (h *MediaHandler) SignedURL(c *fiber.Ctx) error {
	var in dto.SignedURLRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.SignedURL(c.Context(), GetCaller(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener metadatos de un archivo
// @Tags         media
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del archivo"
// @Success      200  {object}  dto.MediaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/media/{id} [get]
func (h *MediaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetCaller(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar archivos visibles
// @Tags         media
// @Security     Bearer
// @Produce      json
// @Param        page        query  int     false  "Página"  default(1)
// @Param        limit       query  int     false  "Límite"  default(10)
// @Param        search      query  string  false  "Búsqueda por nombre o metadatos"
// @Param        media_type  query  string  false  "Filtro por tipo (image, video, ...)"
// @Success      200         {object}  dto.MediaListResponse
// @Router       /api/media [get]
func (h *MediaHandler) List(c *fiber.Ctx) error {
	var q dto.MediaListQuery
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
// @Summary      Actualizar metadatos de un archivo
// @Tags         media
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del archivo"
// @Param        body  body  dto.UpdateMediaRequest  true  "Metadatos a actualizar"
// @Success      200   {object}  dto.MediaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/media/{id} [put]
func (h *MediaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMediaRequest
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
// @Summary      Eliminar archivo (bucket + metadatos)
// @Tags         media
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del archivo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/media/{id} [delete]
func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCaller(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "archivo eliminado"})
}

// MediaDisabled responde 503 cuando el almacenamiento no está configurado.
func MediaDisabled(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
		Code:    "MEDIA_DISABLED",
		Message: "el almacenamiento de archivos no está configurado",
	})
}
