package dto

import (
	"time"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
)

// UploadMediaRequest metadatos de la subida (el archivo llega multipart).
type UploadMediaRequest struct {
	FileName  string
	MimeType  string
	Body      []byte
	Title     string
	AltText   string
	Caption   string
	CompanyID string // solo super_admin puede fijarlo
}

// UpdateMediaRequest metadatos editables de un archivo.
type UpdateMediaRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	AltText     *string `json:"alt_text"`
	Caption     *string `json:"caption"`
}

// MediaListQuery query de listado de archivos.
type MediaListQuery struct {
	PageQuery
	MediaType string `query:"media_type"`
}

// SignedURLRequest entrada para pedir una URL firmada de subida directa.
type SignedURLRequest struct {
	FileName    string `query:"file_name" validate:"required"`
	ContentType string `query:"content_type" validate:"required"`
}

// SignedURLResponse URL firmada + destino final.
type SignedURLResponse struct {
	SignedURL string `json:"signed_url"`
	FileURL   string `json:"file_url"`
	Key       string `json:"key"`
}

// MediaResponse salida de un archivo.
type MediaResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	UploaderID  string    `json:"uploader_id"`
	FileName    string    `json:"file_name"`
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	MimeType    string    `json:"mime_type"`
	MediaType   string    `json:"media_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Width       int       `json:"width,omitempty"`
	Height      int       `json:"height,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	AltText     string    `json:"alt_text,omitempty"`
	Caption     string    `json:"caption,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MediaListResponse sobre de listado de archivos.
type MediaListResponse struct {
	Media []MediaResponse `json:"media"`
	PageMeta
}

// ToMediaResponse mapea la entidad a su DTO.
func ToMediaResponse(m *entity.Media) *MediaResponse {
	if m == nil {
		return nil
	}
	return &MediaResponse{
		ID:          m.ID,
		CompanyID:   m.CompanyID,
		UploaderID:  m.UploaderID,
		FileName:    m.FileName,
		Key:         m.Key,
		URL:         m.URL,
		MimeType:    m.MimeType,
		MediaType:   m.MediaType,
		SizeBytes:   m.SizeBytes,
		Width:       m.Width,
		Height:      m.Height,
		Title:       m.Title,
		Description: m.Description,
		AltText:     m.AltText,
		Caption:     m.Caption,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
