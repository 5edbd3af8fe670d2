package entity

import "time"

// Media archivo subido al bucket S3 bajo la clave media/<empresa>/<nombre>.
// Width y Height solo se rellenan para imágenes decodificables.
type Media struct {
	ID          string
	CompanyID   string
	UploaderID  string
	FileName    string
	Key         string
	URL         string
	MimeType    string
	MediaType   string // image, video, audio, application, other
	SizeBytes   int64
	Width       int
	Height      int
	Title       string
	Description string
	AltText     string
	Caption     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
