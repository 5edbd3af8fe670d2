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

var _ repository.MediaRepository = (*MediaRepo)(nil)

const mediaColumns = `id, company_id, uploader_id, file_name, key, url, mime_type, media_type, size_bytes, width, height, title, description, alt_text, caption, created_at, updated_at`

// MediaRepo implementación del puerto MediaRepository sobre PostgreSQL.
// Guarda solo los metadatos; los bytes viven en el bucket.
type MediaRepo struct {
	q Querier
}

// NewMediaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMediaRepository(q Querier) *MediaRepo {
	return &MediaRepo{q: q}
}

func scanMedia(row pgx.Row) (*entity.Media, error) {
	var m entity.Media
	err := row.Scan(&m.ID, &m.CompanyID, &m.UploaderID, &m.FileName, &m.Key, &m.URL, &m.MimeType, &m.MediaType,
		&m.SizeBytes, &m.Width, &m.Height, &m.Title, &m.Description, &m.AltText, &m.Caption, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste los metadatos de un archivo subido.
func (r *MediaRepo) Create(ctx context.Context, m *entity.Media) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO media (id, company_id, uploader_id, file_name, key, url, mime_type, media_type,
			size_bytes, width, height, title, description, alt_text, caption, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		m.ID, m.CompanyID, m.UploaderID, m.FileName, m.Key, m.URL, m.MimeType, m.MediaType,
		m.SizeBytes, m.Width, m.Height, m.Title, m.Description, m.AltText, m.Caption, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert media: %w", err)
	}
	return nil
}

// GetByID obtiene metadatos por ID. Devuelve (nil, nil) si no existe.
func (r *MediaRepo) GetByID(ctx context.Context, id string) (*entity.Media, error) {
	m, err := scanMedia(r.q.QueryRow(ctx,
		`SELECT `+mediaColumns+` FROM media WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get media: %w", err)
	}
	return m, nil
}

// List lista archivos con alcance de visibilidad, paginación, búsqueda y
// filtro opcional por tipo de medio.
func (r *MediaRepo) List(ctx context.Context, scope *tenant.Scope, spec query.Spec, mediaType string) (*query.Page[entity.Media], error) {
	lq := listQuery{
		columns:    mediaColumns,
		from:       "media",
		searchCols: []string{"file_name", "title", "description", "alt_text", "caption"},
		sort:       "created_at DESC",
	}
	lq.scope(scope)
	if mediaType != "" {
		lq.where("media_type = $%d", mediaType)
	}
	return queryPage(ctx, r.q, lq, spec, func(rows pgx.Rows) (entity.Media, error) {
		m, err := scanMedia(rows)
		if err != nil {
			return entity.Media{}, err
		}
		return *m, nil
	})
}

// Update actualiza los metadatos editables de un archivo.
func (r *MediaRepo) Update(ctx context.Context, m *entity.Media) error {
	_, err := r.q.Exec(ctx, `
		UPDATE media SET title = $2, description = $3, alt_text = $4, caption = $5, updated_at = $6
		WHERE id = $1`,
		m.ID, m.Title, m.Description, m.AltText, m.Caption, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update media: %w", err)
	}
	return nil
}

// Delete elimina los metadatos por ID.
func (r *MediaRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete media: %w", err)
	}
	return nil
}
