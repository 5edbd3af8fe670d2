package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/repository"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

var _ repository.NoteRepository = (*NoteRepo)(nil)

const noteColumns = `id, client_id, contenu, created_at, updated_at`

// NoteRepo implementación del puerto NoteRepository sobre PostgreSQL.
type NoteRepo struct {
	q Querier
}

// NewNoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewNoteRepository(q Querier) *NoteRepo {
	return &NoteRepo{q: q}
}

func scanNote(row pgx.Row) (*entity.Note, error) {
	var n entity.Note
	err := row.Scan(&n.ID, &n.ClientID, &n.Contenu, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create persiste una nueva nota.
func (r *NoteRepo) Create(ctx context.Context, n *entity.Note) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO notes (id, client_id, contenu, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		n.ID, n.ClientID, n.Contenu, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// GetByID obtiene una nota por ID. Devuelve (nil, nil) si no existe.
func (r *NoteRepo) GetByID(ctx context.Context, id string) (*entity.Note, error) {
	n, err := scanNote(r.q.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

// List lista notas con alcance de visibilidad, paginación y búsqueda.
func (r *NoteRepo) List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Note], error) {
	lq := listQuery{
		columns:    noteColumns,
		from:       "notes",
		searchCols: []string{"contenu"},
		sort:       "created_at DESC",
	}
	lq.scope(scope)
	return queryPage(ctx, r.q, lq, spec, func(rows pgx.Rows) (entity.Note, error) {
		n, err := scanNote(rows)
		if err != nil {
			return entity.Note{}, err
		}
		return *n, nil
	})
}

// Update actualiza una nota existente.
func (r *NoteRepo) Update(ctx context.Context, n *entity.Note) error {
	_, err := r.q.Exec(ctx,
		`UPDATE notes SET contenu = $2, updated_at = $3 WHERE id = $1`,
		n.ID, n.Contenu, n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

// Delete elimina una nota por ID.
func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
