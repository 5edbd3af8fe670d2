package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/repository"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

var _ repository.InteractionRepository = (*InteractionRepo)(nil)

const interactionColumns = `id, lead_id, type_interaction, date_interaction, description, created_at, updated_at`

// InteractionRepo implementación del puerto InteractionRepository sobre
// PostgreSQL. Necesita DB porque las asociaciones con contactos se escriben
// junto con la interacción en una transacción.
type InteractionRepo struct {
	db DB
}

// NewInteractionRepository construye el adaptador.
func NewInteractionRepository(db DB) *InteractionRepo {
	return &InteractionRepo{db: db}
}

func scanInteraction(row pgx.Row) (*entity.Interaction, error) {
	var i entity.Interaction
	err := row.Scan(&i.ID, &i.LeadID, &i.TypeInteraction, &i.DateInteraction, &i.Description, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

// Create persiste la interacción y sus contactos asociados en una transacción.
func (r *InteractionRepo) Create(ctx context.Context, i *entity.Interaction, contactIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO interactions (id, lead_id, type_interaction, date_interaction, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		i.ID, i.LeadID, i.TypeInteraction, i.DateInteraction, i.Description, i.CreatedAt, i.UpdatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert interaction: %w", err)
	}
	if err := insertInteractionContacts(ctx, tx, i.ID, contactIDs); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func insertInteractionContacts(ctx context.Context, q Querier, interactionID string, contactIDs []string) error {
	now := time.Now().UTC()
	for _, contactID := range contactIDs {
		if _, err := q.Exec(ctx, `
			INSERT INTO interaction_contacts (interaction_id, contact_id, created_at)
			VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
			interactionID, contactID, now,
		); err != nil {
			return fmt.Errorf("insert interaction contact: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una interacción por ID. Devuelve (nil, nil) si no existe.
func (r *InteractionRepo) GetByID(ctx context.Context, id string) (*entity.Interaction, error) {
	i, err := scanInteraction(r.db.QueryRow(ctx,
		`SELECT `+interactionColumns+` FROM interactions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get interaction: %w", err)
	}
	return i, nil
}

// List lista interacciones con alcance de visibilidad, paginación y búsqueda.
func (r *InteractionRepo) List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Interaction], error) {
	lq := listQuery{
		columns:    interactionColumns,
		from:       "interactions",
		searchCols: []string{"type_interaction", "description"},
		sort:       "date_interaction DESC",
	}
	lq.scope(scope)
	return queryPage(ctx, r.db, lq, spec, func(rows pgx.Rows) (entity.Interaction, error) {
		i, err := scanInteraction(rows)
		if err != nil {
			return entity.Interaction{}, err
		}
		return *i, nil
	})
}

// Update actualiza una interacción existente.
func (r *InteractionRepo) Update(ctx context.Context, i *entity.Interaction) error {
	_, err := r.db.Exec(ctx, `
		UPDATE interactions SET type_interaction = $2, date_interaction = $3, description = $4, updated_at = $5
		WHERE id = $1`,
		i.ID, i.TypeInteraction, i.DateInteraction, i.Description, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update interaction: %w", err)
	}
	return nil
}

// Delete elimina una interacción por ID.
func (r *InteractionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM interactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete interaction: %w", err)
	}
	return nil
}

// ReplaceContacts reemplaza el conjunto de contactos asociados en una transacción.
func (r *InteractionRepo) ReplaceContacts(ctx context.Context, interactionID string, contactIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM interaction_contacts WHERE interaction_id = $1`, interactionID,
	); err != nil {
		return fmt.Errorf("delete interaction contacts: %w", err)
	}
	if err := insertInteractionContacts(ctx, tx, interactionID, contactIDs); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ContactsOf devuelve los contactos asociados a una interacción.
func (r *InteractionRepo) ContactsOf(ctx context.Context, interactionID string) ([]entity.Contact, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.client_id, c.name, c.prenom, c.email, c.telephone, c.fonction, c.created_at, c.updated_at
		FROM contacts c
		JOIN interaction_contacts ic ON ic.contact_id = c.id
		WHERE ic.interaction_id = $1
		ORDER BY c.name`, interactionID)
	if err != nil {
		return nil, fmt.Errorf("contacts of interaction: %w", err)
	}
	defer rows.Close()
	var contacts []entity.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}
