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

var _ repository.ContactRepository = (*ContactRepo)(nil)

const contactColumns = `id, client_id, name, prenom, email, telephone, fonction, created_at, updated_at`

// ContactRepo implementación del puerto ContactRepository sobre PostgreSQL.
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador. Pasar pool o tx (Querier).
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

func scanContact(row pgx.Row) (*entity.Contact, error) {
	var c entity.Contact
	err := row.Scan(&c.ID, &c.ClientID, &c.Name, &c.Prenom, &c.Email, &c.Telephone, &c.Fonction, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo contacto. El email es único global.
func (r *ContactRepo) Create(ctx context.Context, c *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, client_id, name, prenom, email, telephone, fonction, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.ClientID, c.Name, c.Prenom, c.Email, c.Telephone, c.Fonction, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByID obtiene un contacto por ID. Devuelve (nil, nil) si no existe.
func (r *ContactRepo) GetByID(ctx context.Context, id string) (*entity.Contact, error) {
	c, err := scanContact(r.q.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// GetByEmail obtiene un contacto por email. Devuelve (nil, nil) si no existe.
func (r *ContactRepo) GetByEmail(ctx context.Context, email string) (*entity.Contact, error) {
	c, err := scanContact(r.q.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact by email: %w", err)
	}
	return c, nil
}

// List lista contactos con alcance de visibilidad, paginación y búsqueda.
func (r *ContactRepo) List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Contact], error) {
	lq := listQuery{
		columns:    contactColumns,
		from:       "contacts",
		searchCols: []string{"name", "prenom", "email", "fonction"},
		sort:       "created_at DESC",
	}
	lq.scope(scope)
	return queryPage(ctx, r.q, lq, spec, func(rows pgx.Rows) (entity.Contact, error) {
		c, err := scanContact(rows)
		if err != nil {
			return entity.Contact{}, err
		}
		return *c, nil
	})
}

// Update actualiza un contacto existente.
func (r *ContactRepo) Update(ctx context.Context, c *entity.Contact) error {
	query := `
		UPDATE contacts SET name = $2, prenom = $3, email = $4, telephone = $5, fonction = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Prenom, c.Email, c.Telephone, c.Fonction, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update contact: %w", err)
	}
	return nil
}

// Delete elimina un contacto por ID.
func (r *ContactRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
