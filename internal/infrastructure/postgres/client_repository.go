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

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, company_id, name, description, market_segment, siren, siret, code_postal, code_naf, revenue, ebit, latitude, longitude, pdm, created_at, updated_at`

// ClientRepo implementación del puerto ClientRepository sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Description, &c.MarketSegment,
		&c.SIREN, &c.SIRET, &c.CodePostal, &c.CodeNAF,
		&c.Revenue, &c.EBIT, &c.Latitude, &c.Longitude, &c.PDM, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (id, company_id, name, description, market_segment, siren, siret, code_postal, code_naf, revenue, ebit, latitude, longitude, pdm, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.CompanyID, c.Name, c.Description, c.MarketSegment,
		c.SIREN, c.SIRET, c.CodePostal, c.CodeNAF,
		c.Revenue, c.EBIT, c.Latitude, c.Longitude, c.PDM, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

// List lista clientes con alcance de visibilidad, paginación y búsqueda.
func (r *ClientRepo) List(ctx context.Context, scope *tenant.Scope, spec query.Spec) (*query.Page[entity.Client], error) {
	lq := listQuery{
		columns:    clientColumns,
		from:       "clients",
		searchCols: []string{"name", "description", "market_segment"},
		sort:       "created_at DESC",
	}
	lq.scope(scope)
	return queryPage(ctx, r.q, lq, spec, func(rows pgx.Rows) (entity.Client, error) {
		c, err := scanClient(rows)
		if err != nil {
			return entity.Client{}, err
		}
		return *c, nil
	})
}

// Update actualiza un cliente existente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, description = $3, market_segment = $4, siren = $5, siret = $6,
			code_postal = $7, code_naf = $8, revenue = $9, ebit = $10, latitude = $11, longitude = $12,
			pdm = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Description, c.MarketSegment, c.SIREN, c.SIRET,
		c.CodePostal, c.CodeNAF, c.Revenue, c.EBIT, c.Latitude, c.Longitude,
		c.PDM, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClientRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
