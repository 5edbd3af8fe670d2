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
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, siren, siret, code_postal, code_naf, revenue, ebit, latitude, longitude, pdm, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(&c.ID, &c.Name, &c.SIREN, &c.SIRET, &c.CodePostal, &c.CodeNAF,
		&c.Revenue, &c.EBIT, &c.Latitude, &c.Longitude, &c.PDM, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, siren, siret, code_postal, code_naf, revenue, ebit, latitude, longitude, pdm, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.SIREN, c.SIRET, c.CodePostal, c.CodeNAF,
		c.Revenue, c.EBIT, c.Latitude, c.Longitude, c.PDM, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// List lista empresas con paginación y búsqueda. Solo super_admin llega aquí,
// por eso no recibe alcance.
func (r *CompanyRepo) List(ctx context.Context, spec query.Spec) (*query.Page[entity.Company], error) {
	lq := listQuery{
		columns:    companyColumns,
		from:       "companies",
		searchCols: []string{"name", "siren", "code_postal"},
		sort:       "created_at DESC",
	}
	return queryPage(ctx, r.q, lq, spec, func(rows pgx.Rows) (entity.Company, error) {
		c, err := scanCompany(rows)
		if err != nil {
			return entity.Company{}, err
		}
		return *c, nil
	})
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, siren = $3, siret = $4, code_postal = $5, code_naf = $6,
			revenue = $7, ebit = $8, latitude = $9, longitude = $10, pdm = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.SIREN, c.SIRET, c.CodePostal, c.CodeNAF,
		c.Revenue, c.EBIT, c.Latitude, c.Longitude, c.PDM, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// Delete elimina una empresa por ID.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
