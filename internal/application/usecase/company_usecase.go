package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/repository"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// CompanyUseCase casos de uso para empresas. Crear, listar y borrar empresas
// es exclusivo de super_admin; un admin solo ve y edita la suya.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una empresa (solo super_admin).
func (uc *CompanyUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if c.Role != tenant.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	now := time.Now().UTC()
	company := &entity.Company{
		ID:         uuid.New().String(),
		Name:       in.Name,
		SIREN:      in.SIREN,
		SIRET:      in.SIRET,
		CodePostal: in.CodePostal,
		CodeNAF:    in.CodeNAF,
		Revenue:    in.Revenue,
		EBIT:       in.EBIT,
		Latitude:   in.Latitude,
		Longitude:  in.Longitude,
		PDM:        in.PDM,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return dto.ToCompanyResponse(company), nil
}

// GetByID obtiene una empresa. Un caller ligado a empresa solo puede ver la suya.
func (uc *CompanyUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.CompanyResponse, error) {
	if err := tenant.Decide(c, id, tenant.OpRead); err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToCompanyResponse(company), nil
}

// List lista empresas (solo super_admin).
func (uc *CompanyUseCase) List(ctx context.Context, c tenant.Caller, q dto.PageQuery) (*dto.CompanyListResponse, error) {
	if c.Role != tenant.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	page, err := uc.repo.List(ctx, q.ToSpec())
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToCompanyResponse(&page.Data[i]))
	}
	return &dto.CompanyListResponse{Companies: items, PageMeta: dto.Meta(page)}, nil
}

// Update actualiza una empresa. Un admin solo puede editar la suya.
func (uc *CompanyUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := tenant.Decide(c, id, tenant.OpWrite); err != nil {
		return nil, err
	}
	if c.Role != tenant.RoleSuperAdmin && c.Role != tenant.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.SIREN != nil {
		company.SIREN = *in.SIREN
	}
	if in.SIRET != nil {
		company.SIRET = *in.SIRET
	}
	if in.CodePostal != nil {
		company.CodePostal = *in.CodePostal
	}
	if in.CodeNAF != nil {
		company.CodeNAF = *in.CodeNAF
	}
	if in.Revenue != nil {
		company.Revenue = *in.Revenue
	}
	if in.EBIT != nil {
		company.EBIT = *in.EBIT
	}
	if in.Latitude != nil {
		company.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		company.Longitude = *in.Longitude
	}
	if in.PDM != nil {
		company.PDM = *in.PDM
	}
	company.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return dto.ToCompanyResponse(company), nil
}

// Delete elimina una empresa (solo super_admin).
func (uc *CompanyUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	if c.Role != tenant.RoleSuperAdmin {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, id)
}
