package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/repository"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// UserUseCase casos de uso de administración de usuarios. Las guardas de rol
// (otorgar rol, borrar usuarios) se evalúan después de la decisión de empresa.
type UserUseCase struct {
	repo   repository.UserRepository
	access *Access
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, access *Access) *UserUseCase {
	return &UserUseCase{repo: repo, access: access}
}

// Create crea un usuario en la empresa del caller (o en la indicada, si es
// super_admin). Solo un administrador puede otorgar roles elevados.
func (uc *UserUseCase) Create(ctx context.Context, c tenant.Caller, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !tenant.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if err := tenant.CanGrantRole(c, tenant.Role(in.Role)); err != nil {
		return nil, err
	}
	companyID := ""
	if in.Role != string(tenant.RoleSuperAdmin) {
		var err error
		companyID, err = resolveCompany(c, in.CompanyID)
		if err != nil {
			return nil, err
		}
	}
	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// GetByID obtiene un usuario autorizando por empresa.
func (uc *UserUseCase) GetByID(ctx context.Context, c tenant.Caller, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := tenant.Decide(c, user.CompanyID, tenant.OpRead); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// List lista los usuarios visibles para el caller, con filtro opcional por rol.
func (uc *UserUseCase) List(ctx context.Context, c tenant.Caller, q dto.UserListQuery) (*dto.UserListResponse, error) {
	if q.Role != "" && !tenant.ValidRole(q.Role) {
		return nil, domain.ErrInvalidInput
	}
	scope, err := uc.access.Scope(ctx, c, tenant.KindUser, tenant.ScopeOptions{})
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.List(ctx, scope, q.ToSpec(), q.Role)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(page.Data))
	for i := range page.Data {
		items = append(items, *dto.ToUserResponse(&page.Data[i]))
	}
	return &dto.UserListResponse{Users: items, PageMeta: dto.Meta(page)}, nil
}

// Update actualiza un usuario. Cambiar el rol exige la guarda de otorgamiento.
func (uc *UserUseCase) Update(ctx context.Context, c tenant.Caller, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if err := tenant.Decide(c, user.CompanyID, tenant.OpWrite); err != nil {
		return nil, err
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role != nil {
		if !tenant.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		if err := tenant.CanGrantRole(c, tenant.Role(*in.Role)); err != nil {
			return nil, err
		}
		user.Role = *in.Role
	}
	user.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Delete elimina un usuario: decisión de empresa más las guardas de borrado.
func (uc *UserUseCase) Delete(ctx context.Context, c tenant.Caller, id string) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := tenant.Decide(c, user.CompanyID, tenant.OpDelete); err != nil {
		return err
	}
	if err := tenant.CanDeleteUser(c, user.ID, tenant.Role(user.Role)); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
