package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/crm-suite/internal/application/dto"
	"github.com/tu-usuario/crm-suite/internal/domain"
	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/domain/query"
	"github.com/tu-usuario/crm-suite/internal/domain/tenant"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context, _ *tenant.Scope, spec query.Spec, _ string) (*query.Page[entity.User], error) {
	return query.NewPage([]entity.User{}, 0, spec), nil
}

func (r *fakeUserRepo) CountByCompany(_ context.Context, companyID string) (int, error) {
	n := 0
	for _, u := range r.users {
		if u.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

// fakeCompanyRepo repositorio de empresas en memoria.
type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *fakeCompanyRepo) Create(_ context.Context, c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) List(_ context.Context, spec query.Spec) (*query.Page[entity.Company], error) {
	return query.NewPage([]entity.Company{}, 0, spec), nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, c *entity.Company) error {
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	delete(r.companies, id)
	return nil
}

// Fixture: una empresa existente, sin usuarios todavía.
func authFixture() (*fakeUserRepo, *AuthUseCase) {
	users := newFakeUserRepo()
	companies := &fakeCompanyRepo{companies: map[string]*entity.Company{
		"empresa-a": {ID: "empresa-a", Name: "Acme"},
	}}
	uc := NewAuthUseCase(users, companies, JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "crm-suite-test"})
	return users, uc
}

func seedUser(users *fakeUserRepo, id, company, email, role string) {
	users.users[id] = &entity.User{ID: id, CompanyID: company, Email: email, Role: role}
}

func TestRegister_PrimerUsuarioPuedeSerAdmin(t *testing.T) {
	_, uc := authFixture()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:      "Fundadora",
		Email:     "fundadora@acme.test",
		Password:  "contrasena-larga",
		CompanyID: "empresa-a",
		Role:      "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Role)
	assert.Equal(t, "empresa-a", out.CompanyID)
}

func TestRegister_AdminConEmpresaPobladaDenegado(t *testing.T) {
	users, uc := authFixture()
	seedUser(users, "u-1", "empresa-a", "primero@acme.test", "user")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:      "Aspirante",
		Email:     "aspirante@acme.test",
		Password:  "contrasena-larga",
		CompanyID: "empresa-a",
		Role:      "admin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, users.users, 1, "no debe crearse nada")
}

func TestRegister_RolBaseConEmpresaPoblada(t *testing.T) {
	users, uc := authFixture()
	seedUser(users, "u-1", "empresa-a", "primero@acme.test", "admin")

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:      "Segundo",
		Email:     "segundo@acme.test",
		Password:  "contrasena-larga",
		CompanyID: "empresa-a",
	})
	require.NoError(t, err)
	assert.Equal(t, "user", out.Role, "sin rol explícito se registra como user")
}

func TestRegister_SuperAdminSiempreDenegado(t *testing.T) {
	_, uc := authFixture()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:      "Root",
		Email:     "root@acme.test",
		Password:  "contrasena-larga",
		CompanyID: "empresa-a",
		Role:      "super_admin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_RolDesconocidoDenegado(t *testing.T) {
	_, uc := authFixture()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:      "Rara",
		Email:     "rara@acme.test",
		Password:  "contrasena-larga",
		CompanyID: "empresa-a",
		Role:      "rol-inventado",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_SinEmpresa(t *testing.T) {
	_, uc := authFixture()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Huerfana",
		Email:    "huerfana@acme.test",
		Password: "contrasena-larga",
	})
	assert.ErrorIs(t, err, domain.ErrMissingTenant)
}

func TestRegister_EmpresaInexistente(t *testing.T) {
	_, uc := authFixture()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:      "Perdida",
		Email:     "perdida@acme.test",
		Password:  "contrasena-larga",
		CompanyID: "empresa-fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	users, uc := authFixture()
	seedUser(users, "u-1", "empresa-a", "ocupado@acme.test", "user")

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:      "Copiona",
		Email:     "ocupado@acme.test",
		Password:  "contrasena-larga",
		CompanyID: "empresa-a",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_PasswordNuncaEnClaro(t *testing.T) {
	users, uc := authFixture()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:      "Cuidadosa",
		Email:     "cuidadosa@acme.test",
		Password:  "contrasena-larga",
		CompanyID: "empresa-a",
	})
	require.NoError(t, err)

	stored := users.users[out.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "contrasena-larga", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("contrasena-larga")))
}

func TestLogin_DespuesDelRegistro(t *testing.T) {
	_, uc := authFixture()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:      "Viajera",
		Email:     "viajera@acme.test",
		Password:  "contrasena-larga",
		CompanyID: "empresa-a",
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "viajera@acme.test",
		Password: "contrasena-larga",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "viajera@acme.test", out.User.Email)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "viajera@acme.test",
		Password: "otra-cosa",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
