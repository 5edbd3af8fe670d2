// seed puebla la base con datos mínimos de desarrollo: un super_admin,
// una empresa demo con un admin y un vendedor, y un par de cuentas cliente.
//
// Uso: go run ./cmd/seed
// Si el admin demo ya existe se asume base sembrada y no hace nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/crm-suite/internal/domain/entity"
	"github.com/tu-usuario/crm-suite/internal/infrastructure/postgres"
	"github.com/tu-usuario/crm-suite/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)

	now := time.Now().UTC()

	seeded, err := userRepo.GetByEmail(ctx, "admin@demo.local")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Comprobar seed: %v\n", err)
		os.Exit(1)
	}
	if seeded != nil {
		fmt.Println("Base ya sembrada, nada que hacer")
		return
	}

	company := &entity.Company{
		ID:         uuid.NewString(),
		Name:       "Demo SARL",
		SIREN:      "732829320",
		SIRET:      "73282932000074",
		CodePostal: "75001",
		CodeNAF:    "6201Z",
		Revenue:    decimal.NewFromInt(1_500_000),
		EBIT:       decimal.NewFromInt(180_000),
		PDM:        decimal.NewFromFloat(0.12),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := companyRepo.Create(ctx, company); err != nil {
		fmt.Fprintf(os.Stderr, "Crear empresa: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Empresa %q creada\n", company.Name)

	users := []struct {
		email, name, role, companyID, password string
	}{
		{"root@crm-suite.local", "Root", "super_admin", "", "changeme-root"},
		{"admin@demo.local", "Admin Demo", "admin", company.ID, "changeme-admin"},
		{"sales@demo.local", "Sales Demo", "sales", company.ID, "changeme-sales"},
	}
	for _, u := range users {
		found, err := userRepo.GetByEmail(ctx, u.email)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Buscar usuario %s: %v\n", u.email, err)
			os.Exit(1)
		}
		if found != nil {
			fmt.Printf("Usuario %s ya existe, omitiendo\n", u.email)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Hash de contraseña: %v\n", err)
			os.Exit(1)
		}
		if err := userRepo.Create(ctx, &entity.User{
			ID:           uuid.NewString(),
			CompanyID:    u.companyID,
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Crear usuario %s: %v\n", u.email, err)
			os.Exit(1)
		}
		fmt.Printf("Usuario %s (%s) creado\n", u.email, u.role)
	}

	clients := []entity.Client{
		{
			Name:          "Acme Industries",
			MarketSegment: "manufacturing",
			SIREN:         "552100554",
			CodePostal:    "69001",
			Revenue:       decimal.NewFromInt(820_000),
		},
		{
			Name:          "Lumière Conseil",
			MarketSegment: "services",
			SIREN:         "483168423",
			CodePostal:    "33000",
			Revenue:       decimal.NewFromInt(240_000),
		},
	}
	for i := range clients {
		c := &clients[i]
		c.ID = uuid.NewString()
		c.CompanyID = company.ID
		c.CreatedAt = now
		c.UpdatedAt = now
		if err := clientRepo.Create(ctx, c); err != nil {
			fmt.Fprintf(os.Stderr, "Crear cliente %s: %v\n", c.Name, err)
			os.Exit(1)
		}
		fmt.Printf("Cliente %s creado\n", c.Name)
	}

	fmt.Println("Seed completado")
}
