// seed crea los datos iniciales de una tienda nueva: el usuario owner y un
// catálogo de productos de demostración con ambos contadores en cero.
//
// Uso: go run ./cmd/seed
// Credenciales del owner: SEED_OWNER_USERNAME / SEED_OWNER_PASSWORD
// (por defecto admin / admin123, cambiar en el primer login).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/infrastructure/postgres"
	"github.com/jhoicas/PuntoVenta-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	username := envOr("SEED_OWNER_USERNAME", "admin")
	password := envOr("SEED_OWNER_PASSWORD", "admin123")

	if _, err := userRepo.GetByUsername(username); err == nil {
		fmt.Printf("el usuario %q ya existe, nada que hacer\n", username)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear contraseña: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	owner := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		FullName:     "Administrador",
		Role:         entity.RoleOwner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(owner); err != nil {
		fmt.Fprintf(os.Stderr, "crear owner: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("owner %q creado\n", username)

	demo := []struct {
		sku, name, category, unit string
		purchase, selling         string
		minAlert                  int64
	}{
		{"ARZ-001", "Arroz blanco 500g", "granos", "unidad", "1200", "1800", 10},
		{"AZU-001", "Azúcar 1kg", "granos", "unidad", "2500", "3500", 10},
		{"ACE-001", "Aceite vegetal 1L", "aceites", "unidad", "8000", "11000", 5},
		{"LEC-001", "Leche entera 1L", "lácteos", "unidad", "3200", "4200", 12},
		{"PAN-001", "Pan tajado", "panadería", "unidad", "3800", "5200", 8},
	}

	for _, d := range demo {
		p := &entity.Product{
			ID:            uuid.New().String(),
			SKU:           d.sku,
			Name:          d.name,
			Category:      d.category,
			Unit:          d.unit,
			PurchasePrice: decimal.RequireFromString(d.purchase),
			SellingPrice:  decimal.RequireFromString(d.selling),
			MinStockAlert: d.minAlert,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := productRepo.Create(p); err != nil {
			fmt.Fprintf(os.Stderr, "crear producto %s: %v\n", d.sku, err)
			os.Exit(1)
		}
		fmt.Printf("producto %s (%s) creado\n", d.sku, d.name)
	}

	fmt.Println("seed completado: el stock inicial entra por /api/stock/receive")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
