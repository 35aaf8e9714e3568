// seed_admin crea el primer administrador (credencial + perfil) cuando el directorio de
// funcionarios está vacío. Si ya hay perfiles no hace nada.
//
// Uso: go run ./cmd/seed_admin [email] [contraseña] [nombre]
// Sin argumentos usa BOOTSTRAP_ADMIN_EMAIL, BOOTSTRAP_ADMIN_PASSWORD y BOOTSTRAP_ADMIN_NAME.
// Requiere la conexión a PostgreSQL (DATABASE_URL o DB_*); no usa Redis.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/agenda-api/internal/application/usecase"
	"github.com/jhoicas/agenda-api/internal/infrastructure/identity"
	"github.com/jhoicas/agenda-api/internal/infrastructure/memory"
	"github.com/jhoicas/agenda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/agenda-api/pkg/config"
	"github.com/jhoicas/agenda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	email, password, name := cfg.Bootstrap.AdminEmail, cfg.Bootstrap.AdminPassword, cfg.Bootstrap.AdminName
	if len(os.Args) > 2 {
		email, password = os.Args[1], os.Args[2]
	}
	if len(os.Args) > 3 {
		name = os.Args[3]
	}
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "Uso: seed_admin <email> <contraseña> [nombre] (o BOOTSTRAP_ADMIN_EMAIL / BOOTSTRAP_ADMIN_PASSWORD)")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Migrar: %v\n", err)
		os.Exit(1)
	}

	// La sesión que abre la recuperación de una credencial existente se revoca enseguida
	provider := identity.NewProvider(postgres.NewCredentialRepository(pool), memory.NewSessionStore(), identity.Config{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: 1,
		Issuer:     cfg.JWT.Issuer,
	})
	log := logger.New(logger.Config{Env: "development", Level: cfg.App.LogLevel, Service: "seed_admin"})
	uc := usecase.NewEmployeeUseCase(postgres.NewEmployeeRepository(pool), provider, cfg.Employees.ProfileRetryDelay, log)

	created, err := uc.Bootstrap(ctx, name, email, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear administrador: %v\n", err)
		os.Exit(1)
	}
	if !created {
		fmt.Println("Ya existen funcionarios; no se creó ningún administrador.")
		return
	}
	fmt.Printf("Administrador creado: %s\n", email)
}
