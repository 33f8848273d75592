// seed_users crea un operador si aún no existe.
//
// Uso: go run ./cmd/seed_users [-username admin] [-password admin123] [-role admin]
// Lee la conexión a PostgreSQL de la misma configuración que la API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
	"github.com/jhoicas/bill-automation-api/internal/infrastructure/postgres"
	"github.com/jhoicas/bill-automation-api/pkg/config"
)

func main() {
	username := flag.String("username", "admin", "nombre de usuario")
	password := flag.String("password", "admin123", "contraseña en claro")
	role := flag.String("role", entity.RoleAdmin, "rol: admin | user")
	flag.Parse()

	if *role != entity.RoleAdmin && *role != entity.RoleUser {
		fmt.Fprintf(os.Stderr, "rol inválido %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Migraciones: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hash de contraseña: %v\n", err)
		os.Exit(1)
	}

	users := postgres.NewUserRepository(pool)
	existing, err := users.GetByUsername(ctx, *username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Buscar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("Usuario %q ya existe (rol %s), no se modifica\n", existing.Username, existing.Role)
		return
	}

	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     *username,
		PasswordHash: string(hash),
		Role:         *role,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(ctx, u); err != nil {
		fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Usuario %q creado (rol %s)\n", *username, *role)
}
