package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User representa un operador del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, user
	CreatedAt    time.Time
}

// IsAdmin indica si el usuario puede administrar otros usuarios.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
