package dto

import "time"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest alta de operador (solo administradores).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse token JWT y datos del operador.
type LoginResponse struct {
	Token             string       `json:"token"`
	User              UserResponse `json:"user"`
	SelectedCompanyID string       `json:"selectedCompanyId"`
}

// AuthStatusResponse estado de la sesión asociada al token.
type AuthStatusResponse struct {
	Authenticated     bool   `json:"authenticated"`
	UserID            string `json:"userId,omitempty"`
	Username          string `json:"username,omitempty"`
	Role              string `json:"role,omitempty"`
	SelectedCompanyID string `json:"selectedCompanyId,omitempty"`
}
