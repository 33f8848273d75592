package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrCompanyNotFound = fmt.Errorf("empresa no encontrada: %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("usuario no encontrado: %w", ErrNotFound)
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrPersistence     = errors.New("error de persistencia")
	ErrRender          = errors.New("error al generar el documento")
)

// ValidationError describe un campo de entrada rechazado. Es ErrInvalidInput para errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError para el campo dado.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
