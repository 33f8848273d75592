package repository

import (
	"context"

	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error)
	// Update sobrescribe el registro completo; devuelve domain.ErrNotFound si no existe.
	Update(ctx context.Context, company *entity.Company) error
}
