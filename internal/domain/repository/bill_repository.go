package repository

import (
	"context"

	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
)

// BillCounterRepository acceso al contador de numeración por empresa.
// GetForUpdate debe ejecutarse dentro de una transacción: bloquea la fila hasta el commit.
type BillCounterRepository interface {
	Get(ctx context.Context, companyID string) (*entity.BillCounter, error)
	GetForUpdate(ctx context.Context, companyID string) (*entity.BillCounter, error)
	Update(ctx context.Context, counter *entity.BillCounter) error
}

// BillRecordRepository registro de auditoría de facturas generadas (solo inserción).
type BillRecordRepository interface {
	Create(ctx context.Context, record *entity.BillRecord) error
	GetByID(ctx context.Context, id string) (*entity.BillRecord, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.BillRecord, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	// LastPerCompany devuelve la última factura de cada empresa, ordenadas por nombre de empresa.
	LastPerCompany(ctx context.Context) ([]*entity.LastBill, error)
}
