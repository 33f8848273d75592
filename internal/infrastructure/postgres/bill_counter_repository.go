package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
	"github.com/jhoicas/bill-automation-api/internal/domain/repository"
)

var _ repository.BillCounterRepository = (*BillCounterRepo)(nil)

// BillCounterRepo contador de numeración por empresa (usable con pool o tx).
type BillCounterRepo struct {
	q Querier
}

// NewBillCounterRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillCounterRepository(q Querier) *BillCounterRepo {
	return &BillCounterRepo{q: q}
}

// Get lee el contador sin bloquear. Una empresa sin fila se reporta con contador 0.
func (r *BillCounterRepo) Get(ctx context.Context, companyID string) (*entity.BillCounter, error) {
	c := entity.BillCounter{CompanyID: companyID}
	err := r.q.QueryRow(ctx,
		`SELECT last_bill_number, updated_at FROM bill_counter WHERE company_id = $1`, companyID,
	).Scan(&c.LastBillNumber, &c.UpdatedAt)
	if err != nil && !isNoRows(err) {
		return nil, fmt.Errorf("get bill counter: %w", err)
	}
	return &c, nil
}

// GetForUpdate bloquea la fila del contador (SELECT FOR UPDATE) hasta el fin de la transacción.
// Si la empresa aún no tiene fila se crea en 0 antes de bloquearla, así dos transacciones
// concurrentes siempre compiten por la misma fila.
func (r *BillCounterRepo) GetForUpdate(ctx context.Context, companyID string) (*entity.BillCounter, error) {
	if _, err := r.q.Exec(ctx,
		`INSERT INTO bill_counter (company_id, last_bill_number) VALUES ($1, 0) ON CONFLICT (company_id) DO NOTHING`,
		companyID,
	); err != nil {
		return nil, fmt.Errorf("ensure bill counter: %w", err)
	}
	c := entity.BillCounter{CompanyID: companyID}
	err := r.q.QueryRow(ctx,
		`SELECT last_bill_number, updated_at FROM bill_counter WHERE company_id = $1 FOR UPDATE`, companyID,
	).Scan(&c.LastBillNumber, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("get bill counter for update: %w", err)
	}
	return &c, nil
}

// Update guarda el nuevo valor del contador.
func (r *BillCounterRepo) Update(ctx context.Context, c *entity.BillCounter) error {
	_, err := r.q.Exec(ctx,
		`UPDATE bill_counter SET last_bill_number = $2, updated_at = $3 WHERE company_id = $1`,
		c.CompanyID, c.LastBillNumber, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update bill counter: %w", err)
	}
	return nil
}
