package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
	"github.com/jhoicas/bill-automation-api/internal/domain/repository"
)

var _ repository.BillRecordRepository = (*BillRecordRepo)(nil)

const billColumns = `id, bill_number, company_id, customer_id, customer_name, total_amount, gst_type, generated_by, created_at`

// BillRecordRepo registro de auditoría de facturas (usable con pool o tx).
type BillRecordRepo struct {
	q Querier
}

// NewBillRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBillRecordRepository(q Querier) *BillRecordRepo {
	return &BillRecordRepo{q: q}
}

// Create inserta el registro de la factura generada.
func (r *BillRecordRepo) Create(ctx context.Context, b *entity.BillRecord) error {
	query := `INSERT INTO bills (` + billColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		b.ID, b.BillNumber, b.CompanyID, b.CustomerID, b.CustomerName,
		b.TotalAmount, string(b.TaxMode), b.GeneratedBy, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bill: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID. Devuelve nil, nil si no existe.
func (r *BillRecordRepo) GetByID(ctx context.Context, id string) (*entity.BillRecord, error) {
	b, err := scanBill(r.q.QueryRow(ctx, `SELECT `+billColumns+` FROM bills WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bill: %w", err)
	}
	return b, nil
}

// ListByCompany lista el historial de la empresa, más reciente primero.
func (r *BillRecordRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.BillRecord, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+billColumns+` FROM bills WHERE company_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`,
		companyID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()
	var list []*entity.BillRecord
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// CountByCompany cuenta las facturas registradas de la empresa.
func (r *BillRecordRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM bills WHERE company_id = $1`, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bills: %w", err)
	}
	return n, nil
}

// LastPerCompany devuelve la última factura emitida por cada empresa.
func (r *BillRecordRepo) LastPerCompany(ctx context.Context) ([]*entity.LastBill, error) {
	query := `
		SELECT DISTINCT ON (b.company_id)
			b.bill_number, b.company_id, COALESCE(c.name, '') AS company_name, b.generated_by, b.created_at
		FROM bills b
		LEFT JOIN companies c ON c.id = b.company_id
		ORDER BY b.company_id, b.created_at DESC`
	rows, err := r.q.Query(ctx, `SELECT * FROM (`+query+`) last ORDER BY company_name`)
	if err != nil {
		return nil, fmt.Errorf("last bills: %w", err)
	}
	defer rows.Close()
	var list []*entity.LastBill
	for rows.Next() {
		var lb entity.LastBill
		if err := rows.Scan(&lb.BillNumber, &lb.CompanyID, &lb.CompanyName, &lb.GeneratedBy, &lb.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan last bill: %w", err)
		}
		list = append(list, &lb)
	}
	return list, rows.Err()
}

func scanBill(row pgxScanner) (*entity.BillRecord, error) {
	var (
		b    entity.BillRecord
		mode string
	)
	if err := row.Scan(
		&b.ID, &b.BillNumber, &b.CompanyID, &b.CustomerID, &b.CustomerName,
		&b.TotalAmount, &mode, &b.GeneratedBy, &b.CreatedAt,
	); err != nil {
		return nil, err
	}
	b.TaxMode = entity.TaxMode(mode)
	return &b, nil
}
