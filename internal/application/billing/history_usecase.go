package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/bill-automation-api/internal/application/dto"
	"github.com/jhoicas/bill-automation-api/internal/domain"
	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
	"github.com/jhoicas/bill-automation-api/internal/domain/repository"
)

// maxExportRows tope de filas del registro exportado a Excel.
const maxExportRows = 10000

// HistoryUseCase consultas sobre el registro de auditoría de facturas.
type HistoryUseCase struct {
	billRepo    repository.BillRecordRepository
	companyRepo repository.CompanyRepository
	exporter    BillRegisterExporter
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(
	billRepo repository.BillRecordRepository,
	companyRepo repository.CompanyRepository,
	exporter BillRegisterExporter,
) *HistoryUseCase {
	return &HistoryUseCase{billRepo: billRepo, companyRepo: companyRepo, exporter: exporter}
}

// LastPerCompany última factura emitida por cada empresa.
func (uc *HistoryUseCase) LastPerCompany(ctx context.Context) ([]dto.LastBillResponse, error) {
	list, err := uc.billRepo.LastPerCompany(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	out := make([]dto.LastBillResponse, 0, len(list))
	for _, lb := range list {
		out = append(out, dto.LastBillResponse{
			BillNumber:  lb.BillNumber,
			CompanyID:   lb.CompanyID,
			CompanyName: lb.CompanyName,
			GeneratedBy: lb.GeneratedBy,
			CreatedAt:   lb.CreatedAt,
		})
	}
	return out, nil
}

// List historial paginado de la empresa.
func (uc *HistoryUseCase) List(ctx context.Context, companyID string, page dto.PageRequest) (*dto.BillListResponse, error) {
	page.DefaultPage()
	list, err := uc.billRepo.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	total, err := uc.billRepo.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	items := make([]dto.BillRecordResponse, 0, len(list))
	for _, b := range list {
		items = append(items, toBillRecordResponse(b))
	}
	return &dto.BillListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Get registro de auditoría por ID. domain.ErrNotFound si no existe.
func (uc *HistoryUseCase) Get(ctx context.Context, id string) (*dto.BillRecordResponse, error) {
	b, err := uc.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	out := toBillRecordResponse(b)
	return &out, nil
}

// Export genera el registro de facturas de la empresa en XLSX.
func (uc *HistoryUseCase) Export(ctx context.Context, companyID string) ([]byte, string, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	if company == nil {
		return nil, "", domain.ErrCompanyNotFound
	}
	list, err := uc.billRepo.ListByCompany(ctx, companyID, maxExportRows, 0)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	data, err := uc.exporter.ExportBills(company, list)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", domain.ErrRender, err)
	}
	return data, fmt.Sprintf("bills-%s.xlsx", companyID), nil
}

func toBillRecordResponse(b *entity.BillRecord) dto.BillRecordResponse {
	return dto.BillRecordResponse{
		ID:           b.ID,
		BillNumber:   b.BillNumber,
		CompanyID:    b.CompanyID,
		CustomerID:   b.CustomerID,
		CustomerName: b.CustomerName,
		TotalAmount:  b.TotalAmount,
		GSTType:      string(b.TaxMode),
		GeneratedBy:  b.GeneratedBy,
		CreatedAt:    b.CreatedAt,
	}
}
