package billing

import (
	"context"
	"time"

	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
	"github.com/jhoicas/bill-automation-api/internal/domain/repository"
)

// BillingTxRunner ejecuta fn dentro de una transacción con los repos de numeración y auditoría.
// Si fn retorna error se hace rollback y el contador queda intacto.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		counterRepo repository.BillCounterRepository,
		billRepo repository.BillRecordRepository,
	) error) error
}

// InvoiceDocument todo lo que se imprime en la factura. No contiene marcas de tiempo de generación.
type InvoiceDocument struct {
	Company       *entity.Company
	Customer      entity.CustomerSnapshot
	BillNo        string
	BillDate      string
	PlaceOfSupply string
	Remarks       string
	Items         []entity.LineItem
	Totals        entity.Totals
	TaxMode       entity.TaxMode
	AmountInWords string
	Signature     []byte // PNG; nil si la empresa no tiene firma
}

// InvoicePDFGenerator puerto del renderizador de facturas.
type InvoicePDFGenerator interface {
	GenerateBillPDF(ctx context.Context, doc *InvoiceDocument) ([]byte, error)
}

// SignatureStore almacén de firmas escaneadas, una por empresa.
// Load devuelve nil, nil si la empresa no tiene firma.
type SignatureStore interface {
	Load(ctx context.Context, companyID string) ([]byte, error)
}

// BillRegisterExporter exporta el historial de facturas a una hoja de cálculo.
type BillRegisterExporter interface {
	ExportBills(company *entity.Company, records []*entity.BillRecord) ([]byte, error)
}

// Metrics observaciones del flujo de facturación. Las implementaciones deben ser seguras para concurrencia.
type Metrics interface {
	BillGenerated(companyID string, mode entity.TaxMode, allocated bool)
	GenerationFailed(step string)
	ObserveAllocation(d time.Duration)
	ObserveRender(d time.Duration)
}

type nopMetrics struct{}

func (nopMetrics) BillGenerated(string, entity.TaxMode, bool) {}
func (nopMetrics) GenerationFailed(string)                   {}
func (nopMetrics) ObserveAllocation(time.Duration)           {}
func (nopMetrics) ObserveRender(time.Duration)               {}
