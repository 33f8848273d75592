package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bill-automation-api/internal/domain"
	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
	"github.com/jhoicas/bill-automation-api/internal/domain/gst"
	"github.com/jhoicas/bill-automation-api/internal/domain/repository"
	"github.com/jhoicas/bill-automation-api/pkg/logger"
)

// GeneratedBill resultado de una generación exitosa.
type GeneratedBill struct {
	PDF        []byte
	Filename   string
	BillNumber string
	RecordID   string
	Totals     entity.Totals
}

// GenerateBillUseCase orquesta la emisión de una factura de flete: numeración, auditoría y PDF.
type GenerateBillUseCase struct {
	txRunner     BillingTxRunner
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	generator    InvoicePDFGenerator
	signatures   SignatureStore
	metrics      Metrics
	log          *logger.Logger
	now          func() time.Time
}

// NewGenerateBillUseCase construye el caso de uso. metrics puede ser nil.
func NewGenerateBillUseCase(
	txRunner BillingTxRunner,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	generator InvoicePDFGenerator,
	signatures SignatureStore,
	metrics Metrics,
	log *logger.Logger,
) *GenerateBillUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &GenerateBillUseCase{
		txRunner:     txRunner,
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		generator:    generator,
		signatures:   signatures,
		metrics:      metrics,
		log:          log.Component("billing"),
		now:          time.Now,
	}
}

// Generate emite la factura para companyID a nombre del operador.
//
// La asignación del número, el registro de auditoría y el render ocurren en la misma
// transacción: si el PDF falla no queda ni número consumido ni registro huérfano.
//
// Retorna:
//   - domain.ErrInvalidInput    si falta el nombre del cliente, el modo de GST es inválido o el total excede gst.MaxAmount.
//   - domain.ErrCompanyNotFound si la empresa no existe.
//   - domain.ErrNotFound        si se referencia un cliente inexistente sin copia de datos.
//   - domain.ErrPersistence     si falla el almacenamiento.
//   - domain.ErrRender          si falla la construcción del PDF.
func (uc *GenerateBillUseCase) Generate(
	ctx context.Context,
	companyID, operator string,
	draft entity.BillDraft,
) (*GeneratedBill, error) {
	// ── 1. Validar borrador ───────────────────────────────────────────────────
	if !draft.TaxMode.Valid() {
		return nil, uc.fail("validate", domain.NewValidationError("gstType", "debe ser nogst, instate u outofstate"))
	}
	if strings.TrimSpace(draft.Customer.Name) == "" && strings.TrimSpace(draft.CustomerID) == "" {
		return nil, uc.fail("validate", domain.NewValidationError("customer.name", "requerido"))
	}

	// ── 2. Resolver empresa ───────────────────────────────────────────────────
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, uc.fail("company", fmt.Errorf("%w: obtener empresa: %w", domain.ErrPersistence, err))
	}
	if company == nil {
		return nil, uc.fail("company", domain.ErrCompanyNotFound)
	}

	// ── 3. Copia del cliente ──────────────────────────────────────────────────
	snapshot, customerID, err := uc.resolveCustomer(ctx, draft)
	if err != nil {
		return nil, uc.fail("customer", err)
	}

	// ── 4. Totales e importe en letras (puros) ────────────────────────────────
	items := gst.ApplyLineAmounts(draft.Items)
	totals := gst.CalculateTotals(items, draft.TaxMode)
	if !gst.WithinLimit(totals.GrandTotal) {
		return nil, uc.fail("validate", domain.NewValidationError("items", "el total excede el máximo permitido"))
	}
	words := gst.TotalInWords(totals.GrandTotal)

	signature, err := uc.signatures.Load(ctx, companyID)
	if err != nil {
		return nil, uc.fail("signature", fmt.Errorf("%w: leer firma: %w", domain.ErrPersistence, err))
	}

	// ── 5. Numeración + auditoría + render en una transacción ─────────────────
	now := uc.now()
	var (
		out       GeneratedBill
		allocated bool
	)
	err = uc.txRunner.RunBilling(ctx, func(counterRepo repository.BillCounterRepository, billRepo repository.BillRecordRepository) error {
		start := time.Now()
		billNo, alloc, err := AllocateInTx(ctx, counterRepo, companyID, draft.BillNo, now)
		if err != nil {
			return err
		}
		uc.metrics.ObserveAllocation(time.Since(start))
		allocated = alloc

		record := &entity.BillRecord{
			ID:           uuid.New().String(),
			BillNumber:   billNo,
			CompanyID:    companyID,
			CustomerID:   customerID,
			CustomerName: snapshot.Name,
			TotalAmount:  totals.GrandTotal,
			TaxMode:      draft.TaxMode,
			GeneratedBy:  operator,
			CreatedAt:    now,
		}
		if err := billRepo.Create(ctx, record); err != nil {
			return fmt.Errorf("%w: registrar factura: %w", domain.ErrPersistence, err)
		}

		start = time.Now()
		pdf, err := uc.generator.GenerateBillPDF(ctx, &InvoiceDocument{
			Company:       company,
			Customer:      snapshot,
			BillNo:        billNo,
			BillDate:      draft.BillDate,
			PlaceOfSupply: draft.PlaceOfSupply,
			Remarks:       draft.Remarks,
			Items:         items,
			Totals:        totals,
			TaxMode:       draft.TaxMode,
			AmountInWords: words,
			Signature:     signature,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrRender, err)
		}
		uc.metrics.ObserveRender(time.Since(start))

		out = GeneratedBill{
			PDF:        pdf,
			Filename:   BillFilename(billNo),
			BillNumber: billNo,
			RecordID:   record.ID,
			Totals:     totals,
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrRender) && !errors.Is(err, domain.ErrPersistence) {
			err = fmt.Errorf("%w: %w", domain.ErrPersistence, err)
		}
		return nil, uc.fail("transaction", err)
	}

	uc.metrics.BillGenerated(companyID, draft.TaxMode, allocated)
	uc.log.Info().
		Str("company_id", companyID).
		Str("bill_number", out.BillNumber).
		Str("record_id", out.RecordID).
		Str("grand_total", totals.GrandTotal.StringFixed(2)).
		Str("operator", operator).
		Bool("allocated", allocated).
		Msg("factura generada")
	return &out, nil
}

func (uc *GenerateBillUseCase) resolveCustomer(ctx context.Context, draft entity.BillDraft) (entity.CustomerSnapshot, *string, error) {
	snapshot := draft.Customer
	snapshot.Name = strings.TrimSpace(snapshot.Name)

	var customerID *string
	if id := strings.TrimSpace(draft.CustomerID); id != "" {
		customerID = &id
		if snapshot.Name == "" {
			c, err := uc.customerRepo.GetByID(ctx, id)
			if err != nil {
				return entity.CustomerSnapshot{}, nil, fmt.Errorf("%w: obtener cliente: %w", domain.ErrPersistence, err)
			}
			if c == nil {
				return entity.CustomerSnapshot{}, nil, domain.ErrNotFound
			}
			snapshot = c.Snapshot()
		}
	}
	if snapshot.Name == "" {
		return entity.CustomerSnapshot{}, nil, domain.NewValidationError("customer.name", "requerido")
	}
	return snapshot, customerID, nil
}

func (uc *GenerateBillUseCase) fail(step string, err error) error {
	uc.metrics.GenerationFailed(step)
	if !errors.Is(err, domain.ErrInvalidInput) && !errors.Is(err, domain.ErrNotFound) {
		uc.log.Error().Err(err).Str("step", step).Msg("generación de factura fallida")
	}
	return err
}

// BillFilename nombre del PDF descargable para un número de factura.
func BillFilename(billNo string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ':', '*', '?', '<', '>', '|':
			return '-'
		}
		return r
	}, billNo)
	return "bill-" + safe + ".pdf"
}
