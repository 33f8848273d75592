package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bill-automation-api/internal/application/billing"
	"github.com/jhoicas/bill-automation-api/internal/domain"
	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
)

type generateFixture struct {
	store      *memStore
	companies  *memCompanies
	customers  *memCustomers
	generator  *fakeGenerator
	signatures *fakeSignatures
	uc         *billing.GenerateBillUseCase
}

func newGenerateFixture() *generateFixture {
	f := &generateFixture{
		store:      newMemStore(),
		companies:  testCompanies(),
		customers:  newMemCustomers(),
		generator:  &fakeGenerator{},
		signatures: &fakeSignatures{byCompany: map[string][]byte{}},
	}
	f.uc = billing.NewGenerateBillUseCase(f.store, f.companies, f.customers, f.generator, f.signatures, nil, nil)
	return f
}

func sampleDraft() entity.BillDraft {
	return entity.BillDraft{
		BillDate:      "15/03/2024",
		PlaceOfSupply: "Uttar Pradesh",
		Customer:      entity.CustomerSnapshot{Name: "Acme Traders", GSTIN: "09AAAAA0000A1Z5"},
		Items: []entity.LineItem{
			{LRNo: "LR-1", FreightCharge: "600", Amount: decimalFromString("1")},
			{LRNo: "LR-2", FreightCharge: "300", LoadingCharges: "100"},
		},
		TaxMode: entity.TaxModeInState,
	}
}

func TestGenerate_AsignaNumeroYRegistraAuditoria(t *testing.T) {
	f := newGenerateFixture()
	f.store.counters["northWestLogistics"] = 99

	out, err := f.uc.Generate(context.Background(), "northWestLogistics", "admin", sampleDraft())
	require.NoError(t, err)

	assert.Equal(t, "100", out.BillNumber)
	assert.Equal(t, "bill-100.pdf", out.Filename)
	assert.Equal(t, "%PDF-100", string(out.PDF))
	assert.Equal(t, "1180.00", out.Totals.GrandTotal.StringFixed(2))

	records := f.store.committed()
	require.Len(t, records, 1)
	assert.Equal(t, out.RecordID, records[0].ID)
	assert.Equal(t, "100", records[0].BillNumber)
	assert.Equal(t, "Acme Traders", records[0].CustomerName)
	assert.Equal(t, "admin", records[0].GeneratedBy)
	assert.Equal(t, entity.TaxModeInState, records[0].TaxMode)
	assert.Equal(t, "1180.00", records[0].TotalAmount.StringFixed(2))
	assert.EqualValues(t, 100, f.store.counter("northWestLogistics"))
}

func TestGenerate_DocumentoRecibeImportesRecalculadosYLetras(t *testing.T) {
	f := newGenerateFixture()
	f.signatures.byCompany["northWestLogistics"] = []byte("png")

	_, err := f.uc.Generate(context.Background(), "northWestLogistics", "admin", sampleDraft())
	require.NoError(t, err)

	doc := f.generator.last
	require.NotNil(t, doc)
	assert.Equal(t, "North West Logistics", doc.Company.Name)
	assert.Equal(t, "600.00", doc.Items[0].Amount.StringFixed(2), "el amount de entrada se ignora")
	assert.Equal(t, "400.00", doc.Items[1].Amount.StringFixed(2))
	assert.Equal(t, "One Thousand One Hundred Eighty Rupees Only", doc.AmountInWords)
	assert.Equal(t, []byte("png"), doc.Signature)
	assert.Equal(t, "1", doc.BillNo)
}

func TestGenerate_NumeroExplicitoNoConsumeContador(t *testing.T) {
	f := newGenerateFixture()
	f.store.counters["northWestLogistics"] = 5
	draft := sampleDraft()
	draft.BillNo = "77"

	out, err := f.uc.Generate(context.Background(), "northWestLogistics", "admin", draft)
	require.NoError(t, err)

	assert.Equal(t, "77", out.BillNumber)
	assert.EqualValues(t, 5, f.store.counter("northWestLogistics"))
	assert.Len(t, f.store.committed(), 1)
}

func TestGenerate_SinNombreDeClienteEsValidacion(t *testing.T) {
	f := newGenerateFixture()
	draft := sampleDraft()
	draft.Customer.Name = "  "

	_, err := f.uc.Generate(context.Background(), "northWestLogistics", "admin", draft)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.store.committed())
	assert.Zero(t, f.store.counter("northWestLogistics"))
}

func TestGenerate_ModoGSTInvalidoEsValidacion(t *testing.T) {
	f := newGenerateFixture()
	draft := sampleDraft()
	draft.TaxMode = "vat"

	_, err := f.uc.Generate(context.Background(), "northWestLogistics", "admin", draft)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerate_EmpresaInexistente(t *testing.T) {
	f := newGenerateFixture()

	_, err := f.uc.Generate(context.Background(), "ghost", "admin", sampleDraft())

	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.store.committed())
}

func TestGenerate_FalloDeRenderRevierteNumeroYRegistro(t *testing.T) {
	f := newGenerateFixture()
	f.store.counters["northWestLogistics"] = 12
	f.generator.err = errBoom

	out, err := f.uc.Generate(context.Background(), "northWestLogistics", "admin", sampleDraft())

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrRender)
	assert.EqualValues(t, 12, f.store.counter("northWestLogistics"))
	assert.Empty(t, f.store.committed())
}

func TestGenerate_FalloDeAuditoriaEsPersistencia(t *testing.T) {
	f := newGenerateFixture()
	f.store.failCreate = errBoom

	_, err := f.uc.Generate(context.Background(), "northWestLogistics", "admin", sampleDraft())

	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Zero(t, f.store.counter("northWestLogistics"))
	assert.Nil(t, f.generator.last, "no se debe renderizar sin registro")
}

func TestGenerate_FalloAlLeerFirmaEsPersistencia(t *testing.T) {
	f := newGenerateFixture()
	f.signatures.err = errBoom

	_, err := f.uc.Generate(context.Background(), "northWestLogistics", "admin", sampleDraft())
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestGenerate_ClientePorIDSinCopiaUsaDatosActuales(t *testing.T) {
	f := newGenerateFixture()
	require.NoError(t, f.customers.Create(context.Background(), &entity.Customer{ID: "c-1", Name: "Stored Customer", GSTIN: "09BBBBB1111B1Z5"}))
	draft := sampleDraft()
	draft.Customer = entity.CustomerSnapshot{}
	draft.CustomerID = "c-1"

	_, err := f.uc.Generate(context.Background(), "northWestLogistics", "admin", draft)
	require.NoError(t, err)

	assert.Equal(t, "Stored Customer", f.generator.last.Customer.Name)
	rec := f.store.committed()[0]
	require.NotNil(t, rec.CustomerID)
	assert.Equal(t, "c-1", *rec.CustomerID)
}

func TestGenerate_ClientePorIDInexistente(t *testing.T) {
	f := newGenerateFixture()
	draft := sampleDraft()
	draft.Customer = entity.CustomerSnapshot{}
	draft.CustomerID = "nope"

	_, err := f.uc.Generate(context.Background(), "northWestLogistics", "admin", draft)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerate_EditarClienteNoAlteraFacturasPrevias(t *testing.T) {
	f := newGenerateFixture()
	ctx := context.Background()
	require.NoError(t, f.customers.Create(ctx, &entity.Customer{ID: "c-1", Name: "Original Name"}))
	draft := sampleDraft()
	draft.Customer = entity.CustomerSnapshot{}
	draft.CustomerID = "c-1"

	_, err := f.uc.Generate(ctx, "northWestLogistics", "admin", draft)
	require.NoError(t, err)

	customers := billing.NewCustomerUseCase(f.customers)
	_, err = customers.Update(ctx, "c-1", customerRequest("Renamed Ltd"))
	require.NoError(t, err)

	records := f.store.committed()
	require.Len(t, records, 1)
	assert.Equal(t, "Original Name", records[0].CustomerName)
}

func TestGenerate_BillOfSupplySinImpuestos(t *testing.T) {
	f := newGenerateFixture()
	draft := sampleDraft()
	draft.TaxMode = entity.TaxModeNone

	out, err := f.uc.Generate(context.Background(), "jmdSupplyChain", "operador", draft)
	require.NoError(t, err)

	assert.Equal(t, "1000.00", out.Totals.GrandTotal.StringFixed(2))
	assert.True(t, f.generator.last.Totals.SGST.IsZero())
	assert.Equal(t, entity.TaxModeNone, f.generator.last.TaxMode)
}

func TestBillFilename_ReemplazaSeparadores(t *testing.T) {
	assert.Equal(t, "bill-42.pdf", billing.BillFilename("42"))
	assert.Equal(t, "bill-NWL-24-7.pdf", billing.BillFilename("NWL/24/7"))
}

func TestGenerate_TotalSobreElMaximoEsValidacion(t *testing.T) {
	f := newGenerateFixture()
	draft := sampleDraft()
	draft.Items = []entity.LineItem{{FreightCharge: "999999999999", LoadingCharges: "999999999999"}}

	_, err := f.uc.Generate(context.Background(), "northWestLogistics", "admin", draft)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.store.committed())
	assert.Zero(t, f.store.counter("northWestLogistics"))
}
