package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bill-automation-api/internal/application/billing"
	"github.com/jhoicas/bill-automation-api/internal/application/dto"
	"github.com/jhoicas/bill-automation-api/internal/domain"
)

func TestHistory_ListaYUltimaPorEmpresa(t *testing.T) {
	f := newGenerateFixture()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.uc.Generate(ctx, "northWestLogistics", "admin", sampleDraft())
		require.NoError(t, err)
	}
	_, err := f.uc.Generate(ctx, "jmdSupplyChain", "operador", sampleDraft())
	require.NoError(t, err)

	uc := billing.NewHistoryUseCase(f.store.historyRepo(), f.companies, &fakeExporter{})

	page, err := uc.List(ctx, "northWestLogistics", dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 3, page.Page.Total)

	last, err := uc.LastPerCompany(ctx)
	require.NoError(t, err)
	require.Len(t, last, 2)
	byCompany := map[string]string{}
	for _, lb := range last {
		byCompany[lb.CompanyID] = lb.BillNumber
	}
	assert.Equal(t, "3", byCompany["northWestLogistics"])
	assert.Equal(t, "1", byCompany["jmdSupplyChain"])
}

func TestHistory_Exportar(t *testing.T) {
	f := newGenerateFixture()
	ctx := context.Background()
	_, err := f.uc.Generate(ctx, "northWestLogistics", "admin", sampleDraft())
	require.NoError(t, err)

	exp := &fakeExporter{}
	uc := billing.NewHistoryUseCase(f.store.historyRepo(), f.companies, exp)

	data, name, err := uc.Export(ctx, "northWestLogistics")
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Equal(t, "bills-northWestLogistics.xlsx", name)
	assert.Equal(t, 1, exp.rows)
	assert.Equal(t, "North West Logistics", exp.company.Name)

	_, _, err = uc.Export(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestHistory_ObtenerPorID(t *testing.T) {
	f := newGenerateFixture()
	ctx := context.Background()
	gen, err := f.uc.Generate(ctx, "northWestLogistics", "admin", sampleDraft())
	require.NoError(t, err)

	uc := billing.NewHistoryUseCase(f.store.historyRepo(), f.companies, &fakeExporter{})

	got, err := uc.Get(ctx, gen.RecordID)
	require.NoError(t, err)
	assert.Equal(t, gen.BillNumber, got.BillNumber)
	assert.Equal(t, "Acme Traders", got.CustomerName)
	assert.Equal(t, "instate", got.GSTType)

	_, err = uc.Get(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
