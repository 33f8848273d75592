package billing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bill-automation-api/internal/application/billing"
	"github.com/jhoicas/bill-automation-api/internal/domain"
)

func TestCustomerUseCase_CrearNormalizaYListar(t *testing.T) {
	uc := billing.NewCustomerUseCase(newMemCustomers())
	ctx := context.Background()

	created, err := uc.Create(ctx, customerRequest("  Acme Traders "))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Acme Traders", created.Name)
	assert.Equal(t, "09AAAAA0000A1Z5", created.GSTIN)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestCustomerUseCase_CrearSinNombre(t *testing.T) {
	uc := billing.NewCustomerUseCase(newMemCustomers())
	_, err := uc.Create(context.Background(), customerRequest(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomerUseCase_ActualizarInexistente(t *testing.T) {
	uc := billing.NewCustomerUseCase(newMemCustomers())
	_, err := uc.Update(context.Background(), "nope", customerRequest("X"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerUseCase_EliminarInexistente(t *testing.T) {
	uc := billing.NewCustomerUseCase(newMemCustomers())
	err := uc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerUseCase_ActualizarYEliminar(t *testing.T) {
	uc := billing.NewCustomerUseCase(newMemCustomers())
	ctx := context.Background()
	created, err := uc.Create(ctx, customerRequest("Acme"))
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, customerRequest("Acme Logistics"))
	require.NoError(t, err)
	assert.Equal(t, "Acme Logistics", updated.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, uc.Delete(ctx, created.ID))
	_, err = uc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
