package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bill-automation-api/internal/application/usecase"
	"github.com/jhoicas/bill-automation-api/internal/domain"
)

func newSignatureUC(store *memSignatures, n fakeNormalizer) *usecase.SignatureUseCase {
	return usecase.NewSignatureUseCase(newMemCompanies(), store, n)
}

func TestSignatureUpload_GuardaPNGNormalizado(t *testing.T) {
	store := &memSignatures{data: map[string][]byte{}}
	uc := newSignatureUC(store, fakeNormalizer{})

	resp, err := uc.Upload(context.Background(), "northWestLogistics", []byte("jpeg"))
	require.NoError(t, err)

	assert.Equal(t, "signature-northWestLogistics.png", resp.Filename)
	assert.Equal(t, 400, resp.Width)
	assert.Equal(t, []byte("png:jpeg"), store.data["northWestLogistics"])

	got, err := uc.Get(context.Background(), "northWestLogistics")
	require.NoError(t, err)
	assert.Equal(t, []byte("png:jpeg"), got)
}

func TestSignatureUpload_Validaciones(t *testing.T) {
	store := &memSignatures{data: map[string][]byte{}}

	_, err := newSignatureUC(store, fakeNormalizer{}).Upload(context.Background(), "northWestLogistics", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	big := make([]byte, usecase.MaxSignatureBytes+1)
	_, err = newSignatureUC(store, fakeNormalizer{}).Upload(context.Background(), "northWestLogistics", big)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = newSignatureUC(store, fakeNormalizer{err: errBoom}).Upload(context.Background(), "northWestLogistics", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = newSignatureUC(store, fakeNormalizer{}).Upload(context.Background(), "ghost", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
	assert.Empty(t, store.data)
}

func TestSignatureUpload_FalloDeAlmacenamiento(t *testing.T) {
	store := &memSignatures{data: map[string][]byte{}, saveErr: errBoom}

	_, err := newSignatureUC(store, fakeNormalizer{}).Upload(context.Background(), "northWestLogistics", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestSignatureGet_SinFirmaEsNotFound(t *testing.T) {
	uc := newSignatureUC(&memSignatures{data: map[string][]byte{}}, fakeNormalizer{})

	_, err := uc.Get(context.Background(), "jmdSupplyChain")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
