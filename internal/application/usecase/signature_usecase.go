package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/bill-automation-api/internal/application/dto"
	"github.com/jhoicas/bill-automation-api/internal/domain"
	"github.com/jhoicas/bill-automation-api/internal/domain/repository"
)

// MaxSignatureBytes tamaño máximo aceptado para la imagen de firma subida.
const MaxSignatureBytes = 2 << 20

// SignatureStorage almacén de firmas por empresa. Load devuelve nil, nil si no hay firma.
type SignatureStorage interface {
	Save(ctx context.Context, companyID string, png []byte) error
	Load(ctx context.Context, companyID string) ([]byte, error)
	Name(companyID string) string
}

// ImageNormalizer convierte una imagen subida a PNG ajustado al recuadro de firma.
type ImageNormalizer interface {
	Normalize(data []byte) (png []byte, width, height int, err error)
}

// SignatureUseCase subida y consulta de la firma escaneada de cada empresa.
type SignatureUseCase struct {
	companies  repository.CompanyRepository
	store      SignatureStorage
	normalizer ImageNormalizer
}

// NewSignatureUseCase construye el caso de uso.
func NewSignatureUseCase(companies repository.CompanyRepository, store SignatureStorage, normalizer ImageNormalizer) *SignatureUseCase {
	return &SignatureUseCase{companies: companies, store: store, normalizer: normalizer}
}

// Upload normaliza la imagen y la guarda como firma de la empresa, reemplazando la anterior.
func (uc *SignatureUseCase) Upload(ctx context.Context, companyID string, data []byte) (*dto.SignatureUploadResponse, error) {
	if len(data) == 0 {
		return nil, domain.NewValidationError("signature", "archivo vacío")
	}
	if len(data) > MaxSignatureBytes {
		return nil, domain.NewValidationError("signature", "archivo demasiado grande")
	}
	c, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCompanyNotFound
	}
	png, w, h, err := uc.normalizer.Normalize(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if err := uc.store.Save(ctx, companyID, png); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	return &dto.SignatureUploadResponse{
		Message:  "Signature uploaded successfully",
		Filename: uc.store.Name(companyID),
		Width:    w,
		Height:   h,
	}, nil
}

// Get devuelve el PNG de la firma. domain.ErrNotFound si la empresa no tiene firma.
func (uc *SignatureUseCase) Get(ctx context.Context, companyID string) ([]byte, error) {
	data, err := uc.store.Load(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	if data == nil {
		return nil, domain.ErrNotFound
	}
	return data, nil
}
