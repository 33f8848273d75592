package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/bill-automation-api/internal/application/dto"
	"github.com/jhoicas/bill-automation-api/internal/domain"
	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
	"github.com/jhoicas/bill-automation-api/internal/domain/repository"
	"github.com/jhoicas/bill-automation-api/pkg/jwt"
)

// TokenIssuer emite tokens; lo implementa auth.AuthUseCase.
type TokenIssuer interface {
	IssueToken(sub jwt.Subject) (string, error)
}

// CompanyUseCase perfiles de las empresas emisoras y selección de empresa activa.
type CompanyUseCase struct {
	repo   repository.CompanyRepository
	tokens TokenIssuer
	now    func() time.Time
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, tokens TokenIssuer) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, tokens: tokens, now: time.Now}
}

// List devuelve id y nombre de todas las empresas.
func (uc *CompanyUseCase) List(ctx context.Context) ([]dto.CompanySummary, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompanySummary, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CompanySummary{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// GetByID obtiene el perfil completo. Devuelve domain.ErrCompanyNotFound si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return entityToCompanyResponse(c), nil
}

// Select valida la empresa y emite un token nuevo con ella seleccionada.
func (uc *CompanyUseCase) Select(ctx context.Context, sub jwt.Subject, companyID string) (*dto.SelectCompanyResponse, error) {
	company, err := uc.GetByID(ctx, strings.TrimSpace(companyID))
	if err != nil {
		return nil, err
	}
	sub.CompanyID = company.ID
	token, err := uc.tokens.IssueToken(sub)
	if err != nil {
		return nil, err
	}
	return &dto.SelectCompanyResponse{Token: token, Company: *company}, nil
}

// Update sobrescribe el perfil completo de la empresa.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.NewValidationError("name", "requerido")
	}
	c := &entity.Company{
		ID:            id,
		Name:          strings.TrimSpace(in.Name),
		Ward:          strings.TrimSpace(in.Ward),
		District:      strings.TrimSpace(in.District),
		State:         strings.TrimSpace(in.State),
		PinCode:       strings.TrimSpace(in.PinCode),
		GSTIN:         strings.ToUpper(strings.TrimSpace(in.GSTIN)),
		PAN:           strings.ToUpper(strings.TrimSpace(in.PAN)),
		Email:         strings.TrimSpace(in.Email),
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		ContactNo:     strings.TrimSpace(in.ContactNo),
		BankName:      strings.TrimSpace(in.BankName),
		AccountNo:     strings.TrimSpace(in.AccountNo),
		IFSC:          strings.ToUpper(strings.TrimSpace(in.IFSC)),
		Branch:        strings.TrimSpace(in.Branch),
		UpdatedAt:     uc.now(),
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(c), nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		Ward:          c.Ward,
		District:      c.District,
		State:         c.State,
		PinCode:       c.PinCode,
		GSTIN:         c.GSTIN,
		PAN:           c.PAN,
		Email:         c.Email,
		ContactPerson: c.ContactPerson,
		ContactNo:     c.ContactNo,
		BankName:      c.BankName,
		AccountNo:     c.AccountNo,
		IFSC:          c.IFSC,
		Branch:        c.Branch,
		UpdatedAt:     c.UpdatedAt,
	}
}
