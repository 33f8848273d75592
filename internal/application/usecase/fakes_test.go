package usecase_test

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/bill-automation-api/internal/domain"
	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
	"github.com/jhoicas/bill-automation-api/pkg/jwt"
)

type memCompanies struct {
	byID map[string]*entity.Company
}

func newMemCompanies() *memCompanies {
	return &memCompanies{byID: map[string]*entity.Company{
		"northWestLogistics": {ID: "northWestLogistics", Name: "North West Logistics", State: "Uttar Pradesh"},
		"jmdSupplyChain":     {ID: "jmdSupplyChain", Name: "JMD SUPPLY CHAIN SOLUTIONS"},
	}}
}

func (r *memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCompanies) List(context.Context) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memCompanies) Update(_ context.Context, c *entity.Company) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrCompanyNotFound
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

// stubIssuer devuelve un token legible con la empresa del sujeto.
type stubIssuer struct {
	last jwt.Subject
}

func (s *stubIssuer) IssueToken(sub jwt.Subject) (string, error) {
	s.last = sub
	return "token-" + sub.CompanyID, nil
}

type memSignatures struct {
	data    map[string][]byte
	saveErr error
}

func (s *memSignatures) Save(_ context.Context, companyID string, png []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data[companyID] = png
	return nil
}

func (s *memSignatures) Load(_ context.Context, companyID string) ([]byte, error) {
	return s.data[companyID], nil
}

func (s *memSignatures) Name(companyID string) string { return "signature-" + companyID + ".png" }

type fakeNormalizer struct {
	err error
}

func (n fakeNormalizer) Normalize(data []byte) ([]byte, int, int, error) {
	if n.err != nil {
		return nil, 0, 0, n.err
	}
	return append([]byte("png:"), data...), 400, 200, nil
}

var errBoom = errors.New("boom")
