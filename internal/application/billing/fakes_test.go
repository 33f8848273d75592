package billing_test

import (
	"context"
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bill-automation-api/internal/application/billing"
	"github.com/jhoicas/bill-automation-api/internal/application/dto"
	"github.com/jhoicas/bill-automation-api/internal/domain"
	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
	"github.com/jhoicas/bill-automation-api/internal/domain/repository"
)

// memStore simula la base: contadores y registros confirmados, y un candado por empresa
// que imita el SELECT ... FOR UPDATE hasta el fin de la transacción.
type memStore struct {
	mu       sync.Mutex
	counters map[string]int64
	records  []*entity.BillRecord
	locks    map[string]*sync.Mutex

	failCreate error
}

func newMemStore() *memStore {
	return &memStore{counters: map[string]int64{}, locks: map[string]*sync.Mutex{}}
}

func (s *memStore) counter(companyID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[companyID]
}

func (s *memStore) committed() []*entity.BillRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entity.BillRecord(nil), s.records...)
}

func (s *memStore) lockFor(companyID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[companyID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[companyID] = l
	}
	return l
}

var _ billing.BillingTxRunner = (*memStore)(nil)

func (s *memStore) RunBilling(ctx context.Context, fn func(repository.BillCounterRepository, repository.BillRecordRepository) error) error {
	tx := &memTx{store: s, counters: map[string]int64{}}
	defer tx.release()
	if err := fn(&memCounterRepo{tx: tx}, &memBillRepo{tx: tx}); err != nil {
		return err
	}
	s.mu.Lock()
	for k, v := range tx.counters {
		s.counters[k] = v
	}
	s.records = append(s.records, tx.records...)
	s.mu.Unlock()
	return nil
}

type memTx struct {
	store    *memStore
	held     []*sync.Mutex
	counters map[string]int64
	records  []*entity.BillRecord
}

func (tx *memTx) release() {
	for _, l := range tx.held {
		l.Unlock()
	}
}

type memCounterRepo struct{ tx *memTx }

func (r *memCounterRepo) Get(_ context.Context, companyID string) (*entity.BillCounter, error) {
	return &entity.BillCounter{CompanyID: companyID, LastBillNumber: r.tx.store.counter(companyID)}, nil
}

func (r *memCounterRepo) GetForUpdate(_ context.Context, companyID string) (*entity.BillCounter, error) {
	l := r.tx.store.lockFor(companyID)
	l.Lock()
	r.tx.held = append(r.tx.held, l)
	if v, ok := r.tx.counters[companyID]; ok {
		return &entity.BillCounter{CompanyID: companyID, LastBillNumber: v}, nil
	}
	return &entity.BillCounter{CompanyID: companyID, LastBillNumber: r.tx.store.counter(companyID)}, nil
}

func (r *memCounterRepo) Update(_ context.Context, c *entity.BillCounter) error {
	r.tx.counters[c.CompanyID] = c.LastBillNumber
	return nil
}

type memBillRepo struct{ tx *memTx }

func (r *memBillRepo) Create(_ context.Context, b *entity.BillRecord) error {
	if r.tx.store.failCreate != nil {
		return r.tx.store.failCreate
	}
	cp := *b
	r.tx.records = append(r.tx.records, &cp)
	return nil
}

func (r *memBillRepo) GetByID(_ context.Context, id string) (*entity.BillRecord, error) {
	for _, b := range r.tx.store.committed() {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *memBillRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.BillRecord, error) {
	var out []*entity.BillRecord
	for _, b := range r.tx.store.committed() {
		if b.CompanyID == companyID {
			out = append(out, b)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memBillRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	list, _ := r.ListByCompany(ctx, companyID, 1<<30, 0)
	return len(list), nil
}

func (r *memBillRepo) LastPerCompany(context.Context) ([]*entity.LastBill, error) {
	last := map[string]*entity.LastBill{}
	var order []string
	for _, b := range r.tx.store.committed() {
		if _, ok := last[b.CompanyID]; !ok {
			order = append(order, b.CompanyID)
		}
		last[b.CompanyID] = &entity.LastBill{BillNumber: b.BillNumber, CompanyID: b.CompanyID, GeneratedBy: b.GeneratedBy, CreatedAt: b.CreatedAt}
	}
	out := make([]*entity.LastBill, 0, len(order))
	for _, id := range order {
		out = append(out, last[id])
	}
	return out, nil
}

// historyRepo expone los registros confirmados fuera de una transacción.
func (s *memStore) historyRepo() repository.BillRecordRepository {
	return &memBillRepo{tx: &memTx{store: s}}
}

func (s *memStore) counterRepo() repository.BillCounterRepository {
	return &memCounterRepo{tx: &memTx{store: s}}
}

type memCompanies struct {
	byID map[string]*entity.Company
	err  error
}

func (r *memCompanies) GetByID(_ context.Context, id string) (*entity.Company, error) {
	if r.err != nil {
		return nil, r.err
	}
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

type memCustomers struct {
	mu   sync.Mutex
	byID map[string]*entity.Customer
}

func newMemCustomers() *memCustomers { return &memCustomers{byID: map[string]*entity.Customer{}} }

func (r *memCustomers) Create(_ context.Context, c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCustomers) List(context.Context) ([]*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Customer, 0, len(r.byID))
	for _, c := range r.byID {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCustomers) Update(_ context.Context, c *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCustomers) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// fakeGenerator registra el último documento recibido.
type fakeGenerator struct {
	mu   sync.Mutex
	last *billing.InvoiceDocument
	err  error
}

func (g *fakeGenerator) GenerateBillPDF(_ context.Context, doc *billing.InvoiceDocument) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	g.last = doc
	return []byte("%PDF-" + doc.BillNo), nil
}

type fakeSignatures struct {
	byCompany map[string][]byte
	err       error
}

func (s *fakeSignatures) Load(_ context.Context, companyID string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byCompany[companyID], nil
}

var errBoom = errors.New("boom")

func testCompanies() *memCompanies {
	return &memCompanies{byID: map[string]*entity.Company{
		"northWestLogistics": {ID: "northWestLogistics", Name: "North West Logistics", GSTIN: "09CBKPS4617L1ZZ"},
		"jmdSupplyChain":     {ID: "jmdSupplyChain", Name: "JMD SUPPLY CHAIN SOLUTIONS"},
	}}
}

func decimalFromString(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func customerRequest(name string) dto.CustomerRequest {
	return dto.CustomerRequest{Name: name, GSTIN: "09aaaaa0000a1z5", Address: "Varanasi", ContactNo: "9760041241"}
}

type fakeExporter struct {
	company *entity.Company
	rows    int
}

func (e *fakeExporter) ExportBills(company *entity.Company, records []*entity.BillRecord) ([]byte, error) {
	e.company = company
	e.rows = len(records)
	return []byte("xlsx"), nil
}
