package http_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/bill-automation-api/internal/domain"
	"github.com/jhoicas/bill-automation-api/internal/domain/entity"
	"github.com/jhoicas/bill-automation-api/internal/domain/repository"
)

// memDB base en memoria con un único candado global; suficiente para tests de handlers.
type memDB struct {
	mu        sync.Mutex
	companies map[string]*entity.Company
	customers map[string]*entity.Customer
	users     map[string]*entity.User
	counters  map[string]int64
	bills     []*entity.BillRecord
}

func newMemDB() *memDB {
	return &memDB{
		companies: map[string]*entity.Company{
			"northWestLogistics": {ID: "northWestLogistics", Name: "North West Logistics", GSTIN: "09CBKPS4617L1ZZ"},
			"jmdSupplyChain":     {ID: "jmdSupplyChain", Name: "JMD SUPPLY CHAIN SOLUTIONS"},
		},
		customers: map[string]*entity.Customer{},
		users:     map[string]*entity.User{},
		counters:  map[string]int64{},
	}
}

// ── companies ────────────────────────────────────────────────────────────────

type companyRepo struct{ db *memDB }

func (r companyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.companies[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r companyRepo) List(context.Context) ([]*entity.Company, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]*entity.Company, 0, len(r.db.companies))
	for _, c := range r.db.companies {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r companyRepo) Update(_ context.Context, c *entity.Company) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.companies[c.ID]; !ok {
		return domain.ErrCompanyNotFound
	}
	cp := *c
	r.db.companies[c.ID] = &cp
	return nil
}

// ── customers ────────────────────────────────────────────────────────────────

type customerRepo struct{ db *memDB }

func (r customerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	cp := *c
	r.db.customers[c.ID] = &cp
	return nil
}

func (r customerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r customerRepo) List(context.Context) ([]*entity.Customer, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]*entity.Customer, 0, len(r.db.customers))
	for _, c := range r.db.customers {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r customerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.db.customers[c.ID] = &cp
	return nil
}

func (r customerRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.db.customers, id)
	return nil
}

// ── users ────────────────────────────────────────────────────────────────────

type userRepo struct{ db *memDB }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[u.Username]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	r.db.users[u.Username] = &cp
	return nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r userRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r userRepo) List(context.Context) ([]*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]*entity.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

// ── facturación ──────────────────────────────────────────────────────────────

// RunBilling serializa todas las transacciones y descarta los cambios si fn falla.
type txRunner struct {
	db *memDB
	tx sync.Mutex
}

func (r *txRunner) RunBilling(ctx context.Context, fn func(repository.BillCounterRepository, repository.BillRecordRepository) error) error {
	r.tx.Lock()
	defer r.tx.Unlock()
	staged := &stagedTx{db: r.db, counters: map[string]int64{}}
	if err := fn(counterRepo{staged}, billRepo{staged}); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for k, v := range staged.counters {
		r.db.counters[k] = v
	}
	r.db.bills = append(r.db.bills, staged.bills...)
	return nil
}

type stagedTx struct {
	db       *memDB
	counters map[string]int64
	bills    []*entity.BillRecord
}

type counterRepo struct{ tx *stagedTx }

func (r counterRepo) Get(_ context.Context, companyID string) (*entity.BillCounter, error) {
	r.tx.db.mu.Lock()
	defer r.tx.db.mu.Unlock()
	return &entity.BillCounter{CompanyID: companyID, LastBillNumber: r.tx.db.counters[companyID]}, nil
}

func (r counterRepo) GetForUpdate(ctx context.Context, companyID string) (*entity.BillCounter, error) {
	if v, ok := r.tx.counters[companyID]; ok {
		return &entity.BillCounter{CompanyID: companyID, LastBillNumber: v}, nil
	}
	return r.Get(ctx, companyID)
}

func (r counterRepo) Update(_ context.Context, c *entity.BillCounter) error {
	r.tx.counters[c.CompanyID] = c.LastBillNumber
	return nil
}

type billRepo struct{ tx *stagedTx }

func (r billRepo) Create(_ context.Context, b *entity.BillRecord) error {
	cp := *b
	r.tx.bills = append(r.tx.bills, &cp)
	return nil
}

func (r billRepo) committed() []*entity.BillRecord {
	r.tx.db.mu.Lock()
	defer r.tx.db.mu.Unlock()
	return append([]*entity.BillRecord(nil), r.tx.db.bills...)
}

func (r billRepo) GetByID(_ context.Context, id string) (*entity.BillRecord, error) {
	for _, b := range r.committed() {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r billRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.BillRecord, error) {
	var out []*entity.BillRecord
	for _, b := range r.committed() {
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

func (r billRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	list, _ := r.ListByCompany(ctx, companyID, 1<<30, 0)
	return len(list), nil
}

func (r billRepo) LastPerCompany(context.Context) ([]*entity.LastBill, error) {
	last := map[string]*entity.LastBill{}
	for _, b := range r.committed() {
		last[b.CompanyID] = &entity.LastBill{BillNumber: b.BillNumber, CompanyID: b.CompanyID, GeneratedBy: b.GeneratedBy, CreatedAt: b.CreatedAt}
	}
	out := make([]*entity.LastBill, 0, len(last))
	for _, lb := range last {
		out = append(out, lb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CompanyID < out[j].CompanyID })
	return out, nil
}
