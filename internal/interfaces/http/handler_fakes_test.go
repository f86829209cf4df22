package http_test

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Repositorios en memoria con el mismo contrato que los adaptadores
// PostgreSQL, para levantar la app completa sin base de datos.

type memStore struct {
	companies  map[string]*entity.Company
	invoices   map[int]*entity.Invoice
	industries map[string]*entity.Industry
	links      map[string]map[string]bool // ind_code -> comp_codes
	seq        int
}

func newMemStore() *memStore {
	return &memStore{
		companies:  make(map[string]*entity.Company),
		invoices:   make(map[int]*entity.Invoice),
		industries: make(map[string]*entity.Industry),
		links:      make(map[string]map[string]bool),
	}
}

type memCompanyRepo struct{ s *memStore }

func (r memCompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	list := make([]*entity.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		cc := *c
		list = append(list, &cc)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r memCompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	c, ok := r.s.companies[code]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (r memCompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	if _, ok := r.s.companies[company.Code]; ok {
		return domain.ErrDuplicate
	}
	cc := *company
	r.s.companies[company.Code] = &cc
	return nil
}

func (r memCompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	if _, ok := r.s.companies[company.Code]; !ok {
		return domain.ErrNotFound
	}
	cc := *company
	r.s.companies[company.Code] = &cc
	return nil
}

func (r memCompanyRepo) Delete(ctx context.Context, code string) error {
	if _, ok := r.s.companies[code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.companies, code)
	// cascada, como en la migración
	for id, inv := range r.s.invoices {
		if inv.CompCode == code {
			delete(r.s.invoices, id)
		}
	}
	for _, comps := range r.s.links {
		delete(comps, code)
	}
	return nil
}

type memInvoiceRepo struct{ s *memStore }

func (r memInvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	list := make([]*entity.Invoice, 0, len(r.s.invoices))
	for _, inv := range r.s.invoices {
		ic := *inv
		list = append(list, &ic)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r memInvoiceRepo) GetWithCompany(ctx context.Context, id int) (*entity.Invoice, *entity.Company, error) {
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil, nil
	}
	comp := r.s.companies[inv.CompCode]
	ic := *inv
	cc := *comp
	return &ic, &cc, nil
}

func (r memInvoiceRepo) ListIDsByCompany(ctx context.Context, compCode string) ([]int, error) {
	ids := make([]int, 0)
	for _, inv := range r.s.invoices {
		if inv.CompCode == compCode {
			ids = append(ids, inv.ID)
		}
	}
	sort.Ints(ids)
	return ids, nil
}

func (r memInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if _, ok := r.s.companies[invoice.CompCode]; !ok {
		return domain.ErrCompanyCodeUnknown
	}
	r.s.seq++
	invoice.ID = r.s.seq
	invoice.Paid = false
	invoice.AddDate = time.Now()
	invoice.PaidDate = nil
	ic := *invoice
	r.s.invoices[invoice.ID] = &ic
	return nil
}

func (r memInvoiceRepo) UpdateAmtPaid(ctx context.Context, id int, amt decimal.Decimal, paid bool) (*entity.Invoice, error) {
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	switch {
	case paid && inv.PaidDate == nil:
		now := time.Now()
		inv.PaidDate = &now
	case !paid:
		inv.PaidDate = nil
	}
	inv.Amt = amt
	inv.Paid = paid
	ic := *inv
	return &ic, nil
}

func (r memInvoiceRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.s.invoices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.invoices, id)
	return nil
}

type memIndustryRepo struct{ s *memStore }

func (r memIndustryRepo) ListNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(r.s.industries))
	for _, ind := range r.s.industries {
		names = append(names, ind.Industry)
	}
	sort.Strings(names)
	return names, nil
}

func (r memIndustryRepo) ListNamesByCompany(ctx context.Context, compCode string) ([]string, error) {
	names := make([]string, 0)
	for indCode, comps := range r.s.links {
		if comps[compCode] {
			names = append(names, r.s.industries[indCode].Industry)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (r memIndustryRepo) GetByCode(ctx context.Context, code string) (*entity.Industry, error) {
	ind, ok := r.s.industries[code]
	if !ok {
		return nil, nil
	}
	ic := *ind
	return &ic, nil
}

func (r memIndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	if _, ok := r.s.industries[industry.Code]; ok {
		return domain.ErrDuplicate
	}
	ic := *industry
	r.s.industries[industry.Code] = &ic
	return nil
}

func (r memIndustryRepo) AddCompany(ctx context.Context, indCode, compCode string) error {
	if _, ok := r.s.industries[indCode]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.companies[compCode]; !ok {
		return domain.ErrCompanyCodeUnknown
	}
	if r.s.links[indCode] == nil {
		r.s.links[indCode] = make(map[string]bool)
	}
	if r.s.links[indCode][compCode] {
		return domain.ErrDuplicate
	}
	r.s.links[indCode][compCode] = true
	return nil
}
