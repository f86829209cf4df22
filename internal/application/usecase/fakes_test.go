package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso. Respetan el mismo
// contrato que los adaptadores PostgreSQL (orden, errores de dominio y la
// resolución de paid_date documentada en el puerto).
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (r *fakeCompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	list := make([]*entity.Company, 0, len(r.companies))
	for _, c := range r.companies {
		copy := *c
		list = append(list, &copy)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeCompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	c, ok := r.companies[code]
	if !ok {
		return nil, nil
	}
	copy := *c
	return &copy, nil
}

func (r *fakeCompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	if _, ok := r.companies[company.Code]; ok {
		return domain.ErrDuplicate
	}
	copy := *company
	r.companies[company.Code] = &copy
	return nil
}

func (r *fakeCompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	if _, ok := r.companies[company.Code]; !ok {
		return domain.ErrNotFound
	}
	copy := *company
	r.companies[company.Code] = &copy
	return nil
}

func (r *fakeCompanyRepo) Delete(ctx context.Context, code string) error {
	if _, ok := r.companies[code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.companies, code)
	return nil
}

type fakeInvoiceRepo struct {
	seq       int
	invoices  map[int]*entity.Invoice
	companies *fakeCompanyRepo
}

func newFakeInvoiceRepo(companies *fakeCompanyRepo) *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[int]*entity.Invoice), companies: companies}
}

func (r *fakeInvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	list := make([]*entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		copy := *inv
		list = append(list, &copy)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeInvoiceRepo) GetWithCompany(ctx context.Context, id int) (*entity.Invoice, *entity.Company, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil, nil
	}
	comp, ok := r.companies.companies[inv.CompCode]
	if !ok {
		return nil, nil, nil
	}
	invCopy := *inv
	compCopy := *comp
	return &invCopy, &compCopy, nil
}

func (r *fakeInvoiceRepo) ListIDsByCompany(ctx context.Context, compCode string) ([]int, error) {
	ids := make([]int, 0)
	for _, inv := range r.invoices {
		if inv.CompCode == compCode {
			ids = append(ids, inv.ID)
		}
	}
	sort.Ints(ids)
	return ids, nil
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	// mismo contrato que la FK: empresa inexistente -> ErrCompanyCodeUnknown
	if _, ok := r.companies.companies[invoice.CompCode]; !ok {
		return domain.ErrCompanyCodeUnknown
	}
	r.seq++
	invoice.ID = r.seq
	invoice.Paid = false
	invoice.AddDate = time.Now()
	invoice.PaidDate = nil
	copy := *invoice
	r.invoices[invoice.ID] = &copy
	return nil
}

func (r *fakeInvoiceRepo) UpdateAmtPaid(ctx context.Context, id int, amt decimal.Decimal, paid bool) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	// tabla de decisión de paid_date, como el UPDATE condicional
	switch {
	case paid && inv.PaidDate == nil:
		now := time.Now()
		inv.PaidDate = &now
	case !paid:
		inv.PaidDate = nil
	}
	inv.Amt = amt
	inv.Paid = paid
	copy := *inv
	return &copy, nil
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.invoices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.invoices, id)
	return nil
}

type fakeIndustryRepo struct {
	industries map[string]*entity.Industry
	links      map[string]map[string]bool // ind_code -> set de comp_code
	companies  *fakeCompanyRepo
}

func newFakeIndustryRepo(companies *fakeCompanyRepo) *fakeIndustryRepo {
	return &fakeIndustryRepo{
		industries: make(map[string]*entity.Industry),
		links:      make(map[string]map[string]bool),
		companies:  companies,
	}
}

func (r *fakeIndustryRepo) ListNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(r.industries))
	for _, ind := range r.industries {
		names = append(names, ind.Industry)
	}
	sort.Strings(names)
	return names, nil
}

func (r *fakeIndustryRepo) ListNamesByCompany(ctx context.Context, compCode string) ([]string, error) {
	names := make([]string, 0)
	for indCode, comps := range r.links {
		if comps[compCode] {
			names = append(names, r.industries[indCode].Industry)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (r *fakeIndustryRepo) GetByCode(ctx context.Context, code string) (*entity.Industry, error) {
	ind, ok := r.industries[code]
	if !ok {
		return nil, nil
	}
	copy := *ind
	return &copy, nil
}

func (r *fakeIndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	if _, ok := r.industries[industry.Code]; ok {
		return domain.ErrDuplicate
	}
	copy := *industry
	r.industries[industry.Code] = &copy
	return nil
}

func (r *fakeIndustryRepo) AddCompany(ctx context.Context, indCode, compCode string) error {
	if _, ok := r.industries[indCode]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.companies.companies[compCode]; !ok {
		return domain.ErrCompanyCodeUnknown
	}
	if r.links[indCode] == nil {
		r.links[indCode] = make(map[string]bool)
	}
	if r.links[indCode][compCode] {
		return domain.ErrDuplicate
	}
	r.links[indCode][compCode] = true
	return nil
}
