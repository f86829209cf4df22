package usecase

import (
	"context"

	"github.com/gosimple/slug"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	companies  repository.CompanyRepository
	invoices   repository.InvoiceRepository
	industries repository.IndustryRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(
	companies repository.CompanyRepository,
	invoices repository.InvoiceRepository,
	industries repository.IndustryRepository,
) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, invoices: invoices, industries: industries}
}

// List lista todas las empresas (code, name) ordenadas por nombre.
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompanyListResponse, error) {
	list, err := uc.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyItem, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanyItem{Code: c.Code, Name: c.Name})
	}
	return &dto.CompanyListResponse{Companies: items}, nil
}

// Get obtiene una empresa con los ids de sus facturas y los nombres de sus
// sectores. Las tres lecturas son independientes (solo lectura, sin tx).
func (uc *CompanyUseCase) Get(ctx context.Context, code string) (*dto.CompanyDetailResponse, error) {
	company, err := uc.companies.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	invoiceIDs, err := uc.invoices.ListIDsByCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	industries, err := uc.industries.ListNamesByCompany(ctx, code)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyDetailResponse{Company: dto.CompanyDetail{
		Code:        company.Code,
		Name:        company.Name,
		Description: company.Description,
		Invoices:    invoiceIDs,
		Industries:  industries,
	}}, nil
}

// Create crea una empresa derivando el código como slug del nombre
// (minúsculas, secuencias no alfanuméricas colapsadas a un guion).
// Devuelve domain.ErrDuplicate si el código ya existe.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	company := &entity.Company{
		Code:        slug.Make(in.Name),
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{Company: companyBody(company)}, nil
}

// Update reemplaza name y description de la empresa. El código es inmutable.
func (uc *CompanyUseCase) Update(ctx context.Context, code string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	company := &entity.Company{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return &dto.CompanyResponse{Company: companyBody(company)}, nil
}

// Delete elimina una empresa por código.
func (uc *CompanyUseCase) Delete(ctx context.Context, code string) error {
	return uc.companies.Delete(ctx, code)
}

func companyBody(c *entity.Company) dto.CompanyBody {
	return dto.CompanyBody{Code: c.Code, Name: c.Name, Description: c.Description}
}
