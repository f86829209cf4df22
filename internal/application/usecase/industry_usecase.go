package usecase

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
)

// IndustryUseCase aplica reglas de negocio para sectores.
type IndustryUseCase struct {
	industries repository.IndustryRepository
}

// NewIndustryUseCase construye el caso de uso con el puerto de persistencia.
func NewIndustryUseCase(industries repository.IndustryRepository) *IndustryUseCase {
	return &IndustryUseCase{industries: industries}
}

// List lista los nombres de todos los sectores en orden alfabético.
func (uc *IndustryUseCase) List(ctx context.Context) (*dto.IndustryListResponse, error) {
	names, err := uc.industries.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.IndustryListResponse{Industries: names}, nil
}

// Create crea un sector. Devuelve domain.ErrDuplicate si el código ya existe.
func (uc *IndustryUseCase) Create(ctx context.Context, in dto.CreateIndustryRequest) (*dto.IndustryResponse, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	industry := &entity.Industry{Code: in.Code, Industry: in.Industry}
	if err := uc.industries.Create(ctx, industry); err != nil {
		return nil, err
	}
	return &dto.IndustryResponse{Industry: dto.IndustryBody{
		Code:     industry.Code,
		Industry: industry.Industry,
	}}, nil
}

// AddCompany asocia una empresa a un sector. Sector inexistente ->
// domain.ErrNotFound; empresa inexistente -> domain.ErrCompanyCodeUnknown;
// asociación repetida -> domain.ErrDuplicate.
func (uc *IndustryUseCase) AddCompany(ctx context.Context, indCode string, in dto.AddCompanyRequest) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if indCode == "" {
		return domain.ErrNotFound
	}
	return uc.industries.AddCompany(ctx, indCode, in.CompCode)
}
