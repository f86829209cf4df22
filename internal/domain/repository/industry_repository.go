package repository

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// IndustryRepository define el puerto de persistencia para Industry y su
// relación N:M con Company.
type IndustryRepository interface {
	// ListNames devuelve los nombres de todos los sectores, en orden alfabético.
	ListNames(ctx context.Context) ([]string, error)
	// ListNamesByCompany devuelve los nombres de los sectores asociados a una empresa.
	ListNamesByCompany(ctx context.Context, compCode string) ([]string, error)
	// GetByCode devuelve nil, nil si el sector no existe.
	GetByCode(ctx context.Context, code string) (*entity.Industry, error)
	// Create devuelve domain.ErrDuplicate si el código ya existe.
	Create(ctx context.Context, industry *entity.Industry) error
	// AddCompany asocia una empresa al sector. Traduce violaciones de FK:
	// empresa inexistente -> domain.ErrCompanyCodeUnknown,
	// sector inexistente -> domain.ErrNotFound,
	// par repetido -> domain.ErrDuplicate.
	AddCompany(ctx context.Context, indCode, compCode string) error
}
