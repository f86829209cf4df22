package repository

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// List devuelve code y name de todas las empresas, ordenadas por nombre.
	List(ctx context.Context) ([]*entity.Company, error)
	// GetByCode devuelve nil, nil si la empresa no existe.
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
	// Create devuelve domain.ErrDuplicate si el código ya existe.
	Create(ctx context.Context, company *entity.Company) error
	// Update reemplaza name y description; domain.ErrNotFound si no hay fila.
	Update(ctx context.Context, company *entity.Company) error
	// Delete devuelve domain.ErrNotFound si no se borró ninguna fila.
	Delete(ctx context.Context, code string) error
}
