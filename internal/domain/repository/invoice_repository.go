package repository

import (
	"context"

	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// List devuelve id y comp_code de todas las facturas, ordenadas por id.
	List(ctx context.Context) ([]*entity.Invoice, error)
	// GetWithCompany devuelve la factura junto con su empresa (join).
	// nil, nil, nil si la factura no existe.
	GetWithCompany(ctx context.Context, id int) (*entity.Invoice, *entity.Company, error)
	// ListIDsByCompany devuelve los ids de las facturas de una empresa, ordenados.
	ListIDsByCompany(ctx context.Context, compCode string) ([]int, error)
	// Create inserta la factura y completa ID, Paid, AddDate y PaidDate con los
	// valores generados por la base. La existencia de comp_code se delega a la
	// foreign key: una violación se traduce a domain.ErrCompanyCodeUnknown.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// UpdateAmtPaid reemplaza amt y paid en un único UPDATE condicional que
	// resuelve paid_date de forma atómica:
	//   - no pagada -> pagada: paid_date = fecha actual
	//   - -> no pagada:        paid_date = NULL
	//   - pagada -> pagada:    paid_date se conserva
	// Devuelve la factura resultante o domain.ErrNotFound.
	UpdateAmtPaid(ctx context.Context, id int, amt decimal.Decimal, paid bool) (*entity.Invoice, error)
	// Delete devuelve domain.ErrNotFound si no se borró ninguna fila.
	Delete(ctx context.Context, id int) error
}
