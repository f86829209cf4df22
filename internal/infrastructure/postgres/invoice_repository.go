package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o mock (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// List devuelve id y comp_code de todas las facturas ordenadas por id.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, `SELECT id, comp_code FROM invoices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// GetWithCompany obtiene una factura y su empresa en un solo join.
// Devuelve nil, nil, nil si la factura no existe.
func (r *InvoiceRepo) GetWithCompany(ctx context.Context, id int) (*entity.Invoice, *entity.Company, error) {
	query := `
		SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date,
		       c.code, c.name, c.description
		FROM invoices i
		JOIN companies c ON c.code = i.comp_code
		WHERE i.id = $1`
	var inv entity.Invoice
	var comp entity.Company
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
		&comp.Code, &comp.Name, &comp.Description,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, &comp, nil
}

// ListIDsByCompany devuelve los ids de factura de una empresa, ordenados.
func (r *InvoiceRepo) ListIDsByCompany(ctx context.Context, compCode string) ([]int, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM invoices WHERE comp_code = $1 ORDER BY id`, compCode)
	if err != nil {
		return nil, fmt.Errorf("list invoice ids: %w", err)
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan invoice id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Create inserta la factura en un único INSERT; la existencia de la empresa la
// garantiza la foreign key, sin ventana entre verificación e inserción.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING id, comp_code, amt, paid, add_date, paid_date`
	err := r.q.QueryRow(ctx, query, invoice.CompCode, invoice.Amt).Scan(
		&invoice.ID, &invoice.CompCode, &invoice.Amt,
		&invoice.Paid, &invoice.AddDate, &invoice.PaidDate,
	)
	if err != nil {
		if _, ok := isForeignKeyViolation(err); ok {
			return domain.ErrCompanyCodeUnknown
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// UpdateAmtPaid aplica amt y paid resolviendo paid_date en el mismo UPDATE:
// la decisión (no pagada->pagada fija la fecha, ->no pagada la limpia,
// pagada->pagada la conserva) la evalúa PostgreSQL de forma atómica.
func (r *InvoiceRepo) UpdateAmtPaid(ctx context.Context, id int, amt decimal.Decimal, paid bool) (*entity.Invoice, error) {
	query := `
		UPDATE invoices
		SET amt = $2,
		    paid = $3,
		    paid_date = CASE
		        WHEN $3 AND paid_date IS NULL THEN CURRENT_DATE
		        WHEN NOT $3 THEN NULL
		        ELSE paid_date
		    END
		WHERE id = $1
		RETURNING id, comp_code, amt, paid, add_date, paid_date`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id, amt, paid).Scan(
		&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return &inv, nil
}

// Delete elimina una factura por id.
func (r *InvoiceRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
