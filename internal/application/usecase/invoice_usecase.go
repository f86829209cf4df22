package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/domain"
	"github.com/jhoicas/Facturas-api/internal/domain/entity"
	"github.com/jhoicas/Facturas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// InvoiceUseCase aplica reglas de negocio para facturas.
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso con el puerto de persistencia.
func NewInvoiceUseCase(invoices repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices}
}

// List lista todas las facturas (id, comp_code) ordenadas por id.
func (uc *InvoiceUseCase) List(ctx context.Context) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceItem, 0, len(list))
	for _, inv := range list {
		items = append(items, dto.InvoiceItem{ID: inv.ID, CompCode: inv.CompCode})
	}
	return &dto.InvoiceListResponse{Invoices: items}, nil
}

// Get obtiene una factura con su empresa embebida.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int) (*dto.InvoiceDetailResponse, error) {
	invoice, company, err := uc.invoices.GetWithCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.InvoiceDetailResponse{Invoice: dto.InvoiceDetail{
		ID:       invoice.ID,
		Amt:      invoice.Amt,
		Paid:     invoice.Paid,
		AddDate:  invoice.AddDate,
		PaidDate: invoice.PaidDate,
		Company:  companyBody(company),
	}}, nil
}

// Create valida el monto y crea la factura. La existencia de comp_code la
// garantiza la foreign key (el repositorio traduce la violación a
// domain.ErrCompanyCodeUnknown), no una verificación previa.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.CreateInvoiceResponse, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	amt, err := parseAmount(in.Amt)
	if err != nil {
		return nil, err
	}
	invoice := &entity.Invoice{CompCode: in.CompCode, Amt: amt}
	if err := uc.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return &dto.CreateInvoiceResponse{Invoices: invoiceBody(invoice)}, nil
}

// Update reemplaza amt y paid. La transición de paid_date la resuelve el
// repositorio en un único UPDATE condicional.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	amt, err := parseAmount(in.Amt)
	if err != nil {
		return nil, err
	}
	invoice, err := uc.invoices.UpdateAmtPaid(ctx, id, amt, in.Paid)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: invoiceBody(invoice)}, nil
}

// Delete elimina una factura por id.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int) error {
	return uc.invoices.Delete(ctx, id)
}

// parseAmount interpreta el campo amt crudo: acepta un número JSON o un
// string numérico ("100.50"); cualquier otra cosa -> domain.ErrInvalidAmount.
func parseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(raw, &unquoted); err != nil {
			return decimal.Zero, domain.ErrInvalidAmount
		}
		s = strings.TrimSpace(unquoted)
	}
	amt, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	return amt, nil
}

func invoiceBody(inv *entity.Invoice) dto.InvoiceBody {
	return dto.InvoiceBody{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}
