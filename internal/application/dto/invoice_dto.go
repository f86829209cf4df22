package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /invoices.
// Amt se recibe crudo para validar "es un número" en el caso de uso
// (acepta número JSON o string numérico, como el isNaN clásico).
type CreateInvoiceRequest struct {
	CompCode string          `json:"comp_code" validate:"required"`
	Amt      json.RawMessage `json:"amt" validate:"required"`
}

// UpdateInvoiceRequest body para PUT /invoices/:id (reemplazo de amt y paid).
type UpdateInvoiceRequest struct {
	Amt  json.RawMessage `json:"amt" validate:"required"`
	Paid bool            `json:"paid"`
}

// InvoiceItem factura resumida en listados.
type InvoiceItem struct {
	ID       int    `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceBody factura completa en respuestas.
type InvoiceBody struct {
	ID       int             `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

// InvoiceDetail factura con su empresa embebida.
type InvoiceDetail struct {
	ID       int             `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  CompanyBody     `json:"company"`
}

// InvoiceListResponse salida de GET /invoices.
type InvoiceListResponse struct {
	Invoices []InvoiceItem `json:"invoices"`
}

// CreateInvoiceResponse salida de POST /invoices.
// La clave en plural viene del contrato original del API y se conserva.
type CreateInvoiceResponse struct {
	Invoices InvoiceBody `json:"invoices"`
}

// InvoiceResponse salida de PUT /invoices/:id.
type InvoiceResponse struct {
	Invoice InvoiceBody `json:"invoice"`
}

// InvoiceDetailResponse salida de GET /invoices/:id.
type InvoiceDetailResponse struct {
	Invoice InvoiceDetail `json:"invoice"`
}
