package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/application/usecase"
	"github.com/jhoicas/Facturas-api/internal/domain"
)

// InvoiceHandler maneja las peticiones HTTP para el recurso Invoice.
type InvoiceHandler struct {
	uc *usecase.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List lista todas las facturas.
// GET /invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Get obtiene una factura con su empresa embebida.
// GET /invoices/:id
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	id, ok := invoiceID(c)
	if !ok {
		return invoiceNotFound(c, c.Params("id"))
	}
	out, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return invoiceNotFound(c, c.Params("id"))
		}
		return err
	}
	return c.JSON(out)
}

// Create crea una factura. El monto debe ser numérico y la empresa existir.
// POST /invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusUnprocessableEntity, "invalid JSON body")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if status, msg, ok := invoiceErrorResponse(err); ok {
			return respondError(c, status, msg)
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update reemplaza amt y paid; paid_date se resuelve atómicamente en la base.
// PUT /invoices/:id
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id, ok := invoiceID(c)
	if !ok {
		return invoiceNotFound(c, c.Params("id"))
	}
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusUnprocessableEntity, "invalid JSON body")
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return invoiceNotFound(c, c.Params("id"))
		}
		if status, msg, ok := invoiceErrorResponse(err); ok {
			return respondError(c, status, msg)
		}
		return err
	}
	return c.JSON(out)
}

// Delete elimina una factura por id.
// DELETE /invoices/:id
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, ok := invoiceID(c)
	if !ok {
		return invoiceNotFound(c, c.Params("id"))
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return invoiceNotFound(c, c.Params("id"))
		}
		return err
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}

func invoiceID(c *fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	return id, err == nil
}

func invoiceNotFound(c *fiber.Ctx, id string) error {
	return respondError(c, fiber.StatusNotFound, fmt.Sprintf("No invoice found with id %s", id))
}

// invoiceErrorResponse mapea los errores de validación de facturas a su
// respuesta 422 con el mensaje del contrato.
func invoiceErrorResponse(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return fiber.StatusUnprocessableEntity, "Amount needs to be a number", true
	case errors.Is(err, domain.ErrCompanyCodeUnknown):
		return fiber.StatusUnprocessableEntity, "Company code not in Database", true
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusUnprocessableEntity, "comp_code and amt are required", true
	}
	return 0, "", false
}
