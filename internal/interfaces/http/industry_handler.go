package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/application/usecase"
	"github.com/jhoicas/Facturas-api/internal/domain"
)

// IndustryHandler maneja las peticiones HTTP para el recurso Industry.
type IndustryHandler struct {
	uc *usecase.IndustryUseCase
}

// NewIndustryHandler construye el handler.
func NewIndustryHandler(uc *usecase.IndustryUseCase) *IndustryHandler {
	return &IndustryHandler{uc: uc}
}

// List lista los nombres de todos los sectores.
// GET /industries
func (h *IndustryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create crea un sector.
// POST /industries
func (h *IndustryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIndustryRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusUnprocessableEntity, "invalid JSON body")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return respondError(c, fiber.StatusUnprocessableEntity, "code and industry are required")
		case errors.Is(err, domain.ErrDuplicate):
			return respondError(c, fiber.StatusConflict, "industry code already exists")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddCompany asocia una empresa a un sector.
// POST /industries/:code/companies
func (h *IndustryHandler) AddCompany(c *fiber.Ctx) error {
	code := c.Params("code")
	var in dto.AddCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusUnprocessableEntity, "invalid JSON body")
	}
	if err := h.uc.AddCompany(c.Context(), code, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return respondError(c, fiber.StatusUnprocessableEntity, "comp_code is required")
		case errors.Is(err, domain.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, fmt.Sprintf("No industry found with code %s", code))
		case errors.Is(err, domain.ErrCompanyCodeUnknown):
			return respondError(c, fiber.StatusUnprocessableEntity, "Company code not in Database")
		case errors.Is(err, domain.ErrDuplicate):
			return respondError(c, fiber.StatusConflict, "company already associated with industry")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StatusResponse{Status: "added"})
}
