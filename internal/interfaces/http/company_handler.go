package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/jhoicas/Facturas-api/internal/application/usecase"
	"github.com/jhoicas/Facturas-api/internal/domain"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.CompanyListResponse
// @Router       /companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener empresa por código, con facturas y sectores
// @Tags         companies
// @Produce      json
// @Param        code  path  string  true  "Código de la empresa"
// @Success      200  {object}  dto.CompanyDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{code} [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	code := c.Params("code")
	out, err := h.uc.Get(c.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, fmt.Sprintf("No company found with code %s", code))
		}
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear empresa (código derivado del nombre)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusUnprocessableEntity, "invalid JSON body")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return respondError(c, fiber.StatusUnprocessableEntity, "name is required")
		case errors.Is(err, domain.ErrDuplicate):
			return respondError(c, fiber.StatusConflict, "company code already exists")
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar nombre y descripción de una empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Código de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Datos de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{code} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	code := c.Params("code")
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusUnprocessableEntity, "invalid JSON body")
	}
	out, err := h.uc.Update(c.Context(), code, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return respondError(c, fiber.StatusUnprocessableEntity, "name is required")
		case errors.Is(err, domain.ErrNotFound):
			return respondError(c, fiber.StatusNotFound, fmt.Sprintf("No company found with code %s", code))
		}
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empresa (facturas y asociaciones en cascada)
// @Tags         companies
// @Produce      json
// @Param        code  path  string  true  "Código de la empresa"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /companies/{code} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	code := c.Params("code")
	if err := h.uc.Delete(c.Context(), code); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return respondError(c, fiber.StatusNotFound, fmt.Sprintf("No company found with code %s", code))
		}
		return err
	}
	return c.JSON(dto.StatusResponse{Status: "deleted"})
}
