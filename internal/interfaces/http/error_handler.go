package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Facturas-api/internal/application/dto"
	"github.com/rs/zerolog/log"
)

// respondError escribe el cuerpo de error estándar {"error": {message, status}}.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Error: dto.APIError{Message: message, Status: status},
	})
}

// ErrorHandler convierte errores no manejados por los handlers al cuerpo de
// error estándar. Todo lo que no sea un *fiber.Error se registra y responde
// como 500 sin filtrar detalle interno.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return respondError(c, fiberErr.Code, fiberErr.Message)
	}
	log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error no manejado")
	return respondError(c, fiber.StatusInternalServerError, "internal server error")
}
