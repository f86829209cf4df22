package usecase

import (
	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/Facturas-api/internal/domain"
)

// validate instancia compartida del validador de tags `validate` en los DTOs.
var validate = validator.New()

// validateStruct aplica los tags del DTO y normaliza el error al dominio.
func validateStruct(in any) error {
	if err := validate.Struct(in); err != nil {
		return domain.ErrInvalidInput
	}
	return nil
}
