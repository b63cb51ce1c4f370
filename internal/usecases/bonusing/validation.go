package bonusing

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/prime-manager-api/internal/domain"
)

// Limites aceitos para o número de feriados informado
const (
	MinHolidays = 0
	MaxHolidays = 10
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("holidays", func(fl validator.FieldLevel) bool {
		h := fl.Field().Int()
		return h >= MinHolidays && h <= MaxHolidays
	})
	return v
}

type salesSaveRequest struct {
	Holidays int                  `validate:"holidays"`
	Records  []domain.SalesRecord `validate:"dive"`
}

type amSaveRequest struct {
	Records []domain.AmRecord `validate:"dive"`
}

type holidaysRequest struct {
	Holidays int `validate:"holidays"`
}

// validateStruct traduz os erros do validator para um domain.ValidationError
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return domain.NewValidationError("request", err.Error())
	}

	first := validationErrors[0]
	if first.Tag() == "holidays" {
		return domain.NewValidationError("Holidays", fmt.Sprintf("deve estar entre %d e %d", MinHolidays, MaxHolidays))
	}
	return domain.NewValidationError(
		fieldName(first.Namespace()),
		fmt.Sprintf("falhou na regra %s=%s", first.Tag(), first.Param()),
	)
}

// fieldName remove o nome do struct de requisição do namespace ("salesSaveRequest.Records[2].CollaboratorName")
func fieldName(namespace string) string {
	if pos := strings.Index(namespace, "."); pos >= 0 {
		return namespace[pos+1:]
	}
	return namespace
}
