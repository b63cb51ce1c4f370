package bonusing

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/prime-manager-api/internal/domain"
)

func TestValidateStruct(t *testing.T) {
	t.Run("Feriados fora do intervalo", func(t *testing.T) {
		err := validateStruct(holidaysRequest{Holidays: MaxHolidays + 1})

		var validationErr *domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "Holidays", validationErr.Field)
		assert.Equal(t, "deve estar entre 0 e 10", validationErr.Reason)
	})

	t.Run("Feriados nos limites", func(t *testing.T) {
		assert.NoError(t, validateStruct(holidaysRequest{Holidays: MinHolidays}))
		assert.NoError(t, validateStruct(holidaysRequest{Holidays: MaxHolidays}))
	})

	t.Run("Nome longo dentro da lista de registros", func(t *testing.T) {
		err := validateStruct(salesSaveRequest{Records: []domain.SalesRecord{
			{CollaboratorName: "Ana"},
			{CollaboratorName: strings.Repeat("a", 121)},
		}})

		var validationErr *domain.ValidationError
		assert.True(t, errors.As(err, &validationErr))
		assert.Equal(t, "Records[1].CollaboratorName", validationErr.Field)
	})
}
