package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/prime-manager-api/internal/domain"
	"github.com/vfg2006/prime-manager-api/internal/scheduler"
	"github.com/vfg2006/prime-manager-api/internal/usecases/administrating"
	"github.com/vfg2006/prime-manager-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError traduz os erros dos casos de uso para o envelope da API
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var authErr *administrating.AuthError
	var persistenceErr *domain.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, validationErr.Error(), map[string]string{
			"field":  validationErr.Field,
			"reason": validationErr.Reason,
		})
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), nil)
	case errors.As(err, &persistenceErr):
		logrus.WithError(err).Error("Erro de persistência")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar o banco de dados", nil)
	case errors.Is(err, scheduler.ErrJobRunning):
		apiErrors.WriteError(w, apiErrors.ErrConflict, err.Error(), nil)
	default:
		logrus.WithError(err).Error("Erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

// periodFromParams lê :year e :month da rota
func periodFromParams(r *http.Request) (domain.Period, error) {
	params := httprouter.ParamsFromContext(r.Context())

	year, err := parseYear(params.ByName("year"))
	if err != nil {
		return domain.Period{}, err
	}

	return domain.NewPeriod(params.ByName("month"), year)
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || year < 1900 || year > 9999 {
		return 0, domain.NewValidationError("year", "ano inválido: "+s)
	}
	return year, nil
}

// holidaysFromQuery lê ?holidays=N, 0 quando ausente
func holidaysFromQuery(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("holidays"))
	if raw == "" {
		return 0, nil
	}

	holidays, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError("holidays", "número de feriados inválido: "+raw)
	}
	return holidays, nil
}
