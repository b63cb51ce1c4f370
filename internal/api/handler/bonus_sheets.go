package handler

import (
	"net/http"

	"github.com/vfg2006/prime-manager-api/internal/domain"
	"github.com/vfg2006/prime-manager-api/internal/usecases/bonusing"
	"github.com/vfg2006/prime-manager-api/pkg/apiErrors"
)

type SaveSalesRequest struct {
	Records []domain.SalesRecord `json:"records"`
}

type SaveAmRequest struct {
	Records []domain.AmRecord `json:"records"`
}

func GetBusinessDays(service bonusing.Bonuser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		year, err := parseYear(query.Get("year"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		period, err := domain.NewPeriod(query.Get("month"), year)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		holidays, err := holidaysFromQuery(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		calendar, err := service.Calendar(period, holidays)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, calendar)
	}
}

func GetSalesSheet(service bonusing.Bonuser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromParams(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		holidays, err := holidaysFromQuery(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		sheet, err := service.LoadSalesSheet(r.Context(), period, holidays)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sheet)
	}
}

func SaveSalesSheet(service bonusing.Bonuser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromParams(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		holidays, err := holidaysFromQuery(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		var req SaveSalesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		sheet, err := service.SaveSalesSheet(r.Context(), period, holidays, req.Records)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sheet)
	}
}

func GetAmSheet(service bonusing.Bonuser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromParams(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		sheet, err := service.LoadAmSheet(r.Context(), period)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sheet)
	}
}

func SaveAmSheet(service bonusing.Bonuser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromParams(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		var req SaveAmRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato de requisição inválido", nil)
			return
		}

		sheet, err := service.SaveAmSheet(r.Context(), period, req.Records)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, sheet)
	}
}
