package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/prime-manager-api/internal/domain"
	"github.com/vfg2006/prime-manager-api/internal/usecases/ranking"
)

// GetMonthlyPodium responde /v1/dashboard/:year/podium?month=Juillet
func GetMonthlyPodium(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := parseYear(httprouter.ParamsFromContext(r.Context()).ByName("year"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		period, err := domain.NewPeriod(r.URL.Query().Get("month"), year)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		podium, err := service.MonthlyPodium(r.Context(), period)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, podium)
	}
}

func GetQuarterlyReview(service ranking.RankingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		year, err := parseYear(params.ByName("year"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		quarter, err := domain.ParseQuarter(params.ByName("quarter"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		review, err := service.QuarterlyReview(r.Context(), year, quarter)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, review)
	}
}
