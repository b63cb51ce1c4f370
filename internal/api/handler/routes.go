package handler

import (
	"net/http"

	"github.com/vfg2006/prime-manager-api/internal/api/handler/router"
	"github.com/vfg2006/prime-manager-api/internal/usecases/administrating"
	"github.com/vfg2006/prime-manager-api/internal/usecases/bonusing"
	"github.com/vfg2006/prime-manager-api/internal/usecases/exporting"
	"github.com/vfg2006/prime-manager-api/internal/usecases/ranking"
	"github.com/vfg2006/prime-manager-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Calendar(service bonusing.Bonuser) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/calendar/business-days",
			Method:  http.MethodGet,
			Handler: GetBusinessDays(service),
		},
	}
}

func BonusSheets(service bonusing.Bonuser) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/:year/:month",
			Method:  http.MethodGet,
			Handler: GetSalesSheet(service),
		},
		{
			Path:    "/v1/sales/:year/:month",
			Method:  http.MethodPut,
			Handler: SaveSalesSheet(service),
		},
		{
			Path:    "/v1/am/:year/:month",
			Method:  http.MethodGet,
			Handler: GetAmSheet(service),
		},
		{
			Path:    "/v1/am/:year/:month",
			Method:  http.MethodPut,
			Handler: SaveAmSheet(service),
		},
	}
}

func Dashboard(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/:year/podium",
			Method:  http.MethodGet,
			Handler: GetMonthlyPodium(service),
		},
		{
			Path:    "/v1/dashboard/:year/quarters/:quarter",
			Method:  http.MethodGet,
			Handler: GetQuarterlyReview(service),
		},
	}
}

func Admin(service administrating.Administrator, exporter exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/admin/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/admin/reset",
			Method:      http.MethodPost,
			Handler:     ResetDatabase(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/export/:file",
			Method:      http.MethodGet,
			Handler:     Export(exporter),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
