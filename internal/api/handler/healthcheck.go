package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		}

		if err := db.Ping(r.Context()); err != nil {
			logrus.WithError(err).Warn("healthcheck: banco de dados indisponível")
			status["database"] = "unavailable"
			writeJSON(w, http.StatusServiceUnavailable, status)
			return
		}

		writeJSON(w, http.StatusOK, status)
	})
}
