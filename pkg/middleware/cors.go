package middleware

import (
	"net/http"
	"strings"
)

// matchOrigin indica se a origem foi listada explicitamente ou se a lista contém "*"
func matchOrigin(allowedOrigins []string, origin string) (explicit, wildcard bool) {
	for _, allowedOrigin := range allowedOrigins {
		allowedOrigin = strings.TrimSpace(allowedOrigin)
		if origin == allowedOrigin {
			return true, false
		}
		if allowedOrigin == "*" {
			wildcard = true
		}
	}
	return false, wildcard
}

// Cors libera as origens configuradas em ALLOWED_ORIGINS e responde aos preflights.
// Com "*" qualquer origem é aceita, mas sem credenciais.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" {
				explicit, wildcard := matchOrigin(allowedOrigins, origin)
				switch {
				case explicit:
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					w.Header().Add("Vary", "Origin")
				case wildcard:
					w.Header().Set("Access-Control-Allow-Origin", "*")
				}

				if explicit || wildcard {
					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
					w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Requested-With")
					w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, "+RequestIDHeader)
					w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
