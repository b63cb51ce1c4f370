package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/prime-manager-api/internal/domain"
	"github.com/vfg2006/prime-manager-api/pkg/apiErrors"
	"github.com/vfg2006/prime-manager-api/pkg/log"
)

// RequireRole deixa passar apenas portadores de um dos roles informados.
// Depende das claims colocadas no contexto pelo AuthMiddleware.
func RequireRole(roles ...int) func(http.Handler) http.Handler {
	allowed := make(map[int]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if _, ok := allowed[claims.RoleID]; !ok {
				log.ForContext(r.Context()).WithFields(logrus.Fields{
					"subject": claims.Subject,
					"role_id": claims.RoleID,
					"path":    r.URL.Path,
				}).Warn("Acesso negado")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RequireRole(domain.RoleAdmin)
}
