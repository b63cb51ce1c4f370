package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/prime-manager-api/internal/domain"
	"github.com/vfg2006/prime-manager-api/pkg/apiErrors"
	"github.com/vfg2006/prime-manager-api/pkg/log"
)

type fakeValidator struct {
	claims *domain.Claims
	err    error
}

func (f fakeValidator) ValidateToken(string) (*domain.Claims, error) {
	return f.claims, f.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	admin := &domain.Claims{Subject: "admin", RoleID: domain.RoleAdmin}

	tests := []struct {
		name       string
		path       string
		header     string
		validator  fakeValidator
		wantStatus int
	}{
		{name: "Rota pública dispensa token", path: "/v1/sales/2025/7", wantStatus: http.StatusNoContent},
		{name: "Login dispensa token", path: "/v1/admin/login", wantStatus: http.StatusNoContent},
		{name: "Rota admin sem header", path: "/v1/admin/reset", wantStatus: http.StatusUnauthorized},
		{name: "Header sem Bearer", path: "/v1/admin/reset", header: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "Token inválido", path: "/v1/cron/status", header: "Bearer abc", validator: fakeValidator{err: errors.New("x")}, wantStatus: http.StatusUnauthorized},
		{name: "Token válido", path: "/v1/cron/status", header: "Bearer abc", validator: fakeValidator{claims: admin}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler()).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		wantStatus int
	}{
		{name: "Sem claims", wantStatus: http.StatusUnauthorized},
		{name: "Role diferente", claims: &domain.Claims{RoleID: 2}, wantStatus: http.StatusForbidden},
		{name: "Administrador", claims: &domain.Claims{RoleID: domain.RoleAdmin}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
			rec := httptest.NewRecorder()
			handler := AdminOnly()(okHandler())
			if tt.claims != nil {
				req = req.WithContext(contextWithClaims(req, tt.claims))
			}

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:8501"})(okHandler())

	t.Run("Origem permitida recebe cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://localhost:8501")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, "http://localhost:8501", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Curinga libera a origem sem credenciais", func(t *testing.T) {
		wildcard := Cors([]string{"*"})(okHandler())
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://qualquer.example")
		rec := httptest.NewRecorder()

		wildcard.ServeHTTP(rec, req)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Origem listada junto do curinga mantém credenciais", func(t *testing.T) {
		mixed := Cors([]string{"*", "http://localhost:8501"})(okHandler())
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://localhost:8501")
		rec := httptest.NewRecorder()

		mixed.ServeHTTP(rec, req)
		assert.Equal(t, "http://localhost:8501", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Origem desconhecida não recebe cabeçalhos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Preflight responde sem chamar o handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/sales/2025/7", nil)
		req.Header.Set("Origin", "http://localhost:8501")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func contextWithClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}

func TestLoggingMiddleware_SetsRequestID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sales/2025/7", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestLogPanicMiddleware_KeepsCorrelationID(t *testing.T) {
	hook := logtest.NewGlobal()
	t.Cleanup(func() { logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks)) })

	// mesma ordem da cadeia global do servidor
	handler := LoggingMiddleware()(LogPanicMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sales/2025/7", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	requestID := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, requestID)

	var panicEntry *logrus.Entry
	for _, entry := range hook.AllEntries() {
		if _, ok := entry.Data["panic_error"]; ok {
			panicEntry = entry
		}
	}
	require.NotNil(t, panicEntry)
	assert.Equal(t, requestID, panicEntry.Data["correlation_id"])
}
