package log

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

// CorrelationIDKey guarda o ID de correlação da requisição no contexto
const CorrelationIDKey contextKey = "correlation_id"

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Setup configura o logger global do logrus. Um nível inválido cai para info.
func Setup(level, format string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %q, usando 'info'", level)
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	return lvl
}

// WithCorrelationID gera um novo ID e o anexa ao contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext devolve uma entry do logrus com o correlation_id do contexto, se houver
func ForContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logrus.StandardLogger())
	if id := GetCorrelationID(ctx); id != "" {
		return entry.WithField(string(CorrelationIDKey), id)
	}
	return entry
}
