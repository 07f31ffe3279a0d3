package logger_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

func observed() (*logger.ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return logger.NewFromZap(zap.New(core)), logs
}

func TestZapLogger_TypedFields(t *testing.T) {
	log, logs := observed()

	log.WithFields(interfaces.String("service", "catalog")).
		Error("boom", interfaces.Int("attempt", 2), interfaces.Error(errors.New("down")))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "boom", entry.Message)
	ctx := entry.ContextMap()
	assert.Equal(t, "catalog", ctx["service"])
	assert.Equal(t, int64(2), ctx["attempt"])
	assert.Equal(t, "down", ctx["error"])
}

func TestFromContext(t *testing.T) {
	assert.IsType(t, logger.NoopLogger{}, logger.FromContext(context.Background()))

	log, _ := observed()
	ctx := logger.WithContext(context.Background(), log)
	assert.Same(t, log, logger.FromContext(ctx))
}

func TestRequestLogger(t *testing.T) {
	log, logs := observed()
	var scoped interfaces.Logger
	handler := logger.RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scoped = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/categories", nil))

	require.NotNil(t, scoped)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "http request completed", entry.Message)
	assert.Equal(t, "/categories", entry.ContextMap()["path"])
	assert.Equal(t, int64(http.StatusTeapot), entry.ContextMap()["status"])
}

func TestConfig_Build(t *testing.T) {
	cfg := logger.DefaultConfig()
	cfg.Level = "not-a-level"

	log, err := cfg.Build()
	require.NoError(t, err)
	assert.NotNil(t, log.Zap())
}
