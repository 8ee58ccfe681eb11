package logger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(level zapcore.Level) (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewFromZap(zap.New(core)), logs
}

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	l, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, Service: "pioneer-test"}, nil)
	require.NoError(t, err)

	l.Info("hello", String("k", "v"))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"service":"pioneer-test"`)
}

func TestNewZapLogger_BadLevelDefaultsToInfo(t *testing.T) {
	l, err := NewZapLogger(ZapConfig{Level: "loud"}, nil)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestLogHTTPRequest_Levels(t *testing.T) {
	tests := []struct {
		status int
		level  zapcore.Level
		msg    string
	}{
		{http.StatusOK, zapcore.InfoLevel, "Request processed"},
		{http.StatusNotFound, zapcore.WarnLevel, "Client error"},
		{http.StatusBadGateway, zapcore.ErrorLevel, "Server error"},
	}

	for _, tt := range tests {
		l, logs := observed(zapcore.DebugLevel)
		l.LogHTTPRequest(nil, "GET", "/api/challenges", "127.0.0.1", "u1", "req-1", tt.status, time.Millisecond, nil)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, tt.level, entry.Level)
		assert.Equal(t, tt.msg, entry.Message)
		assert.Equal(t, "u1", entry.ContextMap()["user_id"])
	}
}

func TestZapEchoMiddleware_LogsHandlerErrorStatus(t *testing.T) {
	l, logs := observed(zapcore.DebugLevel)
	e := echo.New()
	e.Use(ZapEchoMiddleware(l))
	e.GET("/boom", func(c echo.Context) error {
		requestcontext.SetUserID(c, "u9")
		return echo.NewHTTPError(http.StatusServiceUnavailable, "down")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "u9", entry.ContextMap()["user_id"])
}

func TestCtxLogging_RequestIdentifiers(t *testing.T) {
	l, logs := observed(zapcore.DebugLevel)
	SetGlobalLogger(l)
	defer SetGlobalLogger(nil)

	ctx := requestcontext.WithUserID(requestcontext.WithRequestID(context.Background(), "req-7"), "u3")
	InfoCtx(ctx, "with ids")
	WarnCtx(context.Background(), "without ids")

	require.Equal(t, 2, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-7", fields["request_id"])
	assert.Equal(t, "u3", fields["user_id"])
	assert.NotContains(t, logs.All()[1].ContextMap(), "request_id")
	assert.NotContains(t, logs.All()[1].ContextMap(), "user_id")
}

func TestGlobalLogger(t *testing.T) {
	l, logs := observed(zapcore.DebugLevel)
	SetGlobalLogger(l)
	defer SetGlobalLogger(nil)

	Warn("careful", Int("n", 3))
	Error("failed", Err(errors.New("boom")))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, int64(3), logs.All()[0].ContextMap()["n"])
	assert.Equal(t, "boom", logs.All()[1].ContextMap()["error"])
}

func TestGetGlobalLogger_Default(t *testing.T) {
	SetGlobalLogger(nil)
	assert.NotNil(t, GetGlobalLogger())
}
