package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/logger"
	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewGracefulServer_AppliesTimeouts(t *testing.T) {
	e := echo.New()
	s := NewGracefulServer(e, logger.NewFromZap(zap.NewNop()), models.ServerConfig{
		Port: 5000, ReadTimeout: 15, WriteTimeout: 20,
	}, nil)

	assert.Equal(t, 15*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, 20*time.Second, e.Server.WriteTimeout)
	assert.Equal(t, 30*time.Second, s.shutdownTimeout)
	assert.Equal(t, ":5000", s.addr)
}

func TestShutdownManager_ReverseOrderAndContinuesOnError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sm := NewShutdownManager(logger.NewFromZap(zap.New(core)))

	var order []string
	sm.Register("postgres", func(context.Context) error {
		order = append(order, "postgres")
		return nil
	})
	sm.Register("redis", func(context.Context) error {
		order = append(order, "redis")
		return errors.New("already closed")
	})
	sm.Register("nats", func(context.Context) error {
		order = append(order, "nats")
		return nil
	})

	sm.Shutdown(context.Background())

	assert.Equal(t, []string{"nats", "redis", "postgres"}, order)
	assert.Equal(t, 1, logs.FilterMessage("Error during component shutdown").Len())
}

func TestGracefulServer_ShutdownWithoutStart(t *testing.T) {
	closed := false
	sm := NewShutdownManager(logger.NewFromZap(zap.NewNop()))
	sm.Register("db", func(context.Context) error {
		closed = true
		return nil
	})

	s := NewGracefulServer(echo.New(), logger.NewFromZap(zap.NewNop()), models.ServerConfig{ShutdownTimeout: 1}, sm)
	assert.NoError(t, s.Shutdown())
	assert.True(t, closed)
}
