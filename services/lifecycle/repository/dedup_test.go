package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/pioneer-funding/server/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &database.RedisClient{Client: client}, mr
}

func TestEventDedup(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	dedup := NewEventDedup(redisClient, time.Hour)
	ctx := context.Background()

	processed, err := dedup.IsProcessed(ctx, "evt_1")
	require.NoError(t, err)
	assert.False(t, processed)

	require.NoError(t, dedup.MarkProcessed(ctx, "evt_1"))

	processed, err = dedup.IsProcessed(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, processed)
	assert.True(t, mr.Exists("payments:event:evt_1"))
	assert.Equal(t, time.Hour, mr.TTL("payments:event:evt_1"))

	mr.FastForward(time.Hour + time.Second)

	processed, err = dedup.IsProcessed(ctx, "evt_1")
	require.NoError(t, err)
	assert.False(t, processed)
}

func TestEventDedup_DefaultTTL(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	dedup := NewEventDedup(redisClient, 0)

	require.NoError(t, dedup.MarkProcessed(context.Background(), "evt_2"))

	assert.Equal(t, 24*time.Hour, mr.TTL("payments:event:evt_2"))
}

func TestEventDedup_RedisErrors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	dedup := NewEventDedup(&database.RedisClient{Client: client}, time.Hour)

	mock.ExpectExists("payments:event:evt_3").SetErr(errors.New("connection refused"))
	_, err := dedup.IsProcessed(context.Background(), "evt_3")
	assert.EqualError(t, err, "failed to check processed event: connection refused")

	mock.ExpectSet("payments:event:evt_3", "1", time.Hour).SetErr(errors.New("READONLY"))
	err = dedup.MarkProcessed(context.Background(), "evt_3")
	assert.EqualError(t, err, "failed to mark event processed: READONLY")

	assert.NoError(t, mock.ExpectationsWereMet())
}
