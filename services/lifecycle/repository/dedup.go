package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pioneer-funding/server/internal/pkg/constants"
	"github.com/pioneer-funding/server/internal/pkg/database"
)

const processedMarker = "1"

// EventDedup records processed webhook event ids in Redis
type EventDedup struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewEventDedup creates a dedup store. Entries expire after ttl.
func NewEventDedup(redisClient *database.RedisClient, ttl time.Duration) *EventDedup {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &EventDedup{redisClient: redisClient, ttl: ttl}
}

// IsProcessed reports whether eventID was marked processed
func (d *EventDedup) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	ok, err := d.redisClient.Exists(ctx, fmt.Sprintf(constants.KeyProcessedPaymentEvent, eventID))
	if err != nil {
		return false, fmt.Errorf("failed to check processed event: %w", err)
	}
	return ok, nil
}

// MarkProcessed remembers eventID for the configured ttl
func (d *EventDedup) MarkProcessed(ctx context.Context, eventID string) error {
	key := fmt.Sprintf(constants.KeyProcessedPaymentEvent, eventID)
	if err := d.redisClient.Set(ctx, key, processedMarker, d.ttl); err != nil {
		return fmt.Errorf("failed to mark event processed: %w", err)
	}
	return nil
}
