package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

// Broker publishes a JSON encoded message. Both the NATS and NSQ producers
// satisfy it.
type Broker interface {
	Publish(ctx context.Context, subject string, message interface{}) error
}

// EventGW publishes lifecycle events under a subject prefix
type EventGW struct {
	broker Broker
	prefix string
}

// NewEventGW creates an event gateway. A nil broker disables publishing.
func NewEventGW(broker Broker, prefix string) *EventGW {
	return &EventGW{broker: broker, prefix: strings.TrimSuffix(prefix, ".")}
}

// PublishLifecycleEvent publishes event to <prefix>.<subject>
func (g *EventGW) PublishLifecycleEvent(ctx context.Context, subject string, event *models.LifecycleEvent) error {
	if g.broker == nil {
		return nil
	}

	full := subject
	if g.prefix != "" {
		full = g.prefix + "." + subject
	}
	if err := g.broker.Publish(ctx, full, event); err != nil {
		return fmt.Errorf("failed to publish %s: %w", full, err)
	}
	return nil
}
