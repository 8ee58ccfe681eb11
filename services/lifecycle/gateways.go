package lifecycle

import (
	"context"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/pioneer-funding/server/services/lifecycle PaymentGW,EventGW

// PaymentGW is the payment processor
type PaymentGW interface {
	CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntent, error)
	VerifyWebhook(payload []byte, signature string) (*models.PaymentEvent, error)
}

// EventGW publishes lifecycle events to the message broker
type EventGW interface {
	PublishLifecycleEvent(ctx context.Context, subject string, event *models.LifecycleEvent) error
}
