package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pioneer-funding/server/internal/pkg/apperror"
	"github.com/pioneer-funding/server/internal/pkg/circuitbreaker"
	"github.com/pioneer-funding/server/internal/pkg/metrics"
	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/pioneer-funding/server/internal/pkg/newrelic"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const stripeIntentsURL = "https://api.stripe.com/v1/payment_intents"

// StripeGW is the payment processor gateway backed by Stripe
type StripeGW struct {
	api           *client.API
	breaker       *circuitbreaker.CircuitBreaker
	webhookSecret string
	currency      string
}

// NewStripeGW creates a Stripe gateway using the default API backends
func NewStripeGW(cfg models.StripeConfig) *StripeGW {
	return NewStripeGWWithBackends(cfg, nil)
}

// NewStripeGWWithBackends creates a Stripe gateway on explicit backends.
// nil selects the Stripe defaults.
func NewStripeGWWithBackends(cfg models.StripeConfig, backends *stripe.Backends) *StripeGW {
	currency := cfg.Currency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	breaker := circuitbreaker.New(circuitbreaker.Config{
		Name:             "stripe",
		FailureThreshold: uint32(max(cfg.BreakerFailures, 0)),
		Cooldown:         time.Duration(cfg.BreakerCooldown) * time.Second,
		IsFailure:        isProcessorFailure,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
	})
	return &StripeGW{
		api:           client.New(cfg.SecretKey, backends),
		breaker:       breaker,
		webhookSecret: cfg.WebhookSecret,
		currency:      currency,
	}
}

// isProcessorFailure reports whether err says the processor itself is
// unhealthy. Declines and rejected parameters do not count.
func isProcessorFailure(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode > 0 {
		return stripeErr.HTTPStatusCode >= http.StatusInternalServerError ||
			stripeErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return true
}

// CreateIntent creates a payment intent. The idempotency key makes a retried
// request return the intent created the first time.
func (g *StripeGW) CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntent, error) {
	if req.AmountCents <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", apperror.ErrInvalidInput)
	}

	currency := req.Currency
	if currency == "" {
		currency = g.currency
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	var pi *stripe.PaymentIntent
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return newrelic.WithExternalSegment(ctx, "stripe", "PaymentIntents.New", stripeIntentsURL, func() error {
			var err error
			pi, err = g.api.PaymentIntents.New(params)
			return err
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &models.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// VerifyWebhook checks the Stripe-Signature header against the endpoint
// secret and decodes the event into the closed kind set
func (g *StripeGW) VerifyWebhook(payload []byte, signature string) (*models.PaymentEvent, error) {
	if g.webhookSecret == "" {
		return nil, errors.New("stripe webhook secret is not configured")
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidSignature, err)
	}

	pe := &models.PaymentEvent{
		ID:      event.ID,
		RawType: string(event.Type),
		Kind:    kindOf(string(event.Type)),
	}
	if pe.Kind == models.PaymentEventUnhandled {
		return pe, nil
	}

	if event.Data == nil {
		return nil, fmt.Errorf("event %s has no data: %w", event.ID, apperror.ErrInvalidInput)
	}
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, fmt.Errorf("failed to decode payment intent of event %s: %v: %w", event.ID, err, apperror.ErrInvalidInput)
	}
	pe.PaymentIntentID = pi.ID
	pe.Metadata = pi.Metadata

	return pe, nil
}

func kindOf(eventType string) models.PaymentEventKind {
	switch models.PaymentEventKind(eventType) {
	case models.PaymentEventSucceeded:
		return models.PaymentEventSucceeded
	case models.PaymentEventFailed:
		return models.PaymentEventFailed
	default:
		return models.PaymentEventUnhandled
	}
}
