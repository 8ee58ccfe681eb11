package models

// PaymentEventKind is the closed set of processor events the lifecycle reacts to
type PaymentEventKind string

const (
	PaymentEventSucceeded PaymentEventKind = "payment_intent.succeeded"
	PaymentEventFailed    PaymentEventKind = "payment_intent.payment_failed"
	// PaymentEventUnhandled covers every other processor event type
	PaymentEventUnhandled PaymentEventKind = "unhandled"
)

// PaymentIntentRequest is what the lifecycle asks the processor to create
type PaymentIntentRequest struct {
	AmountCents    int64
	Currency       string
	Metadata       map[string]string
	IdempotencyKey string
}

// PaymentIntent is the processor's reply to an intent creation
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
}

// PaymentEvent is a verified processor notification
type PaymentEvent struct {
	ID              string
	Kind            PaymentEventKind
	RawType         string
	PaymentIntentID string
	Metadata        map[string]string
}

// ChallengeID returns the challenge id carried in the intent metadata
func (e *PaymentEvent) ChallengeID() string {
	if e.Metadata == nil {
		return ""
	}
	return e.Metadata["challengeId"]
}

// CreatePaymentIntentRequest is the body of POST /payments/create-payment-intent
type CreatePaymentIntentRequest struct {
	ChallengeID string `json:"challengeId"`
}

// CreatePaymentIntentResponse returns the client confirmation secret
type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// WebhookAck is the reply body of a processed webhook delivery
type WebhookAck struct {
	Received bool `json:"received"`
}

// LifecycleEvent is published after a challenge changes state
type LifecycleEvent struct {
	Type        string          `json:"type"`
	ChallengeID string          `json:"challengeId"`
	UserID      string          `json:"userId,omitempty"`
	Status      ChallengeStatus `json:"status,omitempty"`
	PaymentID   string          `json:"paymentIntentId,omitempty"`
	OccurredAt  string          `json:"occurredAt"`
}

const (
	LifecycleEventPurchased     = "challenge.purchased"
	LifecycleEventActivated     = "challenge.activated"
	LifecycleEventPaymentFailed = "challenge.payment_failed"
	LifecycleEventStatusChanged = "challenge.status_changed"
)
