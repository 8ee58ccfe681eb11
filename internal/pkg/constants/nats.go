package constants

// Lifecycle event subjects, relative to the configured prefix
const (
	SubjectChallengePurchased     = "purchased"
	SubjectChallengeActivated     = "activated"
	SubjectChallengePaymentFailed = "payment_failed"
	SubjectChallengeStatusChanged = "status_changed"
)

// Idempotency key formats sent to the payment processor
const (
	IdempotencyPurchase      = "purchase-%s"          // Format: purchase-{challenge_id}
	IdempotencyPaymentIntent = "payment-intent-%s-%s" // Format: payment-intent-{challenge_id}-{client_key}
)
