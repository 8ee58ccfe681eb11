package constants

// Redis key formats
const (
	// Payment webhooks
	KeyProcessedPaymentEvent = "payments:event:%s" // Format: payments:event:{processor_event_id}

	// Rate limiting
	KeyRateLimitAuth = "rate:auth"
)
