package metrics

import (
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Purchases = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pioneer_challenge_purchases_total",
			Help: "Number of challenge purchase attempts by type and result",
		},
		[]string{"type", "result"},
	)

	WebhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pioneer_payment_webhook_events_total",
			Help: "Number of payment webhook deliveries by event kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	ChallengeTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pioneer_challenge_transitions_total",
			Help: "Number of applied challenge status transitions",
		},
		[]string{"from", "to"},
	)

	CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "pioneer_circuit_breaker_state",
			Help: "Circuit breaker state per dependency (0 closed, 1 open, 2 half open)",
		},
		[]string{"name"},
	)

	PaymentIntentLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "pioneer_payment_intent_create_seconds",
			Help: "Time taken to create a payment intent at the processor",
		},
	)
)

var registerOnce sync.Once

// Register adds the collectors to the default registry
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(Purchases, WebhookEvents, ChallengeTransitions, CircuitBreakerState, PaymentIntentLatency)
	})
}

// Handler serves the default registry for echo
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
