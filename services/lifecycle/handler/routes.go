package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/newrelic"
	"github.com/pioneer-funding/server/services/lifecycle/handler/http"
)

// Handler wires the lifecycle HTTP handlers to routes
type Handler struct {
	lifecycleHandler *http.LifecycleHandler
}

// NewHandler creates the lifecycle route handler
func NewHandler(lifecycleHandler *http.LifecycleHandler) *Handler {
	return &Handler{lifecycleHandler: lifecycleHandler}
}

// RegisterRoutes mounts the write side of /challenges and /payments. The
// webhook is authenticated by its signature, not by bearer token.
func (h *Handler) RegisterRoutes(api *echo.Group, bearer, admin echo.MiddlewareFunc) {
	challenges := api.Group("/challenges")
	challenges.POST("/purchase", newrelic.TraceHandler("PurchaseChallenge", h.lifecycleHandler.Purchase), bearer)
	challenges.PUT("/:id/status", newrelic.TraceHandler("UpdateChallengeStatus", h.lifecycleHandler.UpdateStatus), bearer, admin)

	payments := api.Group("/payments")
	payments.POST("/create-payment-intent", newrelic.TraceHandler("CreatePaymentIntent", h.lifecycleHandler.CreatePaymentIntent), bearer)
	payments.POST("/webhook", newrelic.TraceHandler("PaymentWebhook", h.lifecycleHandler.Webhook))
}
