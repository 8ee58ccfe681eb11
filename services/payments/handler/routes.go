package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/newrelic"
	"github.com/pioneer-funding/server/services/payments/handler/http"
)

// Handler wires the payment history handlers to routes
type Handler struct {
	paymentHandler *http.PaymentHandler
}

// NewHandler creates the payment route handler
func NewHandler(paymentHandler *http.PaymentHandler) *Handler {
	return &Handler{paymentHandler: paymentHandler}
}

// RegisterRoutes mounts the read side of /payments
func (h *Handler) RegisterRoutes(api *echo.Group, bearer echo.MiddlewareFunc) {
	g := api.Group("/payments")
	g.GET("/transactions", newrelic.TraceHandler("ListTransactions", h.paymentHandler.ListTransactions), bearer)
}
