package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/apperror"
	"github.com/pioneer-funding/server/internal/pkg/logger"
	"github.com/pioneer-funding/server/internal/pkg/middleware"
	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/pioneer-funding/server/internal/utils"
	"github.com/pioneer-funding/server/services/lifecycle"
)

const (
	headerIdempotencyKey  = "Idempotency-Key"
	headerStripeSignature = "Stripe-Signature"

	// processor payloads are small; anything larger is not a real delivery
	maxWebhookBody = 1 << 20
)

// LifecycleHandler handles HTTP requests that move a challenge through its
// lifecycle
type LifecycleHandler struct {
	lifecycleUC lifecycle.LifecycleUC
}

// NewLifecycleHandler creates a new lifecycle handler
func NewLifecycleHandler(lifecycleUC lifecycle.LifecycleUC) *LifecycleHandler {
	return &LifecycleHandler{lifecycleUC: lifecycleUC}
}

// Purchase handles POST /challenges/purchase
func (h *LifecycleHandler) Purchase(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.PurchaseRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for purchase", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Type == "" || req.AccountSize <= 0 {
		return utils.BadRequestResponse(c, "Challenge type and account size are required")
	}

	resp, err := h.lifecycleUC.Purchase(c.Request().Context(), principal.UserID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Challenge purchase initiated", resp)
}

// UpdateStatus handles PUT /challenges/:id/status
func (h *LifecycleHandler) UpdateStatus(c echo.Context) error {
	challengeID := c.Param("id")
	if challengeID == "" {
		return utils.BadRequestResponse(c, "Challenge ID is required")
	}

	var req models.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Status == "" {
		return utils.BadRequestResponse(c, "Status is required")
	}

	challenge, err := h.lifecycleUC.UpdateStatus(c.Request().Context(), challengeID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Challenge status updated", challenge)
}

// CreatePaymentIntent handles POST /payments/create-payment-intent
func (h *LifecycleHandler) CreatePaymentIntent(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreatePaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.ChallengeID == "" {
		return utils.BadRequestResponse(c, "Challenge ID is required")
	}

	resp, err := h.lifecycleUC.CreatePaymentIntent(c.Request().Context(), principal.UserID, req.ChallengeID,
		c.Request().Header.Get(headerIdempotencyKey))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment intent created", resp)
}

// Webhook handles POST /payments/webhook. The body must reach signature
// verification byte for byte, so it is read raw instead of bound.
func (h *LifecycleHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody))
	if err != nil {
		return utils.BadRequestResponse(c, "Unreadable request body")
	}

	err = h.lifecycleUC.HandlePaymentEvent(c.Request().Context(), payload, c.Request().Header.Get(headerStripeSignature))
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, models.WebhookAck{Received: true})
	case errors.Is(err, apperror.ErrInvalidSignature):
		logger.WarnCtx(c.Request().Context(), "Rejected webhook delivery", logger.Err(err))
		return utils.BadRequestResponse(c, "Webhook Error: invalid signature")
	default:
		return utils.DomainErrorResponse(c, err)
	}
}
