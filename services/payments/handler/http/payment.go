package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/middleware"
	"github.com/pioneer-funding/server/internal/utils"
	"github.com/pioneer-funding/server/services/payments"
)

// PaymentHandler handles HTTP requests for payment history
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// ListTransactions handles GET /payments/transactions?page=&limit=
func (h *PaymentHandler) ListTransactions(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	p := utils.ParsePage(c.QueryParam("page"), c.QueryParam("limit"))
	result, err := h.paymentUC.ListTransactions(c.Request().Context(), principal.UserID, p.Page, p.Limit)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved", result)
}
