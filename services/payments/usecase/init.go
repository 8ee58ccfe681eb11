package usecase

import (
	"github.com/pioneer-funding/server/services/payments"
)

// PaymentUC implements payments.PaymentUC
type PaymentUC struct {
	repo payments.TransactionRepo
}

// NewPaymentUC creates a new payment history use case
func NewPaymentUC(repo payments.TransactionRepo) *PaymentUC {
	return &PaymentUC{repo: repo}
}
