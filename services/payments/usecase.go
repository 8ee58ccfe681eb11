package payments

import (
	"context"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/pioneer-funding/server/services/payments PaymentUC

// PaymentUC serves the caller's payment history
type PaymentUC interface {
	ListTransactions(ctx context.Context, userID string, page, limit int) (*models.TransactionPage, error)
}
