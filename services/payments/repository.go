package payments

import (
	"context"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/pioneer-funding/server/services/payments TransactionRepo

// TransactionRepo reads transactions from the ledger
type TransactionRepo interface {
	ListTransactionsByUser(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error)
	CountTransactionsByUser(ctx context.Context, userID string) (int, error)
}
