package usecase

import (
	"context"

	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/pioneer-funding/server/internal/utils"
)

// ListTransactions returns one page of the user's transactions, newest first.
// Out of range page or limit values are normalized.
func (uc *PaymentUC) ListTransactions(ctx context.Context, userID string, page, limit int) (*models.TransactionPage, error) {
	p := utils.NewPage(page, limit)

	total, err := uc.repo.CountTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	transactions := []models.Transaction{}
	if p.Offset < total {
		transactions, err = uc.repo.ListTransactionsByUser(ctx, userID, p.Limit, p.Offset)
		if err != nil {
			return nil, err
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}
	}

	return &models.TransactionPage{
		Transactions: transactions,
		Pagination:   p.Paginate(total),
	}, nil
}
