package ledger

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

const transactionColumns = `id, user_id, challenge_id, amount, payment_intent_id, status, created_at, updated_at`

// GetTransactionByPaymentIntent loads the transaction joined to a payment intent
func (s *Store) GetTransactionByPaymentIntent(ctx context.Context, paymentIntentID string) (*models.Transaction, error) {
	var txn models.Transaction
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE payment_intent_id = $1`
	if err := s.db.GetContext(ctx, &txn, query, paymentIntentID); err != nil {
		return nil, wrap("get transaction", err)
	}
	return &txn, nil
}

// TransitionTransaction settles the pending transaction of a payment intent.
// When the transaction was already terminal it is returned unchanged with
// Applied false; the first terminal state wins.
func (s *Store) TransitionTransaction(ctx context.Context, paymentIntentID string, status models.TransactionStatus) (*models.TransitionResult, error) {
	var txn models.Transaction
	query := `
		UPDATE transactions SET status = $1, updated_at = $2
		WHERE payment_intent_id = $3 AND status = $4
		RETURNING ` + transactionColumns

	err := s.db.GetContext(ctx, &txn, query, status, models.Now(), paymentIntentID, models.TransactionStatusPending)
	if err == nil {
		return &models.TransitionResult{Transaction: &txn, Applied: true}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, wrap("transition transaction", err)
	}

	current, err := s.GetTransactionByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, err
	}
	return &models.TransitionResult{Transaction: current, Applied: false}, nil
}

// ListTransactionsByUser returns a page of the user's transactions, newest first
func (s *Store) ListTransactionsByUser(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error) {
	txns := []models.Transaction{}
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	if err := s.db.SelectContext(ctx, &txns, query, userID, limit, offset); err != nil {
		return nil, wrap("list transactions", err)
	}
	return txns, nil
}

// CountTransactionsByUser returns how many transactions the user has
func (s *Store) CountTransactionsByUser(ctx context.Context, userID string) (int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM transactions WHERE user_id = $1`, userID); err != nil {
		return 0, wrap("count transactions", err)
	}
	return total, nil
}

// SumCompletedTransactions returns the revenue of all settled payments
func (s *Store) SumCompletedTransactions(ctx context.Context) (int, error) {
	var total int
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE status = $1`
	if err := s.db.GetContext(ctx, &total, query, models.TransactionStatusCompleted); err != nil {
		return 0, wrap("sum transactions", err)
	}
	return total, nil
}
