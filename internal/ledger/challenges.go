package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pioneer-funding/server/internal/pkg/apperror"
	"github.com/pioneer-funding/server/internal/pkg/models"
)

const challengeColumns = `id, user_id, type, account_size, amount, status, payment_status,
	payment_intent_id, phase, rules, metrics, created_at, updated_at`

// CreateChallenge inserts a challenge
func (s *Store) CreateChallenge(ctx context.Context, challenge *models.Challenge) error {
	now := models.Now()
	challenge.CreatedAt = now
	challenge.UpdatedAt = now

	query := `
		INSERT INTO challenges (id, user_id, type, account_size, amount, status,
			payment_status, payment_intent_id, phase, rules, metrics, created_at, updated_at
		) VALUES (:id, :user_id, :type, :account_size, :amount, :status,
			:payment_status, :payment_intent_id, :phase, :rules, :metrics, :created_at, :updated_at)
	`
	if _, err := s.db.NamedExecContext(ctx, query, challenge); err != nil {
		return wrap("insert challenge", err)
	}
	return nil
}

// GetChallenge loads a challenge by id
func (s *Store) GetChallenge(ctx context.Context, id string) (*models.Challenge, error) {
	var challenge models.Challenge
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE id = $1`
	if err := s.db.GetContext(ctx, &challenge, query, id); err != nil {
		return nil, wrap("get challenge", err)
	}
	return &challenge, nil
}

// ListChallengesByUser returns the user's challenges, newest first
func (s *Store) ListChallengesByUser(ctx context.Context, userID string) ([]models.Challenge, error) {
	challenges := []models.Challenge{}
	query := `SELECT ` + challengeColumns + ` FROM challenges WHERE user_id = $1 ORDER BY created_at DESC`
	if err := s.db.SelectContext(ctx, &challenges, query, userID); err != nil {
		return nil, wrap("list challenges", err)
	}
	return challenges, nil
}

// ListChallengesByUserStatuses returns the user's challenges whose status is
// one of statuses, newest first
func (s *Store) ListChallengesByUserStatuses(ctx context.Context, userID string, statuses []models.ChallengeStatus) ([]models.Challenge, error) {
	challenges := []models.Challenge{}
	if len(statuses) == 0 {
		return challenges, nil
	}

	query, args, err := sqlx.In(`SELECT `+challengeColumns+` FROM challenges
		WHERE user_id = ? AND status IN (?) ORDER BY created_at DESC`, userID, statuses)
	if err != nil {
		return nil, fmt.Errorf("failed to build challenge query: %w", err)
	}
	if err := s.db.SelectContext(ctx, &challenges, s.db.Rebind(query), args...); err != nil {
		return nil, wrap("list challenges", err)
	}
	return challenges, nil
}

// RecentChallenges returns the newest challenges across all users
func (s *Store) RecentChallenges(ctx context.Context, limit int) ([]models.Challenge, error) {
	challenges := []models.Challenge{}
	query := `SELECT ` + challengeColumns + ` FROM challenges ORDER BY created_at DESC LIMIT $1`
	if err := s.db.SelectContext(ctx, &challenges, query, limit); err != nil {
		return nil, wrap("list recent challenges", err)
	}
	return challenges, nil
}

// CountChallenges returns the number of challenges ever purchased
func (s *Store) CountChallenges(ctx context.Context) (int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM challenges`); err != nil {
		return 0, wrap("count challenges", err)
	}
	return total, nil
}

// TransitionChallenge moves the challenge to t.To and t.PaymentStatus if its
// status is still one of t.From. It reports whether the row changed.
func (s *Store) TransitionChallenge(ctx context.Context, t models.ChallengeTransition) (bool, error) {
	if len(t.From) == 0 {
		return false, fmt.Errorf("transition challenge: %w", apperror.ErrInvalidTransition)
	}

	query, args, err := sqlx.In(`UPDATE challenges SET status = ?, payment_status = ?, updated_at = ?
		WHERE id = ? AND status IN (?)`, t.To, t.PaymentStatus, models.Now(), t.ChallengeID, t.From)
	if err != nil {
		return false, fmt.Errorf("failed to build transition query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return false, wrap("transition challenge", err)
	}
	return applied(result, "transition challenge")
}

// SetChallengeStatus sets status (and metrics when non-nil) only while the
// stored status equals expected. It reports whether the row changed.
func (s *Store) SetChallengeStatus(ctx context.Context, id string, expected, status models.ChallengeStatus, metrics *models.ChallengeMetrics) (bool, error) {
	var (
		result sql.Result
		err    error
	)
	if metrics != nil {
		query := `UPDATE challenges SET status = $1, metrics = $2, updated_at = $3 WHERE id = $4 AND status = $5`
		result, err = s.db.ExecContext(ctx, query, status, *metrics, models.Now(), id, expected)
	} else {
		query := `UPDATE challenges SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`
		result, err = s.db.ExecContext(ctx, query, status, models.Now(), id, expected)
	}
	if err != nil {
		return false, wrap("set challenge status", err)
	}
	return applied(result, "set challenge status")
}

// DiscardChallenge deletes a provisional challenge. Only a pending challenge
// with no payment intent attached is removed.
func (s *Store) DiscardChallenge(ctx context.Context, id string) error {
	query := `DELETE FROM challenges WHERE id = $1 AND status = $2 AND payment_intent_id IS NULL`
	if _, err := s.db.ExecContext(ctx, query, id, models.ChallengeStatusPending); err != nil {
		return wrap("discard challenge", err)
	}
	return nil
}

// AttachPaymentIntent records txn.PaymentIntentID on the pending challenge and
// inserts the pending transaction in one SQL transaction. A transaction that
// already exists for the intent is kept as is.
func (s *Store) AttachPaymentIntent(ctx context.Context, challengeID string, txn *models.Transaction) error {
	now := models.Now()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE challenges SET payment_intent_id = $1, updated_at = $2 WHERE id = $3 AND status = $4`
	result, err := tx.ExecContext(ctx, query, txn.PaymentIntentID, now, challengeID, models.ChallengeStatusPending)
	if err != nil {
		return wrap("attach payment intent", err)
	}
	ok, err := applied(result, "attach payment intent")
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("attach payment intent: challenge is not pending: %w", apperror.ErrConflict)
	}

	query = `
		INSERT INTO transactions (id, user_id, challenge_id, amount, payment_intent_id,
			status, created_at, updated_at
		) VALUES (:id, :user_id, :challenge_id, :amount, :payment_intent_id,
			:status, :created_at, :updated_at)
		ON CONFLICT (payment_intent_id) DO NOTHING
	`
	if _, err = tx.NamedExecContext(ctx, query, txn); err != nil {
		return wrap("insert transaction", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func applied(result sql.Result, op string) (bool, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to %s: %w", op, err)
	}
	return rows > 0, nil
}

func expectRow(result sql.Result, op string) error {
	ok, err := applied(result, op)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s: %w", op, apperror.ErrNotFound)
	}
	return nil
}
