package lifecycle

import (
	"context"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/pioneer-funding/server/services/lifecycle LifecycleRepo,EventDedup

// LifecycleRepo is the slice of the ledger the lifecycle writes
type LifecycleRepo interface {
	CreateChallenge(ctx context.Context, challenge *models.Challenge) error
	GetChallenge(ctx context.Context, id string) (*models.Challenge, error)
	DiscardChallenge(ctx context.Context, id string) error
	AttachPaymentIntent(ctx context.Context, challengeID string, txn *models.Transaction) error
	TransitionChallenge(ctx context.Context, t models.ChallengeTransition) (bool, error)
	SetChallengeStatus(ctx context.Context, id string, expected, status models.ChallengeStatus, metrics *models.ChallengeMetrics) (bool, error)
	TransitionTransaction(ctx context.Context, paymentIntentID string, status models.TransactionStatus) (*models.TransitionResult, error)
	AddUserChallenge(ctx context.Context, userID, challengeID string) error
}

// EventDedup remembers processor event ids that were fully handled
type EventDedup interface {
	IsProcessed(ctx context.Context, eventID string) (bool, error)
	MarkProcessed(ctx context.Context, eventID string) error
}
