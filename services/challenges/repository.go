package challenges

import (
	"context"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/pioneer-funding/server/services/challenges ChallengeRepo

// ChallengeRepo reads challenges from the ledger
type ChallengeRepo interface {
	GetChallenge(ctx context.Context, id string) (*models.Challenge, error)
	ListChallengesByUser(ctx context.Context, userID string) ([]models.Challenge, error)
}
