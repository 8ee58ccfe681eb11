package challenges

import (
	"context"

	"github.com/pioneer-funding/server/internal/pkg/catalog"
	"github.com/pioneer-funding/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/pioneer-funding/server/services/challenges ChallengeUC

// ChallengeUC serves the read side of challenges
type ChallengeUC interface {
	ListProducts(ctx context.Context) []catalog.Product
	GetChallenge(ctx context.Context, principal *models.Principal, id string) (*models.Challenge, error)
	ListUserChallenges(ctx context.Context, userID string) ([]models.Challenge, error)
}
