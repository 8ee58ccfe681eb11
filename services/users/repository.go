package users

import (
	"context"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/pioneer-funding/server/services/users UserRepo

// UserRepo is the slice of the ledger behind profiles and dashboards
type UserRepo interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUserProfile(ctx context.Context, id string, update models.UserProfileUpdate) (*models.User, error)
	GetUserSettings(ctx context.Context, id string) (*models.UserSettings, error)
	UpdateUserSettings(ctx context.Context, id string, settings models.UserSettings) error
	ListChallengesByUserStatuses(ctx context.Context, userID string, statuses []models.ChallengeStatus) ([]models.Challenge, error)
	ListTransactionsByUser(ctx context.Context, userID string, limit, offset int) ([]models.Transaction, error)
	CountUsers(ctx context.Context) (int, error)
	CountChallenges(ctx context.Context) (int, error)
	SumCompletedTransactions(ctx context.Context) (int, error)
	RecentUsers(ctx context.Context, limit int) ([]models.User, error)
	RecentChallenges(ctx context.Context, limit int) ([]models.Challenge, error)
}
