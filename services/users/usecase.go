package users

import (
	"context"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/pioneer-funding/server/services/users UserUC

// UserUC serves profiles, settings and dashboards
type UserUC interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, update models.UserProfileUpdate) (*models.User, error)
	GetSettings(ctx context.Context, userID string) (*models.UserSettings, error)
	UpdateSettings(ctx context.Context, userID string, settings models.UserSettings) (*models.UserSettings, error)
	Dashboard(ctx context.Context, userID string) (*models.Dashboard, error)
	AdminDashboard(ctx context.Context) (*models.AdminDashboard, error)
}
