package auth

import (
	"context"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/pioneer-funding/server/services/auth AuthUC

// AuthUC is the identity gateway: credential checks, session tokens and
// account maintenance links
type AuthUC interface {
	Authenticate(ctx context.Context, token string) (*models.Principal, error)
	RequireAdmin(ctx context.Context, principal *models.Principal) error

	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// emailed links
	VerifyEmail(ctx context.Context, email string) (*models.LinkResponse, error)
	ConfirmEmail(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, email string) (*models.LinkResponse, error)
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error

	UpdateProfile(ctx context.Context, userID string, update models.UserProfileUpdate) (*models.User, error)
}
