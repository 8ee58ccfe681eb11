package auth

import (
	"context"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/pioneer-funding/server/services/auth AuthRepo,UserStore

// AuthRepo stores identity provider records
type AuthRepo interface {
	CreateIdentity(ctx context.Context, identity *models.Identity) error
	DeleteIdentity(ctx context.Context, id string) error
	GetIdentityByID(ctx context.Context, id string) (*models.Identity, error)
	GetIdentityByEmail(ctx context.Context, email string) (*models.Identity, error)
	SetEmailVerified(ctx context.Context, id string) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	UpdateDisplayName(ctx context.Context, id, displayName string) error
}

// UserStore is the slice of the ledger the identity gateway writes profiles to
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUserProfile(ctx context.Context, id string, update models.UserProfileUpdate) (*models.User, error)
}
