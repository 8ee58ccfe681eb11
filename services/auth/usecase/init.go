package usecase

import (
	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/pioneer-funding/server/services/auth"
	"golang.org/x/crypto/bcrypt"
)

// AuthUC implements the identity gateway use cases
type AuthUC struct {
	cfg       *models.Config
	authRepo  auth.AuthRepo
	userStore auth.UserStore
	hashCost  int
}

// NewAuthUC creates a new auth use case
func NewAuthUC(
	cfg *models.Config,
	authRepo auth.AuthRepo,
	userStore auth.UserStore,
) *AuthUC {
	return &AuthUC{
		cfg:       cfg,
		authRepo:  authRepo,
		userStore: userStore,
		hashCost:  bcrypt.DefaultCost,
	}
}
