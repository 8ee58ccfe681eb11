package usecase

import (
	"github.com/pioneer-funding/server/services/users"
)

const recentLimit = 5

// UserUC implements users.UserUC
type UserUC struct {
	repo       users.UserRepo
	identityGW users.IdentityGW
}

// NewUserUC creates a new user use case
func NewUserUC(repo users.UserRepo, identityGW users.IdentityGW) *UserUC {
	return &UserUC{
		repo:       repo,
		identityGW: identityGW,
	}
}
