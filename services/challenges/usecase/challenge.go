package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/pioneer-funding/server/internal/pkg/apperror"
	"github.com/pioneer-funding/server/internal/pkg/catalog"
	"github.com/pioneer-funding/server/internal/pkg/models"
)

// ListProducts returns the purchasable catalog
func (uc *ChallengeUC) ListProducts(ctx context.Context) []catalog.Product {
	return uc.catalog.Products()
}

// GetChallenge returns a challenge to its owner or to an administrator.
// Anyone else sees ErrNotFound so challenge ids cannot be probed.
func (uc *ChallengeUC) GetChallenge(ctx context.Context, principal *models.Principal, id string) (*models.Challenge, error) {
	if principal == nil {
		return nil, apperror.ErrUnauthorized
	}

	challenge, err := uc.repo.GetChallenge(ctx, id)
	if err != nil {
		return nil, err
	}
	if challenge.UserID == principal.UserID {
		return challenge, nil
	}

	if err := uc.adminGW.RequireAdmin(ctx, principal); err != nil {
		if errors.Is(err, apperror.ErrForbidden) {
			return nil, fmt.Errorf("challenge %s: %w", id, apperror.ErrNotFound)
		}
		return nil, err
	}
	return challenge, nil
}

// ListUserChallenges returns the caller's challenges, newest first
func (uc *ChallengeUC) ListUserChallenges(ctx context.Context, userID string) ([]models.Challenge, error) {
	list, err := uc.repo.ListChallengesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.Challenge{}
	}
	return list, nil
}
