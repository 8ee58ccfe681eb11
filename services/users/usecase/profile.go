package usecase

import (
	"context"
	"fmt"

	"github.com/pioneer-funding/server/internal/pkg/apperror"
	"github.com/pioneer-funding/server/internal/pkg/logger"
	"github.com/pioneer-funding/server/internal/pkg/models"
)

// GetProfile returns the caller's profile
func (uc *UserUC) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return uc.repo.GetUser(ctx, userID)
}

// UpdateProfile applies a partial update. A changed name is pushed to the
// identity provider as the display name.
func (uc *UserUC) UpdateProfile(ctx context.Context, userID string, update models.UserProfileUpdate) (*models.User, error) {
	if update.IsEmpty() {
		return nil, fmt.Errorf("no profile fields to update: %w", apperror.ErrInvalidInput)
	}

	user, err := uc.repo.UpdateUserProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil || update.LastName != nil {
		if err := uc.identityGW.UpdateDisplayName(ctx, userID, user.DisplayName()); err != nil {
			return nil, fmt.Errorf("failed to update display name: %w", err)
		}
	}

	logger.InfoCtx(ctx, "User profile updated")
	return user, nil
}

// GetSettings returns the caller's settings
func (uc *UserUC) GetSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	return uc.repo.GetUserSettings(ctx, userID)
}

// UpdateSettings replaces the caller's settings and echoes them back
func (uc *UserUC) UpdateSettings(ctx context.Context, userID string, settings models.UserSettings) (*models.UserSettings, error) {
	if err := uc.repo.UpdateUserSettings(ctx, userID, settings); err != nil {
		return nil, err
	}
	return &settings, nil
}
