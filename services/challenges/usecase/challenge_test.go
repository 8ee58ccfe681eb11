package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pioneer-funding/server/internal/pkg/apperror"
	"github.com/pioneer-funding/server/internal/pkg/catalog"
	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/pioneer-funding/server/services/challenges/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUC(t *testing.T) (*ChallengeUC, *mocks.MockChallengeRepo, *mocks.MockAdminGW) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockChallengeRepo(ctrl)
	adminGW := mocks.NewMockAdminGW(ctrl)
	return NewChallengeUC(catalog.Default(), repo, adminGW), repo, adminGW
}

func TestListProducts(t *testing.T) {
	uc, _, _ := setupUC(t)

	products := uc.ListProducts(context.Background())

	require.Len(t, products, 3)
	assert.Equal(t, models.ChallengeTypeStandard, products[0].Type)
	assert.Len(t, products[2].Offers, 6)
	assert.Equal(t, 1099, products[2].Offers[5].Price)

	// callers get copies
	products[0].Offers[0].Price = 1
	assert.Equal(t, 49, uc.ListProducts(context.Background())[0].Offers[0].Price)
}

func TestGetChallenge(t *testing.T) {
	owned := &models.Challenge{ID: "c1", UserID: "u1", Status: models.ChallengeStatusActive}

	tests := []struct {
		name      string
		principal *models.Principal
		mockSetup func(repo *mocks.MockChallengeRepo, adminGW *mocks.MockAdminGW)
		wantErr   error
	}{
		{
			name:      "Owner",
			principal: &models.Principal{UserID: "u1"},
			mockSetup: func(repo *mocks.MockChallengeRepo, adminGW *mocks.MockAdminGW) {
				repo.EXPECT().GetChallenge(gomock.Any(), "c1").Return(owned, nil)
			},
		},
		{
			name:      "Admin",
			principal: &models.Principal{UserID: "admin", IsAdmin: true},
			mockSetup: func(repo *mocks.MockChallengeRepo, adminGW *mocks.MockAdminGW) {
				repo.EXPECT().GetChallenge(gomock.Any(), "c1").Return(owned, nil)
				adminGW.EXPECT().RequireAdmin(gomock.Any(), &models.Principal{UserID: "admin", IsAdmin: true}).Return(nil)
			},
		},
		{
			name:      "Other user sees not found",
			principal: &models.Principal{UserID: "u2"},
			mockSetup: func(repo *mocks.MockChallengeRepo, adminGW *mocks.MockAdminGW) {
				repo.EXPECT().GetChallenge(gomock.Any(), "c1").Return(owned, nil)
				adminGW.EXPECT().RequireAdmin(gomock.Any(), gomock.Any()).Return(apperror.ErrForbidden)
			},
			wantErr: apperror.ErrNotFound,
		},
		{
			name:      "Missing challenge",
			principal: &models.Principal{UserID: "u1"},
			mockSetup: func(repo *mocks.MockChallengeRepo, adminGW *mocks.MockAdminGW) {
				repo.EXPECT().GetChallenge(gomock.Any(), "c1").Return(nil, apperror.ErrNotFound)
			},
			wantErr: apperror.ErrNotFound,
		},
		{
			name:      "Identity lookup failure",
			principal: &models.Principal{UserID: "u2"},
			mockSetup: func(repo *mocks.MockChallengeRepo, adminGW *mocks.MockAdminGW) {
				repo.EXPECT().GetChallenge(gomock.Any(), "c1").Return(owned, nil)
				adminGW.EXPECT().RequireAdmin(gomock.Any(), gomock.Any()).Return(apperror.ErrUnauthorized)
			},
			wantErr: apperror.ErrUnauthorized,
		},
		{
			name:      "No principal",
			mockSetup: func(repo *mocks.MockChallengeRepo, adminGW *mocks.MockAdminGW) {},
			wantErr:   apperror.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, adminGW := setupUC(t)
			tt.mockSetup(repo, adminGW)

			got, err := uc.GetChallenge(context.Background(), tt.principal, "c1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, owned, got)
		})
	}
}

func TestListUserChallenges(t *testing.T) {
	t.Run("Empty list is never nil", func(t *testing.T) {
		uc, repo, _ := setupUC(t)
		repo.EXPECT().ListChallengesByUser(gomock.Any(), "u1").Return(nil, nil)

		list, err := uc.ListUserChallenges(context.Background(), "u1")

		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("Store failure", func(t *testing.T) {
		uc, repo, _ := setupUC(t)
		repo.EXPECT().ListChallengesByUser(gomock.Any(), "u1").Return(nil, errors.New("timeout"))

		_, err := uc.ListUserChallenges(context.Background(), "u1")

		assert.EqualError(t, err, "timeout")
	})
}
