package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pioneer-funding/server/internal/pkg/apperror"
	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*AuthRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewAuthRepository(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestCreateIdentity(t *testing.T) {
	tests := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO identities")).
					WithArgs("u1", "ada@example.com", "hash", "Ada Lovelace", false, false, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Email already taken",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO identities")).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "identities_email_key"})
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, apperror.ErrConflict)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupMockDB(t)
			tt.mockSetup(mock)

			err := repo.CreateIdentity(context.Background(), &models.Identity{
				ID: "u1", Email: "ada@example.com", PasswordHash: "hash", DisplayName: "Ada Lovelace",
			})

			tt.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetIdentityByEmail(t *testing.T) {
	now := time.Now()
	columns := []string{"id", "email", "password_hash", "display_name", "email_verified", "is_admin", "created_at", "updated_at"}

	t.Run("Found", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		mock.ExpectQuery("^SELECT (.+) FROM identities WHERE email = \\$1").WithArgs("ada@example.com").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("u1", "ada@example.com", "hash", "Ada Lovelace", true, true, now, now))

		identity, err := repo.GetIdentityByEmail(context.Background(), "ada@example.com")

		require.NoError(t, err)
		assert.Equal(t, "u1", identity.ID)
		assert.True(t, identity.IsAdmin)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		mock.ExpectQuery("^SELECT (.+) FROM identities WHERE id = \\$1").WithArgs("nobody").
			WillReturnRows(sqlmock.NewRows(columns))

		identity, err := repo.GetIdentityByID(context.Background(), "nobody")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIdentityUpdates(t *testing.T) {
	t.Run("SetEmailVerified", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE identities SET email_verified = TRUE")).
			WithArgs(sqlmock.AnyArg(), "u1").WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SetEmailVerified(context.Background(), "u1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdatePasswordHash on missing identity", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE identities SET password_hash = $1")).
			WithArgs("newhash", sqlmock.AnyArg(), "u1").WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePasswordHash(context.Background(), "u1", "newhash")

		assert.ErrorIs(t, err, apperror.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateDisplayName driver error", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE identities SET display_name = $1")).
			WillReturnError(errors.New("connection refused"))

		err := repo.UpdateDisplayName(context.Background(), "u1", "Grace Hopper")

		assert.EqualError(t, err, "failed to update display name: connection refused")
	})

	t.Run("DeleteIdentity", func(t *testing.T) {
		repo, mock := setupMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM identities WHERE id = $1")).
			WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteIdentity(context.Background(), "u1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
