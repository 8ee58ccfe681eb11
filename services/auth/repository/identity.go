package repository

import (
	"context"
	"fmt"

	"github.com/pioneer-funding/server/internal/pkg/apperror"
	"github.com/pioneer-funding/server/internal/pkg/database"
	"github.com/pioneer-funding/server/internal/pkg/models"
)

const identityColumns = `id, email, password_hash, display_name, email_verified, is_admin, created_at, updated_at`

// CreateIdentity inserts a credential record. A taken email is ErrConflict.
func (r *AuthRepo) CreateIdentity(ctx context.Context, identity *models.Identity) error {
	now := models.Now()
	identity.CreatedAt = now
	identity.UpdatedAt = now

	query := `
		INSERT INTO identities (id, email, password_hash, display_name,
			email_verified, is_admin, created_at, updated_at
		) VALUES (:id, :email, :password_hash, :display_name,
			:email_verified, :is_admin, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, identity); err != nil {
		return database.WrapError("insert identity", err)
	}
	return nil
}

// DeleteIdentity removes a credential record
func (r *AuthRepo) DeleteIdentity(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM identities WHERE id = $1`, id); err != nil {
		return database.WrapError("delete identity", err)
	}
	return nil
}

// GetIdentityByID loads a credential record by uid
func (r *AuthRepo) GetIdentityByID(ctx context.Context, id string) (*models.Identity, error) {
	return r.getIdentityByField(ctx, "id", id)
}

// GetIdentityByEmail loads a credential record by normalized email
func (r *AuthRepo) GetIdentityByEmail(ctx context.Context, email string) (*models.Identity, error) {
	return r.getIdentityByField(ctx, "email", email)
}

// SetEmailVerified marks the email of an identity as verified
func (r *AuthRepo) SetEmailVerified(ctx context.Context, id string) error {
	query := `UPDATE identities SET email_verified = TRUE, updated_at = $1 WHERE id = $2`
	return r.exec(ctx, "verify email", query, models.Now(), id)
}

// UpdatePasswordHash replaces the stored bcrypt hash
func (r *AuthRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	query := `UPDATE identities SET password_hash = $1, updated_at = $2 WHERE id = $3`
	return r.exec(ctx, "update password", query, hash, models.Now(), id)
}

// UpdateDisplayName replaces the display name held by the identity provider
func (r *AuthRepo) UpdateDisplayName(ctx context.Context, id, displayName string) error {
	query := `UPDATE identities SET display_name = $1, updated_at = $2 WHERE id = $3`
	return r.exec(ctx, "update display name", query, displayName, models.Now(), id)
}

func (r *AuthRepo) getIdentityByField(ctx context.Context, field, value string) (*models.Identity, error) {
	query := fmt.Sprintf(`SELECT %s FROM identities WHERE %s = $1`, identityColumns, field)

	var identity models.Identity
	if err := r.db.GetContext(ctx, &identity, query, value); err != nil {
		return nil, database.WrapError("get identity", err)
	}
	return &identity, nil
}

func (r *AuthRepo) exec(ctx context.Context, op, query string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return database.WrapError(op, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", op, apperror.ErrNotFound)
	}
	return nil
}

