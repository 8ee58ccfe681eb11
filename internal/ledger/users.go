package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

const userColumns = `id, email, first_name, last_name, phone, timezone, settings, created_at, updated_at`

// CreateUser inserts the profile document of a freshly registered user
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	now := models.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, email, first_name, last_name, phone, timezone,
			settings, created_at, updated_at
		) VALUES (:id, :email, :first_name, :last_name, :phone, :timezone,
			:settings, :created_at, :updated_at)
	`
	if _, err := s.db.NamedExecContext(ctx, query, user); err != nil {
		return wrap("insert user", err)
	}
	user.Challenges = []string{}
	return nil
}

// GetUser loads a user with the ids of the challenges they own
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if err := s.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, wrap("get user", err)
	}

	challenges := []string{}
	query = `SELECT challenge_id FROM user_challenges WHERE user_id = $1 ORDER BY added_at`
	if err := s.db.SelectContext(ctx, &challenges, query, id); err != nil {
		return nil, wrap("get user challenges", err)
	}
	user.Challenges = challenges

	return &user, nil
}

// UpdateUserProfile applies the non-nil fields of update and returns the
// stored user
func (s *Store) UpdateUserProfile(ctx context.Context, id string, update models.UserProfileUpdate) (*models.User, error) {
	if update.IsEmpty() {
		return s.GetUser(ctx, id)
	}

	sets := make([]string, 0, 5)
	args := make([]interface{}, 0, 6)
	add := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("first_name", update.FirstName)
	add("last_name", update.LastName)
	add("phone", update.Phone)
	add("timezone", update.Timezone)

	args = append(args, models.Now())
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, wrap("update user profile", err)
	}
	if err := expectRow(result, "update user profile"); err != nil {
		return nil, err
	}

	return s.GetUser(ctx, id)
}

// GetUserSettings returns the settings block of a user
func (s *Store) GetUserSettings(ctx context.Context, id string) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := s.db.GetContext(ctx, &settings, `SELECT settings FROM users WHERE id = $1`, id); err != nil {
		return nil, wrap("get user settings", err)
	}
	return &settings, nil
}

// UpdateUserSettings replaces the settings block of a user
func (s *Store) UpdateUserSettings(ctx context.Context, id string, settings models.UserSettings) error {
	query := `UPDATE users SET settings = $1, updated_at = $2 WHERE id = $3`
	result, err := s.db.ExecContext(ctx, query, settings, models.Now(), id)
	if err != nil {
		return wrap("update user settings", err)
	}
	return expectRow(result, "update user settings")
}

// AddUserChallenge adds challengeID to the user's challenge set. Adding an id
// that is already present is a no-op.
func (s *Store) AddUserChallenge(ctx context.Context, userID, challengeID string) error {
	query := `
		INSERT INTO user_challenges (user_id, challenge_id, added_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, challenge_id) DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, query, userID, challengeID, models.Now()); err != nil {
		return wrap("add user challenge", err)
	}
	return nil
}

// CountUsers returns the number of registered users
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, wrap("count users", err)
	}
	return total, nil
}

// RecentUsers returns the newest users first
func (s *Store) RecentUsers(ctx context.Context, limit int) ([]models.User, error) {
	users := []models.User{}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1`
	if err := s.db.SelectContext(ctx, &users, query, limit); err != nil {
		return nil, wrap("list recent users", err)
	}
	return users, nil
}
