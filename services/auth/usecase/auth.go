package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pioneer-funding/server/internal/pkg/apperror"
	"github.com/pioneer-funding/server/internal/pkg/jwt"
	"github.com/pioneer-funding/server/internal/pkg/logger"
	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/pioneer-funding/server/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// Authenticate verifies a session token and returns the caller
func (uc *AuthUC) Authenticate(ctx context.Context, token string) (*models.Principal, error) {
	if token == "" {
		return nil, fmt.Errorf("missing token: %w", apperror.ErrUnauthorized)
	}

	claims, err := jwt.ValidateToken(token, uc.cfg.JWT.Secret, jwt.TypeSession)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrUnauthorized, err)
	}

	principal := claims.Principal()
	return &principal, nil
}

// RequireAdmin checks the admin claim held on the stored identity, not the
// one carried by the token
func (uc *AuthUC) RequireAdmin(ctx context.Context, principal *models.Principal) error {
	if principal == nil {
		return apperror.ErrUnauthorized
	}

	identity, err := uc.authRepo.GetIdentityByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return fmt.Errorf("admin check: %w", apperror.ErrForbidden)
		}
		return fmt.Errorf("failed to check admin claim: %w", err)
	}
	if !identity.IsAdmin {
		return fmt.Errorf("admin only: %w", apperror.ErrForbidden)
	}
	return nil
}

// Register creates the identity and the profile document, then signs a session
func (uc *AuthUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("email is invalid: %w", apperror.ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters: %w", minPasswordLength, apperror.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Settings:  models.UserSettings{EmailNotifications: true},
	}
	identity := &models.Identity{
		ID:           user.ID,
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  user.DisplayName(),
	}

	if err := uc.authRepo.CreateIdentity(ctx, identity); err != nil {
		if errors.Is(err, apperror.ErrConflict) {
			return nil, fmt.Errorf("email already registered: %w", apperror.ErrConflict)
		}
		return nil, err
	}

	if err := uc.userStore.CreateUser(ctx, user); err != nil {
		if delErr := uc.authRepo.DeleteIdentity(ctx, identity.ID); delErr != nil {
			logger.ErrorCtx(ctx, "Failed to remove identity after profile creation failure",
				logger.String("user_id", identity.ID),
				logger.Err(delErr))
		}
		return nil, err
	}

	token, err := uc.issueSession(identity)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "User registered", logger.String("user_id", user.ID))
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Login checks the password and signs a session
func (uc *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	identity, err := uc.authRepo.GetIdentityByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperror.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", apperror.ErrUnauthorized)
	}

	user, err := uc.userStore.GetUser(ctx, identity.ID)
	if err != nil {
		return nil, err
	}

	token, err := uc.issueSession(identity)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: user}, nil
}

// VerifyEmail generates an email verification link
func (uc *AuthUC) VerifyEmail(ctx context.Context, email string) (*models.LinkResponse, error) {
	return uc.generateLink(ctx, email, jwt.TypeVerifyEmail, uc.cfg.Links.VerifyEmailURL)
}

// ConfirmEmail consumes a verification link token
func (uc *AuthUC) ConfirmEmail(ctx context.Context, token string) error {
	claims, err := uc.parseLink(token, jwt.TypeVerifyEmail)
	if err != nil {
		return err
	}
	return uc.authRepo.SetEmailVerified(ctx, claims.UserID)
}

// ResetPassword generates a password reset link
func (uc *AuthUC) ResetPassword(ctx context.Context, email string) (*models.LinkResponse, error) {
	return uc.generateLink(ctx, email, jwt.TypeResetPassword, uc.cfg.Links.ResetPasswordURL)
}

// ConfirmPasswordReset consumes a reset link token and stores the new password
func (uc *AuthUC) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters: %w", minPasswordLength, apperror.ErrInvalidInput)
	}

	claims, err := uc.parseLink(token, jwt.TypeResetPassword)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), uc.hashCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return uc.authRepo.UpdatePasswordHash(ctx, claims.UserID, string(hash))
}

// UpdateProfile applies a partial profile update and pushes the display name
// to the identity record when a name changed
func (uc *AuthUC) UpdateProfile(ctx context.Context, userID string, update models.UserProfileUpdate) (*models.User, error) {
	if update.IsEmpty() {
		return nil, fmt.Errorf("no profile fields to update: %w", apperror.ErrInvalidInput)
	}

	user, err := uc.userStore.UpdateUserProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil || update.LastName != nil {
		if err := uc.authRepo.UpdateDisplayName(ctx, userID, user.DisplayName()); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (uc *AuthUC) issueSession(identity *models.Identity) (string, error) {
	principal := models.Principal{UserID: identity.ID, Email: identity.Email, IsAdmin: identity.IsAdmin}
	token, _, err := jwt.GenerateToken(principal, jwt.TypeSession, 0, uc.cfg)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return token, nil
}

func (uc *AuthUC) generateLink(ctx context.Context, email, typ, base string) (*models.LinkResponse, error) {
	email = utils.NormalizeEmail(email)
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("email is invalid: %w", apperror.ErrInvalidInput)
	}

	identity, err := uc.authRepo.GetIdentityByEmail(ctx, email)
	if errors.Is(err, apperror.ErrNotFound) {
		// same reply as a known address, without a link
		logger.InfoCtx(ctx, "Link requested for unknown email", logger.String("type", typ))
		return &models.LinkResponse{}, nil
	}
	if err != nil {
		return nil, err
	}

	principal := models.Principal{UserID: identity.ID, Email: identity.Email}
	ttl := time.Duration(uc.cfg.JWT.LinkTTL) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}
	token, _, err := jwt.GenerateToken(principal, typ, ttl, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to sign link: %w", err)
	}

	link, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("failed to parse link base %q: %w", base, err)
	}
	q := link.Query()
	q.Set("token", token)
	link.RawQuery = q.Encode()

	return &models.LinkResponse{Link: link.String()}, nil
}

func (uc *AuthUC) parseLink(token, typ string) (*jwt.Claims, error) {
	claims, err := jwt.ValidateToken(token, uc.cfg.JWT.Secret, typ)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired link: %w", apperror.ErrInvalidInput)
	}
	return claims, nil
}
