package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pioneer-funding/server/internal/pkg/models"
)

// Token purposes carried in the typ claim
const (
	TypeSession       = "session"
	TypeVerifyEmail   = "verify_email"
	TypeResetPassword = "reset_password"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongType    = errors.New("token has the wrong purpose")
)

// Claims represents registered JWT claims plus the identity fields
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Type   string `json:"typ"`
	Admin  bool   `json:"adm,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for the identity. ttl <= 0 uses the
// configured session expiration.
func GenerateToken(identity models.Principal, typ string, ttl time.Duration, cfg *models.Config) (string, int64, error) {
	if cfg.JWT.Secret == "" {
		return "", 0, errors.New("jwt secret is not configured")
	}
	if ttl <= 0 {
		ttl = time.Duration(cfg.JWT.Expiration) * time.Minute
	}

	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := Claims{
		UserID: identity.UserID,
		Email:  identity.Email,
		Type:   typ,
		Admin:  identity.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.UserID,
			Issuer:    cfg.JWT.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt.Unix(), nil
}

// ValidateToken verifies signature, expiry and purpose and returns the claims
func ValidateToken(tokenString, secret, typ string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	if claims.Type != typ {
		return nil, ErrWrongType
	}

	return claims, nil
}

// Principal converts claims to the caller identity
func (c *Claims) Principal() models.Principal {
	return models.Principal{UserID: c.UserID, Email: c.Email, IsAdmin: c.Admin}
}
