package middleware

import (
	"context"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/pioneer-funding/server/internal/pkg/requestcontext"
	"github.com/pioneer-funding/server/internal/utils"
)

const principalKey = "principal"

// Authenticator verifies bearer credentials
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.Principal, error)
}

// AdminChecker confirms the admin claim of a user
type AdminChecker interface {
	RequireAdmin(ctx context.Context, principal *models.Principal) error
}

// BearerAuth validates the Authorization header and stores the caller
// principal in the echo context. The user id also goes into the request
// context for logging.
func BearerAuth(authn Authenticator) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: principalKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			principal, err := authn.Authenticate(c.Request().Context(), auth)
			if err != nil {
				return nil, err
			}
			requestcontext.SetUserID(c, principal.UserID)
			return principal, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.UnauthorizedResponse(c, "Unauthorized")
		},
	})
}

// RequireAdmin rejects callers without the admin claim. It must run after
// BearerAuth.
func RequireAdmin(authz AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "Unauthorized")
			}
			if err := authz.RequireAdmin(c.Request().Context(), principal); err != nil {
				return utils.DomainErrorResponse(c, err)
			}
			return next(c)
		}
	}
}

// PrincipalFrom returns the authenticated caller of the request
func PrincipalFrom(c echo.Context) (*models.Principal, bool) {
	p, ok := c.Get(principalKey).(*models.Principal)
	return p, ok && p != nil
}

// SetPrincipal stores p as the authenticated caller. Used by tests and
// internal callers that authenticate by other means.
func SetPrincipal(c echo.Context, p *models.Principal) {
	c.Set(principalKey, p)
	if p != nil {
		requestcontext.SetUserID(c, p.UserID)
	}
}
