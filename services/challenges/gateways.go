package challenges

import (
	"context"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/pioneer-funding/server/services/challenges AdminGW

// AdminGW confirms the admin claim of a caller against the identity provider
type AdminGW interface {
	RequireAdmin(ctx context.Context, principal *models.Principal) error
}
