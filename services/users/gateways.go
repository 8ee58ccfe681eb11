package users

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/pioneer-funding/server/services/users IdentityGW

// IdentityGW mirrors profile changes into the identity provider
type IdentityGW interface {
	UpdateDisplayName(ctx context.Context, id, displayName string) error
}
