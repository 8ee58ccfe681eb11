package lifecycle

import (
	"context"

	"github.com/pioneer-funding/server/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/pioneer-funding/server/services/lifecycle LifecycleUC

// LifecycleUC drives a challenge from purchase through payment to evaluation
type LifecycleUC interface {
	Purchase(ctx context.Context, userID string, req *models.PurchaseRequest) (*models.PurchaseResponse, error)
	CreatePaymentIntent(ctx context.Context, userID, challengeID, idempotencyKey string) (*models.CreatePaymentIntentResponse, error)
	HandlePaymentEvent(ctx context.Context, payload []byte, signature string) error
	UpdateStatus(ctx context.Context, challengeID string, req *models.StatusUpdateRequest) (*models.Challenge, error)
}
