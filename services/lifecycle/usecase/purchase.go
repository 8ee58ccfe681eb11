package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/pioneer-funding/server/internal/pkg/apperror"
	"github.com/pioneer-funding/server/internal/pkg/constants"
	"github.com/pioneer-funding/server/internal/pkg/logger"
	"github.com/pioneer-funding/server/internal/pkg/metrics"
	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/pioneer-funding/server/internal/pkg/newrelic"
	"github.com/prometheus/client_golang/prometheus"
)

// Purchase creates a provisional challenge, requests its payment intent and
// records the pending transaction. A failed intent request discards the
// challenge.
func (uc *LifecycleUC) Purchase(ctx context.Context, userID string, req *models.PurchaseRequest) (*models.PurchaseResponse, error) {
	return newrelic.TraceUseCaseWithReturn(ctx, "Lifecycle/Purchase", func(ctx context.Context) (*models.PurchaseResponse, error) {
		resp, err := uc.purchase(ctx, userID, req)
		metrics.Purchases.WithLabelValues(string(req.Type), purchaseResult(err)).Inc()
		return resp, err
	})
}

func (uc *LifecycleUC) purchase(ctx context.Context, userID string, req *models.PurchaseRequest) (*models.PurchaseResponse, error) {
	price, err := uc.catalog.PriceOf(req.Type, req.AccountSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%d", apperror.ErrInvalidProduct, req.Type, req.AccountSize)
	}
	rules, err := uc.catalog.RulesOf(req.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidProduct, req.Type)
	}

	challenge := &models.Challenge{
		ID:            uuid.NewString(),
		UserID:        userID,
		Type:          req.Type,
		AccountSize:   req.AccountSize,
		Amount:        price,
		Status:        models.ChallengeStatusPending,
		PaymentStatus: models.PaymentStatusPending,
		Phase:         1,
		Rules:         rules,
		Metrics:       models.ChallengeMetrics{},
	}
	if err := uc.repo.CreateChallenge(ctx, challenge); err != nil {
		return nil, err
	}

	intent, err := uc.createIntent(ctx, challenge, fmt.Sprintf(constants.IdempotencyPurchase, challenge.ID))
	if err != nil {
		if discardErr := uc.repo.DiscardChallenge(ctx, challenge.ID); discardErr != nil {
			logger.ErrorCtx(ctx, "Failed to discard provisional challenge",
				logger.String("challenge_id", challenge.ID),
				logger.Err(discardErr))
		}
		return nil, err
	}

	if err := uc.repo.AttachPaymentIntent(ctx, challenge.ID, newTransaction(challenge, intent.ID)); err != nil {
		return nil, err
	}

	uc.publish(ctx, constants.SubjectChallengePurchased, &models.LifecycleEvent{
		Type:        models.LifecycleEventPurchased,
		ChallengeID: challenge.ID,
		UserID:      userID,
		Status:      challenge.Status,
		PaymentID:   intent.ID,
	})

	logger.InfoCtx(ctx, "Challenge purchase initiated",
		logger.String("challenge_id", challenge.ID),
		logger.String("user_id", userID),
		logger.String("type", string(challenge.Type)),
		logger.Int("account_size", challenge.AccountSize))

	return &models.PurchaseResponse{ChallengeID: challenge.ID, ClientSecret: intent.ClientSecret}, nil
}

// CreatePaymentIntent requests a new intent for a pending challenge owned by
// the user. The amount always comes from the stored challenge.
func (uc *LifecycleUC) CreatePaymentIntent(ctx context.Context, userID, challengeID, idempotencyKey string) (*models.CreatePaymentIntentResponse, error) {
	if challengeID == "" {
		return nil, fmt.Errorf("challengeId is required: %w", apperror.ErrInvalidInput)
	}

	challenge, err := uc.repo.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if challenge.UserID != userID {
		return nil, fmt.Errorf("challenge %s: %w", challengeID, apperror.ErrNotFound)
	}
	if challenge.Status != models.ChallengeStatusPending {
		return nil, fmt.Errorf("challenge %s is %s, not awaiting payment: %w", challengeID, challenge.Status, apperror.ErrConflict)
	}

	key := fmt.Sprintf(constants.IdempotencyPurchase, challenge.ID)
	if idempotencyKey != "" {
		key = fmt.Sprintf(constants.IdempotencyPaymentIntent, challenge.ID, idempotencyKey)
	}

	intent, err := uc.createIntent(ctx, challenge, key)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.AttachPaymentIntent(ctx, challenge.ID, newTransaction(challenge, intent.ID)); err != nil {
		return nil, err
	}

	return &models.CreatePaymentIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

func (uc *LifecycleUC) createIntent(ctx context.Context, challenge *models.Challenge, idempotencyKey string) (*models.PaymentIntent, error) {
	timer := prometheus.NewTimer(metrics.PaymentIntentLatency)
	defer timer.ObserveDuration()

	intent, err := uc.paymentGW.CreateIntent(ctx, models.PaymentIntentRequest{
		AmountCents: int64(challenge.Amount) * 100,
		Currency:    uc.cfg.Stripe.Currency,
		Metadata: map[string]string{
			"userId":        challenge.UserID,
			"challengeId":   challenge.ID,
			"challengeType": string(challenge.Type),
			"accountSize":   strconv.Itoa(challenge.AccountSize),
		},
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrUpstream, err)
	}
	return intent, nil
}

func newTransaction(challenge *models.Challenge, paymentIntentID string) *models.Transaction {
	challengeID := challenge.ID
	return &models.Transaction{
		ID:              uuid.NewString(),
		UserID:          challenge.UserID,
		ChallengeID:     &challengeID,
		Amount:          challenge.Amount,
		PaymentIntentID: paymentIntentID,
		Status:          models.TransactionStatusPending,
	}
}

func purchaseResult(err error) string {
	switch apperror.HTTPStatus(err) {
	case http.StatusOK:
		return "success"
	case http.StatusBadRequest:
		return "invalid_product"
	case http.StatusBadGateway:
		return "upstream_error"
	default:
		return "error"
	}
}

// publish sends a lifecycle event. Broker failures are logged and never fail
// the operation that produced the event.
func (uc *LifecycleUC) publish(ctx context.Context, subject string, event *models.LifecycleEvent) {
	if uc.eventGW == nil {
		return
	}
	event.OccurredAt = models.FormatTime(models.Now())
	if err := uc.eventGW.PublishLifecycleEvent(ctx, subject, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish lifecycle event",
			logger.String("subject", subject),
			logger.String("challenge_id", event.ChallengeID),
			logger.Err(err))
	}
}
