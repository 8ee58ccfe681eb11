package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/pioneer-funding/server/internal/pkg/apperror"
	"github.com/pioneer-funding/server/internal/pkg/constants"
	"github.com/pioneer-funding/server/internal/pkg/logger"
	"github.com/pioneer-funding/server/internal/pkg/metrics"
	"github.com/pioneer-funding/server/internal/pkg/models"
)

// HandlePaymentEvent verifies and applies a processor webhook delivery.
//
// Every store write is a conditional transition, so a redelivered event is
// safe to apply again. A nil return acks the delivery; store failures are
// returned so the processor redelivers.
func (uc *LifecycleUC) HandlePaymentEvent(ctx context.Context, payload []byte, signature string) error {
	event, err := uc.paymentGW.VerifyWebhook(payload, signature)
	if err != nil {
		metrics.WebhookEvents.WithLabelValues("unknown", "rejected").Inc()
		return err
	}
	kind := string(event.Kind)

	processed, err := uc.dedup.IsProcessed(ctx, event.ID)
	if err != nil {
		logger.WarnCtx(ctx, "Webhook dedup lookup failed, processing event",
			logger.String("event_id", event.ID),
			logger.Err(err))
	}
	if processed {
		metrics.WebhookEvents.WithLabelValues(kind, "duplicate").Inc()
		return nil
	}

	switch event.Kind {
	case models.PaymentEventSucceeded:
		err = uc.applySucceeded(ctx, event)
	case models.PaymentEventFailed:
		err = uc.applyFailed(ctx, event)
	case models.PaymentEventUnhandled:
		logger.Debug("Ignoring payment event", logger.String("type", event.RawType), logger.String("event_id", event.ID))
	}
	if err != nil {
		metrics.WebhookEvents.WithLabelValues(kind, "error").Inc()
		return err
	}

	if err := uc.dedup.MarkProcessed(ctx, event.ID); err != nil {
		logger.WarnCtx(ctx, "Failed to mark webhook event processed",
			logger.String("event_id", event.ID),
			logger.Err(err))
	}
	metrics.WebhookEvents.WithLabelValues(kind, "processed").Inc()
	return nil
}

// applySucceeded completes the transaction, activates the challenge and adds
// it to the owner's challenge set
func (uc *LifecycleUC) applySucceeded(ctx context.Context, event *models.PaymentEvent) error {
	challengeID, proceed, err := uc.settleTransaction(ctx, event, models.TransactionStatusCompleted)
	if err != nil || !proceed {
		return err
	}

	applied, err := uc.repo.TransitionChallenge(ctx, models.ChallengeTransition{
		ChallengeID:   challengeID,
		From:          []models.ChallengeStatus{models.ChallengeStatusPending},
		To:            models.ChallengeStatusActive,
		PaymentStatus: models.PaymentStatusPaid,
	})
	if err != nil {
		return err
	}

	challenge, err := uc.repo.GetChallenge(ctx, challengeID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			logger.WarnCtx(ctx, "Payment succeeded for unknown challenge",
				logger.String("challenge_id", challengeID),
				logger.String("payment_intent_id", event.PaymentIntentID))
			return nil
		}
		return err
	}

	// an earlier delivery may have activated the challenge and failed before
	// the set-union, so the union runs whenever the challenge is active and paid
	if challenge.Status == models.ChallengeStatusActive && challenge.PaymentStatus == models.PaymentStatusPaid {
		if err := uc.repo.AddUserChallenge(ctx, challenge.UserID, challenge.ID); err != nil {
			return err
		}
	}

	if applied {
		metrics.ChallengeTransitions.WithLabelValues(string(models.ChallengeStatusPending), string(models.ChallengeStatusActive)).Inc()
		uc.publish(ctx, constants.SubjectChallengeActivated, &models.LifecycleEvent{
			Type:        models.LifecycleEventActivated,
			ChallengeID: challenge.ID,
			UserID:      challenge.UserID,
			Status:      models.ChallengeStatusActive,
			PaymentID:   event.PaymentIntentID,
		})
		logger.InfoCtx(ctx, "Challenge activated",
			logger.String("challenge_id", challenge.ID),
			logger.String("user_id", challenge.UserID))
	}
	return nil
}

// applyFailed fails the transaction and marks the challenge payment_failed
func (uc *LifecycleUC) applyFailed(ctx context.Context, event *models.PaymentEvent) error {
	challengeID, proceed, err := uc.settleTransaction(ctx, event, models.TransactionStatusFailed)
	if err != nil || !proceed {
		return err
	}

	applied, err := uc.repo.TransitionChallenge(ctx, models.ChallengeTransition{
		ChallengeID:   challengeID,
		From:          []models.ChallengeStatus{models.ChallengeStatusPending},
		To:            models.ChallengeStatusPaymentFailed,
		PaymentStatus: models.PaymentStatusFailed,
	})
	if err != nil {
		return err
	}

	if applied {
		metrics.ChallengeTransitions.WithLabelValues(string(models.ChallengeStatusPending), string(models.ChallengeStatusPaymentFailed)).Inc()
		uc.publish(ctx, constants.SubjectChallengePaymentFailed, &models.LifecycleEvent{
			Type:        models.LifecycleEventPaymentFailed,
			ChallengeID: challengeID,
			UserID:      event.Metadata["userId"],
			Status:      models.ChallengeStatusPaymentFailed,
			PaymentID:   event.PaymentIntentID,
		})
	}
	return nil
}

// settleTransaction moves the intent's transaction out of pending and
// resolves the challenge the event is about. proceed is false when the
// transaction already settled with a different outcome (first terminal state
// wins) or no challenge can be resolved.
func (uc *LifecycleUC) settleTransaction(ctx context.Context, event *models.PaymentEvent, status models.TransactionStatus) (string, bool, error) {
	challengeID := event.ChallengeID()

	result, err := uc.repo.TransitionTransaction(ctx, event.PaymentIntentID, status)
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		logger.WarnCtx(ctx, "No transaction for payment intent",
			logger.String("payment_intent_id", event.PaymentIntentID),
			logger.String("event_id", event.ID))
	case err != nil:
		return "", false, fmt.Errorf("failed to settle transaction: %w", err)
	default:
		if !result.Applied && result.Transaction.Status != status {
			if status == models.TransactionStatusCompleted {
				// funds captured after the failure was recorded; needs a manual refund
				logger.ErrorCtx(ctx, "Payment captured for failed transaction, refund required",
					logger.String("payment_intent_id", event.PaymentIntentID),
					logger.String("event_id", event.ID),
					logger.String("challenge_id", challengeID))
				return "", false, nil
			}
			logger.InfoCtx(ctx, "Transaction already settled, ignoring event",
				logger.String("payment_intent_id", event.PaymentIntentID),
				logger.String("status", string(result.Transaction.Status)),
				logger.String("event_kind", string(event.Kind)))
			return "", false, nil
		}
		if challengeID == "" && result.Transaction.ChallengeID != nil {
			challengeID = *result.Transaction.ChallengeID
		}
	}

	if challengeID == "" {
		logger.WarnCtx(ctx, "Payment event carries no challenge",
			logger.String("payment_intent_id", event.PaymentIntentID))
		return "", false, nil
	}
	return challengeID, true, nil
}
