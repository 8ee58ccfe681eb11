package usecase

import (
	"context"
	"fmt"

	"github.com/pioneer-funding/server/internal/pkg/apperror"
	"github.com/pioneer-funding/server/internal/pkg/constants"
	"github.com/pioneer-funding/server/internal/pkg/logger"
	"github.com/pioneer-funding/server/internal/pkg/metrics"
	"github.com/pioneer-funding/server/internal/pkg/models"
)

// allowedMoves lists the target statuses an administrator may set from each
// non-terminal status. Terminal statuses have no entry.
var allowedMoves = map[models.ChallengeStatus][]models.ChallengeStatus{
	models.ChallengeStatusPending: {
		models.ChallengeStatusPending,
		models.ChallengeStatusActive,
		models.ChallengeStatusPaymentFailed,
	},
	models.ChallengeStatusActive: {
		models.ChallengeStatusActive,
		models.ChallengeStatusPending,
		models.ChallengeStatusCompleted,
		models.ChallengeStatusFailed,
	},
}

// UpdateStatus sets status and optionally metrics on a challenge. The write
// only lands if the challenge still has the status that was validated.
func (uc *LifecycleUC) UpdateStatus(ctx context.Context, challengeID string, req *models.StatusUpdateRequest) (*models.Challenge, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("unknown status %q: %w", req.Status, apperror.ErrInvalidInput)
	}

	challenge, err := uc.repo.GetChallenge(ctx, challengeID)
	if err != nil {
		return nil, err
	}
	if err := checkMove(challenge, req.Status); err != nil {
		return nil, err
	}

	applied, err := uc.repo.SetChallengeStatus(ctx, challenge.ID, challenge.Status, req.Status, req.Metrics)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, fmt.Errorf("challenge %s changed concurrently: %w", challenge.ID, apperror.ErrConflict)
	}

	from := challenge.Status
	challenge.Status = req.Status
	if req.Metrics != nil {
		challenge.Metrics = *req.Metrics
	}
	challenge.UpdatedAt = models.Now()

	if from != req.Status {
		metrics.ChallengeTransitions.WithLabelValues(string(from), string(req.Status)).Inc()
		uc.publish(ctx, constants.SubjectChallengeStatusChanged, &models.LifecycleEvent{
			Type:        models.LifecycleEventStatusChanged,
			ChallengeID: challenge.ID,
			UserID:      challenge.UserID,
			Status:      req.Status,
		})
		logger.InfoCtx(ctx, "Challenge status updated",
			logger.String("challenge_id", challenge.ID),
			logger.String("from", string(from)),
			logger.String("to", string(req.Status)))
	}

	return challenge, nil
}

func checkMove(challenge *models.Challenge, to models.ChallengeStatus) error {
	if challenge.Status.IsTerminal() {
		return fmt.Errorf("challenge is %s: %w", challenge.Status, apperror.ErrInvalidTransition)
	}
	if to == models.ChallengeStatusActive && challenge.PaymentStatus != models.PaymentStatusPaid {
		return fmt.Errorf("challenge is not paid: %w", apperror.ErrInvalidTransition)
	}
	for _, allowed := range allowedMoves[challenge.Status] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("%s to %s: %w", challenge.Status, to, apperror.ErrInvalidTransition)
}
