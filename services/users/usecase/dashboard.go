package usecase

import (
	"context"

	"github.com/pioneer-funding/server/internal/pkg/models"
	"golang.org/x/sync/errgroup"
)

var dashboardStatuses = []models.ChallengeStatus{
	models.ChallengeStatusActive,
	models.ChallengeStatusCompleted,
}

// Dashboard summarizes the caller's active and completed challenges. Total
// profit counts completed challenges only.
func (uc *UserUC) Dashboard(ctx context.Context, userID string) (*models.Dashboard, error) {
	var (
		challenges   []models.Challenge
		transactions []models.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		challenges, err = uc.repo.ListChallengesByUserStatuses(gctx, userID, dashboardStatuses)
		return err
	})
	g.Go(func() error {
		var err error
		transactions, err = uc.repo.ListTransactionsByUser(gctx, userID, recentLimit, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dashboard := &models.Dashboard{
		Challenges:         nonNil(challenges),
		RecentTransactions: nonNil(transactions),
	}
	for _, c := range challenges {
		switch c.Status {
		case models.ChallengeStatusActive:
			dashboard.Stats.ActiveChallenges++
		case models.ChallengeStatusCompleted:
			dashboard.Stats.CompletedChallenges++
			dashboard.Stats.TotalProfit += c.Metrics.TotalProfit
		}
	}
	dashboard.Stats.TotalChallenges = len(challenges)

	return dashboard, nil
}

// AdminDashboard summarizes the whole marketplace. Revenue is the sum of
// completed transactions in whole USD.
func (uc *UserUC) AdminDashboard(ctx context.Context) (*models.AdminDashboard, error) {
	var (
		dashboard models.AdminDashboard
		users     []models.User
		recent    []models.Challenge
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		dashboard.Stats.TotalUsers, err = uc.repo.CountUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		dashboard.Stats.TotalChallenges, err = uc.repo.CountChallenges(gctx)
		return err
	})
	g.Go(func() (err error) {
		dashboard.Stats.TotalRevenue, err = uc.repo.SumCompletedTransactions(gctx)
		return err
	})
	g.Go(func() (err error) {
		users, err = uc.repo.RecentUsers(gctx, recentLimit)
		return err
	})
	g.Go(func() (err error) {
		recent, err = uc.repo.RecentChallenges(gctx, recentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dashboard.RecentUsers = nonNil(users)
	dashboard.RecentChallenges = nonNil(recent)
	return &dashboard, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
