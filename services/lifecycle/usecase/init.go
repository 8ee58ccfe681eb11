package usecase

import (
	"github.com/pioneer-funding/server/internal/pkg/catalog"
	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/pioneer-funding/server/services/lifecycle"
)

// LifecycleUC implements the challenge lifecycle controller
type LifecycleUC struct {
	cfg       *models.Config
	catalog   *catalog.Catalog
	repo      lifecycle.LifecycleRepo
	dedup     lifecycle.EventDedup
	paymentGW lifecycle.PaymentGW
	eventGW   lifecycle.EventGW
}

// NewLifecycleUC creates a new lifecycle use case
func NewLifecycleUC(
	cfg *models.Config,
	products *catalog.Catalog,
	repo lifecycle.LifecycleRepo,
	dedup lifecycle.EventDedup,
	paymentGW lifecycle.PaymentGW,
	eventGW lifecycle.EventGW,
) *LifecycleUC {
	return &LifecycleUC{
		cfg:       cfg,
		catalog:   products,
		repo:      repo,
		dedup:     dedup,
		paymentGW: paymentGW,
		eventGW:   eventGW,
	}
}
