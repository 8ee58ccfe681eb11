package usecase

import (
	"github.com/pioneer-funding/server/internal/pkg/catalog"
	"github.com/pioneer-funding/server/services/challenges"
)

// ChallengeUC implements challenges.ChallengeUC
type ChallengeUC struct {
	catalog *catalog.Catalog
	repo    challenges.ChallengeRepo
	adminGW challenges.AdminGW
}

// NewChallengeUC creates a new challenge read use case
func NewChallengeUC(products *catalog.Catalog, repo challenges.ChallengeRepo, adminGW challenges.AdminGW) *ChallengeUC {
	return &ChallengeUC{
		catalog: products,
		repo:    repo,
		adminGW: adminGW,
	}
}
