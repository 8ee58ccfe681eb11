package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/middleware"
	"github.com/pioneer-funding/server/internal/utils"
	"github.com/pioneer-funding/server/services/challenges"
)

// ChallengeHandler handles HTTP requests for challenge reads
type ChallengeHandler struct {
	challengeUC challenges.ChallengeUC
}

// NewChallengeHandler creates a new challenge handler
func NewChallengeHandler(challengeUC challenges.ChallengeUC) *ChallengeHandler {
	return &ChallengeHandler{challengeUC: challengeUC}
}

// ListProducts handles GET /challenges
func (h *ChallengeHandler) ListProducts(c echo.Context) error {
	products := h.challengeUC.ListProducts(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "Challenge catalog retrieved", products)
}

// GetChallenge handles GET /challenges/:id
func (h *ChallengeHandler) GetChallenge(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Challenge ID is required")
	}

	challenge, err := h.challengeUC.GetChallenge(c.Request().Context(), principal, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Challenge retrieved", challenge)
}

// ListUserChallenges handles GET /challenges/user/challenges
func (h *ChallengeHandler) ListUserChallenges(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.challengeUC.ListUserChallenges(c.Request().Context(), principal.UserID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Challenges retrieved", list)
}
