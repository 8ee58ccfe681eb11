package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/newrelic"
	"github.com/pioneer-funding/server/services/challenges/handler/http"
)

// Handler wires the challenge read handlers to routes
type Handler struct {
	challengeHandler *http.ChallengeHandler
}

// NewHandler creates the challenge route handler
func NewHandler(challengeHandler *http.ChallengeHandler) *Handler {
	return &Handler{challengeHandler: challengeHandler}
}

// RegisterRoutes mounts the read side of /challenges. The catalog is public.
func (h *Handler) RegisterRoutes(api *echo.Group, bearer echo.MiddlewareFunc) {
	g := api.Group("/challenges")

	g.GET("", newrelic.TraceHandler("ListChallengeProducts", h.challengeHandler.ListProducts))
	g.GET("/user/challenges", newrelic.TraceHandler("ListUserChallenges", h.challengeHandler.ListUserChallenges), bearer)
	g.GET("/:id", newrelic.TraceHandler("GetChallenge", h.challengeHandler.GetChallenge), bearer)
}
