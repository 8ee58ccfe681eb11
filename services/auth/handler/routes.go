package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/newrelic"
	"github.com/pioneer-funding/server/services/auth/handler/http"
)

// Handler wires the auth HTTP handlers to routes
type Handler struct {
	authHandler *http.AuthHandler
}

// NewHandler creates the auth route handler
func NewHandler(authHandler *http.AuthHandler) *Handler {
	return &Handler{authHandler: authHandler}
}

// RegisterRoutes mounts /auth under api. public runs on the unauthenticated
// routes (rate limiting), bearer guards the profile route.
func (h *Handler) RegisterRoutes(api *echo.Group, bearer echo.MiddlewareFunc, public ...echo.MiddlewareFunc) {
	g := api.Group("/auth")

	g.POST("/register", newrelic.TraceHandler("Register", h.authHandler.Register), public...)
	g.POST("/login", newrelic.TraceHandler("Login", h.authHandler.Login), public...)
	g.POST("/verify-email", newrelic.TraceHandler("VerifyEmail", h.authHandler.VerifyEmail), public...)
	g.POST("/verify-email/confirm", newrelic.TraceHandler("ConfirmEmail", h.authHandler.ConfirmEmail), public...)
	g.POST("/reset-password", newrelic.TraceHandler("ResetPassword", h.authHandler.ResetPassword), public...)
	g.POST("/reset-password/confirm", newrelic.TraceHandler("ConfirmPasswordReset", h.authHandler.ConfirmPasswordReset), public...)

	g.PUT("/profile", newrelic.TraceHandler("UpdateAuthProfile", h.authHandler.UpdateProfile), bearer)
}
