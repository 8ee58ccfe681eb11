package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/logger"
	"github.com/pioneer-funding/server/internal/pkg/middleware"
	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/pioneer-funding/server/internal/utils"
	"github.com/pioneer-funding/server/services/auth"
)

// AuthHandler handles HTTP requests for account operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for registration", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		// do not reveal which half of the credentials was wrong
		return utils.UnauthorizedResponse(c, "Invalid credentials")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// VerifyEmail handles POST /auth/verify-email
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req models.EmailRequest
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	link, err := h.authUC.VerifyEmail(c.Request().Context(), req.Email)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification email sent", link)
}

// ConfirmEmail handles POST /auth/verify-email/confirm
func (h *AuthHandler) ConfirmEmail(c echo.Context) error {
	var req models.TokenConfirmRequest
	if err := c.Bind(&req); err != nil || req.Token == "" {
		return utils.BadRequestResponse(c, "Token is required")
	}

	if err := h.authUC.ConfirmEmail(c.Request().Context(), req.Token); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Email verified", nil)
}

// ResetPassword handles POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.EmailRequest
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	link, err := h.authUC.ResetPassword(c.Request().Context(), req.Email)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password reset email sent", link)
}

// ConfirmPasswordReset handles POST /auth/reset-password/confirm
func (h *AuthHandler) ConfirmPasswordReset(c echo.Context) error {
	var req models.TokenConfirmRequest
	if err := c.Bind(&req); err != nil || req.Token == "" || req.NewPassword == "" {
		return utils.BadRequestResponse(c, "Token and new password are required")
	}

	if err := h.authUC.ConfirmPasswordReset(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password updated", nil)
}

// UpdateProfile handles PUT /auth/profile
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var update models.UserProfileUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), principal.UserID, update)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}
