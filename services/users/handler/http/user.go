package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/middleware"
	"github.com/pioneer-funding/server/internal/pkg/models"
	"github.com/pioneer-funding/server/internal/utils"
	"github.com/pioneer-funding/server/services/users"
)

// UserHandler handles HTTP requests for user profiles and dashboards
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

type settingsRequest struct {
	Settings *models.UserSettings `json:"settings"`
}

// GetProfile handles GET /users/profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), principal.UserID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User profile retrieved", user)
}

// UpdateProfile handles PUT /users/profile
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var update models.UserProfileUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), principal.UserID, update)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}

// GetSettings handles GET /users/settings
func (h *UserHandler) GetSettings(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	settings, err := h.userUC.GetSettings(c.Request().Context(), principal.UserID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Settings retrieved", settings)
}

// UpdateSettings handles PUT /users/settings with body {"settings": {...}}
func (h *UserHandler) UpdateSettings(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req settingsRequest
	if err := c.Bind(&req); err != nil || req.Settings == nil {
		return utils.BadRequestResponse(c, "Settings are required")
	}

	settings, err := h.userUC.UpdateSettings(c.Request().Context(), principal.UserID, *req.Settings)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", settings)
}

// Dashboard handles GET /users/dashboard
func (h *UserHandler) Dashboard(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	dashboard, err := h.userUC.Dashboard(c.Request().Context(), principal.UserID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dashboard retrieved", dashboard)
}

// AdminDashboard handles GET /users/admin/dashboard
func (h *UserHandler) AdminDashboard(c echo.Context) error {
	dashboard, err := h.userUC.AdminDashboard(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Admin dashboard retrieved", dashboard)
}
