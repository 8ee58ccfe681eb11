package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/newrelic"
	"github.com/pioneer-funding/server/services/users/handler/http"
)

// Handler wires the user HTTP handlers to routes
type Handler struct {
	userHandler *http.UserHandler
}

// NewHandler creates the user route handler
func NewHandler(userHandler *http.UserHandler) *Handler {
	return &Handler{userHandler: userHandler}
}

// RegisterRoutes mounts /users. Every route needs a bearer token; the admin
// dashboard additionally needs the admin claim.
func (h *Handler) RegisterRoutes(api *echo.Group, bearer, admin echo.MiddlewareFunc) {
	g := api.Group("/users", bearer)

	g.GET("/profile", newrelic.TraceHandler("GetUserProfile", h.userHandler.GetProfile))
	g.PUT("/profile", newrelic.TraceHandler("UpdateUserProfile", h.userHandler.UpdateProfile))
	g.GET("/settings", newrelic.TraceHandler("GetUserSettings", h.userHandler.GetSettings))
	g.PUT("/settings", newrelic.TraceHandler("UpdateUserSettings", h.userHandler.UpdateSettings))
	g.GET("/dashboard", newrelic.TraceHandler("GetDashboard", h.userHandler.Dashboard))
	g.GET("/admin/dashboard", newrelic.TraceHandler("GetAdminDashboard", h.userHandler.AdminDashboard), admin)
}
