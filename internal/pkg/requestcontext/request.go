// Package requestcontext carries per-request identifiers through
// context.Context so logs written deep in a use case can be tied back to the
// HTTP request and caller that caused them.
package requestcontext

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for the request id
	RequestIDKey ContextKey = "request_id"
	// UserIDKey is the context key for the authenticated user id
	UserIDKey ContextKey = "user_id"
)

// WithRequestID returns ctx carrying requestID. An empty id is replaced by a
// fresh UUID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithUserID returns ctx carrying the authenticated user id
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// RequestID extracts the request id from ctx
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

// UserID extracts the user id from ctx
func UserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestIDFromEcho returns the id echo's RequestID middleware assigned, or
// the one the client sent.
func RequestIDFromEcho(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// SetUserID attaches userID to the request context of c
func SetUserID(c echo.Context, userID string) {
	req := c.Request()
	c.SetRequest(req.WithContext(WithUserID(req.Context(), userID)))
}
