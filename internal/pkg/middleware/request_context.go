package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/pioneer-funding/server/internal/pkg/requestcontext"
)

// RequestContextMiddleware copies the request id into the request context and
// echoes it back in X-Request-ID. It must run after echo's RequestID
// middleware so both agree on the id.
func RequestContextMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := requestcontext.WithRequestID(req.Context(), requestcontext.RequestIDFromEcho(c))
			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set(echo.HeaderXRequestID, requestcontext.RequestID(ctx))
			return next(c)
		}
	}
}
