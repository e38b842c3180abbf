package middleware

import (
	"pricepilot/business/pricing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceID assigns a request-scoped trace id, reusing the caller-provided
// X-Trace-ID header when present.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get("X-Trace-ID")
			if traceID == "" {
				traceID = uuid.NewString()
			}

			ctx := pricing.WithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set("X-Trace-ID", traceID)

			return next(c)
		}
	}
}
