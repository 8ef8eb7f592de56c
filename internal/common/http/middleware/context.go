package middleware

import (
	"github.com/stashops/go-facility-recon/internal/common/log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const headerRequestID = "X-Request-Id"

// RequestID injects a request id into the request context so every log
// line downstream carries it. An id supplied by the caller wins.
func (m *AppMiddleware) RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(headerRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}

			ctx := log.InjectRequestID(c.Request().Context(), rid)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(headerRequestID, rid)

			return next(c)
		}
	}
}
