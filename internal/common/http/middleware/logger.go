package middleware

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/stashops/go-facility-recon/internal/common/log"

	"github.com/labstack/echo/v4"
)

var excludedLogs = []string{
	"/health",
	"/metrics",
}

func (m *AppMiddleware) parseRequestBody(c echo.Context) []byte {
	var body []byte
	if c.Request().Body != nil {
		body, _ = io.ReadAll(c.Request().Body)
	}
	c.Request().Body = io.NopCloser(bytes.NewBuffer(body))
	return body
}

func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if slices.Contains(excludedLogs, c.Path()) {
				return next(c)
			}

			start := time.Now()
			req := c.Request()
			res := c.Response()
			reqBody := m.parseRequestBody(c)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			ctx := c.Request().Context()
			latency := time.Since(start)

			fields := []log.Field{
				log.String("method", req.Method),
				log.String("url_path", req.URL.String()),
				log.String("request_body", string(reqBody)),
				log.Int("status", res.Status),
				log.Duration("latency", latency),
				log.String("idempotency_key", req.Header.Get("X-Idempotency-Key")),
				log.String("role", req.Header.Get(headerUserRole)),
			}

			message := fmt.Sprintf("%v %v %v %v", res.Status, req.Method, req.URL.String(), latency)

			switch {
			case res.Status >= 500:
				log.Error(ctx, message, fields...)
			case res.Status >= 300:
				log.Warn(ctx, message, fields...)
			default:
				log.Info(ctx, message, fields...)
			}

			return nil
		}
	}
}
