package middleware

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/stashops/go-facility-recon/internal/common"
	commonHTTP "github.com/stashops/go-facility-recon/internal/common/http"
	"github.com/stashops/go-facility-recon/internal/models"

	"github.com/labstack/echo/v4"
)

const headerIdempotencyKey = "X-Idempotency-Key"

type bodyDumpResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	_ = http.NewResponseController(w.ResponseWriter).Flush()
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(w.ResponseWriter).Hijack()
}

func (w *bodyDumpResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// CheckIdempotentRequest replays the cached response for a repeated key and
// locks the key while the first request is in flight. Only POSTs are
// guarded; the lock is released on failure so retries get through.
func (m *AppMiddleware) CheckIdempotentRequest() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodPost {
				return next(c)
			}

			idempotencyKey := c.Request().Header.Get(headerIdempotencyKey)
			if idempotencyKey == "" {
				return commonHTTP.RestErrorResponse(c, http.StatusBadRequest, common.ErrMissingIdempotencyKey)
			}

			ctx := c.Request().Context()
			reqBody := m.parseRequestBody(c)

			idm, err := m.getOrCreateIdempotency(ctx, idempotencyKey, reqBody)
			if err != nil {
				if errors.Is(err, common.ErrInvalidFingerprint) {
					return commonHTTP.RestErrorResponse(c, http.StatusUnprocessableEntity, err)
				} else if errors.Is(err, common.ErrRequestBeingProcessed) {
					return commonHTTP.RestErrorResponse(c, http.StatusConflict, err)
				}
				return commonHTTP.RestErrorResponse(c, http.StatusInternalServerError, err)
			}

			if idm.StatusProcess == models.IdempotencyStatusProcessFinished {
				for k, v := range idm.ResponseHeaders {
					c.Response().Header().Set(k, v)
				}
				return c.Blob(idm.HTTPStatusCode, echo.MIMEApplicationJSONCharsetUTF8, []byte(idm.ResponseBody))
			}

			resBody := new(bytes.Buffer)
			mw := io.MultiWriter(c.Response().Writer, resBody)
			c.Response().Writer = &bodyDumpResponseWriter{mw, c.Response().Writer}

			if err = next(c); err != nil {
				c.Error(err)
			}

			statusCode := c.Response().Status
			if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
				// Release the lock so a retry of the same request is
				// processed again instead of replaying the failure.
				return m.releaseLock(ctx, idm)
			}

			headers := make(map[string]string)
			for k, v := range c.Response().Header() {
				if len(v) > 0 {
					headers[k] = v[len(v)-1]
				}
			}

			idm.SetResponse(statusCode, headers, resBody.String())

			return m.saveResponseToCache(ctx, idm)
		}
	}
}

// getOrCreateIdempotency loads previous idempotency data for the key, or
// claims the key with a pending lock when none exists.
func (m *AppMiddleware) getOrCreateIdempotency(ctx context.Context, key string, requestBody []byte) (*models.Idempotency, error) {
	idm := models.NewIdempotency(key, models.IdempotencyStatusProcessPending, requestBody)

	strIdm, err := m.cacheRepo.Get(ctx, idm.CacheKey)
	if errors.Is(err, common.ErrDataNotFound) {
		if err = m.createLock(ctx, idm); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to get idempotency data: %w", err)
	}

	if strIdm == "" {
		return idm, nil
	}

	var cachedIdm models.Idempotency
	if err = json.Unmarshal([]byte(strIdm), &cachedIdm); err != nil {
		return nil, fmt.Errorf("failed to unmarshal idempotency data: %w", err)
	}

	if cachedIdm.Fingerprint != idm.Fingerprint {
		return nil, common.ErrInvalidFingerprint
	}

	if cachedIdm.StatusProcess == models.IdempotencyStatusProcessPending {
		return nil, common.ErrRequestBeingProcessed
	}

	return &cachedIdm, nil
}

func (m *AppMiddleware) saveResponseToCache(ctx context.Context, idm *models.Idempotency) error {
	bytIdm, err := json.Marshal(idm)
	if err != nil {
		return fmt.Errorf("failed to marshal idempotency data: %w", err)
	}

	if err = m.cacheRepo.Set(ctx, idm.CacheKey, string(bytIdm), models.TTLIdempotency); err != nil {
		return fmt.Errorf("failed to save idempotency data: %w", err)
	}

	return nil
}

func (m *AppMiddleware) createLock(ctx context.Context, idm *models.Idempotency) error {
	bytIdm, err := json.Marshal(idm)
	if err != nil {
		return fmt.Errorf("failed to marshal idempotency data: %w", err)
	}

	set, err := m.cacheRepo.SetIfNotExists(ctx, idm.CacheKey, string(bytIdm), models.TTLIdempotency)
	if err != nil {
		return fmt.Errorf("failed to save idempotency data: %w", err)
	}

	// Another process may be handling the same request right now.
	if !set {
		return common.ErrRequestBeingProcessed
	}

	return nil
}

func (m *AppMiddleware) releaseLock(ctx context.Context, idm *models.Idempotency) error {
	if err := m.cacheRepo.Del(ctx, idm.CacheKey); err != nil {
		return fmt.Errorf("failed to release idempotency data: %w", err)
	}

	return nil
}
