package middleware

import (
	"net/http"

	"github.com/stashops/go-facility-recon/internal/common"
	"github.com/stashops/go-facility-recon/internal/common/authz"
	commonHTTP "github.com/stashops/go-facility-recon/internal/common/http"

	"github.com/labstack/echo/v4"
)

const (
	headerUserRole = "X-User-Role"
	headerUserID   = "X-User-Id"
)

// RequireAction gates a route on the caller's resolved role. Session
// verification happens upstream; this only reads the resolved role header
// and consults the authorizer.
func (m *AppMiddleware) RequireAction(action authz.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := authz.Role(c.Request().Header.Get(headerUserRole))
			if role == "" || !m.authorizer.CanPerform(role, action) {
				return commonHTTP.RestErrorResponse(c, http.StatusForbidden, common.ErrForbidden)
			}

			return next(c)
		}
	}
}

// CallerID resolves the acting user for audit fields. Empty when the
// upstream gateway did not attach one.
func CallerID(c echo.Context) string {
	return c.Request().Header.Get(headerUserID)
}
