package dashboard

import (
	"net/http"

	"github.com/stashops/go-facility-recon/internal/common/authz"
	commonHTTP "github.com/stashops/go-facility-recon/internal/common/http"
	"github.com/stashops/go-facility-recon/internal/common/http/middleware"
	"github.com/stashops/go-facility-recon/internal/common/validation"
	"github.com/stashops/go-facility-recon/internal/models"
	"github.com/stashops/go-facility-recon/internal/services"

	"github.com/labstack/echo/v4"
)

type dashboardHandler struct {
	reconciliationService services.ReconciliationService
}

// New dashboard handler will initialize the dashboard/ resources endpoint
func New(app *echo.Group, reconciliationSrv services.ReconciliationService, m middleware.AppMiddleware) {
	dh := dashboardHandler{
		reconciliationService: reconciliationSrv,
	}
	app.GET("/dashboard", dh.getDashboard(), m.RequireAction(authz.ActionViewDashboard))
}

// @Summary 	Get the reconciliation dashboard
// @Description Per facility reconciliation status for one period, plus portfolio wide statistics.
// @Tags 		Dashboard
// @Accept		json
// @Produce		json
// @Param	X-User-Role header string true "Resolved caller role"
// @Param   params query models.GetDashboardRequest true "Period query parameters"
// @Success 200 {object} models.GetDashboardResponse "Facility overviews and portfolio statistics"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the query parameters cannot be parsed"
// @Failure 403 {object} http.RestErrorResponseModel "Forbidden. The caller role cannot view the dashboard"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if the period is incomplete"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while aggregating facilities"
// @Router /v1/dashboard [get]
func (dh dashboardHandler) getDashboard() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.GetDashboardRequest)

		if err := c.Bind(req); err != nil {
			return commonHTTP.RestErrorResponse(c, http.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return commonHTTP.RestErrorValidationResponse(c, err)
		}

		facilities, stats, err := dh.reconciliationService.GetDashboard(c.Request().Context(), *req)
		if err != nil {
			return commonHTTP.RestDomainErrorResponse(c, err)
		}

		return commonHTTP.RestSuccessResponse(c, http.StatusOK, models.NewGetDashboardResponse(facilities, stats))
	}
}
