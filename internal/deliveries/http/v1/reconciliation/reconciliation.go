package reconciliation

import (
	"net/http"
	"strconv"

	"github.com/stashops/go-facility-recon/internal/common/authz"
	commonHTTP "github.com/stashops/go-facility-recon/internal/common/http"
	"github.com/stashops/go-facility-recon/internal/common/http/middleware"
	"github.com/stashops/go-facility-recon/internal/common/validation"
	"github.com/stashops/go-facility-recon/internal/models"
	"github.com/stashops/go-facility-recon/internal/services"

	"github.com/labstack/echo/v4"
)

type reconciliationHandler struct {
	reconciliationService services.ReconciliationService
}

// New reconciliation handler will initialize the reconciliations/ resources endpoint
func New(app *echo.Group, reconciliationSrv services.ReconciliationService, m middleware.AppMiddleware) {
	rh := reconciliationHandler{
		reconciliationService: reconciliationSrv,
	}
	recon := app.Group("/reconciliations")
	recon.POST("", rh.startReconciliation(), m.RequireAction(authz.ActionStartReconciliation), m.CheckIdempotentRequest())
	recon.PATCH("/:id/status", rh.advanceStatus(), m.RequireAction(authz.ActionAdvanceStatus))
}

// @Summary 	Start a monthly reconciliation
// @Description Open one reconciliation header per bank account of the facility for the given period. Safe to retry with the same idempotency key.
// @Tags 		Reconciliations
// @Accept		json
// @Produce		json
// @Param	X-User-Role header string true "Resolved caller role"
// @Param	X-Idempotency-Key header string true "Idempotency key for safe retries"
// @Param 	payload body models.StartReconciliationRequest true "A JSON object containing the facility and period"
// @Success 201 {object} models.StartReconciliationResponse "Headers opened for this period with the expected totals"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the payload cannot be parsed or the idempotency key is missing"
// @Failure 403 {object} http.RestErrorResponseModel "Forbidden. The caller role cannot start reconciliations"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the facility does not exist or has no bank accounts"
// @Failure 409 {object} http.RestErrorResponseModel "Conflict. A reconciliation already exists for this facility and period"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if the facility or period is incomplete"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while opening headers"
// @Router /v1/reconciliations [post]
func (rh reconciliationHandler) startReconciliation() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.StartReconciliationRequest)

		if err := c.Bind(req); err != nil {
			return commonHTTP.RestErrorResponse(c, http.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return commonHTTP.RestErrorValidationResponse(c, err)
		}

		rows, totals, err := rh.reconciliationService.Start(c.Request().Context(), *req, middleware.CallerID(c))
		if err != nil {
			return commonHTTP.RestDomainErrorResponse(c, err)
		}

		return commonHTTP.RestSuccessResponse(c, http.StatusCreated, models.NewStartReconciliationResponse(rows, *totals))
	}
}

// @Summary 	Advance a reconciliation status
// @Description Move one reconciliation header forward along the status order. Backward moves are rejected.
// @Tags 		Reconciliations
// @Accept		json
// @Produce		json
// @Param	X-User-Role header string true "Resolved caller role"
// @Param 	id path int true "reconciliation identifier"
// @Param 	payload body models.AdvanceReconciliationStatusRequest true "A JSON object containing the target status"
// @Success 200 {object} models.ReconciliationResponse "The updated reconciliation header"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the identifier or payload cannot be parsed"
// @Failure 403 {object} http.RestErrorResponseModel "Forbidden. The caller role cannot advance reconciliations"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the reconciliation does not exist"
// @Failure 409 {object} http.RestErrorResponseModel "Conflict. The target status does not move the reconciliation forward"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if the target status is unknown"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while updating the header"
// @Router /v1/reconciliations/{id}/status [patch]
func (rh reconciliationHandler) advanceStatus() echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return commonHTTP.RestErrorResponse(c, http.StatusBadRequest, err)
		}

		req := new(models.AdvanceReconciliationStatusRequest)
		if err = c.Bind(req); err != nil {
			return commonHTTP.RestErrorResponse(c, http.StatusBadRequest, err)
		}

		if err = validation.ValidateStruct(req); err != nil {
			return commonHTTP.RestErrorValidationResponse(c, err)
		}

		updated, err := rh.reconciliationService.AdvanceStatus(c.Request().Context(), id, models.ParseReconStatus(req.Status))
		if err != nil {
			return commonHTTP.RestDomainErrorResponse(c, err)
		}

		return commonHTTP.RestSuccessResponse(c, http.StatusOK, updated.ToModelResponse())
	}
}
