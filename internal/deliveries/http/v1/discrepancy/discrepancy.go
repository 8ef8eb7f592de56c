package discrepancy

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

type discrepancyHandler struct {
	discrepancyService services.DiscrepancyService
}

// New discrepancy handler will initialize the discrepancies/ resources endpoint
func New(app *echo.Group, discrepancySrv services.DiscrepancyService, m middleware.AppMiddleware) {
	dh := discrepancyHandler{
		discrepancyService: discrepancySrv,
	}
	discrepancies := app.Group("/discrepancies")
	discrepancies.POST("", dh.createDiscrepancy(), m.RequireAction(authz.ActionCreateDiscrepancy))
	discrepancies.POST("/bulk-review", dh.bulkReview(), m.RequireAction(authz.ActionReviewDiscrepancies))
}

// @Summary 	Create a discrepancy
// @Description Record one explained difference against an existing reconciliation header.
// @Tags 		Discrepancies
// @Accept		json
// @Produce		json
// @Param	X-User-Role header string true "Resolved caller role"
// @Param 	payload body models.CreateDiscrepancyRequest true "A JSON object containing the discrepancy payload"
// @Success 201 {object} models.DiscrepancyResponse "The recorded discrepancy pending approval"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the payload cannot be parsed or the amount is not positive"
// @Failure 403 {object} http.RestErrorResponseModel "Forbidden. The caller role cannot create discrepancies"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if the reconciliation does not exist"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if the discrepancy payload is incomplete"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while recording the discrepancy"
// @Router /v1/discrepancies [post]
func (dh discrepancyHandler) createDiscrepancy() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.CreateDiscrepancyRequest)

		if err := c.Bind(req); err != nil {
			return commonHTTP.RestErrorResponse(c, http.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return commonHTTP.RestErrorValidationResponse(c, err)
		}

		in, err := req.ToCreateIn(middleware.CallerID(c))
		if err != nil {
			return commonHTTP.RestErrorResponse(c, http.StatusBadRequest, err)
		}

		created, err := dh.discrepancyService.Create(c.Request().Context(), in)
		if err != nil {
			return commonHTTP.RestDomainErrorResponse(c, err)
		}

		return commonHTTP.RestSuccessResponse(c, http.StatusCreated, created.ToModelResponse())
	}
}

// @Summary 	Review discrepancies in bulk
// @Description Approve or reject a batch of pending discrepancies atomically. If any id is missing or no longer pending, nothing changes.
// @Tags 		Discrepancies
// @Accept		json
// @Produce		json
// @Param	X-User-Role header string true "Resolved caller role"
// @Param 	payload body models.BulkReviewRequest true "A JSON object containing the action and discrepancy ids"
// @Success 200 {object} models.BulkReviewResponse "How many discrepancies were processed"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the payload cannot be parsed or the id list is empty"
// @Failure 403 {object} http.RestErrorResponseModel "Forbidden. The caller role cannot review discrepancies"
// @Failure 404 {object} http.RestErrorResponseModel "Data not found. This can happen if one of the discrepancies does not exist"
// @Failure 409 {object} http.RestErrorResponseModel "Conflict. This can happen if one of the discrepancies is no longer pending"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if the action is unknown"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while updating the batch"
// @Router /v1/discrepancies/bulk-review [post]
func (dh discrepancyHandler) bulkReview() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.BulkReviewRequest)

		if err := c.Bind(req); err != nil {
			return commonHTTP.RestErrorResponse(c, http.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return commonHTTP.RestErrorValidationResponse(c, err)
		}

		processed, err := dh.discrepancyService.BulkReview(c.Request().Context(), *req, middleware.CallerID(c))
		if err != nil {
			return commonHTTP.RestDomainErrorResponse(c, err)
		}

		return commonHTTP.RestSuccessResponse(c, http.StatusOK, models.BulkReviewResponse{
			Kind:           "bulkReview",
			ProcessedCount: processed,
			Action:         req.Action,
		})
	}
}
