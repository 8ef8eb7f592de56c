package http

import (
	"errors"
	"net/http"

	"github.com/stashops/go-facility-recon/internal/common"
	"github.com/stashops/go-facility-recon/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
)

type (
	RestErrorResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Code    interface{} `json:"code"`
		Message string      `json:"message" example:"error"`
	}

	RestErrorValidationResponseModel struct {
		Status  string      `json:"status" example:"error"`
		Message string      `json:"message" example:"validation error"`
		Errors  interface{} `json:"errors"`
	}
)

func RestSuccessResponse(c echo.Context, code int, in interface{}) error {
	return c.JSON(code, in)
}

func RestErrorResponse(c echo.Context, statusCode int, err error) error {
	res := RestErrorResponseModel{
		Status:  "error",
		Code:    statusCode,
		Message: err.Error(),
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		res.Code = echoErr.Code
		res.Message = echoErr.Message.(string)
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		res.Code = data.Code
		res.Message = data.ErrorMessage.Error()
	}
	return c.JSON(statusCode, res)
}

func RestErrorValidationResponse(c echo.Context, errors interface{}) error {
	res := RestErrorValidationResponseModel{
		Status:  "error",
		Message: common.ErrValidation.Error(),
	}
	if data, ok := errors.(*multierror.Error); ok {
		res.Errors = data.Errors
	}

	return c.JSON(http.StatusUnprocessableEntity, res)
}

// RestDomainErrorResponse maps sentinel domain errors onto HTTP statuses.
// Anything unrecognized is reported as a 500 with the generic database
// message; the full cause is only ever logged server side.
func RestDomainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrFacilityNotFound),
		errors.Is(err, common.ErrReconNotFound),
		errors.Is(err, common.ErrNoBankAccounts),
		errors.Is(err, common.ErrDiscrepancyNotFound),
		errors.Is(err, common.ErrDataNotFound):
		return RestErrorResponse(c, http.StatusNotFound, err)

	case errors.Is(err, common.ErrReconAlreadyExists),
		errors.Is(err, common.ErrDiscrepancyNotPending),
		errors.Is(err, common.ErrInvalidStatusTransition),
		errors.Is(err, common.ErrRequestBeingProcessed),
		errors.Is(err, common.ErrDataExist):
		return RestErrorResponse(c, http.StatusConflict, err)

	case errors.Is(err, common.ErrInvalidAmount),
		errors.Is(err, common.ErrInvalidPeriod),
		errors.Is(err, common.ErrEmptyDiscrepancyIDs),
		errors.Is(err, common.ErrInvalidBulkAction),
		errors.Is(err, common.ErrMissingIdempotencyKey):
		return RestErrorResponse(c, http.StatusBadRequest, err)

	case errors.Is(err, common.ErrInvalidFingerprint):
		return RestErrorResponse(c, http.StatusUnprocessableEntity, err)

	case errors.Is(err, common.ErrForbidden):
		return RestErrorResponse(c, http.StatusForbidden, err)
	}

	var data models.ErrorDetail
	if errors.As(err, &data) {
		switch data.Code {
		case models.MapErrors[models.ErrKeyDataNotFound].Code:
			return RestErrorResponse(c, http.StatusNotFound, err)
		case models.MapErrors[models.ErrKeyDatabaseError].Code:
			return RestErrorResponse(c, http.StatusInternalServerError, err)
		}
		return RestErrorResponse(c, http.StatusBadRequest, err)
	}

	return RestErrorResponse(c, http.StatusInternalServerError, models.GetErrMap(models.ErrKeyDatabaseError))
}
