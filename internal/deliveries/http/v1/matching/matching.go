package matching

import (
	"net/http"
	"time"

	"github.com/stashops/go-facility-recon/internal/common/authz"
	commonHTTP "github.com/stashops/go-facility-recon/internal/common/http"
	"github.com/stashops/go-facility-recon/internal/common/http/middleware"
	"github.com/stashops/go-facility-recon/internal/common/metrics"
	"github.com/stashops/go-facility-recon/internal/common/validation"
	"github.com/stashops/go-facility-recon/internal/models"
	"github.com/stashops/go-facility-recon/internal/services"

	"github.com/labstack/echo/v4"
)

type matchingHandler struct {
	matchingService services.MatchingService
	matchingMetrics *metrics.MatchingPrometheusMetrics
}

// New matching handler will initialize the matching/ resources endpoint
func New(app *echo.Group, matchingSrv services.MatchingService, mm *metrics.MatchingPrometheusMetrics, m middleware.AppMiddleware) {
	mh := matchingHandler{
		matchingService: matchingSrv,
		matchingMetrics: mm,
	}
	matching := app.Group("/matching")
	matching.POST("/candidates", mh.generateCandidates(), m.RequireAction(authz.ActionGenerateCandidates))
	matching.POST("/auto", mh.runAutoMatch(), m.RequireAction(authz.ActionRunAutoMatch), m.CheckIdempotentRequest())
	matching.GET("/unmatched", mh.listUnmatched(), m.RequireAction(authz.ActionListUnmatched))
}

// @Summary 	Generate match candidates
// @Description Score unmatched bank transactions against daily payment totals for one bank account and period. Nothing is persisted.
// @Tags 		Matching
// @Accept		json
// @Produce		json
// @Param	X-User-Role header string true "Resolved caller role"
// @Param 	payload body models.GenerateCandidatesRequest true "A JSON object containing the matching scope"
// @Success 200 {object} models.GenerateCandidatesResponse "Ranked list of suggested pairings"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the payload cannot be parsed"
// @Failure 403 {object} http.RestErrorResponseModel "Forbidden. The caller role cannot generate candidates"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if the matching scope is incomplete"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while scoring candidates"
// @Router /v1/matching/candidates [post]
func (mh matchingHandler) generateCandidates() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.GenerateCandidatesRequest)

		if err := c.Bind(req); err != nil {
			return commonHTTP.RestErrorResponse(c, http.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return commonHTTP.RestErrorValidationResponse(c, err)
		}

		suggestions, err := mh.matchingService.GenerateCandidates(c.Request().Context(), *req)
		if err != nil {
			return commonHTTP.RestDomainErrorResponse(c, err)
		}

		return commonHTTP.RestSuccessResponse(c, http.StatusOK, models.NewGenerateCandidatesResponse(suggestions))
	}
}

// @Summary 	Run automatic matching
// @Description Persist every exact pairing at or above the confidence floor for one bank account and period. Safe to retry with the same idempotency key.
// @Tags 		Matching
// @Accept		json
// @Produce		json
// @Param	X-User-Role header string true "Resolved caller role"
// @Param	X-Idempotency-Key header string true "Idempotency key for safe retries"
// @Param 	payload body models.RunAutoMatchRequest true "A JSON object containing the matching scope"
// @Success 200 {object} models.RunAutoMatchResponse "Pairings accepted by this run"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the payload cannot be parsed or the idempotency key is missing"
// @Failure 403 {object} http.RestErrorResponseModel "Forbidden. The caller role cannot run automatic matching"
// @Failure 409 {object} http.RestErrorResponseModel "Conflict. The same request is still being processed"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if the matching scope is incomplete"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while persisting pairings"
// @Router /v1/matching/auto [post]
func (mh matchingHandler) runAutoMatch() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.RunAutoMatchRequest)

		if err := c.Bind(req); err != nil {
			return commonHTTP.RestErrorResponse(c, http.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return commonHTTP.RestErrorValidationResponse(c, err)
		}

		start := time.Now()
		created, err := mh.matchingService.RunAutoMatch(c.Request().Context(), *req, middleware.CallerID(c))
		if mh.matchingMetrics != nil {
			connectionTypes := make([]string, 0, len(created))
			for _, link := range created {
				connectionTypes = append(connectionTypes, string(link.ConnectionType))
			}
			mh.matchingMetrics.GenerateMetrics(start, connectionTypes, err)
		}
		if err != nil {
			return commonHTTP.RestDomainErrorResponse(c, err)
		}

		return commonHTTP.RestSuccessResponse(c, http.StatusOK, models.NewRunAutoMatchResponse(created))
	}
}

// @Summary 	List unmatched records
// @Description List bank transactions and daily payments that remain unmatched for one bank account and period.
// @Tags 		Matching
// @Accept		json
// @Produce		json
// @Param	X-User-Role header string true "Resolved caller role"
// @Param   params query models.ListUnmatchedRequest true "Matching scope query parameters"
// @Success 200 {object} models.ListUnmatchedResponse "Unmatched records on both sides"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error. This can happen if the query parameters cannot be parsed"
// @Failure 403 {object} http.RestErrorResponseModel "Forbidden. The caller role cannot list unmatched records"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error. This can happen if the matching scope is incomplete"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error. This can happen if there is an error while listing records"
// @Router /v1/matching/unmatched [get]
func (mh matchingHandler) listUnmatched() echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(models.ListUnmatchedRequest)

		if err := c.Bind(req); err != nil {
			return commonHTTP.RestErrorResponse(c, http.StatusBadRequest, err)
		}

		if err := validation.ValidateStruct(req); err != nil {
			return commonHTTP.RestErrorValidationResponse(c, err)
		}

		txs, payments, err := mh.matchingService.ListUnmatched(c.Request().Context(), *req)
		if err != nil {
			return commonHTTP.RestDomainErrorResponse(c, err)
		}

		return commonHTTP.RestSuccessResponse(c, http.StatusOK, models.NewListUnmatchedResponse(txs, payments))
	}
}
