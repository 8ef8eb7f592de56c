package matching

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stashops/go-facility-recon/internal/common"
	"github.com/stashops/go-facility-recon/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Handler_generateCandidates(t *testing.T) {
	testHelper := matchingTestHelper(t)

	type args struct {
		role string
		body string
	}
	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		args        args
		expectation Expectation
		doMock      func(args args)
	}{
		{
			name: "success",
			args: args{
				role: "manager",
				body: `{"facilityId":1,"bankAccountId":3,"month":1,"year":2024}`,
			},
			expectation: Expectation{
				wantRes:  `{"kind":"matchSuggestionList","suggestions":[{"kind":"matchSuggestion","bankTransactionId":11,"dailyPaymentId":22,"connectionType":"cash","matchType":"exact","matchConfidence":"1","amountDifference":"0.00","dateDifference":0}],"totalFound":1}`,
				wantCode: 200,
			},
			doMock: func(args args) {
				testHelper.mockMatchingService.EXPECT().
					GenerateCandidates(gomock.AssignableToTypeOf(context.Background()), models.GenerateCandidatesRequest{
						FacilityID:    1,
						BankAccountID: 3,
						Month:         1,
						Year:          2024,
					}).
					Return([]models.MatchSuggestion{{
						BankTransactionID: 11,
						DailyPaymentID:    22,
						ConnectionType:    models.ConnectionTypeCash,
						MatchType:         models.MatchTypeExact,
						MatchConfidence:   decimal.NewFromInt(1),
					}}, nil)
			},
		},
		{
			name: "validation error on missing period",
			args: args{
				role: "manager",
				body: `{"facilityId":1,"bankAccountId":3}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"UNKNOWN","field":"month","message":"required"},{"code":"UNKNOWN","field":"year","message":"required"}]}`,
				wantCode: 422,
			},
		},
		{
			name: "forbidden for staff",
			args: args{
				role: "staff",
				body: `{"facilityId":1,"bankAccountId":3,"month":1,"year":2024}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":403,"message":"role is not allowed to perform this action"}`,
				wantCode: 403,
			},
		},
		{
			name: "error",
			args: args{
				role: "manager",
				body: `{"facilityId":1,"bankAccountId":3,"month":1,"year":2024}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"FR-5001","message":"internal server error"}`,
				wantCode: 500,
			},
			doMock: func(args args) {
				testHelper.mockMatchingService.EXPECT().
					GenerateCandidates(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
					Return(nil, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/matching/candidates", bytes.NewBufferString(tt.args.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-User-Role", tt.args.role)

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tt.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_runAutoMatch(t *testing.T) {
	testHelper := matchingTestHelper(t)

	type args struct {
		role           string
		idempotencyKey string
		body           string
	}
	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		args        args
		expectation Expectation
		doMock      func(args args)
	}{
		{
			name: "success",
			args: args{
				role:           "manager",
				idempotencyKey: "run-2024-01",
				body:           `{"facilityId":1,"bankAccountId":3,"month":1,"year":2024}`,
			},
			expectation: Expectation{
				wantRes:  `{"kind":"autoMatchResult","matchesCreated":1,"matches":[{"kind":"matchLink","id":7,"bankTransactionId":11,"dailyPaymentId":22,"connectionType":"cash","matchType":"exact","matchConfidence":"1","isManualMatch":false,"matchedBy":"system"}]}`,
				wantCode: 200,
			},
			doMock: func(args args) {
				testHelper.mockCacheRepo.EXPECT().
					Get(gomock.AssignableToTypeOf(context.Background()), "recon-idem-run-2024-01").
					Return("", common.ErrDataNotFound)
				testHelper.mockCacheRepo.EXPECT().
					SetIfNotExists(gomock.AssignableToTypeOf(context.Background()), "recon-idem-run-2024-01", gomock.Any(), models.TTLIdempotency).
					Return(true, nil)
				testHelper.mockCacheRepo.EXPECT().
					Set(gomock.AssignableToTypeOf(context.Background()), "recon-idem-run-2024-01", gomock.Any(), models.TTLIdempotency).
					Return(nil)

				testHelper.mockMatchingService.EXPECT().
					RunAutoMatch(gomock.AssignableToTypeOf(context.Background()), models.RunAutoMatchRequest{
						FacilityID:    1,
						BankAccountID: 3,
						Month:         1,
						Year:          2024,
					}, "").
					Return([]models.MatchLink{{
						ID:                7,
						BankTransactionID: 11,
						DailyPaymentID:    22,
						ConnectionType:    models.ConnectionTypeCash,
						MatchType:         models.MatchTypeExact,
						MatchConfidence:   decimal.NewFromInt(1),
						MatchedBy:         "system",
					}}, nil)
			},
		},
		{
			name: "missing idempotency key",
			args: args{
				role: "manager",
				body: `{"facilityId":1,"bankAccountId":3,"month":1,"year":2024}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":400,"message":"missing idempotency key. this operation requires idempotency key"}`,
				wantCode: 400,
			},
		},
		{
			name: "same key still processing",
			args: args{
				role:           "manager",
				idempotencyKey: "run-2024-02",
				body:           `{"facilityId":1,"bankAccountId":3,"month":2,"year":2024}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":409,"message":"request with same idempotency key is being processed"}`,
				wantCode: 409,
			},
			doMock: func(args args) {
				testHelper.mockCacheRepo.EXPECT().
					Get(gomock.AssignableToTypeOf(context.Background()), "recon-idem-run-2024-02").
					Return("", common.ErrDataNotFound)
				testHelper.mockCacheRepo.EXPECT().
					SetIfNotExists(gomock.AssignableToTypeOf(context.Background()), "recon-idem-run-2024-02", gomock.Any(), models.TTLIdempotency).
					Return(false, nil)
			},
		},
		{
			name: "lock released when the run fails",
			args: args{
				role:           "manager",
				idempotencyKey: "run-2024-03",
				body:           `{"facilityId":1,"bankAccountId":3,"month":3,"year":2024}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"FR-5001","message":"internal server error"}`,
				wantCode: 500,
			},
			doMock: func(args args) {
				testHelper.mockCacheRepo.EXPECT().
					Get(gomock.AssignableToTypeOf(context.Background()), "recon-idem-run-2024-03").
					Return("", common.ErrDataNotFound)
				testHelper.mockCacheRepo.EXPECT().
					SetIfNotExists(gomock.AssignableToTypeOf(context.Background()), "recon-idem-run-2024-03", gomock.Any(), models.TTLIdempotency).
					Return(true, nil)
				testHelper.mockCacheRepo.EXPECT().
					Del(gomock.AssignableToTypeOf(context.Background()), "recon-idem-run-2024-03").
					Return(nil)

				testHelper.mockMatchingService.EXPECT().
					RunAutoMatch(gomock.AssignableToTypeOf(context.Background()), gomock.Any(), "").
					Return(nil, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/matching/auto", bytes.NewBufferString(tt.args.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-User-Role", tt.args.role)
			if tt.args.idempotencyKey != "" {
				req.Header.Set("X-Idempotency-Key", tt.args.idempotencyKey)
			}

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tt.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

func Test_Handler_listUnmatched(t *testing.T) {
	testHelper := matchingTestHelper(t)

	type args struct {
		role     string
		queryURL string
	}
	type Expectation struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name        string
		args        args
		expectation Expectation
		doMock      func(args args)
	}{
		{
			name: "success",
			args: args{
				role:     "supervisor",
				queryURL: "?facilityId=1&bankAccountId=3&month=1&year=2024",
			},
			expectation: Expectation{
				wantRes:  `{"kind":"unmatchedSet","transactions":[{"kind":"bankTransaction","id":11,"bankAccountId":3,"transactionDate":"2024-01-05","amount":"500.00","transactionType":"deposit"}],"payments":[{"kind":"dailyPayment","id":22,"facilityId":1,"paymentDate":"2024-01-05","cashCheckTotal":"300.00","cardTotal":"200.00"}]}`,
				wantCode: 200,
			},
			doMock: func(args args) {
				testHelper.mockMatchingService.EXPECT().
					ListUnmatched(gomock.AssignableToTypeOf(context.Background()), models.ListUnmatchedRequest{
						FacilityID:    1,
						BankAccountID: 3,
						Month:         1,
						Year:          2024,
					}).
					Return(
						[]models.BankTransaction{{
							ID:              11,
							BankAccountID:   3,
							TransactionDate: day(2024, 1, 5),
							Amount:          decimal.NewFromInt(500),
							TransactionType: "deposit",
						}},
						[]models.DailyPayment{{
							ID:          22,
							FacilityID:  1,
							PaymentDate: day(2024, 1, 5),
							Cash:        decimal.NewFromInt(300),
							Visa:        decimal.NewFromInt(200),
						}},
						nil,
					)
			},
		},
		{
			name: "error",
			args: args{
				role:     "manager",
				queryURL: "?facilityId=1&bankAccountId=3&month=1&year=2024",
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"FR-5001","message":"internal server error"}`,
				wantCode: 500,
			},
			doMock: func(args args) {
				testHelper.mockMatchingService.EXPECT().
					ListUnmatched(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
					Return(nil, nil, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/matching/unmatched"+tt.args.queryURL, nil)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-User-Role", tt.args.role)

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.expectation.wantCode, resp.StatusCode)
			require.Equal(t, tt.expectation.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}
