package reconciliation

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
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Handler_startReconciliation(t *testing.T) {
	testHelper := reconciliationTestHelper(t)

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
				idempotencyKey: "start-7-2024-01",
				body:           `{"facilityId":7,"month":1,"year":2024}`,
			},
			expectation: Expectation{
				wantRes:  `{"kind":"reconciliationStart","reconciliations":[{"reconciliationId":31,"bankAccountId":3},{"reconciliationId":32,"bankAccountId":4}],"expectedTotals":{"cashCheck":"1200.50","creditCard":"830.00"}}`,
				wantCode: 201,
			},
			doMock: func(args args) {
				testHelper.mockCacheRepo.EXPECT().
					Get(gomock.AssignableToTypeOf(context.Background()), "recon-idem-start-7-2024-01").
					Return("", common.ErrDataNotFound)
				testHelper.mockCacheRepo.EXPECT().
					SetIfNotExists(gomock.AssignableToTypeOf(context.Background()), "recon-idem-start-7-2024-01", gomock.Any(), models.TTLIdempotency).
					Return(true, nil)
				testHelper.mockCacheRepo.EXPECT().
					Set(gomock.AssignableToTypeOf(context.Background()), "recon-idem-start-7-2024-01", gomock.Any(), models.TTLIdempotency).
					Return(nil)

				testHelper.mockReconciliationService.EXPECT().
					Start(gomock.AssignableToTypeOf(context.Background()), models.StartReconciliationRequest{
						FacilityID: 7,
						Month:      1,
						Year:       2024,
					}, "usr-1").
					Return(
						[]models.MonthlyReconciliation{
							{ID: 31, FacilityID: 7, BankAccountID: 3},
							{ID: 32, FacilityID: 7, BankAccountID: 4},
						},
						&models.PaymentTotals{
							CashCheck: decimal.RequireFromString("1200.50"),
							Card:      decimal.RequireFromString("830.00"),
						},
						nil,
					)
			},
		},
		{
			name: "conflict when the period is already open",
			args: args{
				role:           "manager",
				idempotencyKey: "start-7-2024-02",
				body:           `{"facilityId":7,"month":2,"year":2024}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":409,"message":"reconciliation already exists for this facility and period"}`,
				wantCode: 409,
			},
			doMock: func(args args) {
				testHelper.mockCacheRepo.EXPECT().
					Get(gomock.AssignableToTypeOf(context.Background()), "recon-idem-start-7-2024-02").
					Return("", common.ErrDataNotFound)
				testHelper.mockCacheRepo.EXPECT().
					SetIfNotExists(gomock.AssignableToTypeOf(context.Background()), "recon-idem-start-7-2024-02", gomock.Any(), models.TTLIdempotency).
					Return(true, nil)
				testHelper.mockCacheRepo.EXPECT().
					Del(gomock.AssignableToTypeOf(context.Background()), "recon-idem-start-7-2024-02").
					Return(nil)

				testHelper.mockReconciliationService.EXPECT().
					Start(gomock.AssignableToTypeOf(context.Background()), gomock.Any(), "usr-1").
					Return(nil, nil, common.ErrReconAlreadyExists)
			},
		},
		{
			name: "facility not found",
			args: args{
				role:           "manager",
				idempotencyKey: "start-9-2024-01",
				body:           `{"facilityId":9,"month":1,"year":2024}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":404,"message":"facility not found"}`,
				wantCode: 404,
			},
			doMock: func(args args) {
				testHelper.mockCacheRepo.EXPECT().
					Get(gomock.AssignableToTypeOf(context.Background()), "recon-idem-start-9-2024-01").
					Return("", common.ErrDataNotFound)
				testHelper.mockCacheRepo.EXPECT().
					SetIfNotExists(gomock.AssignableToTypeOf(context.Background()), "recon-idem-start-9-2024-01", gomock.Any(), models.TTLIdempotency).
					Return(true, nil)
				testHelper.mockCacheRepo.EXPECT().
					Del(gomock.AssignableToTypeOf(context.Background()), "recon-idem-start-9-2024-01").
					Return(nil)

				testHelper.mockReconciliationService.EXPECT().
					Start(gomock.AssignableToTypeOf(context.Background()), gomock.Any(), "usr-1").
					Return(nil, nil, common.ErrFacilityNotFound)
			},
		},
		{
			name: "validation error on bad month",
			args: args{
				role:           "manager",
				idempotencyKey: "start-7-2024-13",
				body:           `{"facilityId":7,"month":13,"year":2024}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"FR-4001","field":"month","message":"month must be between 1 and 12"}]}`,
				wantCode: 422,
			},
			doMock: func(args args) {
				testHelper.mockCacheRepo.EXPECT().
					Get(gomock.AssignableToTypeOf(context.Background()), "recon-idem-start-7-2024-13").
					Return("", common.ErrDataNotFound)
				testHelper.mockCacheRepo.EXPECT().
					SetIfNotExists(gomock.AssignableToTypeOf(context.Background()), "recon-idem-start-7-2024-13", gomock.Any(), models.TTLIdempotency).
					Return(true, nil)
				testHelper.mockCacheRepo.EXPECT().
					Del(gomock.AssignableToTypeOf(context.Background()), "recon-idem-start-7-2024-13").
					Return(nil)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/reconciliations", bytes.NewBufferString(tt.args.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("X-User-Role", tt.args.role)
			req.Header.Set("X-User-Id", "usr-1")
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

func Test_Handler_advanceStatus(t *testing.T) {
	testHelper := reconciliationTestHelper(t)

	type args struct {
		role string
		id   string
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
				id:   "31",
				body: `{"status":"pending_review"}`,
			},
			expectation: Expectation{
				wantRes:  `{"kind":"monthlyReconciliation","id":31,"facilityId":7,"bankAccountId":3,"month":1,"year":2024,"status":"pending_review","expectedCashCheck":"1200.50","expectedCard":"830.00","actualCashCheck":"0.00","actualCard":"0.00","matchedTransactions":0,"unmatchedTransactions":0,"discrepancyCount":0}`,
				wantCode: 200,
			},
			doMock: func(args args) {
				testHelper.mockReconciliationService.EXPECT().
					AdvanceStatus(gomock.AssignableToTypeOf(context.Background()), int64(31), models.ReconStatusPendingReview).
					Return(&models.MonthlyReconciliation{
						ID:                31,
						FacilityID:        7,
						BankAccountID:     3,
						Month:             1,
						Year:              2024,
						Status:            models.ReconStatusPendingReview,
						ExpectedCashCheck: decimal.RequireFromString("1200.50"),
						ExpectedCard:      decimal.RequireFromString("830.00"),
					}, nil)
			},
		},
		{
			name: "backward move is a conflict",
			args: args{
				role: "manager",
				id:   "31",
				body: `{"status":"in_progress"}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":409,"message":"reconciliation status can only move forward"}`,
				wantCode: 409,
			},
			doMock: func(args args) {
				testHelper.mockReconciliationService.EXPECT().
					AdvanceStatus(gomock.AssignableToTypeOf(context.Background()), int64(31), models.ReconStatusInProgress).
					Return(nil, common.ErrInvalidStatusTransition)
			},
		},
		{
			name: "unknown target status",
			args: args{
				role: "manager",
				id:   "31",
				body: `{"status":"archived"}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"UNKNOWN","field":"status","message":"oneof in_progress pending_review completed"}]}`,
				wantCode: 422,
			},
		},
		{
			name: "bad identifier",
			args: args{
				role: "manager",
				id:   "abc",
				body: `{"status":"completed"}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":400,"message":"strconv.ParseInt: parsing \"abc\": invalid syntax"}`,
				wantCode: 400,
			},
		},
		{
			name: "not found",
			args: args{
				role: "manager",
				id:   "99",
				body: `{"status":"completed"}`,
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":404,"message":"reconciliation not found"}`,
				wantCode: 404,
			},
			doMock: func(args args) {
				testHelper.mockReconciliationService.EXPECT().
					AdvanceStatus(gomock.AssignableToTypeOf(context.Background()), int64(99), models.ReconStatusCompleted).
					Return(nil, common.ErrReconNotFound)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/reconciliations/"+tt.args.id+"/status", bytes.NewBufferString(tt.args.body))
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
