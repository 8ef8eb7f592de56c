package dashboard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stashops/go-facility-recon/internal/common/authz"
	"github.com/stashops/go-facility-recon/internal/common/http/middleware"
	"github.com/stashops/go-facility-recon/internal/common/log"
	"github.com/stashops/go-facility-recon/internal/config"
	"github.com/stashops/go-facility-recon/internal/models"
	mockRepo "github.com/stashops/go-facility-recon/internal/repositories/mock"
	"github.com/stashops/go-facility-recon/internal/services/mock"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDashboardHelper struct {
	router                    *echo.Echo
	mockCtrl                  *gomock.Controller
	mockReconciliationService *mock.MockReconciliationService
}

func dashboardTestHelper(t *testing.T) testDashboardHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockReconciliationSvc := mock.NewMockReconciliationService(mockCtrl)
	mockCacheRepo := mockRepo.NewMockCacheRepository(mockCtrl)

	app := echo.New()
	v1Group := app.Group("/api/v1")
	m := middleware.NewMiddleware(config.Config{}, mockCacheRepo, authz.New())

	New(v1Group, mockReconciliationSvc, m)

	return testDashboardHelper{
		router:                    app,
		mockCtrl:                  mockCtrl,
		mockReconciliationService: mockReconciliationSvc,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func Test_Handler_getDashboard(t *testing.T) {
	testHelper := dashboardTestHelper(t)
	lastUpdated := time.Date(2024, 2, 1, 9, 30, 0, 0, time.UTC)

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
				queryURL: "?month=1&year=2024",
			},
			expectation: Expectation{
				wantRes:  `{"kind":"reconciliationDashboard","facilities":[{"kind":"facilityOverview","facilityId":7,"facilityName":"Lakeside Care","status":"in_progress","totalTransactions":18,"matchedTransactions":15,"discrepancies":2,"totalAmount":"2030.50","lastUpdated":"2024-02-01T09:30:00Z"}],"stats":{"facilitiesByStatus":{"in_progress":1},"totalDiscrepancies":2,"totalAmount":"2030.50","matchingAccuracy":"83.33"}}`,
				wantCode: 200,
			},
			doMock: func(args args) {
				testHelper.mockReconciliationService.EXPECT().
					GetDashboard(gomock.AssignableToTypeOf(context.Background()), models.GetDashboardRequest{
						Month: 1,
						Year:  2024,
					}).
					Return(
						[]models.FacilityOverview{{
							FacilityID:          7,
							FacilityName:        "Lakeside Care",
							Status:              models.ReconStatusInProgress,
							TotalTransactions:   18,
							MatchedTransactions: 15,
							Discrepancies:       2,
							TotalExpected:       decimal.RequireFromString("2030.50"),
							LastUpdated:         &lastUpdated,
						}},
						models.PortfolioStats{
							FacilitiesByStatus: map[string]int{"in_progress": 1},
							TotalDiscrepancies: 2,
							TotalAmount:        decimal.RequireFromString("2030.50"),
							MatchingAccuracy:   decimal.RequireFromString("83.33"),
						},
						nil,
					)
			},
		},
		{
			name: "forbidden for manager",
			args: args{
				role:     "manager",
				queryURL: "?month=1&year=2024",
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":403,"message":"role is not allowed to perform this action"}`,
				wantCode: 403,
			},
		},
		{
			name: "validation error on missing period",
			args: args{
				role:     "supervisor",
				queryURL: "",
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"UNKNOWN","field":"month","message":"required"},{"code":"UNKNOWN","field":"year","message":"required"}]}`,
				wantCode: 422,
			},
		},
		{
			name: "error",
			args: args{
				role:     "admin",
				queryURL: "?month=1&year=2024",
			},
			expectation: Expectation{
				wantRes:  `{"status":"error","code":"FR-5001","message":"internal server error"}`,
				wantCode: 500,
			},
			doMock: func(args args) {
				testHelper.mockReconciliationService.EXPECT().
					GetDashboard(gomock.AssignableToTypeOf(context.Background()), gomock.Any()).
					Return(nil, models.PortfolioStats{}, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard"+tt.args.queryURL, nil)
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
