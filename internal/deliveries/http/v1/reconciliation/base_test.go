package reconciliation

import (
	"os"
	"testing"

	"github.com/stashops/go-facility-recon/internal/common/authz"
	"github.com/stashops/go-facility-recon/internal/common/http/middleware"
	"github.com/stashops/go-facility-recon/internal/common/log"
	"github.com/stashops/go-facility-recon/internal/config"
	mockRepo "github.com/stashops/go-facility-recon/internal/repositories/mock"
	"github.com/stashops/go-facility-recon/internal/services/mock"

	"github.com/labstack/echo/v4"
	"go.uber.org/mock/gomock"
)

type testReconciliationHelper struct {
	router                    *echo.Echo
	mockCtrl                  *gomock.Controller
	mockReconciliationService *mock.MockReconciliationService
	mockCacheRepo             *mockRepo.MockCacheRepository
}

func reconciliationTestHelper(t *testing.T) testReconciliationHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockReconciliationSvc := mock.NewMockReconciliationService(mockCtrl)
	mockCacheRepo := mockRepo.NewMockCacheRepository(mockCtrl)

	app := echo.New()
	v1Group := app.Group("/api/v1")
	m := middleware.NewMiddleware(config.Config{}, mockCacheRepo, authz.New())

	New(v1Group, mockReconciliationSvc, m)

	return testReconciliationHelper{
		router:                    app,
		mockCtrl:                  mockCtrl,
		mockReconciliationService: mockReconciliationSvc,
		mockCacheRepo:             mockCacheRepo,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
