package matching

import (
	"os"
	"testing"
	"time"

	"github.com/stashops/go-facility-recon/internal/common/authz"
	"github.com/stashops/go-facility-recon/internal/common/http/middleware"
	"github.com/stashops/go-facility-recon/internal/common/log"
	"github.com/stashops/go-facility-recon/internal/config"
	mockRepo "github.com/stashops/go-facility-recon/internal/repositories/mock"
	"github.com/stashops/go-facility-recon/internal/services/mock"

	"github.com/labstack/echo/v4"
	"go.uber.org/mock/gomock"
)

type testMatchingHelper struct {
	router              *echo.Echo
	mockCtrl            *gomock.Controller
	mockMatchingService *mock.MockMatchingService
	mockCacheRepo       *mockRepo.MockCacheRepository
}

func matchingTestHelper(t *testing.T) testMatchingHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockMatchingSvc := mock.NewMockMatchingService(mockCtrl)
	mockCacheRepo := mockRepo.NewMockCacheRepository(mockCtrl)

	app := echo.New()
	v1Group := app.Group("/api/v1")
	m := middleware.NewMiddleware(config.Config{}, mockCacheRepo, authz.New())

	New(v1Group, mockMatchingSvc, nil, m)

	return testMatchingHelper{
		router:              app,
		mockCtrl:            mockCtrl,
		mockMatchingService: mockMatchingSvc,
		mockCacheRepo:       mockCacheRepo,
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
