package automatch

import (
	"os"
	"testing"

	"github.com/stashops/go-facility-recon/internal/common/log"
	"github.com/stashops/go-facility-recon/internal/config"
	repomock "github.com/stashops/go-facility-recon/internal/repositories/mock"
	"github.com/stashops/go-facility-recon/internal/services/mock"

	"go.uber.org/mock/gomock"
)

type testAutomatchHelper struct {
	mockCtrl                  *gomock.Controller
	mockSQLRepository         *repomock.MockSQLRepository
	mockFacilityRepository    *repomock.MockFacilityRepository
	mockBankAccountRepository *repomock.MockBankAccountRepository
	mockMatchingService       *mock.MockMatchingService
}

func automatchTestHelper(t *testing.T) testAutomatchHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSQLRepository := repomock.NewMockSQLRepository(mockCtrl)
	mockFacilityRepository := repomock.NewMockFacilityRepository(mockCtrl)
	mockBankAccountRepository := repomock.NewMockBankAccountRepository(mockCtrl)
	mockMatchingService := mock.NewMockMatchingService(mockCtrl)

	mockSQLRepository.EXPECT().GetFacilityRepository().Return(mockFacilityRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetBankAccountRepository().Return(mockBankAccountRepository).AnyTimes()

	Routes(config.Config{}, mockSQLRepository, mockMatchingService)

	return testAutomatchHelper{
		mockCtrl:                  mockCtrl,
		mockSQLRepository:         mockSQLRepository,
		mockFacilityRepository:    mockFacilityRepository,
		mockBankAccountRepository: mockBankAccountRepository,
		mockMatchingService:       mockMatchingService,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
