package services_test

import (
	"context"
	"os"
	"testing"

	"github.com/stashops/go-facility-recon/internal/common/log"
	"github.com/stashops/go-facility-recon/internal/config"
	"github.com/stashops/go-facility-recon/internal/repositories/mock"
	"github.com/stashops/go-facility-recon/internal/services"

	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

type testServiceHelper struct {
	mockCtrl *gomock.Controller
	config   config.Config

	mockSQLRepository             *mock.MockSQLRepository
	mockFacilityRepository        *mock.MockFacilityRepository
	mockBankAccountRepository     *mock.MockBankAccountRepository
	mockBankTransactionRepository *mock.MockBankTransactionRepository
	mockDailyPaymentRepository    *mock.MockDailyPaymentRepository
	mockMatchLinkRepository       *mock.MockMatchLinkRepository
	mockReconciliationRepository  *mock.MockReconciliationRepository
	mockDiscrepancyRepository     *mock.MockDiscrepancyRepository
	mockCacheRepository           *mock.MockCacheRepository

	matchingService       services.MatchingService
	reconciliationService services.ReconciliationService
	discrepancyService    services.DiscrepancyService
}

func serviceTestHelper(t *testing.T) testServiceHelper {
	t.Helper()
	t.Parallel()

	mockCtrl := gomock.NewController(t)

	mockSQLRepository := mock.NewMockSQLRepository(mockCtrl)
	mockFacilityRepository := mock.NewMockFacilityRepository(mockCtrl)
	mockBankAccountRepository := mock.NewMockBankAccountRepository(mockCtrl)
	mockBankTransactionRepository := mock.NewMockBankTransactionRepository(mockCtrl)
	mockDailyPaymentRepository := mock.NewMockDailyPaymentRepository(mockCtrl)
	mockMatchLinkRepository := mock.NewMockMatchLinkRepository(mockCtrl)
	mockReconciliationRepository := mock.NewMockReconciliationRepository(mockCtrl)
	mockDiscrepancyRepository := mock.NewMockDiscrepancyRepository(mockCtrl)
	mockCacheRepository := mock.NewMockCacheRepository(mockCtrl)

	mockSQLRepository.EXPECT().GetFacilityRepository().Return(mockFacilityRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetBankAccountRepository().Return(mockBankAccountRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetBankTransactionRepository().Return(mockBankTransactionRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetDailyPaymentRepository().Return(mockDailyPaymentRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetMatchLinkRepository().Return(mockMatchLinkRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetReconciliationRepository().Return(mockReconciliationRepository).AnyTimes()
	mockSQLRepository.EXPECT().GetDiscrepancyRepository().Return(mockDiscrepancyRepository).AnyTimes()

	// Transactions run the callback against the same mocked store.
	mockSQLRepository.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	var conf config.Config
	conf.Matching.MinConfidence = 0.95
	conf.Matching.SuggestionLimit = 20
	conf.Matching.JobConcurrency = 2

	serv := services.New(conf, mockSQLRepository, mockCacheRepository)

	return testServiceHelper{
		mockCtrl: mockCtrl,
		config:   conf,

		mockSQLRepository:             mockSQLRepository,
		mockFacilityRepository:        mockFacilityRepository,
		mockBankAccountRepository:     mockBankAccountRepository,
		mockBankTransactionRepository: mockBankTransactionRepository,
		mockDailyPaymentRepository:    mockDailyPaymentRepository,
		mockMatchLinkRepository:       mockMatchLinkRepository,
		mockReconciliationRepository:  mockReconciliationRepository,
		mockDiscrepancyRepository:     mockDiscrepancyRepository,
		mockCacheRepository:           mockCacheRepository,

		matchingService:       serv.Matching,
		reconciliationService: serv.Reconciliation,
		discrepancyService:    serv.Discrepancy,
	}
}
