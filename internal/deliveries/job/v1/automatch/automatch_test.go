package automatch

import (
	"context"
	"testing"

	"github.com/stashops/go-facility-recon/internal/common/retry"
	"github.com/stashops/go-facility-recon/internal/config"
	"github.com/stashops/go-facility-recon/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func Test_automatchHandler_RunPortfolioAutoMatch(t *testing.T) {
	testHelper := automatchTestHelper(t)

	facilities := []models.Facility{
		{ID: 1, Name: "Facility A", Code: "FAC-A"},
		{ID: 2, Name: "Facility B", Code: "FAC-B"},
	}

	type args struct {
		ctx   context.Context
		month int
		year  int
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(args args)
		wantErr bool
	}{
		{
			name: "success RunPortfolioAutoMatch",
			args: args{
				ctx:   context.TODO(),
				month: 3,
				year:  2025,
			},
			doMock: func(args args) {
				testHelper.mockFacilityRepository.EXPECT().GetAll(gomock.Any()).Return(facilities, nil)
				testHelper.mockBankAccountRepository.EXPECT().ListByFacility(gomock.Any(), int64(1)).
					Return([]models.BankAccount{{ID: 11, FacilityID: 1}, {ID: 12, FacilityID: 1}}, nil)
				testHelper.mockBankAccountRepository.EXPECT().ListByFacility(gomock.Any(), int64(2)).
					Return([]models.BankAccount{{ID: 21, FacilityID: 2}}, nil)
				testHelper.mockMatchingService.EXPECT().
					RunAutoMatch(gomock.Any(), models.RunAutoMatchRequest{FacilityID: 1, BankAccountID: 11, Month: 3, Year: 2025}, jobRunner).
					Return([]models.MatchLink{{ID: 100}}, nil)
				testHelper.mockMatchingService.EXPECT().
					RunAutoMatch(gomock.Any(), models.RunAutoMatchRequest{FacilityID: 1, BankAccountID: 12, Month: 3, Year: 2025}, jobRunner).
					Return(nil, nil)
				testHelper.mockMatchingService.EXPECT().
					RunAutoMatch(gomock.Any(), models.RunAutoMatchRequest{FacilityID: 2, BankAccountID: 21, Month: 3, Year: 2025}, jobRunner).
					Return([]models.MatchLink{{ID: 101}, {ID: 102}}, nil)
			},
			wantErr: false,
		},
		{
			name: "success after transient auto match failure",
			args: args{
				ctx:   context.TODO(),
				month: 3,
				year:  2025,
			},
			doMock: func(args args) {
				testHelper.mockFacilityRepository.EXPECT().GetAll(gomock.Any()).Return(facilities[:1], nil)
				testHelper.mockBankAccountRepository.EXPECT().ListByFacility(gomock.Any(), int64(1)).
					Return([]models.BankAccount{{ID: 11, FacilityID: 1}}, nil)
				gomock.InOrder(
					testHelper.mockMatchingService.EXPECT().
						RunAutoMatch(gomock.Any(), gomock.Any(), jobRunner).
						Return(nil, assert.AnError),
					testHelper.mockMatchingService.EXPECT().
						RunAutoMatch(gomock.Any(), gomock.Any(), jobRunner).
						Return([]models.MatchLink{{ID: 100}}, nil),
				)
			},
			wantErr: false,
		},
		{
			name: "invalid period",
			args: args{
				ctx:   context.TODO(),
				month: 13,
				year:  2025,
			},
			wantErr: true,
		},
		{
			name: "error listing facilities",
			args: args{
				ctx:   context.TODO(),
				month: 3,
				year:  2025,
			},
			doMock: func(args args) {
				testHelper.mockFacilityRepository.EXPECT().GetAll(gomock.Any()).Return(nil, assert.AnError)
			},
			wantErr: true,
		},
		{
			name: "error listing bank accounts",
			args: args{
				ctx:   context.TODO(),
				month: 3,
				year:  2025,
			},
			doMock: func(args args) {
				testHelper.mockFacilityRepository.EXPECT().GetAll(gomock.Any()).Return(facilities[:1], nil)
				testHelper.mockBankAccountRepository.EXPECT().ListByFacility(gomock.Any(), int64(1)).
					Return(nil, assert.AnError)
			},
			wantErr: true,
		},
		{
			name: "error auto match beyond retry budget",
			args: args{
				ctx:   context.TODO(),
				month: 3,
				year:  2025,
			},
			doMock: func(args args) {
				testHelper.mockFacilityRepository.EXPECT().GetAll(gomock.Any()).Return(facilities[:1], nil)
				testHelper.mockBankAccountRepository.EXPECT().ListByFacility(gomock.Any(), int64(1)).
					Return([]models.BankAccount{{ID: 11, FacilityID: 1}}, nil)
				testHelper.mockMatchingService.EXPECT().
					RunAutoMatch(gomock.Any(), gomock.Any(), jobRunner).
					Return(nil, assert.AnError).Times(2)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}
			ah := &automatchHandler{
				conf:        config.Config{},
				sqlRepo:     testHelper.mockSQLRepository,
				matchingSrv: testHelper.mockMatchingService,
				retryer:     retry.NewExponentialBackOff(&config.ExponentialBackOffConfig{MaxRetries: 1}),
			}
			err := ah.RunPortfolioAutoMatch(tt.args.ctx, tt.args.month, tt.args.year)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
