package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/stashops/go-facility-recon/internal/common"
	"github.com/stashops/go-facility-recon/internal/config"
	"github.com/stashops/go-facility-recon/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestMatchLinkRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(matchLinkTestSuite))
}

type matchLinkTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    MatchLinkRepository
}

func (suite *matchLinkTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB
	suite.t = suite.T()

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetMatchLinkRepository()
}

func (suite *matchLinkTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
	defer suite.readDB.Close()
}

func (suite *matchLinkTestSuite) TestRepository_Create() {
	type args struct {
		ctx        context.Context
		in         *models.CreateMatchLinkIn
		setupMocks func()
	}

	in := &models.CreateMatchLinkIn{
		BankTransactionID: 11,
		DailyPaymentID:    22,
		ConnectionType:    models.ConnectionTypeCash,
		MatchType:         models.MatchTypeExact,
		MatchConfidence:   decimal.NewFromInt(1),
		IsManualMatch:     false,
		MatchedBy:         "system",
	}

	testCases := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			name: "test success",
			args: args{
				ctx: context.TODO(),
				in:  in,
				setupMocks: func() {
					rows := sqlmock.NewRows([]string{"id", "createdAt"}).AddRow(1, nil)
					suite.mock.ExpectQuery(regexp.QuoteMeta(queryMatchLinkCreate)).
						WithArgs(int64(11), int64(22), "cash", models.MatchTypeExact, "1", false, "system").
						WillReturnRows(rows)
				},
			},
		},
		{
			name: "test unique violation maps to data exist",
			args: args{
				ctx: context.TODO(),
				in:  in,
				setupMocks: func() {
					suite.mock.ExpectQuery(regexp.QuoteMeta(queryMatchLinkCreate)).
						WillReturnError(&pq.Error{Code: pqUniqueViolation})
				},
			},
			wantErr: common.ErrDataExist,
		},
		{
			name: "test error db",
			args: args{
				ctx: context.TODO(),
				in:  in,
				setupMocks: func() {
					suite.mock.ExpectQuery(regexp.QuoteMeta(queryMatchLinkCreate)).
						WillReturnError(assert.AnError)
				},
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.args.setupMocks()

			created, err := suite.repo.Create(tt.args.ctx, tt.args.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), created.ID)
				assert.Equal(t, tt.args.in.BankTransactionID, created.BankTransactionID)
				assert.Equal(t, tt.args.in.DailyPaymentID, created.DailyPaymentID)
			}

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *matchLinkTestSuite) TestRepository_ExistsForBankTransaction() {
	suite.t.Run("test linked", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
		suite.mock.ExpectQuery(regexp.QuoteMeta(queryMatchLinkExistsForBankTransaction)).
			WithArgs(int64(11)).WillReturnRows(rows)

		exists, err := suite.repo.ExistsForBankTransaction(context.TODO(), 11)
		assert.NoError(t, err)
		assert.True(t, exists)

		if err = suite.mock.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unfulfilled expectations: %s", err)
		}
	})

	suite.t.Run("test free", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"exists"}).AddRow(false)
		suite.mock.ExpectQuery(regexp.QuoteMeta(queryMatchLinkExistsForBankTransaction)).
			WithArgs(int64(11)).WillReturnRows(rows)

		exists, err := suite.repo.ExistsForBankTransaction(context.TODO(), 11)
		assert.NoError(t, err)
		assert.False(t, exists)

		if err = suite.mock.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unfulfilled expectations: %s", err)
		}
	})
}

func (suite *matchLinkTestSuite) TestRepository_ExistsForDailyPayment() {
	suite.t.Run("test linked", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)
		suite.mock.ExpectQuery(regexp.QuoteMeta(queryMatchLinkExistsForDailyPayment)).
			WithArgs(int64(22)).WillReturnRows(rows)

		exists, err := suite.repo.ExistsForDailyPayment(context.TODO(), 22)
		assert.NoError(t, err)
		assert.True(t, exists)

		if err = suite.mock.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unfulfilled expectations: %s", err)
		}
	})
}
