package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/stashops/go-facility-recon/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_WithinTx(t *testing.T) {
	newRepo := func(t *testing.T) (*Repository, sqlmock.Sqlmock) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		return NewSQLRepository(db, db, config.Config{}), mock
	}

	t.Run("commits when fn succeeds and joins repo calls to the tx", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(queryReconciliationExistsForPeriod)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectCommit()

		err := repo.WithinTx(context.TODO(), func(ctx context.Context) error {
			_, err := repo.GetReconciliationRepository().ExistsForPeriod(ctx, 1, 1, 2024)
			return err
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := repo.WithinTx(context.TODO(), func(ctx context.Context) error {
			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("surfaces begin failure", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectBegin().WillReturnError(assert.AnError)

		err := repo.WithinTx(context.TODO(), func(ctx context.Context) error { return nil })
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
