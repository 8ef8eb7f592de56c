package repositories

import (
	"context"

	"github.com/stashops/go-facility-recon/internal/common"
	"github.com/stashops/go-facility-recon/internal/models"
	"github.com/stashops/go-facility-recon/internal/monitoring"
)

type MatchLinkRepository interface {
	// Create persists one accepted pairing. A concurrent run that already
	// consumed either side trips the unique index, reported as
	// common.ErrDataExist.
	Create(ctx context.Context, in *models.CreateMatchLinkIn) (created *models.MatchLink, err error)
	ExistsForBankTransaction(ctx context.Context, bankTransactionID int64) (exists bool, err error)
	ExistsForDailyPayment(ctx context.Context, dailyPaymentID int64) (exists bool, err error)
}

type matchLinkRepository sqlRepo

var _ MatchLinkRepository = (*matchLinkRepository)(nil)

func (r *matchLinkRepository) Create(ctx context.Context, in *models.CreateMatchLinkIn) (created *models.MatchLink, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var entity models.MatchLink
	err = db.QueryRowContext(ctx, queryMatchLinkCreate,
		in.BankTransactionID,
		in.DailyPaymentID,
		string(in.ConnectionType),
		in.MatchType,
		in.MatchConfidence,
		in.IsManualMatch,
		in.MatchedBy,
	).Scan(
		&entity.ID,
		&entity.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrDataExist
		}
		return
	}

	entity.BankTransactionID = in.BankTransactionID
	entity.DailyPaymentID = in.DailyPaymentID
	entity.ConnectionType = in.ConnectionType
	entity.MatchType = in.MatchType
	entity.MatchConfidence = in.MatchConfidence
	entity.IsManualMatch = in.IsManualMatch
	entity.MatchedBy = in.MatchedBy
	created = &entity

	return
}

func (r *matchLinkRepository) ExistsForBankTransaction(ctx context.Context, bankTransactionID int64) (exists bool, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	if err = db.QueryRowContext(ctx, queryMatchLinkExistsForBankTransaction, bankTransactionID).Scan(&exists); err != nil {
		return
	}

	return
}

func (r *matchLinkRepository) ExistsForDailyPayment(ctx context.Context, dailyPaymentID int64) (exists bool, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	if err = db.QueryRowContext(ctx, queryMatchLinkExistsForDailyPayment, dailyPaymentID).Scan(&exists); err != nil {
		return
	}

	return
}
