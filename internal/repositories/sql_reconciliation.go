package repositories

import (
	"context"
	"database/sql"

	"github.com/stashops/go-facility-recon/internal/common"
	"github.com/stashops/go-facility-recon/internal/models"
	"github.com/stashops/go-facility-recon/internal/monitoring"
)

type ReconciliationRepository interface {
	ExistsForPeriod(ctx context.Context, facilityID int64, month, year int) (exists bool, err error)
	Create(ctx context.Context, in *models.CreateReconciliationIn) (created *models.MonthlyReconciliation, err error)
	GetByID(ctx context.Context, id int64) (result *models.MonthlyReconciliation, err error)
	ListByFacilityPeriod(ctx context.Context, facilityID int64, month, year int) (result []models.MonthlyReconciliation, err error)
	// ListByPeriod returns every header row for the period across all
	// facilities, ordered by facility then bank account.
	ListByPeriod(ctx context.Context, month, year int) (result []models.MonthlyReconciliation, err error)
	UpdateStatus(ctx context.Context, id int64, status models.ReconStatus) (err error)
	IncrementDiscrepancyCount(ctx context.Context, id int64) (err error)
	// ApplyMatchProgress rolls an auto-match run's accepted links into the
	// period header. A period that has no header yet is a no-op.
	ApplyMatchProgress(ctx context.Context, in *models.MatchProgressIn) (err error)
}

type reconciliationRepository sqlRepo

var _ ReconciliationRepository = (*reconciliationRepository)(nil)

func (r *reconciliationRepository) ExistsForPeriod(ctx context.Context, facilityID int64, month, year int) (exists bool, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	if err = db.QueryRowContext(ctx, queryReconciliationExistsForPeriod, facilityID, month, year).Scan(&exists); err != nil {
		return
	}

	return
}

func (r *reconciliationRepository) Create(ctx context.Context, in *models.CreateReconciliationIn) (created *models.MonthlyReconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var entity models.MonthlyReconciliation
	err = db.QueryRowContext(ctx, queryReconciliationCreate,
		in.FacilityID,
		in.BankAccountID,
		in.Month,
		in.Year,
		in.Status.String(),
		in.ExpectedCashCheck,
		in.ExpectedCard,
		in.UnmatchedTransactions,
		in.CreatedBy,
	).Scan(
		&entity.ID,
		&entity.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.ErrReconAlreadyExists
		}
		return
	}

	entity.FacilityID = in.FacilityID
	entity.BankAccountID = in.BankAccountID
	entity.Month = in.Month
	entity.Year = in.Year
	entity.Status = in.Status
	entity.ExpectedCashCheck = in.ExpectedCashCheck
	entity.ExpectedCard = in.ExpectedCard
	entity.UnmatchedTransactions = in.UnmatchedTransactions
	entity.CreatedBy = in.CreatedBy
	created = &entity

	return
}

func (r *reconciliationRepository) GetByID(ctx context.Context, id int64) (result *models.MonthlyReconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	result, err = scanReconciliation(db.QueryRowContext(ctx, queryReconciliationGetByID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.ErrReconNotFound
		}
		return nil, err
	}

	return result, nil
}

func (r *reconciliationRepository) ListByFacilityPeriod(ctx context.Context, facilityID int64, month, year int) (result []models.MonthlyReconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryReconciliationListByFacilityPeriod, facilityID, month, year)
	if err != nil {
		return
	}

	return collectReconciliations(rows)
}

func (r *reconciliationRepository) ListByPeriod(ctx context.Context, month, year int) (result []models.MonthlyReconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryReconciliationListByPeriod, month, year)
	if err != nil {
		return
	}

	return collectReconciliations(rows)
}

func (r *reconciliationRepository) UpdateStatus(ctx context.Context, id int64, status models.ReconStatus) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryReconciliationUpdateStatus, status.String(), id)
	if err != nil {
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return
	}
	if affected == 0 {
		return common.ErrNoRowsAffected
	}

	return
}

func (r *reconciliationRepository) ApplyMatchProgress(ctx context.Context, in *models.MatchProgressIn) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	// Zero affected rows just means matching ran before initiation.
	_, err = db.ExecContext(ctx, queryReconciliationApplyMatchProgress,
		in.FacilityID,
		in.BankAccountID,
		in.Month,
		in.Year,
		in.MatchedDelta,
		in.ActualCashCheck,
		in.ActualCard,
	)

	return
}

func (r *reconciliationRepository) IncrementDiscrepancyCount(ctx context.Context, id int64) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryReconciliationIncrementDiscrepancyCount, id)
	if err != nil {
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return
	}
	if affected == 0 {
		return common.ErrNoRowsAffected
	}

	return
}
