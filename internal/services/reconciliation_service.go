package services

import (
	"context"
	"errors"

	"github.com/stashops/go-facility-recon/internal/common"
	"github.com/stashops/go-facility-recon/internal/models"
	"github.com/stashops/go-facility-recon/internal/monitoring"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const defaultDashboardConcurrency = 4

var oneHundred = decimal.NewFromInt(100)

type ReconciliationService interface {
	// Start opens one reconciliation header per bank account of the
	// facility for the given period. The whole batch is one transaction;
	// a period that already has headers is a conflict.
	Start(ctx context.Context, req models.StartReconciliationRequest, createdBy string) (rows []models.MonthlyReconciliation, totals *models.PaymentTotals, err error)
	GetDashboard(ctx context.Context, req models.GetDashboardRequest) (facilities []models.FacilityOverview, stats models.PortfolioStats, err error)
	// AdvanceStatus moves one header forward along the status order.
	// Backward moves are conflicts.
	AdvanceStatus(ctx context.Context, id int64, status models.ReconStatus) (updated *models.MonthlyReconciliation, err error)
}

type reconciliation service

var _ ReconciliationService = (*reconciliation)(nil)

func (r *reconciliation) Start(ctx context.Context, req models.StartReconciliationRequest, createdBy string) (rows []models.MonthlyReconciliation, totals *models.PaymentTotals, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if _, err = r.srv.sqlRepo.GetFacilityRepository().GetByID(ctx, req.FacilityID); err != nil {
		if errors.Is(err, common.ErrDataNotFound) {
			return nil, nil, common.ErrFacilityNotFound
		}
		return nil, nil, checkDatabaseError(err)
	}

	accounts, err := r.srv.sqlRepo.GetBankAccountRepository().ListByFacility(ctx, req.FacilityID)
	if err != nil {
		return nil, nil, checkDatabaseError(err)
	}
	if len(accounts) == 0 {
		return nil, nil, common.ErrNoBankAccounts
	}

	from, to := common.MonthRange(req.Year, req.Month)

	// Expected totals come from the register side and are stamped
	// identically on every account header; the split per account is not
	// known until matching runs.
	totals, err = r.srv.sqlRepo.GetDailyPaymentRepository().SumTotalsByFacilityRange(ctx, req.FacilityID, from, to)
	if err != nil {
		return nil, nil, checkDatabaseError(err)
	}

	err = r.srv.sqlRepo.WithinTx(ctx, func(txCtx context.Context) error {
		reconRepo := r.srv.sqlRepo.GetReconciliationRepository()

		exists, txErr := reconRepo.ExistsForPeriod(txCtx, req.FacilityID, req.Month, req.Year)
		if txErr != nil {
			return checkDatabaseError(txErr)
		}
		if exists {
			return common.ErrReconAlreadyExists
		}

		for _, account := range accounts {
			unmatched, txErr := r.srv.sqlRepo.GetBankTransactionRepository().
				CountUnmatchedByAccountRange(txCtx, account.ID, from, to)
			if txErr != nil {
				return checkDatabaseError(txErr)
			}

			row, txErr := reconRepo.Create(txCtx, &models.CreateReconciliationIn{
				FacilityID:            req.FacilityID,
				BankAccountID:         account.ID,
				Month:                 req.Month,
				Year:                  req.Year,
				Status:                models.ReconStatusInProgress,
				ExpectedCashCheck:     totals.CashCheck,
				ExpectedCard:          totals.Card,
				UnmatchedTransactions: unmatched,
				CreatedBy:             createdBy,
			})
			if txErr != nil {
				return txErr
			}
			rows = append(rows, *row)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return rows, totals, nil
}

func (r *reconciliation) GetDashboard(ctx context.Context, req models.GetDashboardRequest) (facilities []models.FacilityOverview, stats models.PortfolioStats, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	all, err := r.srv.sqlRepo.GetFacilityRepository().GetAll(ctx)
	if err != nil {
		return nil, stats, checkDatabaseError(err)
	}

	reconRows, err := r.srv.sqlRepo.GetReconciliationRepository().ListByPeriod(ctx, req.Month, req.Year)
	if err != nil {
		return nil, stats, checkDatabaseError(err)
	}

	rowsByFacility := make(map[int64][]models.MonthlyReconciliation, len(all))
	for _, row := range reconRows {
		rowsByFacility[row.FacilityID] = append(rowsByFacility[row.FacilityID], row)
	}

	concurrency := r.srv.conf.Matching.JobConcurrency
	if concurrency <= 0 {
		concurrency = defaultDashboardConcurrency
	}

	// Every goroutine owns exactly one slot of the result slice.
	facilities = make([]models.FacilityOverview, len(all))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, f := range all {
		i, f := i, f
		g.Go(func() error {
			overview, buildErr := r.buildFacilityOverview(gCtx, f, rowsByFacility[f.ID], req.Month, req.Year)
			if buildErr != nil {
				return buildErr
			}
			facilities[i] = *overview
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, stats, err
	}

	return facilities, buildPortfolioStats(facilities), nil
}

// buildFacilityOverview merges a facility's per-account headers into one
// dashboard row. A facility with no headers yet is reported live from the
// raw transaction and payment sets.
func (r *reconciliation) buildFacilityOverview(ctx context.Context, f models.Facility, rows []models.MonthlyReconciliation, month, year int) (*models.FacilityOverview, error) {
	overview := &models.FacilityOverview{
		FacilityID:   f.ID,
		FacilityName: f.Name,
		Status:       models.ReconStatusNotStarted,
	}

	if len(rows) == 0 {
		from, to := common.MonthRange(year, month)

		count, err := r.srv.sqlRepo.GetBankTransactionRepository().CountByFacilityRange(ctx, f.ID, from, to)
		if err != nil {
			return nil, checkDatabaseError(err)
		}

		actual, err := r.srv.sqlRepo.GetBankTransactionRepository().SumAmountByFacilityRange(ctx, f.ID, from, to)
		if err != nil {
			return nil, checkDatabaseError(err)
		}

		totals, err := r.srv.sqlRepo.GetDailyPaymentRepository().SumTotalsByFacilityRange(ctx, f.ID, from, to)
		if err != nil {
			return nil, checkDatabaseError(err)
		}

		overview.TotalTransactions = count
		overview.TotalExpected = totals.Total()
		overview.TotalActual = actual

		return overview, nil
	}

	// The facility is only as far along as its slowest account.
	overview.Status = rows[0].Status

	matched, unmatched := 0, 0
	for _, row := range rows {
		overview.Status = models.MinReconStatus(overview.Status, row.Status)

		matched += row.MatchedTransactions
		unmatched += row.UnmatchedTransactions
		overview.Discrepancies += row.DiscrepancyCount

		overview.TotalExpected = overview.TotalExpected.Add(row.TotalExpected())
		overview.TotalActual = overview.TotalActual.Add(row.TotalActual())

		if row.UpdatedAt != nil && (overview.LastUpdated == nil || row.UpdatedAt.After(*overview.LastUpdated)) {
			overview.LastUpdated = row.UpdatedAt
		}
	}

	overview.MatchedTransactions = matched
	overview.TotalTransactions = matched + unmatched

	return overview, nil
}

func buildPortfolioStats(facilities []models.FacilityOverview) models.PortfolioStats {
	stats := models.PortfolioStats{
		FacilitiesByStatus: make(map[string]int),
	}

	accuracySum := decimal.Zero
	accuracyCount := 0

	for _, f := range facilities {
		stats.FacilitiesByStatus[f.Status.String()]++
		stats.TotalDiscrepancies += f.Discrepancies
		stats.TotalAmount = stats.TotalAmount.Add(f.TotalAmount())

		if f.TotalTransactions > 0 {
			rate := decimal.NewFromInt(int64(f.MatchedTransactions)).
				Div(decimal.NewFromInt(int64(f.TotalTransactions))).
				Mul(oneHundred)
			accuracySum = accuracySum.Add(rate)
			accuracyCount++
		}
	}

	if accuracyCount > 0 {
		stats.MatchingAccuracy = accuracySum.Div(decimal.NewFromInt(int64(accuracyCount)))
	}

	return stats
}

func (r *reconciliation) AdvanceStatus(ctx context.Context, id int64, status models.ReconStatus) (updated *models.MonthlyReconciliation, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if !status.Valid() {
		return nil, common.ErrInvalidStatusTransition
	}

	current, err := r.srv.sqlRepo.GetReconciliationRepository().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrReconNotFound) {
			return nil, err
		}
		return nil, checkDatabaseError(err)
	}

	if status <= current.Status {
		return nil, common.ErrInvalidStatusTransition
	}

	if err = r.srv.sqlRepo.GetReconciliationRepository().UpdateStatus(ctx, id, status); err != nil {
		return nil, checkDatabaseError(err)
	}

	current.Status = status
	now := common.Now()
	current.UpdatedAt = &now

	return current, nil
}
