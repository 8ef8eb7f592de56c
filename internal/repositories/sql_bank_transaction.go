package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/stashops/go-facility-recon/internal/models"
	"github.com/stashops/go-facility-recon/internal/monitoring"

	"github.com/shopspring/decimal"
)

type BankTransactionRepository interface {
	// ListUnmatchedByAccountRange returns statement lines in [from, to] that
	// have no match link yet, in ingestion order.
	ListUnmatchedByAccountRange(ctx context.Context, bankAccountID int64, from, to time.Time) (result []models.BankTransaction, err error)
	CountByFacilityRange(ctx context.Context, facilityID int64, from, to time.Time) (total int, err error)
	CountUnmatchedByAccountRange(ctx context.Context, bankAccountID int64, from, to time.Time) (total int, err error)
	SumAmountByFacilityRange(ctx context.Context, facilityID int64, from, to time.Time) (total decimal.Decimal, err error)
}

type bankTransactionRepository sqlRepo

var _ BankTransactionRepository = (*bankTransactionRepository)(nil)

func (r *bankTransactionRepository) ListUnmatchedByAccountRange(ctx context.Context, bankAccountID int64, from, to time.Time) (result []models.BankTransaction, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	query, args, err := buildUnmatchedBankTransactionQuery(bankAccountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var bt models.BankTransaction
		var amount string
		err = rows.Scan(
			&bt.ID,
			&bt.BankAccountID,
			&bt.TransactionDate,
			&amount,
			&bt.TransactionType,
			&bt.CreatedAt,
		)
		if err != nil {
			return result, err
		}
		if bt.Amount, err = decimal.NewFromString(amount); err != nil {
			return result, err
		}
		result = append(result, bt)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (r *bankTransactionRepository) CountByFacilityRange(ctx context.Context, facilityID int64, from, to time.Time) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	if err = db.QueryRowContext(ctx, queryBankTransactionCountByFacilityRange, facilityID, from, to).Scan(&total); err != nil {
		return
	}

	return
}

func (r *bankTransactionRepository) CountUnmatchedByAccountRange(ctx context.Context, bankAccountID int64, from, to time.Time) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	if err = db.QueryRowContext(ctx, queryBankTransactionCountUnmatchedByAccountRange, bankAccountID, from, to).Scan(&total); err != nil {
		return
	}

	return
}

func (r *bankTransactionRepository) SumAmountByFacilityRange(ctx context.Context, facilityID int64, from, to time.Time) (total decimal.Decimal, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var raw string
	if err = db.QueryRowContext(ctx, queryBankTransactionSumByFacilityRange, facilityID, from, to).Scan(&raw); err != nil {
		return
	}

	return decimal.NewFromString(raw)
}
