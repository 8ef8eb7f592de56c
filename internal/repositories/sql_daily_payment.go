package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/stashops/go-facility-recon/internal/models"
	"github.com/stashops/go-facility-recon/internal/monitoring"

	"github.com/shopspring/decimal"
)

type DailyPaymentRepository interface {
	ListByFacilityRange(ctx context.Context, facilityID int64, from, to time.Time) (result []models.DailyPayment, err error)
	// ListUnmatchedByFacilityRange returns payments with no match link at all.
	ListUnmatchedByFacilityRange(ctx context.Context, facilityID int64, from, to time.Time) (result []models.DailyPayment, err error)
	SumTotalsByFacilityRange(ctx context.Context, facilityID int64, from, to time.Time) (totals *models.PaymentTotals, err error)
}

type dailyPaymentRepository sqlRepo

var _ DailyPaymentRepository = (*dailyPaymentRepository)(nil)

func (r *dailyPaymentRepository) ListByFacilityRange(ctx context.Context, facilityID int64, from, to time.Time) (result []models.DailyPayment, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return r.list(ctx, facilityID, from, to, false)
}

func (r *dailyPaymentRepository) ListUnmatchedByFacilityRange(ctx context.Context, facilityID int64, from, to time.Time) (result []models.DailyPayment, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return r.list(ctx, facilityID, from, to, true)
}

func (r *dailyPaymentRepository) list(ctx context.Context, facilityID int64, from, to time.Time, unmatchedOnly bool) (result []models.DailyPayment, err error) {
	db := r.r.extractTxRead(ctx)

	query, args, err := buildDailyPaymentListQuery(facilityID, from, to, unmatchedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var dp models.DailyPayment
		var cash, check, visa, mastercard, amex, discover string
		err = rows.Scan(
			&dp.ID,
			&dp.FacilityID,
			&dp.PaymentDate,
			&cash,
			&check,
			&visa,
			&mastercard,
			&amex,
			&discover,
			&dp.CreatedAt,
		)
		if err != nil {
			return result, err
		}

		if dp.Cash, err = decimal.NewFromString(cash); err != nil {
			return result, err
		}
		if dp.Check, err = decimal.NewFromString(check); err != nil {
			return result, err
		}
		if dp.Visa, err = decimal.NewFromString(visa); err != nil {
			return result, err
		}
		if dp.Mastercard, err = decimal.NewFromString(mastercard); err != nil {
			return result, err
		}
		if dp.Amex, err = decimal.NewFromString(amex); err != nil {
			return result, err
		}
		if dp.Discover, err = decimal.NewFromString(discover); err != nil {
			return result, err
		}

		result = append(result, dp)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (r *dailyPaymentRepository) SumTotalsByFacilityRange(ctx context.Context, facilityID int64, from, to time.Time) (totals *models.PaymentTotals, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	var cashCheck, card string
	err = db.QueryRowContext(ctx, queryDailyPaymentSumTotals, facilityID, from, to).Scan(&cashCheck, &card)
	if err != nil {
		return
	}

	totals = &models.PaymentTotals{}
	if totals.CashCheck, err = decimal.NewFromString(cashCheck); err != nil {
		return nil, err
	}
	if totals.Card, err = decimal.NewFromString(card); err != nil {
		return nil, err
	}

	return totals, nil
}
