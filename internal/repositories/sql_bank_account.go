package repositories

import (
	"context"

	"github.com/stashops/go-facility-recon/internal/models"
	"github.com/stashops/go-facility-recon/internal/monitoring"
)

type BankAccountRepository interface {
	ListByFacility(ctx context.Context, facilityID int64) (result []models.BankAccount, err error)
}

type bankAccountRepository sqlRepo

var _ BankAccountRepository = (*bankAccountRepository)(nil)

func (r *bankAccountRepository) ListByFacility(ctx context.Context, facilityID int64) (result []models.BankAccount, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryBankAccountListByFacility, facilityID)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var ba models.BankAccount
		err = rows.Scan(
			&ba.ID,
			&ba.FacilityID,
			&ba.AccountName,
			&ba.AccountNumberMasked,
			&ba.BankName,
			&ba.CreatedAt,
		)
		if err != nil {
			return result, err
		}
		result = append(result, ba)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}
