package repositories

import (
	"database/sql"

	"github.com/stashops/go-facility-recon/internal/models"

	"github.com/shopspring/decimal"
)

var (
	queryReconciliationExistsForPeriod = `SELECT EXISTS(
		  SELECT 1
		  FROM "monthly_reconciliations"
		  WHERE "facilityId" = $1
		    AND "month" = $2
		    AND "year" = $3
		);`

	queryReconciliationCreate = `INSERT INTO "monthly_reconciliations" (
		  "facilityId",
		  "bankAccountId",
		  "month",
		  "year",
		  "status",
		  "expectedCashCheck",
		  "expectedCard",
		  "actualCashCheck",
		  "actualCard",
		  "matchedTransactions",
		  "unmatchedTransactions",
		  "discrepancyCount",
		  "createdBy",
		  "createdAt",
		  "updatedAt"
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, 0, $8, 0, $9, NOW(), NOW())
		RETURNING "id", "createdAt";`

	queryReconciliationSelectColumns = `SELECT
		  "id",
		  "facilityId",
		  "bankAccountId",
		  "month",
		  "year",
		  "status",
		  "expectedCashCheck"::text,
		  "expectedCard"::text,
		  "actualCashCheck"::text,
		  "actualCard"::text,
		  "matchedTransactions",
		  "unmatchedTransactions",
		  "discrepancyCount",
		  "createdBy",
		  "createdAt",
		  "updatedAt"
		FROM "monthly_reconciliations"`

	queryReconciliationGetByID = queryReconciliationSelectColumns + `
		WHERE "id" = $1;`

	queryReconciliationListByFacilityPeriod = queryReconciliationSelectColumns + `
		WHERE "facilityId" = $1
		  AND "month" = $2
		  AND "year" = $3
		ORDER BY "bankAccountId" ASC;`

	queryReconciliationListByPeriod = queryReconciliationSelectColumns + `
		WHERE "month" = $1
		  AND "year" = $2
		ORDER BY "facilityId" ASC, "bankAccountId" ASC;`

	queryReconciliationUpdateStatus = `UPDATE "monthly_reconciliations"
		SET "status" = $1, "updatedAt" = NOW()
		WHERE "id" = $2;`

	queryReconciliationIncrementDiscrepancyCount = `UPDATE "monthly_reconciliations"
		SET "discrepancyCount" = "discrepancyCount" + 1, "updatedAt" = NOW()
		WHERE "id" = $1;`

	queryReconciliationApplyMatchProgress = `UPDATE "monthly_reconciliations"
		SET "matchedTransactions" = "matchedTransactions" + $5,
		    "unmatchedTransactions" = GREATEST("unmatchedTransactions" - $5, 0),
		    "actualCashCheck" = "actualCashCheck" + $6,
		    "actualCard" = "actualCard" + $7,
		    "updatedAt" = NOW()
		WHERE "facilityId" = $1
		  AND "bankAccountId" = $2
		  AND "month" = $3
		  AND "year" = $4;`
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReconciliation(row rowScanner) (*models.MonthlyReconciliation, error) {
	var (
		entity models.MonthlyReconciliation
		status string
		ecc    string
		ec     string
		acc    string
		ac     string
	)
	err := row.Scan(
		&entity.ID,
		&entity.FacilityID,
		&entity.BankAccountID,
		&entity.Month,
		&entity.Year,
		&status,
		&ecc,
		&ec,
		&acc,
		&ac,
		&entity.MatchedTransactions,
		&entity.UnmatchedTransactions,
		&entity.DiscrepancyCount,
		&entity.CreatedBy,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entity.Status = models.ParseReconStatus(status)
	if entity.ExpectedCashCheck, err = decimal.NewFromString(ecc); err != nil {
		return nil, err
	}
	if entity.ExpectedCard, err = decimal.NewFromString(ec); err != nil {
		return nil, err
	}
	if entity.ActualCashCheck, err = decimal.NewFromString(acc); err != nil {
		return nil, err
	}
	if entity.ActualCard, err = decimal.NewFromString(ac); err != nil {
		return nil, err
	}

	return &entity, nil
}

func collectReconciliations(rows *sql.Rows) (result []models.MonthlyReconciliation, err error) {
	defer rows.Close()
	for rows.Next() {
		entity, err := scanReconciliation(rows)
		if err != nil {
			return result, err
		}
		result = append(result, *entity)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}
