package repositories

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

var (
	queryBankTransactionCountByFacilityRange = `SELECT count(1)
		FROM "bank_transactions" bt
		JOIN "bank_accounts" ba ON ba."id" = bt."bankAccountId"
		WHERE ba."facilityId" = $1
		  AND bt."transactionDate" BETWEEN $2 AND $3;`

	queryBankTransactionSumByFacilityRange = `SELECT COALESCE(SUM(bt."amount"), 0)::text
		FROM "bank_transactions" bt
		JOIN "bank_accounts" ba ON ba."id" = bt."bankAccountId"
		WHERE ba."facilityId" = $1
		  AND bt."transactionDate" BETWEEN $2 AND $3;`

	queryBankTransactionCountUnmatchedByAccountRange = `SELECT count(1)
		FROM "bank_transactions" bt
		LEFT JOIN "transactions_to_daily_payments" ml ON ml."bankTransactionId" = bt."id"
		WHERE bt."bankAccountId" = $1
		  AND bt."transactionDate" BETWEEN $2 AND $3
		  AND ml."id" IS NULL;`
)

// buildUnmatchedBankTransactionQuery selects statement lines without a match
// link. The anti-join keeps already linked transactions out of the matching
// pool entirely, which is what makes re-running the matcher safe.
func buildUnmatchedBankTransactionQuery(bankAccountID int64, from, to time.Time) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(
		`bt."id"`,
		`bt."bankAccountId"`,
		`bt."transactionDate"`,
		`bt."amount"::text`,
		`COALESCE(bt."transactionType", '') as "transactionType"`,
		`bt."createdAt"`,
	).
		From(`"bank_transactions" bt`).
		LeftJoin(`"transactions_to_daily_payments" ml ON ml."bankTransactionId" = bt."id"`).
		Where(sq.Eq{`bt."bankAccountId"`: bankAccountID}).
		Where(sq.GtOrEq{`bt."transactionDate"`: from}).
		Where(sq.LtOrEq{`bt."transactionDate"`: to}).
		Where(`ml."id" IS NULL`).
		OrderBy(`bt."transactionDate" ASC`, `bt."id" ASC`)

	return query.ToSql()
}
