package repositories

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

var queryDailyPaymentSumTotals = `SELECT
	  COALESCE(SUM("cash" + "check"), 0)::text,
	  COALESCE(SUM("visa" + "mastercard" + "amex" + "discover"), 0)::text
	FROM "daily_payments"
	WHERE "facilityId" = $1
	  AND "paymentDate" BETWEEN $2 AND $3;`

func buildDailyPaymentListQuery(facilityID int64, from, to time.Time, unmatchedOnly bool) (sql string, args []interface{}, err error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query := psql.Select(
		`dp."id"`,
		`dp."facilityId"`,
		`dp."paymentDate"`,
		`dp."cash"::text`,
		`dp."check"::text`,
		`dp."visa"::text`,
		`dp."mastercard"::text`,
		`dp."amex"::text`,
		`dp."discover"::text`,
		`dp."createdAt"`,
	).
		From(`"daily_payments" dp`).
		Where(sq.Eq{`dp."facilityId"`: facilityID}).
		Where(sq.GtOrEq{`dp."paymentDate"`: from}).
		Where(sq.LtOrEq{`dp."paymentDate"`: to}).
		OrderBy(`dp."paymentDate" ASC`, `dp."id" ASC`)

	if unmatchedOnly {
		query = query.
			LeftJoin(`"transactions_to_daily_payments" ml ON ml."dailyPaymentId" = dp."id"`).
			Where(`ml."id" IS NULL`)
	}

	return query.ToSql()
}
