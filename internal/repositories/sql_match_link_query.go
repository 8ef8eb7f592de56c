package repositories

var (
	queryMatchLinkExistsForBankTransaction = `SELECT EXISTS(
		  SELECT 1
		  FROM "transactions_to_daily_payments"
		  WHERE "bankTransactionId" = $1
		);`

	queryMatchLinkExistsForDailyPayment = `SELECT EXISTS(
		  SELECT 1
		  FROM "transactions_to_daily_payments"
		  WHERE "dailyPaymentId" = $1
		);`
)

var queryMatchLinkCreate = `INSERT INTO "transactions_to_daily_payments" (
	  "bankTransactionId",
	  "dailyPaymentId",
	  "connectionType",
	  "matchType",
	  "matchConfidence",
	  "isManualMatch",
	  "matchedBy",
	  "createdAt"
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	RETURNING "id", "createdAt";`
