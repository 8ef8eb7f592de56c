package repositories

var queryBankAccountListByFacility = `SELECT
	  "id",
	  "facilityId",
	  "accountName",
	  COALESCE("accountNumberMasked", '') as "accountNumberMasked",
	  COALESCE("bankName", '') as "bankName",
	  "createdAt"
	FROM "bank_accounts"
	WHERE "facilityId" = $1
	ORDER BY "id" ASC;`
