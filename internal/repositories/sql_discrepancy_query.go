package repositories

var (
	queryDiscrepancyCreate = `INSERT INTO "discrepancies" (
		  "reconciliationId",
		  "discrepancyType",
		  "description",
		  "amount",
		  "notes",
		  "isCritical",
		  "referenceTransactionIds",
		  "referenceDailyPaymentIds",
		  "status",
		  "createdBy",
		  "createdAt",
		  "updatedAt"
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING "id", "createdAt";`

	queryDiscrepancyListByIDs = `SELECT
		  "id",
		  "reconciliationId",
		  "discrepancyType",
		  "description",
		  "amount"::text,
		  COALESCE("notes", ''),
		  "isCritical",
		  COALESCE("referenceTransactionIds", '{}'),
		  COALESCE("referenceDailyPaymentIds", '{}'),
		  "status",
		  COALESCE("approvedBy", ''),
		  COALESCE("approvalNotes", ''),
		  "createdBy",
		  "createdAt",
		  "updatedAt"
		FROM "discrepancies"
		WHERE "id" = ANY($1)
		ORDER BY "id" ASC;`

	queryDiscrepancyUpdateStatusWherePending = `UPDATE "discrepancies"
		SET "status" = $1,
		    "approvedBy" = $2,
		    "approvalNotes" = $3,
		    "updatedAt" = NOW()
		WHERE "id" = ANY($4)
		  AND "status" = 'pending_approval';`
)
