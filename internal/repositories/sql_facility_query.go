package repositories

var (
	queryFacilityGetAll = `SELECT
		  "id",
		  "name",
		  "code",
		  "createdAt"
		FROM "facilities"
		ORDER BY "id" ASC;`

	queryFacilityGetByID = `SELECT
		  "id",
		  "name",
		  "code",
		  "createdAt"
		FROM "facilities"
		WHERE "id" = $1;`
)
