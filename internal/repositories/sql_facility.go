package repositories

import (
	"context"
	"database/sql"

	"github.com/stashops/go-facility-recon/internal/common"
	"github.com/stashops/go-facility-recon/internal/models"
	"github.com/stashops/go-facility-recon/internal/monitoring"
)

type FacilityRepository interface {
	GetAll(ctx context.Context) (result []models.Facility, err error)
	GetByID(ctx context.Context, id int64) (result *models.Facility, err error)
}

type facilityRepository sqlRepo

var _ FacilityRepository = (*facilityRepository)(nil)

func (r *facilityRepository) GetAll(ctx context.Context) (result []models.Facility, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryFacilityGetAll)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var f models.Facility
		if err = rows.Scan(&f.ID, &f.Name, &f.Code, &f.CreatedAt); err != nil {
			return result, err
		}
		result = append(result, f)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (r *facilityRepository) GetByID(ctx context.Context, id int64) (result *models.Facility, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxRead(ctx)

	result = &models.Facility{}
	err = db.QueryRowContext(ctx, queryFacilityGetByID, id).Scan(
		&result.ID,
		&result.Name,
		&result.Code,
		&result.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, common.ErrDataNotFound
		}
		return nil, err
	}

	return result, nil
}
