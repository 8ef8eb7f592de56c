package repositories

import (
	"context"

	"github.com/stashops/go-facility-recon/internal/models"
	"github.com/stashops/go-facility-recon/internal/monitoring"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type DiscrepancyRepository interface {
	Create(ctx context.Context, in *models.CreateDiscrepancyIn) (created *models.Discrepancy, err error)
	ListByIDs(ctx context.Context, ids []int64) (result []models.Discrepancy, err error)
	// UpdateStatusWherePending flips only rows still pending approval and
	// returns how many it touched. Callers compare that against len(ids)
	// to detect a row that was reviewed out from under them.
	UpdateStatusWherePending(ctx context.Context, ids []int64, status models.DiscrepancyStatus, approvedBy, approvalNotes string) (affected int64, err error)
}

type discrepancyRepository sqlRepo

var _ DiscrepancyRepository = (*discrepancyRepository)(nil)

func (r *discrepancyRepository) Create(ctx context.Context, in *models.CreateDiscrepancyIn) (created *models.Discrepancy, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	var entity models.Discrepancy
	err = db.QueryRowContext(ctx, queryDiscrepancyCreate,
		in.ReconciliationID,
		string(in.DiscrepancyType),
		in.Description,
		in.Amount,
		in.Notes,
		in.IsCritical,
		pq.Array(in.ReferenceTransactionIDs),
		pq.Array(in.ReferenceDailyPaymentIDs),
		string(models.DiscrepancyStatusPending),
		in.CreatedBy,
	).Scan(
		&entity.ID,
		&entity.CreatedAt,
	)
	if err != nil {
		return
	}

	entity.ReconciliationID = in.ReconciliationID
	entity.DiscrepancyType = in.DiscrepancyType
	entity.Description = in.Description
	entity.Amount = in.Amount
	entity.Notes = in.Notes
	entity.IsCritical = in.IsCritical
	entity.ReferenceTransactionIDs = in.ReferenceTransactionIDs
	entity.ReferenceDailyPaymentIDs = in.ReferenceDailyPaymentIDs
	entity.Status = models.DiscrepancyStatusPending
	entity.CreatedBy = in.CreatedBy
	created = &entity

	return
}

func (r *discrepancyRepository) ListByIDs(ctx context.Context, ids []int64) (result []models.Discrepancy, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	rows, err := db.QueryContext(ctx, queryDiscrepancyListByIDs, pq.Array(ids))
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var (
			entity models.Discrepancy
			dtype  string
			status string
			amount string
			txRefs pq.Int64Array
			dpRefs pq.Int64Array
		)
		err = rows.Scan(
			&entity.ID,
			&entity.ReconciliationID,
			&dtype,
			&entity.Description,
			&amount,
			&entity.Notes,
			&entity.IsCritical,
			&txRefs,
			&dpRefs,
			&status,
			&entity.ApprovedBy,
			&entity.ApprovalNotes,
			&entity.CreatedBy,
			&entity.CreatedAt,
			&entity.UpdatedAt,
		)
		if err != nil {
			return result, err
		}
		if entity.Amount, err = decimal.NewFromString(amount); err != nil {
			return result, err
		}
		entity.DiscrepancyType = models.DiscrepancyType(dtype)
		entity.Status = models.DiscrepancyStatus(status)
		entity.ReferenceTransactionIDs = txRefs
		entity.ReferenceDailyPaymentIDs = dpRefs
		result = append(result, entity)
	}
	if err = rows.Err(); err != nil {
		return result, err
	}

	return result, nil
}

func (r *discrepancyRepository) UpdateStatusWherePending(ctx context.Context, ids []int64, status models.DiscrepancyStatus, approvedBy, approvalNotes string) (affected int64, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := r.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, queryDiscrepancyUpdateStatusWherePending,
		string(status),
		approvedBy,
		approvalNotes,
		pq.Array(ids),
	)
	if err != nil {
		return
	}

	return res.RowsAffected()
}
