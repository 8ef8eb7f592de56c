package services

import (
	"context"
	"errors"

	"github.com/stashops/go-facility-recon/internal/common"
	"github.com/stashops/go-facility-recon/internal/models"
	"github.com/stashops/go-facility-recon/internal/monitoring"
)

type DiscrepancyService interface {
	// Create records one explanation against an existing reconciliation
	// header and bumps the header's discrepancy count in the same
	// transaction.
	Create(ctx context.Context, in *models.CreateDiscrepancyIn) (created *models.Discrepancy, err error)
	// BulkReview approves or rejects a batch atomically. If any id is
	// missing or no longer pending, nothing in the batch changes.
	BulkReview(ctx context.Context, req models.BulkReviewRequest, approvedBy string) (processed int, err error)
}

type discrepancy service

var _ DiscrepancyService = (*discrepancy)(nil)

func (d *discrepancy) Create(ctx context.Context, in *models.CreateDiscrepancyIn) (created *models.Discrepancy, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if !in.Amount.IsPositive() {
		return nil, common.ErrInvalidAmount
	}

	if _, err = d.srv.sqlRepo.GetReconciliationRepository().GetByID(ctx, in.ReconciliationID); err != nil {
		if errors.Is(err, common.ErrReconNotFound) {
			return nil, err
		}
		return nil, checkDatabaseError(err)
	}

	err = d.srv.sqlRepo.WithinTx(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = d.srv.sqlRepo.GetDiscrepancyRepository().Create(txCtx, in)
		if txErr != nil {
			return checkDatabaseError(txErr)
		}

		return d.srv.sqlRepo.GetReconciliationRepository().IncrementDiscrepancyCount(txCtx, in.ReconciliationID)
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (d *discrepancy) BulkReview(ctx context.Context, req models.BulkReviewRequest, approvedBy string) (processed int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if len(req.DiscrepancyIDs) == 0 {
		return 0, common.ErrEmptyDiscrepancyIDs
	}

	var target models.DiscrepancyStatus
	switch req.Action {
	case models.BulkActionApprove:
		target = models.DiscrepancyStatusApproved
	case models.BulkActionReject:
		target = models.DiscrepancyStatusRejected
	default:
		return 0, common.ErrInvalidBulkAction
	}

	ids := dedupeIDs(req.DiscrepancyIDs)

	err = d.srv.sqlRepo.WithinTx(ctx, func(txCtx context.Context) error {
		discRepo := d.srv.sqlRepo.GetDiscrepancyRepository()

		existing, txErr := discRepo.ListByIDs(txCtx, ids)
		if txErr != nil {
			return checkDatabaseError(txErr)
		}
		if len(existing) != len(ids) {
			return common.ErrDiscrepancyNotFound
		}
		for _, disc := range existing {
			if disc.Status != models.DiscrepancyStatusPending {
				return common.ErrDiscrepancyNotPending
			}
		}

		affected, txErr := discRepo.UpdateStatusWherePending(txCtx, ids, target, approvedBy, req.Notes)
		if txErr != nil {
			return checkDatabaseError(txErr)
		}
		// A row reviewed between the read and the update would leave the
		// count short; the whole batch rolls back in that case.
		if affected != int64(len(ids)) {
			return common.ErrDiscrepancyNotPending
		}

		processed = int(affected)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return processed, nil
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
