package services_test

import (
	"context"
	"testing"

	"github.com/stashops/go-facility-recon/internal/common"
	"github.com/stashops/go-facility-recon/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDiscrepancyService_Create(t *testing.T) {
	testHelper := serviceTestHelper(t)

	in := &models.CreateDiscrepancyIn{
		ReconciliationID: 7,
		DiscrepancyType:  models.DiscrepancyTypeBankFee,
		Description:      "Monthly account service fee",
		Amount:           dec("25.00"),
		CreatedBy:        "ops@stashops.dev",
	}

	t.Run("creates pending and bumps the header count", func(t *testing.T) {
		testHelper.mockReconciliationRepository.EXPECT().
			GetByID(gomock.Any(), int64(7)).Return(&models.MonthlyReconciliation{ID: 7}, nil)
		testHelper.mockDiscrepancyRepository.EXPECT().
			Create(gomock.Any(), in).Return(&models.Discrepancy{ID: 3, Status: models.DiscrepancyStatusPending}, nil)
		testHelper.mockReconciliationRepository.EXPECT().
			IncrementDiscrepancyCount(gomock.Any(), int64(7)).Return(nil)

		created, err := testHelper.discrepancyService.Create(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, models.DiscrepancyStatusPending, created.Status)
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		bad := *in
		bad.Amount = dec("0")

		_, err := testHelper.discrepancyService.Create(context.Background(), &bad)
		assert.ErrorIs(t, err, common.ErrInvalidAmount)
	})

	t.Run("missing reconciliation is not found", func(t *testing.T) {
		testHelper.mockReconciliationRepository.EXPECT().
			GetByID(gomock.Any(), int64(7)).Return(nil, common.ErrReconNotFound)

		_, err := testHelper.discrepancyService.Create(context.Background(), in)
		assert.ErrorIs(t, err, common.ErrReconNotFound)
	})

	t.Run("count bump failure rolls the create back", func(t *testing.T) {
		testHelper.mockReconciliationRepository.EXPECT().
			GetByID(gomock.Any(), int64(7)).Return(&models.MonthlyReconciliation{ID: 7}, nil)
		testHelper.mockDiscrepancyRepository.EXPECT().
			Create(gomock.Any(), in).Return(&models.Discrepancy{ID: 3}, nil)
		testHelper.mockReconciliationRepository.EXPECT().
			IncrementDiscrepancyCount(gomock.Any(), int64(7)).Return(assert.AnError)

		_, err := testHelper.discrepancyService.Create(context.Background(), in)
		assert.Error(t, err)
	})
}

func TestDiscrepancyService_BulkReview(t *testing.T) {
	testHelper := serviceTestHelper(t)

	pending := []models.Discrepancy{
		{ID: 3, Status: models.DiscrepancyStatusPending},
		{ID: 4, Status: models.DiscrepancyStatusPending},
	}

	t.Run("approves an all-pending batch", func(t *testing.T) {
		req := models.BulkReviewRequest{Action: models.BulkActionApprove, DiscrepancyIDs: []int64{3, 4}, Notes: "ok"}

		testHelper.mockDiscrepancyRepository.EXPECT().
			ListByIDs(gomock.Any(), []int64{3, 4}).Return(pending, nil)
		testHelper.mockDiscrepancyRepository.EXPECT().
			UpdateStatusWherePending(gomock.Any(), []int64{3, 4}, models.DiscrepancyStatusApproved, "admin@stashops.dev", "ok").
			Return(int64(2), nil)

		processed, err := testHelper.discrepancyService.BulkReview(context.Background(), req, "admin@stashops.dev")
		require.NoError(t, err)
		assert.Equal(t, 2, processed)
	})

	t.Run("rejects an all-pending batch", func(t *testing.T) {
		req := models.BulkReviewRequest{Action: models.BulkActionReject, DiscrepancyIDs: []int64{3}}

		testHelper.mockDiscrepancyRepository.EXPECT().
			ListByIDs(gomock.Any(), []int64{3}).Return(pending[:1], nil)
		testHelper.mockDiscrepancyRepository.EXPECT().
			UpdateStatusWherePending(gomock.Any(), []int64{3}, models.DiscrepancyStatusRejected, "admin@stashops.dev", "").
			Return(int64(1), nil)

		processed, err := testHelper.discrepancyService.BulkReview(context.Background(), req, "admin@stashops.dev")
		require.NoError(t, err)
		assert.Equal(t, 1, processed)
	})

	t.Run("one missing id fails the whole batch", func(t *testing.T) {
		req := models.BulkReviewRequest{Action: models.BulkActionApprove, DiscrepancyIDs: []int64{3, 99}}

		testHelper.mockDiscrepancyRepository.EXPECT().
			ListByIDs(gomock.Any(), []int64{3, 99}).Return(pending[:1], nil)

		_, err := testHelper.discrepancyService.BulkReview(context.Background(), req, "admin@stashops.dev")
		assert.ErrorIs(t, err, common.ErrDiscrepancyNotFound)
	})

	t.Run("one non-pending id fails the whole batch", func(t *testing.T) {
		req := models.BulkReviewRequest{Action: models.BulkActionApprove, DiscrepancyIDs: []int64{3, 4}}
		mixed := []models.Discrepancy{
			{ID: 3, Status: models.DiscrepancyStatusPending},
			{ID: 4, Status: models.DiscrepancyStatusApproved},
		}

		testHelper.mockDiscrepancyRepository.EXPECT().
			ListByIDs(gomock.Any(), []int64{3, 4}).Return(mixed, nil)

		_, err := testHelper.discrepancyService.BulkReview(context.Background(), req, "admin@stashops.dev")
		assert.ErrorIs(t, err, common.ErrDiscrepancyNotPending)
	})

	t.Run("row reviewed mid-flight rolls back", func(t *testing.T) {
		req := models.BulkReviewRequest{Action: models.BulkActionApprove, DiscrepancyIDs: []int64{3, 4}}

		testHelper.mockDiscrepancyRepository.EXPECT().
			ListByIDs(gomock.Any(), []int64{3, 4}).Return(pending, nil)
		testHelper.mockDiscrepancyRepository.EXPECT().
			UpdateStatusWherePending(gomock.Any(), []int64{3, 4}, models.DiscrepancyStatusApproved, "admin@stashops.dev", "").
			Return(int64(1), nil)

		_, err := testHelper.discrepancyService.BulkReview(context.Background(), req, "admin@stashops.dev")
		assert.ErrorIs(t, err, common.ErrDiscrepancyNotPending)
	})

	t.Run("empty id list is rejected", func(t *testing.T) {
		req := models.BulkReviewRequest{Action: models.BulkActionApprove}

		_, err := testHelper.discrepancyService.BulkReview(context.Background(), req, "admin@stashops.dev")
		assert.ErrorIs(t, err, common.ErrEmptyDiscrepancyIDs)
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		req := models.BulkReviewRequest{Action: "archive", DiscrepancyIDs: []int64{3}}

		_, err := testHelper.discrepancyService.BulkReview(context.Background(), req, "admin@stashops.dev")
		assert.ErrorIs(t, err, common.ErrInvalidBulkAction)
	})

	t.Run("duplicate ids collapse before the update", func(t *testing.T) {
		req := models.BulkReviewRequest{Action: models.BulkActionApprove, DiscrepancyIDs: []int64{3, 3, 4}}

		testHelper.mockDiscrepancyRepository.EXPECT().
			ListByIDs(gomock.Any(), []int64{3, 4}).Return(pending, nil)
		testHelper.mockDiscrepancyRepository.EXPECT().
			UpdateStatusWherePending(gomock.Any(), []int64{3, 4}, models.DiscrepancyStatusApproved, "admin@stashops.dev", "").
			Return(int64(2), nil)

		processed, err := testHelper.discrepancyService.BulkReview(context.Background(), req, "admin@stashops.dev")
		require.NoError(t, err)
		assert.Equal(t, 2, processed)
	})
}
