package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscrepancyType string

const (
	DiscrepancyTypeMultiDay DiscrepancyType = "multi_day_combination"
	DiscrepancyTypeRefund   DiscrepancyType = "refund"
	DiscrepancyTypeError    DiscrepancyType = "error"
	DiscrepancyTypeTiming   DiscrepancyType = "timing_difference"
	DiscrepancyTypeBankFee  DiscrepancyType = "bank_fee"
	DiscrepancyTypeOther    DiscrepancyType = "other"
)

type DiscrepancyStatus string

// pending_approval is the only non-terminal state. approved and rejected are
// terminal; the review workflow never revisits them.
const (
	DiscrepancyStatusPending  DiscrepancyStatus = "pending_approval"
	DiscrepancyStatusApproved DiscrepancyStatus = "approved"
	DiscrepancyStatusRejected DiscrepancyStatus = "rejected"
)

const (
	BulkActionApprove = "approve"
	BulkActionReject  = "reject"
)

// Discrepancy documents why a statement line and the register receipts don't
// match automatically. Belongs to exactly one MonthlyReconciliation.
type Discrepancy struct {
	ID               int64
	ReconciliationID int64
	DiscrepancyType  DiscrepancyType
	Description      string
	Amount           decimal.Decimal
	Notes            string
	IsCritical       bool

	ReferenceTransactionIDs  []int64
	ReferenceDailyPaymentIDs []int64

	Status        DiscrepancyStatus
	ApprovedBy    string
	ApprovalNotes string

	CreatedBy string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

type CreateDiscrepancyIn struct {
	ReconciliationID         int64
	DiscrepancyType          DiscrepancyType
	Description              string
	Amount                   decimal.Decimal
	Notes                    string
	IsCritical               bool
	ReferenceTransactionIDs  []int64
	ReferenceDailyPaymentIDs []int64
	CreatedBy                string
}

type CreateDiscrepancyRequest struct {
	ReconciliationID         int64   `json:"reconciliationId" validate:"required" example:"7"`
	DiscrepancyType          string  `json:"discrepancyType" validate:"required,oneof=multi_day_combination refund error timing_difference bank_fee other" example:"bank_fee"`
	Description              string  `json:"description" validate:"required,noStartEndSpaces" example:"Monthly account service fee"`
	Amount                   string  `json:"amount" validate:"required,decimalGreaterThan=0" example:"25.00"`
	Notes                    string  `json:"notes,omitempty" example:"Recurring fee, see statement line 14"`
	IsCritical               bool    `json:"isCritical,omitempty" example:"false"`
	ReferenceTransactionIDs  []int64 `json:"referenceTransactionIds,omitempty"`
	ReferenceDailyPaymentIDs []int64 `json:"referenceDailyPaymentIds,omitempty"`
}

func (r CreateDiscrepancyRequest) ToCreateIn(createdBy string) (*CreateDiscrepancyIn, error) {
	amount, err := decimal.NewFromString(r.Amount)
	if err != nil {
		return nil, err
	}

	return &CreateDiscrepancyIn{
		ReconciliationID:         r.ReconciliationID,
		DiscrepancyType:          DiscrepancyType(r.DiscrepancyType),
		Description:              r.Description,
		Amount:                   amount,
		Notes:                    r.Notes,
		IsCritical:               r.IsCritical,
		ReferenceTransactionIDs:  r.ReferenceTransactionIDs,
		ReferenceDailyPaymentIDs: r.ReferenceDailyPaymentIDs,
		CreatedBy:                createdBy,
	}, nil
}

type BulkReviewRequest struct {
	Action         string  `json:"action" validate:"required,oneof=approve reject" example:"approve"`
	DiscrepancyIDs []int64 `json:"discrepancyIds" validate:"required,min=1"`
	Notes          string  `json:"notes,omitempty" example:"Reviewed against January statements"`
}

type BulkReviewResponse struct {
	Kind           string `json:"kind"`
	ProcessedCount int    `json:"processedCount"`
	Action         string `json:"action"`
}

type DiscrepancyResponse struct {
	Kind                     string  `json:"kind"`
	ID                       int64   `json:"id"`
	ReconciliationID         int64   `json:"reconciliationId"`
	DiscrepancyType          string  `json:"discrepancyType"`
	Description              string  `json:"description"`
	Amount                   string  `json:"amount"`
	Notes                    string  `json:"notes,omitempty"`
	IsCritical               bool    `json:"isCritical"`
	Status                   string  `json:"status"`
	ApprovedBy               string  `json:"approvedBy,omitempty"`
	ApprovalNotes            string  `json:"approvalNotes,omitempty"`
	CreatedBy                string  `json:"createdBy"`
	ReferenceTransactionIDs  []int64 `json:"referenceTransactionIds,omitempty"`
	ReferenceDailyPaymentIDs []int64 `json:"referenceDailyPaymentIds,omitempty"`
}

func (d Discrepancy) ToModelResponse() DiscrepancyResponse {
	return DiscrepancyResponse{
		Kind:             "discrepancy",
		ID:               d.ID,
		ReconciliationID: d.ReconciliationID,
		DiscrepancyType:  string(d.DiscrepancyType),
		Description:      d.Description,
		Amount:           d.Amount.StringFixed(2),
		Notes:            d.Notes,
		IsCritical:       d.IsCritical,
		Status:           string(d.Status),
		ApprovedBy:       d.ApprovedBy,
		ApprovalNotes:    d.ApprovalNotes,
		CreatedBy:        d.CreatedBy,
		ReferenceTransactionIDs:  d.ReferenceTransactionIDs,
		ReferenceDailyPaymentIDs: d.ReferenceDailyPaymentIDs,
	}
}
