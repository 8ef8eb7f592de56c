package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconStatus is the per-bank-account reconciliation progress. The numeric
// values define the total order used for facility-level aggregation: a
// facility reports the least-advanced status across its accounts, so it is
// only completed once every account is.
type ReconStatus int

const (
	ReconStatusNotStarted ReconStatus = iota
	ReconStatusInProgress
	ReconStatusPendingReview
	ReconStatusCompleted
)

var reconStatusNames = map[ReconStatus]string{
	ReconStatusNotStarted:    "not_started",
	ReconStatusInProgress:    "in_progress",
	ReconStatusPendingReview: "pending_review",
	ReconStatusCompleted:     "completed",
}

var reconStatusValues = map[string]ReconStatus{
	"not_started":    ReconStatusNotStarted,
	"in_progress":    ReconStatusInProgress,
	"pending_review": ReconStatusPendingReview,
	"completed":      ReconStatusCompleted,
}

func (s ReconStatus) String() string {
	if name, ok := reconStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s ReconStatus) Valid() bool {
	_, ok := reconStatusNames[s]
	return ok
}

// ParseReconStatus resolves a stored status string; unknown values collapse
// to not_started so a bad row can never block aggregation.
func ParseReconStatus(raw string) ReconStatus {
	if s, ok := reconStatusValues[raw]; ok {
		return s
	}
	return ReconStatusNotStarted
}

// MinReconStatus returns the smaller status under the aggregation order. One
// lagging account holds the whole facility back.
func MinReconStatus(a, b ReconStatus) ReconStatus {
	if b < a {
		return b
	}
	return a
}

// MonthlyReconciliation is the per-bank-account header for one calendar
// month. One facility with N accounts has N rows per period.
type MonthlyReconciliation struct {
	ID            int64
	FacilityID    int64
	BankAccountID int64
	Month         int
	Year          int
	Status        ReconStatus

	ExpectedCashCheck decimal.Decimal
	ExpectedCard      decimal.Decimal
	ActualCashCheck   decimal.Decimal
	ActualCard        decimal.Decimal

	MatchedTransactions   int
	UnmatchedTransactions int
	DiscrepancyCount      int

	CreatedBy string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

func (r MonthlyReconciliation) TotalExpected() decimal.Decimal {
	return r.ExpectedCashCheck.Add(r.ExpectedCard)
}

func (r MonthlyReconciliation) TotalActual() decimal.Decimal {
	return r.ActualCashCheck.Add(r.ActualCard)
}

type CreateReconciliationIn struct {
	FacilityID            int64
	BankAccountID         int64
	Month                 int
	Year                  int
	Status                ReconStatus
	ExpectedCashCheck     decimal.Decimal
	ExpectedCard          decimal.Decimal
	UnmatchedTransactions int
	CreatedBy             string
}

// MatchProgressIn folds one auto-match run's results into the period header
// of the bank account it ran on.
type MatchProgressIn struct {
	FacilityID      int64
	BankAccountID   int64
	Month           int
	Year            int
	MatchedDelta    int
	ActualCashCheck decimal.Decimal
	ActualCard      decimal.Decimal
}

type StartReconciliationRequest struct {
	FacilityID int64 `json:"facilityId" validate:"required" example:"1"`
	Month      int   `json:"month" validate:"required,month" example:"1"`
	Year       int   `json:"year" validate:"required,year" example:"2024"`
}

type AdvanceReconciliationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress pending_review completed" example:"pending_review"`
}

type ReconciliationRef struct {
	ReconciliationID int64 `json:"reconciliationId"`
	BankAccountID    int64 `json:"bankAccountId"`
}

type ExpectedTotalsResponse struct {
	CashCheck  string `json:"cashCheck"`
	CreditCard string `json:"creditCard"`
}

type StartReconciliationResponse struct {
	Kind            string                 `json:"kind"`
	Reconciliations []ReconciliationRef    `json:"reconciliations"`
	ExpectedTotals  ExpectedTotalsResponse `json:"expectedTotals"`
}

func NewStartReconciliationResponse(rows []MonthlyReconciliation, totals PaymentTotals) StartReconciliationResponse {
	out := StartReconciliationResponse{
		Kind:            "reconciliationStart",
		Reconciliations: make([]ReconciliationRef, 0, len(rows)),
		ExpectedTotals: ExpectedTotalsResponse{
			CashCheck:  totals.CashCheck.StringFixed(2),
			CreditCard: totals.Card.StringFixed(2),
		},
	}
	for _, r := range rows {
		out.Reconciliations = append(out.Reconciliations, ReconciliationRef{
			ReconciliationID: r.ID,
			BankAccountID:    r.BankAccountID,
		})
	}
	return out
}

type ReconciliationResponse struct {
	Kind                  string `json:"kind"`
	ID                    int64  `json:"id"`
	FacilityID            int64  `json:"facilityId"`
	BankAccountID         int64  `json:"bankAccountId"`
	Month                 int    `json:"month"`
	Year                  int    `json:"year"`
	Status                string `json:"status"`
	ExpectedCashCheck     string `json:"expectedCashCheck"`
	ExpectedCard          string `json:"expectedCard"`
	ActualCashCheck       string `json:"actualCashCheck"`
	ActualCard            string `json:"actualCard"`
	MatchedTransactions   int    `json:"matchedTransactions"`
	UnmatchedTransactions int    `json:"unmatchedTransactions"`
	DiscrepancyCount      int    `json:"discrepancyCount"`
}

func (r MonthlyReconciliation) ToModelResponse() ReconciliationResponse {
	return ReconciliationResponse{
		Kind:                  "monthlyReconciliation",
		ID:                    r.ID,
		FacilityID:            r.FacilityID,
		BankAccountID:         r.BankAccountID,
		Month:                 r.Month,
		Year:                  r.Year,
		Status:                r.Status.String(),
		ExpectedCashCheck:     r.ExpectedCashCheck.StringFixed(2),
		ExpectedCard:          r.ExpectedCard.StringFixed(2),
		ActualCashCheck:       r.ActualCashCheck.StringFixed(2),
		ActualCard:            r.ActualCard.StringFixed(2),
		MatchedTransactions:   r.MatchedTransactions,
		UnmatchedTransactions: r.UnmatchedTransactions,
		DiscrepancyCount:      r.DiscrepancyCount,
	}
}
