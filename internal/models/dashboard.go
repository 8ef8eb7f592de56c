package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FacilityOverview is one dashboard row: the merged view of every
// per-bank-account reconciliation a facility has for the period.
type FacilityOverview struct {
	FacilityID   int64
	FacilityName string
	Status       ReconStatus

	TotalTransactions   int
	MatchedTransactions int
	Discrepancies       int

	TotalExpected decimal.Decimal
	TotalActual   decimal.Decimal

	LastUpdated *time.Time
}

// TotalAmount is the larger of the expected and actual sides, the number the
// portfolio summary adds up.
func (f FacilityOverview) TotalAmount() decimal.Decimal {
	if f.TotalExpected.GreaterThanOrEqual(f.TotalActual) {
		return f.TotalExpected
	}
	return f.TotalActual
}

// PortfolioStats summarizes the whole dashboard.
type PortfolioStats struct {
	FacilitiesByStatus map[string]int
	TotalDiscrepancies int
	TotalAmount        decimal.Decimal

	// MatchingAccuracy averages matched/total across facilities that have at
	// least one transaction. Facilities without transactions are excluded
	// from the average, not counted as zero.
	MatchingAccuracy decimal.Decimal
}

type GetDashboardRequest struct {
	Month int `json:"month" query:"month" validate:"required,month" example:"1"`
	Year  int `json:"year" query:"year" validate:"required,year" example:"2024"`
}

type FacilityOverviewResponse struct {
	Kind                string `json:"kind"`
	FacilityID          int64  `json:"facilityId"`
	FacilityName        string `json:"facilityName"`
	Status              string `json:"status"`
	TotalTransactions   int    `json:"totalTransactions"`
	MatchedTransactions int    `json:"matchedTransactions"`
	Discrepancies       int    `json:"discrepancies"`
	TotalAmount         string `json:"totalAmount"`
	LastUpdated         string `json:"lastUpdated,omitempty"`
}

func (f FacilityOverview) ToModelResponse() FacilityOverviewResponse {
	resp := FacilityOverviewResponse{
		Kind:                "facilityOverview",
		FacilityID:          f.FacilityID,
		FacilityName:        f.FacilityName,
		Status:              f.Status.String(),
		TotalTransactions:   f.TotalTransactions,
		MatchedTransactions: f.MatchedTransactions,
		Discrepancies:       f.Discrepancies,
		TotalAmount:         f.TotalAmount().StringFixed(2),
	}
	if f.LastUpdated != nil {
		resp.LastUpdated = f.LastUpdated.Format(time.RFC3339)
	}
	return resp
}

type PortfolioStatsResponse struct {
	FacilitiesByStatus map[string]int `json:"facilitiesByStatus"`
	TotalDiscrepancies int            `json:"totalDiscrepancies"`
	TotalAmount        string         `json:"totalAmount"`
	MatchingAccuracy   string         `json:"matchingAccuracy"`
}

type GetDashboardResponse struct {
	Kind       string                     `json:"kind"`
	Facilities []FacilityOverviewResponse `json:"facilities"`
	Stats      PortfolioStatsResponse     `json:"stats"`
}

func NewGetDashboardResponse(facilities []FacilityOverview, stats PortfolioStats) GetDashboardResponse {
	out := GetDashboardResponse{
		Kind:       "reconciliationDashboard",
		Facilities: make([]FacilityOverviewResponse, 0, len(facilities)),
		Stats: PortfolioStatsResponse{
			FacilitiesByStatus: stats.FacilitiesByStatus,
			TotalDiscrepancies: stats.TotalDiscrepancies,
			TotalAmount:        stats.TotalAmount.StringFixed(2),
			MatchingAccuracy:   stats.MatchingAccuracy.StringFixed(2),
		},
	}
	for _, f := range facilities {
		out.Facilities = append(out.Facilities, f.ToModelResponse())
	}
	return out
}
