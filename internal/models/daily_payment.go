package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyPayment is one day of self-reported register receipts for a facility,
// itemized by tender. Immutable after point-of-sale ingestion.
type DailyPayment struct {
	ID          int64
	FacilityID  int64
	PaymentDate time.Time

	Cash  decimal.Decimal
	Check decimal.Decimal

	Visa       decimal.Decimal
	Mastercard decimal.Decimal
	Amex       decimal.Decimal
	Discover   decimal.Decimal

	CreatedAt *time.Time
}

// CashCheckTotal is the amount expected to appear on the statement as one
// cash/check deposit.
func (p DailyPayment) CashCheckTotal() decimal.Decimal {
	return p.Cash.Add(p.Check)
}

// CardTotal is the amount expected to appear as one card-settlement credit.
func (p DailyPayment) CardTotal() decimal.Decimal {
	return p.Visa.Add(p.Mastercard).Add(p.Amex).Add(p.Discover)
}

// PaymentTotals carries the two expected sides summed over a date range.
type PaymentTotals struct {
	CashCheck decimal.Decimal
	Card      decimal.Decimal
}

func (t PaymentTotals) Total() decimal.Decimal {
	return t.CashCheck.Add(t.Card)
}

type DailyPaymentResponse struct {
	Kind        string `json:"kind"`
	ID          int64  `json:"id"`
	FacilityID  int64  `json:"facilityId"`
	PaymentDate string `json:"paymentDate"`
	CashCheck   string `json:"cashCheckTotal"`
	Card        string `json:"cardTotal"`
}

func (p DailyPayment) ToModelResponse() DailyPaymentResponse {
	return DailyPaymentResponse{
		Kind:        "dailyPayment",
		ID:          p.ID,
		FacilityID:  p.FacilityID,
		PaymentDate: p.PaymentDate.Format("2006-01-02"),
		CashCheck:   p.CashCheckTotal().StringFixed(2),
		Card:        p.CardTotal().StringFixed(2),
	}
}
