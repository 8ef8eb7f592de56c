package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is one statement line ingested from the bank feed.
// Immutable after ingestion; only its match linkage changes.
type BankTransaction struct {
	ID              int64
	BankAccountID   int64
	TransactionDate time.Time
	Amount          decimal.Decimal
	TransactionType string
	CreatedAt       *time.Time
}

type BankTransactionResponse struct {
	Kind            string `json:"kind"`
	ID              int64  `json:"id"`
	BankAccountID   int64  `json:"bankAccountId"`
	TransactionDate string `json:"transactionDate"`
	Amount          string `json:"amount"`
	TransactionType string `json:"transactionType"`
}

func (t BankTransaction) ToModelResponse() BankTransactionResponse {
	return BankTransactionResponse{
		Kind:            "bankTransaction",
		ID:              t.ID,
		BankAccountID:   t.BankAccountID,
		TransactionDate: t.TransactionDate.Format("2006-01-02"),
		Amount:          t.Amount.StringFixed(2),
		TransactionType: t.TransactionType,
	}
}
