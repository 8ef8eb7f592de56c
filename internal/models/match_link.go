package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConnectionType tells which side of a daily payment a statement line was
// matched against.
type ConnectionType string

const (
	ConnectionTypeCash       ConnectionType = "cash"
	ConnectionTypeCreditCard ConnectionType = "creditCard"
)

const (
	MatchTypeExact    = "exact"
	MatchTypeClose    = "close"
	MatchTypePossible = "possible"

	MatchOriginAutomatic = "automatic"
	MatchOriginManual    = "manual"
)

// MatchLink is a persisted, accepted pairing between one bank transaction and
// one daily payment. Never updated; removed only by explicit unlinking.
type MatchLink struct {
	ID                int64
	BankTransactionID int64
	DailyPaymentID    int64
	ConnectionType    ConnectionType
	MatchType         string
	MatchConfidence   decimal.Decimal
	IsManualMatch     bool
	MatchedBy         string
	CreatedAt         *time.Time
}

type CreateMatchLinkIn struct {
	BankTransactionID int64
	DailyPaymentID    int64
	ConnectionType    ConnectionType
	MatchType         string
	MatchConfidence   decimal.Decimal
	IsManualMatch     bool
	MatchedBy         string
}

type MatchLinkResponse struct {
	Kind              string `json:"kind"`
	ID                int64  `json:"id"`
	BankTransactionID int64  `json:"bankTransactionId"`
	DailyPaymentID    int64  `json:"dailyPaymentId"`
	ConnectionType    string `json:"connectionType"`
	MatchType         string `json:"matchType"`
	MatchConfidence   string `json:"matchConfidence"`
	IsManualMatch     bool   `json:"isManualMatch"`
	MatchedBy         string `json:"matchedBy"`
}

func (m MatchLink) ToModelResponse() MatchLinkResponse {
	return MatchLinkResponse{
		Kind:              "matchLink",
		ID:                m.ID,
		BankTransactionID: m.BankTransactionID,
		DailyPaymentID:    m.DailyPaymentID,
		ConnectionType:    string(m.ConnectionType),
		MatchType:         m.MatchType,
		MatchConfidence:   m.MatchConfidence.String(),
		IsManualMatch:     m.IsManualMatch,
		MatchedBy:         m.MatchedBy,
	}
}
