package models

import (
	"github.com/shopspring/decimal"
)

// MatchSuggestion is one proposed pairing with its score. Suggestions are
// never persisted; the candidate pass is a pure function over current state.
type MatchSuggestion struct {
	BankTransactionID int64
	DailyPaymentID    int64
	ConnectionType    ConnectionType
	MatchType         string
	MatchConfidence   decimal.Decimal
	AmountDifference  decimal.Decimal
	DateDifference    int
}

type GenerateCandidatesRequest struct {
	FacilityID    int64 `json:"facilityId" query:"facilityId" validate:"required" example:"1"`
	BankAccountID int64 `json:"bankAccountId" query:"bankAccountId" validate:"required" example:"3"`
	Month         int   `json:"month" query:"month" validate:"required,month" example:"1"`
	Year          int   `json:"year" query:"year" validate:"required,year" example:"2024"`
}

type RunAutoMatchRequest struct {
	FacilityID    int64   `json:"facilityId" validate:"required" example:"1"`
	BankAccountID int64   `json:"bankAccountId" validate:"required" example:"3"`
	Month         int     `json:"month" validate:"required,month" example:"1"`
	Year          int     `json:"year" validate:"required,year" example:"2024"`
	MinConfidence float64 `json:"minConfidence,omitempty" validate:"omitempty,gt=0" example:"0.95"`
}

type ListUnmatchedRequest struct {
	FacilityID    int64 `json:"facilityId" query:"facilityId" validate:"required" example:"1"`
	BankAccountID int64 `json:"bankAccountId" query:"bankAccountId" validate:"required" example:"3"`
	Month         int   `json:"month" query:"month" validate:"required,month" example:"1"`
	Year          int   `json:"year" query:"year" validate:"required,year" example:"2024"`
}

type MatchSuggestionResponse struct {
	Kind              string `json:"kind"`
	BankTransactionID int64  `json:"bankTransactionId"`
	DailyPaymentID    int64  `json:"dailyPaymentId"`
	ConnectionType    string `json:"connectionType"`
	MatchType         string `json:"matchType"`
	MatchConfidence   string `json:"matchConfidence"`
	AmountDifference  string `json:"amountDifference"`
	DateDifference    int    `json:"dateDifference"`
}

func (s MatchSuggestion) ToModelResponse() MatchSuggestionResponse {
	return MatchSuggestionResponse{
		Kind:              "matchSuggestion",
		BankTransactionID: s.BankTransactionID,
		DailyPaymentID:    s.DailyPaymentID,
		ConnectionType:    string(s.ConnectionType),
		MatchType:         s.MatchType,
		MatchConfidence:   s.MatchConfidence.String(),
		AmountDifference:  s.AmountDifference.StringFixed(2),
		DateDifference:    s.DateDifference,
	}
}

type GenerateCandidatesResponse struct {
	Kind        string                    `json:"kind"`
	Suggestions []MatchSuggestionResponse `json:"suggestions"`
	TotalFound  int                       `json:"totalFound"`
}

func NewGenerateCandidatesResponse(suggestions []MatchSuggestion) GenerateCandidatesResponse {
	out := GenerateCandidatesResponse{
		Kind:        "matchSuggestionList",
		Suggestions: make([]MatchSuggestionResponse, 0, len(suggestions)),
	}
	for _, s := range suggestions {
		out.Suggestions = append(out.Suggestions, s.ToModelResponse())
	}
	out.TotalFound = len(out.Suggestions)
	return out
}

type RunAutoMatchResponse struct {
	Kind           string              `json:"kind"`
	MatchesCreated int                 `json:"matchesCreated"`
	Matches        []MatchLinkResponse `json:"matches"`
}

func NewRunAutoMatchResponse(matches []MatchLink) RunAutoMatchResponse {
	out := RunAutoMatchResponse{
		Kind:    "autoMatchResult",
		Matches: make([]MatchLinkResponse, 0, len(matches)),
	}
	for _, m := range matches {
		out.Matches = append(out.Matches, m.ToModelResponse())
	}
	out.MatchesCreated = len(out.Matches)
	return out
}

type ListUnmatchedResponse struct {
	Kind         string                    `json:"kind"`
	Transactions []BankTransactionResponse `json:"transactions"`
	Payments     []DailyPaymentResponse    `json:"payments"`
}

func NewListUnmatchedResponse(txs []BankTransaction, pays []DailyPayment) ListUnmatchedResponse {
	out := ListUnmatchedResponse{
		Kind:         "unmatchedSet",
		Transactions: make([]BankTransactionResponse, 0, len(txs)),
		Payments:     make([]DailyPaymentResponse, 0, len(pays)),
	}
	for _, t := range txs {
		out.Transactions = append(out.Transactions, t.ToModelResponse())
	}
	for _, p := range pays {
		out.Payments = append(out.Payments, p.ToModelResponse())
	}
	return out
}
