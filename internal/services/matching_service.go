package services

import (
	"context"
	"errors"
	"sort"

	"github.com/stashops/go-facility-recon/internal/common"
	"github.com/stashops/go-facility-recon/internal/common/log"
	"github.com/stashops/go-facility-recon/internal/models"
	"github.com/stashops/go-facility-recon/internal/monitoring"

	"github.com/shopspring/decimal"
)

const (
	defaultMinConfidence   = 0.95
	defaultSuggestionLimit = 20

	// A deposit may settle a day or two after the register closes, and the
	// bank may shave a rounding cent. Anything outside this envelope is not
	// a candidate at all.
	maxDateDifferenceDays = 2
)

var (
	maxAmountDifference = decimal.RequireFromString("0.01")

	confidenceExact    = decimal.RequireFromString("1.0")
	confidenceClose    = decimal.RequireFromString("0.9")
	confidencePossible = decimal.RequireFromString("0.7")
)

type MatchingService interface {
	// GenerateCandidates proposes ranked pairings without writing anything.
	GenerateCandidates(ctx context.Context, req models.GenerateCandidatesRequest) (result []models.MatchSuggestion, err error)
	// RunAutoMatch persists every exact pairing at or above the confidence
	// floor. Each insert is its own unit of work, so whatever was accepted
	// before a failure stays accepted.
	RunAutoMatch(ctx context.Context, req models.RunAutoMatchRequest, matchedBy string) (created []models.MatchLink, err error)
	ListUnmatched(ctx context.Context, req models.ListUnmatchedRequest) (txs []models.BankTransaction, payments []models.DailyPayment, err error)
}

type matching service

var _ MatchingService = (*matching)(nil)

func (m *matching) GenerateCandidates(ctx context.Context, req models.GenerateCandidatesRequest) (result []models.MatchSuggestion, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	from, to := common.MonthRange(req.Year, req.Month)

	txs, err := m.srv.sqlRepo.GetBankTransactionRepository().ListUnmatchedByAccountRange(ctx, req.BankAccountID, from, to)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	payments, err := m.srv.sqlRepo.GetDailyPaymentRepository().ListByFacilityRange(ctx, req.FacilityID, from, to)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	limit := m.srv.conf.Matching.SuggestionLimit
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	return buildSuggestions(txs, payments, limit), nil
}

// buildSuggestions is the scoring pass. Pure over its inputs; evaluation
// order is fixed (transactions in ingestion order, payments in date order,
// cash side before card side) so equal-confidence candidates keep a stable
// rank after the sort.
func buildSuggestions(txs []models.BankTransaction, payments []models.DailyPayment, limit int) []models.MatchSuggestion {
	suggestions := make([]models.MatchSuggestion, 0)

	for _, tx := range txs {
		for _, p := range payments {
			for _, side := range paymentSides(p) {
				if !side.total.IsPositive() {
					continue
				}

				s, ok := scorePairing(tx, p, side)
				if ok {
					suggestions = append(suggestions, s)
				}
			}
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].MatchConfidence.GreaterThan(suggestions[j].MatchConfidence)
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}

	return suggestions
}

type paymentSide struct {
	connectionType models.ConnectionType
	total          decimal.Decimal
}

func paymentSides(p models.DailyPayment) [2]paymentSide {
	return [2]paymentSide{
		{connectionType: models.ConnectionTypeCash, total: p.CashCheckTotal()},
		{connectionType: models.ConnectionTypeCreditCard, total: p.CardTotal()},
	}
}

func scorePairing(tx models.BankTransaction, p models.DailyPayment, side paymentSide) (s models.MatchSuggestion, ok bool) {
	amountDiff := tx.Amount.Sub(side.total).Abs()
	dateDiff := common.DaysBetween(tx.TransactionDate, p.PaymentDate)

	if amountDiff.GreaterThan(maxAmountDifference) || dateDiff > maxDateDifferenceDays {
		return s, false
	}

	matchType := models.MatchTypePossible
	confidence := confidencePossible
	switch {
	case amountDiff.IsZero() && dateDiff == 0:
		matchType = models.MatchTypeExact
		confidence = confidenceExact
	case dateDiff <= 1:
		matchType = models.MatchTypeClose
		confidence = confidenceClose
	}

	return models.MatchSuggestion{
		BankTransactionID: tx.ID,
		DailyPaymentID:    p.ID,
		ConnectionType:    side.connectionType,
		MatchType:         matchType,
		MatchConfidence:   confidence,
		AmountDifference:  amountDiff,
		DateDifference:    dateDiff,
	}, true
}

func (m *matching) RunAutoMatch(ctx context.Context, req models.RunAutoMatchRequest, matchedBy string) (created []models.MatchLink, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	minConfidence := req.MinConfidence
	if minConfidence == 0 {
		minConfidence = m.srv.conf.Matching.MinConfidence
	}
	if minConfidence == 0 {
		minConfidence = defaultMinConfidence
	}
	floor := decimal.NewFromFloat(minConfidence)

	from, to := common.MonthRange(req.Year, req.Month)

	txs, err := m.srv.sqlRepo.GetBankTransactionRepository().ListUnmatchedByAccountRange(ctx, req.BankAccountID, from, to)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	payments, err := m.srv.sqlRepo.GetDailyPaymentRepository().ListByFacilityRange(ctx, req.FacilityID, from, to)
	if err != nil {
		return nil, checkDatabaseError(err)
	}

	created = make([]models.MatchLink, 0)
	if confidenceExact.LessThan(floor) {
		return created, nil
	}

	mlRepo := m.srv.sqlRepo.GetMatchLinkRepository()

	consumedTx := make(map[int64]struct{}, len(txs))
	consumedPayments := make(map[int64]struct{}, len(payments))

	actualCashCheck := decimal.Zero
	actualCard := decimal.Zero

	for _, tx := range txs {
		if _, taken := consumedTx[tx.ID]; taken {
			continue
		}

		for _, p := range payments {
			if _, taken := consumedPayments[p.ID]; taken {
				continue
			}

			side, exact := exactSide(tx, p)
			if !exact {
				continue
			}

			link, createErr := mlRepo.Create(ctx, &models.CreateMatchLinkIn{
				BankTransactionID: tx.ID,
				DailyPaymentID:    p.ID,
				ConnectionType:    side,
				MatchType:         models.MatchOriginAutomatic,
				MatchConfidence:   confidenceExact,
				IsManualMatch:     false,
				MatchedBy:         matchedBy,
			})
			if createErr != nil {
				if errors.Is(createErr, common.ErrDataExist) {
					// A concurrent run got there first; retire only the
					// sides it actually linked so the run can still pair
					// whichever one is free.
					txTaken, paymentTaken := m.lostSides(ctx, tx.ID, p.ID)
					if txTaken {
						consumedTx[tx.ID] = struct{}{}
					}
					if paymentTaken {
						consumedPayments[p.ID] = struct{}{}
					}
					log.Warn(ctx, "pairing lost to a concurrent auto-match run",
						log.Int64("bankTransactionId", tx.ID),
						log.Int64("dailyPaymentId", p.ID),
					)
					if txTaken {
						break
					}
					continue
				}
				// Everything accepted before the failure stays persisted.
				m.foldProgress(ctx, req, len(created), actualCashCheck, actualCard)
				return created, checkDatabaseError(createErr)
			}

			consumedTx[tx.ID] = struct{}{}
			consumedPayments[p.ID] = struct{}{}
			created = append(created, *link)

			if side == models.ConnectionTypeCash {
				actualCashCheck = actualCashCheck.Add(tx.Amount)
			} else {
				actualCard = actualCard.Add(tx.Amount)
			}
			break
		}
	}

	m.foldProgress(ctx, req, len(created), actualCashCheck, actualCard)

	return created, nil
}

// lostSides reports which sides of a conflicted pairing the concurrent
// winner already linked. A failed lookup retires the side anyway: skipping
// a free side is recoverable on the next run, double-linking is not.
func (m *matching) lostSides(ctx context.Context, bankTransactionID, dailyPaymentID int64) (txTaken, paymentTaken bool) {
	mlRepo := m.srv.sqlRepo.GetMatchLinkRepository()

	txTaken, err := mlRepo.ExistsForBankTransaction(ctx, bankTransactionID)
	if err != nil {
		txTaken = true
	}
	paymentTaken, err = mlRepo.ExistsForDailyPayment(ctx, dailyPaymentID)
	if err != nil {
		paymentTaken = true
	}

	if !txTaken && !paymentTaken {
		// The unique index fired, so at least one side is linked; trust
		// the index over a stale read and retire both.
		return true, true
	}

	return txTaken, paymentTaken
}

// foldProgress rolls the run's accepted links into the period header of the
// bank account. Header bookkeeping never fails the run; the links themselves
// are already durable.
func (m *matching) foldProgress(ctx context.Context, req models.RunAutoMatchRequest, matched int, actualCashCheck, actualCard decimal.Decimal) {
	if matched == 0 {
		return
	}

	err := m.srv.sqlRepo.GetReconciliationRepository().ApplyMatchProgress(ctx, &models.MatchProgressIn{
		FacilityID:      req.FacilityID,
		BankAccountID:   req.BankAccountID,
		Month:           req.Month,
		Year:            req.Year,
		MatchedDelta:    matched,
		ActualCashCheck: actualCashCheck,
		ActualCard:      actualCard,
	})
	if err != nil {
		log.Warn(ctx, "failed to fold match results into the period header",
			log.Int64("facilityId", req.FacilityID),
			log.Int64("bankAccountId", req.BankAccountID),
			log.Err(err),
		)
	}
}

// exactSide reports which side of the payment, if any, the transaction
// settles to the cent on the same day. Cash wins when both sides happen to
// carry the identical total.
func exactSide(tx models.BankTransaction, p models.DailyPayment) (models.ConnectionType, bool) {
	if common.DaysBetween(tx.TransactionDate, p.PaymentDate) != 0 {
		return "", false
	}

	for _, side := range paymentSides(p) {
		if side.total.IsPositive() && tx.Amount.Equal(side.total) {
			return side.connectionType, true
		}
	}

	return "", false
}

func (m *matching) ListUnmatched(ctx context.Context, req models.ListUnmatchedRequest) (txs []models.BankTransaction, payments []models.DailyPayment, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	from, to := common.MonthRange(req.Year, req.Month)

	txs, err = m.srv.sqlRepo.GetBankTransactionRepository().ListUnmatchedByAccountRange(ctx, req.BankAccountID, from, to)
	if err != nil {
		return nil, nil, checkDatabaseError(err)
	}

	payments, err = m.srv.sqlRepo.GetDailyPaymentRepository().ListUnmatchedByFacilityRange(ctx, req.FacilityID, from, to)
	if err != nil {
		return nil, nil, checkDatabaseError(err)
	}

	return txs, payments, nil
}
