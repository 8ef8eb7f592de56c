package automatch

import (
	"context"
	"fmt"

	"github.com/stashops/go-facility-recon/internal/common"
	"github.com/stashops/go-facility-recon/internal/common/log"
	"github.com/stashops/go-facility-recon/internal/common/retry"
	"github.com/stashops/go-facility-recon/internal/config"
	"github.com/stashops/go-facility-recon/internal/models"
	"github.com/stashops/go-facility-recon/internal/repositories"
	"github.com/stashops/go-facility-recon/internal/services"

	"golang.org/x/sync/errgroup"
)

const defaultJobConcurrency = 4

// matchedBy recorded on pairings accepted by the batch job.
const jobRunner = "automatch-job"

type automatchHandler struct {
	conf        config.Config
	sqlRepo     repositories.SQLRepository
	matchingSrv services.MatchingService
	retryer     retry.Retryer
}

func Routes(cfg config.Config, sqlRepo repositories.SQLRepository, ms services.MatchingService) map[string]func(ctx context.Context, month, year int) error {
	handler := automatchHandler{
		conf:        cfg,
		sqlRepo:     sqlRepo,
		matchingSrv: ms,
		retryer:     retry.NewExponentialBackOff(&cfg.ExponentialBackoff),
	}
	return map[string]func(ctx context.Context, month, year int) error{
		"RunPortfolioAutoMatch": handler.RunPortfolioAutoMatch,
		// add more job here
	}
}

// RunPortfolioAutoMatch runs automatic matching for every bank account of
// every facility for one period. Facilities run in parallel up to the
// configured bound; a failing facility does not stop the others' in-flight
// work, but the job reports the first error.
func (ah *automatchHandler) RunPortfolioAutoMatch(ctx context.Context, month, year int) error {
	if !common.ValidPeriod(month, year) {
		return common.ErrInvalidPeriod
	}

	facilities, err := ah.sqlRepo.GetFacilityRepository().GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list facilities: %w", err)
	}

	concurrency := ah.conf.Matching.JobConcurrency
	if concurrency <= 0 {
		concurrency = defaultJobConcurrency
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	for _, facility := range facilities {
		facility := facility
		eg.Go(func() error {
			return ah.runFacility(egCtx, facility, month, year)
		})
	}

	return eg.Wait()
}

func (ah *automatchHandler) runFacility(ctx context.Context, facility models.Facility, month, year int) error {
	accounts, err := ah.sqlRepo.GetBankAccountRepository().ListByFacility(ctx, facility.ID)
	if err != nil {
		return fmt.Errorf("failed to list bank accounts of facility %d: %w", facility.ID, err)
	}

	accepted := 0
	for _, account := range accounts {
		req := models.RunAutoMatchRequest{
			FacilityID:    facility.ID,
			BankAccountID: account.ID,
			Month:         month,
			Year:          year,
		}

		var created []models.MatchLink
		err = ah.retryer.Retry(ctx, func() error {
			var runErr error
			created, runErr = ah.matchingSrv.RunAutoMatch(ctx, req, jobRunner)
			return runErr
		})
		if err != nil {
			return fmt.Errorf("auto match failed for account %d of facility %d: %w", account.ID, facility.ID, err)
		}

		accepted += len(created)
	}

	log.Info(ctx, "facility auto match done",
		log.Int64("facility_id", facility.ID),
		log.Int("bank_accounts", len(accounts)),
		log.Int("matches_accepted", accepted))

	return nil
}
