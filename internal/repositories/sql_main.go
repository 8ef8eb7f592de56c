package repositories

import (
	"context"
	"database/sql"

	"github.com/stashops/go-facility-recon/internal/config"
)

type sqlRepo struct {
	r *Repository
}

type Repository struct {
	dbWrite *sql.DB
	dbRead  *sql.DB
	config  config.Config
	common  sqlRepo

	fr  *facilityRepository
	bar *bankAccountRepository
	btr *bankTransactionRepository
	dpr *dailyPaymentRepository
	mlr *matchLinkRepository
	rr  *reconciliationRepository
	dr  *discrepancyRepository
}

// SQLRepository is the store surface the services depend on. Sub-repositories
// are grouped under one contract so a single mock covers the whole store.
type SQLRepository interface {
	GetFacilityRepository() FacilityRepository
	GetBankAccountRepository() BankAccountRepository
	GetBankTransactionRepository() BankTransactionRepository
	GetDailyPaymentRepository() DailyPaymentRepository
	GetMatchLinkRepository() MatchLinkRepository
	GetReconciliationRepository() ReconciliationRepository
	GetDiscrepancyRepository() DiscrepancyRepository

	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

var _ SQLRepository = (*Repository)(nil)

func NewSQLRepository(dbWrite *sql.DB, dbRead *sql.DB, cfg config.Config) *Repository {
	rtx := &Repository{
		dbWrite: dbWrite,
		dbRead:  dbRead,
		config:  cfg,
	}
	rtx.common.r = rtx
	rtx.fr = (*facilityRepository)(&rtx.common)
	rtx.bar = (*bankAccountRepository)(&rtx.common)
	rtx.btr = (*bankTransactionRepository)(&rtx.common)
	rtx.dpr = (*dailyPaymentRepository)(&rtx.common)
	rtx.mlr = (*matchLinkRepository)(&rtx.common)
	rtx.rr = (*reconciliationRepository)(&rtx.common)
	rtx.dr = (*discrepancyRepository)(&rtx.common)

	return rtx
}

func (r *Repository) GetFacilityRepository() FacilityRepository {
	return r.fr
}

func (r *Repository) GetBankAccountRepository() BankAccountRepository {
	return r.bar
}

func (r *Repository) GetBankTransactionRepository() BankTransactionRepository {
	return r.btr
}

func (r *Repository) GetDailyPaymentRepository() DailyPaymentRepository {
	return r.dpr
}

func (r *Repository) GetMatchLinkRepository() MatchLinkRepository {
	return r.mlr
}

func (r *Repository) GetReconciliationRepository() ReconciliationRepository {
	return r.rr
}

func (r *Repository) GetDiscrepancyRepository() DiscrepancyRepository {
	return r.dr
}
