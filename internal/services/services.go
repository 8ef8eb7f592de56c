package services

import (
	"github.com/stashops/go-facility-recon/internal/config"
	"github.com/stashops/go-facility-recon/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo   repositories.SQLRepository
	cacheRepo repositories.CacheRepository

	common service

	Matching       *matching
	Reconciliation *reconciliation
	Discrepancy    *discrepancy
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
) *Services {
	srv := &Services{
		conf:      conf,
		sqlRepo:   sqlRepo,
		cacheRepo: cacheRepo,
	}
	srv.common.srv = srv
	srv.Matching = (*matching)(&srv.common)
	srv.Reconciliation = (*reconciliation)(&srv.common)
	srv.Discrepancy = (*discrepancy)(&srv.common)

	return srv
}
