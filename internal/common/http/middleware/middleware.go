package middleware

import (
	"github.com/stashops/go-facility-recon/internal/common/authz"
	"github.com/stashops/go-facility-recon/internal/config"
	"github.com/stashops/go-facility-recon/internal/repositories"
)

type AppMiddleware struct {
	conf       config.Config
	cacheRepo  repositories.CacheRepository
	authorizer authz.Authorizer
}

func NewMiddleware(
	conf config.Config,
	cacheRepo repositories.CacheRepository,
	authorizer authz.Authorizer) AppMiddleware {
	return AppMiddleware{
		conf:       conf,
		cacheRepo:  cacheRepo,
		authorizer: authorizer,
	}
}
