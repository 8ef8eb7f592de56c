package job

import (
	"context"
	"errors"

	"github.com/stashops/go-facility-recon/internal/common/log"
	"github.com/stashops/go-facility-recon/internal/config"
	v1automatch "github.com/stashops/go-facility-recon/internal/deliveries/job/v1/automatch"
	"github.com/stashops/go-facility-recon/internal/repositories"
	"github.com/stashops/go-facility-recon/internal/services"

	"github.com/google/uuid"
)

type JobRoutes map[string]map[string]func(ctx context.Context, month, year int) error

type Job struct {
	Routes JobRoutes
}

func New(cfg config.Config, sqlRepo repositories.SQLRepository, srv *services.Services) *Job {
	v1group := "v1"

	jobRoutes := JobRoutes{
		v1group: v1automatch.Routes(cfg, sqlRepo, srv.Matching),
		// add other version routes
	}

	return &Job{jobRoutes}
}

func (j *Job) Start(ctx context.Context, version, name string, month, year int) {
	fn, ok := j.Routes[version][name]
	if !ok {
		log.Error(ctx, "job finished",
			log.String("job", name),
			log.String("version", version),
			log.Err(errors.New("invalid version or job name")))
		return
	}

	ctx = log.InjectRequestID(ctx, uuid.New().String())

	err := fn(ctx, month, year)
	if err != nil {
		log.Error(ctx, "job finished",
			log.String("job", name),
			log.String("version", version),
			log.Int("month", month),
			log.Int("year", year),
			log.Err(err))
		return
	}

	log.Info(ctx, "job finished",
		log.String("job", name),
		log.String("version", version),
		log.Int("month", month),
		log.Int("year", year))
}
