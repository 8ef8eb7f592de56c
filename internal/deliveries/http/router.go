package http

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/stashops/go-facility-recon/internal/common/authz"
	"github.com/stashops/go-facility-recon/internal/common/graceful"
	commonhttp "github.com/stashops/go-facility-recon/internal/common/http"
	"github.com/stashops/go-facility-recon/internal/common/http/middleware"
	"github.com/stashops/go-facility-recon/internal/common/log"
	"github.com/stashops/go-facility-recon/internal/common/metrics"
	"github.com/stashops/go-facility-recon/internal/config"
	"github.com/stashops/go-facility-recon/internal/deliveries/http/health"
	"github.com/stashops/go-facility-recon/internal/repositories"
	"github.com/stashops/go-facility-recon/internal/services"

	v1dashboard "github.com/stashops/go-facility-recon/internal/deliveries/http/v1/dashboard"
	v1discrepancy "github.com/stashops/go-facility-recon/internal/deliveries/http/v1/discrepancy"
	v1matching "github.com/stashops/go-facility-recon/internal/deliveries/http/v1/matching"
	v1reconciliation "github.com/stashops/go-facility-recon/internal/deliveries/http/v1/reconciliation"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type svc struct {
	e               *echo.Echo
	addr            string
	gracefulTimeout time.Duration
}

var _ graceful.ProcessStartStopper = (*svc)(nil)

func (s *svc) Start() graceful.ProcessStarter {
	return func() error {
		return s.e.Start(s.addr)
	}
}

func (s *svc) Stop() graceful.ProcessStopper {
	return func(ctx context.Context) error {
		err := s.e.Shutdown(ctx)

		if err != nil {
			log.Errorf(ctx, "[SHUTDOWN] HTTP server error: %v", err)
		} else {
			log.Info(ctx, "[SHUTDOWN] HTTP server stopped successfully")
		}

		return err
	}
}

func NewHTTPServer(
	ctx context.Context,
	conf config.Config,
	nr *newrelic.Application,
	cacheRepo repositories.CacheRepository,
	authorizer authz.Authorizer,
	matchingService services.MatchingService,
	reconciliationService services.ReconciliationService,
	discrepancyService services.DiscrepancyService,
	metrics metrics.Metrics,
) *svc {
	app := echo.New()

	svc := &svc{
		e:               app,
		addr:            fmt.Sprintf(":%d", conf.App.HTTPPort),
		gracefulTimeout: conf.App.GracefulTimeout,
	}

	m := middleware.NewMiddleware(conf, cacheRepo, authorizer)
	// options middleware
	app.Pre(echomiddleware.RemoveTrailingSlash())
	app.Use(echomiddleware.Recover())
	app.Use(m.RequestID())
	app.Use(m.Logger())

	if nr != nil {
		app.Use(nrecho.Middleware(nr))

		app.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				txn := newrelic.FromContext(c.Request().Context())
				if txn != nil {
					txn.AddAttribute("x-request-id", log.RequestIDFromContext(c.Request().Context()))
				}

				return next(c)
			}
		})
	}

	// pprof
	// Endpoint debug/pprof/
	env := config.StringToEnvironment(conf.App.Env)
	if env != config.PROD_ENV {
		pprof.Register(app)
	}

	// prometheus metrics
	app.Use(echoprometheus.NewMiddleware(conf.App.Name))
	app.GET("/metrics", echoprometheus.NewHandler())

	// apiGroup
	apiGroup := app.Group("/api")

	// health check
	health.New(apiGroup)

	// v1Group register api
	v1Group := apiGroup.Group("/v1")
	v1matching.New(v1Group, matchingService, metrics.GetMatchingPrometheus(), m)
	v1reconciliation.New(v1Group, reconciliationService, m)
	v1dashboard.New(v1Group, reconciliationService, m)
	v1discrepancy.New(v1Group, discrepancyService, m)

	// prepare an endpoint for 'Not Found'.
	app.Any("*", func(c echo.Context) error {
		errorMessage := fmt.Errorf("route '%s' does not exist in this API", c.Request().URL)
		return commonhttp.RestErrorResponse(c, nethttp.StatusNotFound, errorMessage)
	})

	return svc
}
