package router

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/inkwell-hq/inkwell_backend/config"
	"github.com/inkwell-hq/inkwell_backend/internal/api/http/handler"
	"github.com/inkwell-hq/inkwell_backend/internal/api/http/middleware"
	"github.com/inkwell-hq/inkwell_backend/internal/directory"
	"github.com/inkwell-hq/inkwell_backend/internal/repo"
	"github.com/inkwell-hq/inkwell_backend/internal/service/access"
	"github.com/inkwell-hq/inkwell_backend/internal/service/availability"
	"github.com/inkwell-hq/inkwell_backend/internal/service/booking"
	"github.com/inkwell-hq/inkwell_backend/internal/service/ledger"
	"github.com/inkwell-hq/inkwell_backend/internal/service/report"
	pasetotoken "github.com/inkwell-hq/inkwell_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	DB              *repo.Client
	Redis           *redis.Client
	Directory       directory.Directory
	Gate            *access.Gate
	AvailabilitySvc availability.Service
	BookingSvc      booking.Service
	LedgerSvc       ledger.Service
	ReportSvc       report.Service
	PasetoMgr       *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	accessCtx := middleware.AccessContext(r.p.Directory, r.p.Gate)
	eligible := middleware.RequireEligible()

	availabilityH := handler.NewAvailabilityHandler(r.p.AvailabilitySvc)
	bookingH := handler.NewBookingHandler(r.p.BookingSvc)
	ledgerH := handler.NewLedgerHandler(r.p.LedgerSvc)
	reportH := handler.NewReportHandler(r.p.ReportSvc)

	api := app.Group("/api/v1", authRequired, accessCtx)

	r.registerAvailabilityRoutes(api, availabilityH, eligible)
	r.registerBookingRoutes(api, bookingH, eligible)
	r.registerLedgerRoutes(api, ledgerH, eligible)
	r.registerReportRoutes(api, reportH, eligible)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: r.ready,
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

func (r *Router) ready(c fiber.Ctx) bool {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	if err := r.p.Redis.Ping(ctx).Err(); err != nil {
		return false
	}
	if _, err := r.p.DB.AvailabilityBlock.Query().Limit(1).Count(ctx); err != nil {
		return false
	}
	return true
}
