package app

import (
	"go.uber.org/fx"

	"github.com/inkwell-hq/inkwell_backend/config"
	"github.com/inkwell-hq/inkwell_backend/internal/directory"
	"github.com/inkwell-hq/inkwell_backend/internal/repo"
	"github.com/inkwell-hq/inkwell_backend/internal/service/access"
	"github.com/inkwell-hq/inkwell_backend/internal/service/availability"
	"github.com/inkwell-hq/inkwell_backend/internal/service/booking"
	"github.com/inkwell-hq/inkwell_backend/internal/service/ledger"
	"github.com/inkwell-hq/inkwell_backend/internal/service/report"
	pasetotoken "github.com/inkwell-hq/inkwell_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAccessGate,
		ProvideAvailabilityService,
		ProvideBookingService,
		ProvideLedgerService,
		ProvideReportService,
		ProvidePasetoManager,
	),
)

func ProvideAccessGate() *access.Gate {
	return access.NewGate()
}

func ProvideAvailabilityService(db *repo.Client) availability.Service {
	return availability.New(db)
}

func ProvideBookingService(db *repo.Client, cfg *config.Config) booking.Service {
	return booking.New(db, cfg.Server.DefaultRegion)
}

func ProvideLedgerService(db *repo.Client) ledger.Service {
	return ledger.New(db)
}

func ProvideReportService(db *repo.Client, dir directory.Directory) report.Service {
	return report.New(db, dir)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
