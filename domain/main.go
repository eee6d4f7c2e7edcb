package domain

import (
	"github.com/evervow/leads-api/config"
	"github.com/evervow/leads-api/domain/monitoring"
	"github.com/evervow/leads-api/domain/vendor"
	"github.com/evervow/leads-api/domain/waitlist"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	appConfig.RouterService.MountController(monitoring.NewMonitoringController(appConfig.DB, appConfig.Logger, appConfig.Cache))
	appConfig.RouterService.MountController(waitlist.NewWaitlistController(appConfig.DB, appConfig.Logger))
	appConfig.RouterService.MountController(vendor.NewVendorController(appConfig.DB, appConfig.Logger))
}
