package services

import (
	"github.com/SscSPs/networth_tracker/internal/caches"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, cacheSet *caches.Set) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{Caches: cacheSet}

	container.User = NewUserService(repos.UserRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo, cacheSet)
	container.RateDatum = NewRateDatumService(repos.RateDatumRepo, repos.CurrencyRepo, cacheSet)

	// The resolver is shared so every valuation reads through the same caches
	container.CurrencyRate = NewCurrencyRateService(
		repos.CurrencyRepo,
		repos.RateDatumRepo,
		cacheSet,
		WithRatePrecision(cfg.DecimalWorkingPrecision),
		WithRateConcurrency(cfg.InterpolatorConcurrency),
		WithRateMaxDivision(cfg.MaxHistoryDivision),
	)
	container.Valuation = NewValuationService(
		repos,
		container.CurrencyRate,
		WithValuationPrecision(cfg.DecimalWorkingPrecision),
	)
	container.History = NewHistoryService(
		repos,
		container.Valuation,
		container.CurrencyRate,
		WithHistoryPrecision(cfg.DecimalWorkingPrecision),
		WithHistoryDivisions(cfg.TimelineDefaultDivision, cfg.MaxHistoryDivision),
	)

	return container
}
