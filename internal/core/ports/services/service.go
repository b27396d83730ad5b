package services

import "github.com/SscSPs/networth_tracker/internal/caches"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	User         UserReaderSvc
	Currency     CurrencySvcFacade
	CurrencyRate CurrencyRateSvc
	RateDatum    RateDatumSvcFacade
	Valuation    ValuationSvc
	History      HistorySvc
	Caches       *caches.Set
}
