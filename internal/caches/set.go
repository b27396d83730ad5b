package caches

import "log/slog"

// Set bundles the three caches shared by the currency, rate datum and
// valuation services.
type Set struct {
	Currencies *CurrencyListCache
	RateDatums *RateDatumCache
	BaseRates  *BaseRateCache
}

// NewSet creates the three caches.
func NewSet(currencies, rateDatums, baseRates Config, logger *slog.Logger) *Set {
	return &Set{
		Currencies: NewCurrencyListCache(currencies, logger),
		RateDatums: NewRateDatumCache(rateDatums, logger),
		BaseRates:  NewBaseRateCache(baseRates),
	}
}

// Stats reports every cache's counters by name.
func (s *Set) Stats() map[string]Stats {
	return map[string]Stats{
		"currencyList": s.Currencies.Stats(),
		"rateDatum":    s.RateDatums.Stats(),
		"baseRate":     s.BaseRates.Stats(),
	}
}
