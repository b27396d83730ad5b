package caches

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"
)

type baseRateKey struct {
	OwnerID    string
	CurrencyID string
	DateMillis int64
}

var one = decimal.NewFromInt(1)

// BaseRateCache holds computed currency-to-base rates keyed by
// (owner, currency, instant in milliseconds).
type BaseRateCache struct {
	lru   *expirable.LRU[baseRateKey, decimal.Decimal]
	stats counters
}

// NewBaseRateCache creates an empty cache.
func NewBaseRateCache(cfg Config) *BaseRateCache {
	return &BaseRateCache{
		lru: expirable.NewLRU[baseRateKey, decimal.Decimal](cfg.MaxEntries, nil, cfg.TTL),
	}
}

// Get returns the cached rate of the currency at date.
func (c *BaseRateCache) Get(ownerID, currencyID string, date time.Time) (decimal.Decimal, bool) {
	rate, ok := c.lru.Get(baseRateKey{ownerID, currencyID, date.UnixMilli()})
	c.stats.record(ok)
	return rate, ok
}

// Set stores a computed rate. A rate of exactly 1 is not stored.
func (c *BaseRateCache) Set(ownerID, currencyID string, date time.Time, rate decimal.Decimal) {
	if rate.Equal(one) {
		return
	}
	c.lru.Add(baseRateKey{ownerID, currencyID, date.UnixMilli()}, rate)
}

// Invalidate drops every cached instant of the currency.
func (c *BaseRateCache) Invalidate(ownerID, currencyID string) {
	c.removeWhere(func(k baseRateKey) bool {
		return k.OwnerID == ownerID && k.CurrencyID == currencyID
	})
}

// InvalidateOwner drops every cached rate of the owner. Rates of one currency
// may be derived from another's datums or fallback, so writes use this.
func (c *BaseRateCache) InvalidateOwner(ownerID string) {
	c.removeWhere(func(k baseRateKey) bool {
		return k.OwnerID == ownerID
	})
}

func (c *BaseRateCache) removeWhere(match func(baseRateKey) bool) {
	for _, k := range c.lru.Keys() {
		if match(k) {
			c.lru.Remove(k)
		}
	}
}

// Stats returns the hit and miss counters.
func (c *BaseRateCache) Stats() Stats {
	return c.stats.snapshot(c.lru.Len())
}
