package caches

import (
	"log/slog"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CurrencyListCache holds every currency of an owner, partitioned by owner id.
type CurrencyListCache struct {
	lru    *expirable.LRU[string, []domain.Currency]
	stats  counters
	logger *slog.Logger
}

// NewCurrencyListCache creates an empty cache.
func NewCurrencyListCache(cfg Config, logger *slog.Logger) *CurrencyListCache {
	return &CurrencyListCache{
		lru:    expirable.NewLRU[string, []domain.Currency](cfg.MaxEntries, nil, cfg.TTL),
		logger: loggerOrDefault(logger),
	}
}

// Get returns a copy of the owner's cached currencies.
func (c *CurrencyListCache) Get(ownerID string) ([]domain.Currency, bool) {
	list, ok := c.lru.Get(ownerID)
	c.stats.record(ok)
	if !ok {
		return nil, false
	}
	out := make([]domain.Currency, len(list))
	copy(out, list)
	return out, true
}

// Set stores the owner's currencies. A currency owned by anyone else aborts
// the write and nothing is cached.
func (c *CurrencyListCache) Set(ownerID string, currencies []domain.Currency) error {
	for _, cur := range currencies {
		if cur.OwnerID != ownerID {
			err := &apperrors.CacheOwnerMismatchError{Cache: "currency list cache", PartitionUser: ownerID, ItemUser: cur.OwnerID}
			c.logger.Error("Refusing cross-owner currency cache write",
				slog.String("owner_id", ownerID),
				slog.String("currency_id", cur.CurrencyID),
				slog.String("currency_owner_id", cur.OwnerID))
			return err
		}
	}
	stored := make([]domain.Currency, len(currencies))
	copy(stored, currencies)
	c.lru.Add(ownerID, stored)
	return nil
}

// Invalidate drops the owner's entry.
func (c *CurrencyListCache) Invalidate(ownerID string) {
	c.lru.Remove(ownerID)
}

// Stats returns the hit and miss counters.
func (c *CurrencyListCache) Stats() Stats {
	return c.stats.snapshot(c.lru.Len())
}
