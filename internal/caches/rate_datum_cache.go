package caches

import (
	"log/slog"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

type datumKey struct {
	OwnerID    string
	CurrencyID string
}

// RateDatumCache holds the raw datums of a currency, keyed by (owner, currency).
type RateDatumCache struct {
	lru    *expirable.LRU[datumKey, []domain.RateDatum]
	stats  counters
	logger *slog.Logger
}

// NewRateDatumCache creates an empty cache.
func NewRateDatumCache(cfg Config, logger *slog.Logger) *RateDatumCache {
	return &RateDatumCache{
		lru:    expirable.NewLRU[datumKey, []domain.RateDatum](cfg.MaxEntries, nil, cfg.TTL),
		logger: loggerOrDefault(logger),
	}
}

// Get returns a copy of the cached datums of the currency.
func (c *RateDatumCache) Get(ownerID, currencyID string) ([]domain.RateDatum, bool) {
	datums, ok := c.lru.Get(datumKey{ownerID, currencyID})
	c.stats.record(ok)
	if !ok {
		return nil, false
	}
	out := make([]domain.RateDatum, len(datums))
	copy(out, datums)
	return out, true
}

// Set stores the datums of the currency. A datum owned by anyone else aborts
// the write and nothing is cached.
func (c *RateDatumCache) Set(ownerID, currencyID string, datums []domain.RateDatum) error {
	for _, d := range datums {
		if d.OwnerID != ownerID {
			c.logger.Error("Refusing cross-owner rate datum cache write",
				slog.String("owner_id", ownerID),
				slog.String("rate_datum_id", d.RateDatumID),
				slog.String("rate_datum_owner_id", d.OwnerID))
			return &apperrors.CacheOwnerMismatchError{Cache: "rate datum cache", PartitionUser: ownerID, ItemUser: d.OwnerID}
		}
	}
	stored := make([]domain.RateDatum, len(datums))
	copy(stored, datums)
	c.lru.Add(datumKey{ownerID, currencyID}, stored)
	return nil
}

// Invalidate drops the currency's entry.
func (c *RateDatumCache) Invalidate(ownerID, currencyID string) {
	c.lru.Remove(datumKey{ownerID, currencyID})
}

// FindTwoNearest returns up to two cached datums closest to date, nearest
// first. The boolean is false when the currency is not cached.
func (c *RateDatumCache) FindTwoNearest(ownerID, currencyID string, date time.Time) ([]domain.RateDatum, bool) {
	datums, ok := c.lru.Get(datumKey{ownerID, currencyID})
	c.stats.record(ok)
	if !ok {
		return nil, false
	}
	return TwoNearest(datums, date), true
}

// TwoNearest returns up to two datums closest to date, nearest first. It scans
// once, tracking the closest and second-closest by absolute distance; on equal
// distance the datum met first stays ahead.
func TwoNearest(datums []domain.RateDatum, date time.Time) []domain.RateDatum {
	target := date.UnixMilli()
	var nearest, second *domain.RateDatum
	var nearestDist, secondDist int64
	for i := range datums {
		dist := absInt64(datums[i].Date.UnixMilli() - target)
		switch {
		case nearest == nil || dist < nearestDist:
			second, secondDist = nearest, nearestDist
			nearest, nearestDist = &datums[i], dist
		case second == nil || dist < secondDist:
			second, secondDist = &datums[i], dist
		}
	}

	out := make([]domain.RateDatum, 0, 2)
	if nearest != nil {
		out = append(out, *nearest)
	}
	if second != nil {
		out = append(out, *second)
	}
	return out
}

// Stats returns the hit and miss counters.
func (c *RateDatumCache) Stats() Stats {
	return c.stats.snapshot(c.lru.Len())
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
