// Package caches holds the TTL-bound stores used by rate resolution: currency
// lists, raw rate datums and computed currency-to-base rates. Each cache is an
// explicit object handed to the services that use it.
package caches

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// Config sizes a cache. A zero MaxEntries means unbounded; a zero TTL means
// entries never expire.
type Config struct {
	TTL        time.Duration
	MaxEntries int
}

// Stats is a snapshot of a cache's hit and miss counters.
type Stats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Size   int    `json:"size"`
}

type counters struct {
	hits   atomic.Uint64
	misses atomic.Uint64
}

func (c *counters) record(hit bool) {
	if hit {
		c.hits.Add(1)
		return
	}
	c.misses.Add(1)
}

func (c *counters) snapshot(size int) Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load(), Size: size}
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
