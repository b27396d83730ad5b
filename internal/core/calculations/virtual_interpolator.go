package calculations

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/SscSPs/networth_tracker/internal/utils/decimals"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// KeyResolver produces the interpolation key of an entry.
type KeyResolver[T any] func(ctx context.Context, entry T) (decimal.Decimal, error)

// ValueResolver produces the interpolation value of an entry. It may perform
// further lookups, including recursive rate resolution.
type ValueResolver[T any] func(ctx context.Context, entry T) (decimal.Decimal, error)

// VirtualInterpolator behaves like LinearInterpolator, but its points come from
// resolver callbacks. Keys are resolved once at construction. Values are
// resolved on first use and memoized; a value is resolved at most once even
// under concurrent queries.
type VirtualInterpolator[T any] struct {
	entries      []T
	keys         []decimal.Decimal
	resolveValue ValueResolver[T]
	arith        decimals.Arithmetic
	concurrency  int

	group  singleflight.Group
	mu     sync.RWMutex
	values map[int]decimal.Decimal
}

// NewVirtualInterpolator resolves the key of every entry concurrently and
// sorts entries ascending by key. Among entries sharing a key only the one
// supplied last is kept, so exact lookups, blends and LastValue agree. With WithEagerValues it also resolves every
// value before returning.
func NewVirtualInterpolator[T any](ctx context.Context, entries []T, keyOf KeyResolver[T], valueOf ValueResolver[T], opts ...Option) (*VirtualInterpolator[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	keys := make([]decimal.Decimal, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, entry := range entries {
		g.Go(func() error {
			k, err := keyOf(gctx, entry)
			if err != nil {
				return fmt.Errorf("resolving key of entry %d: %w", i, err)
			}
			keys[i] = k
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]].LessThan(keys[order[b]])
	})
	order = order[:lastOfEachKey(len(order), func(i int) decimal.Decimal { return keys[order[i]] }, func(dst, src int) {
		order[dst] = order[src]
	})]

	vi := &VirtualInterpolator[T]{
		entries:      make([]T, len(order)),
		keys:         make([]decimal.Decimal, len(order)),
		resolveValue: valueOf,
		arith:        decimals.NewArithmetic(o.precision),
		concurrency:  o.concurrency,
		values:       make(map[int]decimal.Decimal, len(order)),
	}
	for pos, idx := range order {
		vi.entries[pos] = entries[idx]
		vi.keys[pos] = keys[idx]
	}

	if o.eagerValues {
		all := make([]int, len(vi.entries))
		for i := range all {
			all[i] = i
		}
		if _, err := vi.valuesAt(ctx, all...); err != nil {
			return nil, err
		}
	}
	return vi, nil
}

// Len returns the number of entries kept, one per distinct key.
func (vi *VirtualInterpolator[T]) Len() int {
	return len(vi.entries)
}

// Keys returns the resolved keys in ascending order.
func (vi *VirtualInterpolator[T]) Keys() []decimal.Decimal {
	out := make([]decimal.Decimal, len(vi.keys))
	copy(out, vi.keys)
	return out
}

// GetValue returns the interpolated value at x. The boolean is false when x is
// outside the key range; the error is set when a needed value failed to resolve.
func (vi *VirtualInterpolator[T]) GetValue(ctx context.Context, x decimal.Decimal) (decimal.Decimal, bool, error) {
	lo, hi, ok := bracket(vi.keys, x)
	if !ok {
		return decimal.Zero, false, nil
	}
	if lo == hi {
		v, err := vi.valueAt(ctx, lo)
		if err != nil {
			return decimal.Zero, false, err
		}
		return v, true, nil
	}
	vals, err := vi.valuesAt(ctx, lo, hi)
	if err != nil {
		return decimal.Zero, false, err
	}
	p0 := Point{Key: vi.keys[lo], Value: vals[0]}
	p1 := Point{Key: vi.keys[hi], Value: vals[1]}
	return blend(vi.arith, p0, p1, x), true, nil
}

// FirstValue returns the value of the entry with the smallest key.
func (vi *VirtualInterpolator[T]) FirstValue(ctx context.Context) (decimal.Decimal, bool, error) {
	if len(vi.entries) == 0 {
		return decimal.Zero, false, nil
	}
	v, err := vi.valueAt(ctx, 0)
	return v, err == nil, err
}

// LastValue returns the value of the entry with the largest key.
func (vi *VirtualInterpolator[T]) LastValue(ctx context.Context) (decimal.Decimal, bool, error) {
	if len(vi.entries) == 0 {
		return decimal.Zero, false, nil
	}
	v, err := vi.valueAt(ctx, len(vi.entries)-1)
	return v, err == nil, err
}

// MaxKey returns the largest key.
func (vi *VirtualInterpolator[T]) MaxKey() (decimal.Decimal, bool) {
	if len(vi.keys) == 0 {
		return decimal.Zero, false
	}
	return vi.keys[len(vi.keys)-1], true
}

// MinKey returns the smallest key.
func (vi *VirtualInterpolator[T]) MinKey() (decimal.Decimal, bool) {
	if len(vi.keys) == 0 {
		return decimal.Zero, false
	}
	return vi.keys[0], true
}

func (vi *VirtualInterpolator[T]) memoized(i int) (decimal.Decimal, bool) {
	vi.mu.RLock()
	defer vi.mu.RUnlock()
	v, ok := vi.values[i]
	return v, ok
}

func (vi *VirtualInterpolator[T]) valueAt(ctx context.Context, i int) (decimal.Decimal, error) {
	if v, ok := vi.memoized(i); ok {
		return v, nil
	}
	res, err, _ := vi.group.Do(strconv.Itoa(i), func() (any, error) {
		// a flight that finished between the check above and Do has already stored it
		if v, ok := vi.memoized(i); ok {
			return v, nil
		}
		v, err := vi.resolveValue(ctx, vi.entries[i])
		if err != nil {
			return nil, fmt.Errorf("resolving value of entry at key %s: %w", vi.keys[i], err)
		}
		vi.mu.Lock()
		vi.values[i] = v
		vi.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return decimal.Zero, err
	}
	return res.(decimal.Decimal), nil
}

// valuesAt resolves the given indexes concurrently and returns their values in
// the same order.
func (vi *VirtualInterpolator[T]) valuesAt(ctx context.Context, idx ...int) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(idx))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(vi.concurrency)
	for pos, i := range idx {
		g.Go(func() error {
			v, err := vi.valueAt(gctx, i)
			if err != nil {
				return err
			}
			out[pos] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
