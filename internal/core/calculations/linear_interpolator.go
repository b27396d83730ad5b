// Package calculations contains the pure algorithms behind rate resolution and
// history sampling: linear interpolation over sparse observations and floor
// lookup over ordered snapshots. Nothing here performs I/O or caching.
package calculations

import (
	"sort"

	"github.com/SscSPs/networth_tracker/internal/utils/decimals"
	"github.com/shopspring/decimal"
)

// Point is one known (key, value) pair of an interpolated series.
type Point struct {
	Key   decimal.Decimal
	Value decimal.Decimal
}

// Option configures an interpolator.
type Option func(*options)

type options struct {
	precision   int32
	concurrency int
	eagerValues bool
}

func defaultOptions() options {
	return options{precision: decimals.DefaultPrecision, concurrency: 8}
}

// WithPrecision sets the number of significant digits kept while interpolating.
func WithPrecision(digits int32) Option {
	return func(o *options) {
		if digits > 0 {
			o.precision = digits
		}
	}
}

// WithConcurrency bounds how many resolver callbacks a VirtualInterpolator runs at once.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithEagerValues makes a VirtualInterpolator resolve every value during construction.
func WithEagerValues() Option {
	return func(o *options) {
		o.eagerValues = true
	}
}

// LinearInterpolator answers values between known points by linear blending.
// It never extrapolates beyond the smallest and largest key.
type LinearInterpolator struct {
	points []Point
	keys   []decimal.Decimal
	arith  decimals.Arithmetic
}

// NewLinearInterpolator copies points and sorts them ascending by key. Among
// points sharing a key only the one supplied last is kept.
func NewLinearInterpolator(points []Point, opts ...Option) *LinearInterpolator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key.LessThan(sorted[j].Key)
	})
	sorted = sorted[:lastOfEachKey(len(sorted), func(i int) decimal.Decimal { return sorted[i].Key }, func(dst, src int) {
		sorted[dst] = sorted[src]
	})]
	keys := make([]decimal.Decimal, len(sorted))
	for i, p := range sorted {
		keys[i] = p.Key
	}
	return &LinearInterpolator{points: sorted, keys: keys, arith: decimals.NewArithmetic(o.precision)}
}

// LinearInterpolatorFromEntries builds an interpolator from arbitrary entries.
func LinearInterpolatorFromEntries[T any](entries []T, keyOf func(T) decimal.Decimal, valueOf func(T) decimal.Decimal, opts ...Option) *LinearInterpolator {
	points := make([]Point, len(entries))
	for i, e := range entries {
		points[i] = Point{Key: keyOf(e), Value: valueOf(e)}
	}
	return NewLinearInterpolator(points, opts...)
}

// Len returns the number of distinct keys.
func (li *LinearInterpolator) Len() int {
	return len(li.points)
}

// Points returns the sorted points.
func (li *LinearInterpolator) Points() []Point {
	out := make([]Point, len(li.points))
	copy(out, li.points)
	return out
}

// GetValue returns the interpolated value at x, or false when x lies outside
// the known key range.
func (li *LinearInterpolator) GetValue(x decimal.Decimal) (decimal.Decimal, bool) {
	lo, hi, ok := bracket(li.keys, x)
	if !ok {
		return decimal.Zero, false
	}
	if lo == hi {
		return li.points[lo].Value, true
	}
	return blend(li.arith, li.points[lo], li.points[hi], x), true
}

// lastOfEachKey compacts a key-sorted sequence of n elements in place so that
// each run of equal keys is represented by its last element. move copies
// element src to position dst. It returns the compacted length.
func lastOfEachKey(n int, keyAt func(i int) decimal.Decimal, move func(dst, src int)) int {
	out := 0
	for i := 0; i < n; i++ {
		if i+1 < n && keyAt(i+1).Equal(keyAt(i)) {
			continue
		}
		if out != i {
			move(out, i)
		}
		out++
	}
	return out
}

// bracket locates x in ascending keys. It returns the same index twice when x
// equals a key, the two neighbouring indexes when x falls strictly between
// keys, and ok=false when x is outside [keys[0], keys[n-1]].
func bracket(keys []decimal.Decimal, x decimal.Decimal) (lo, hi int, ok bool) {
	n := len(keys)
	if n == 0 || x.LessThan(keys[0]) || x.GreaterThan(keys[n-1]) {
		return 0, 0, false
	}
	i := sort.Search(n, func(i int) bool { return keys[i].GreaterThanOrEqual(x) })
	if keys[i].Equal(x) {
		return i, i, true
	}
	return i - 1, i, true
}

// blend computes v1 + ((x-k1)/(k0-k1)) * (v0-v1), each step rounded to the
// working precision. The blend is anchored at the later point p1.
func blend(arith decimals.Arithmetic, p0, p1 Point, x decimal.Decimal) decimal.Decimal {
	if p0.Value.Equal(p1.Value) {
		return p1.Value
	}
	ratio := arith.Div(x.Sub(p1.Key), p0.Key.Sub(p1.Key))
	return arith.Add(p1.Value, arith.Mul(ratio, arith.Sub(p0.Value, p1.Value)))
}
