// Package decimals holds the fixed-precision arithmetic and the per-currency
// accumulation helpers every valuation in the service is built on.
package decimals

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of significant digits kept by Arithmetic
// when no precision is configured.
const DefaultPrecision int32 = 32

// divisionGuardDigits are extra places used to locate a quotient's leading
// digit before the quotient is rounded once to the working precision.
const divisionGuardDigits int32 = 8

// Arithmetic performs decimal operations rounded to a fixed number of
// significant digits, so long chains of rates and interpolations stay bounded.
type Arithmetic struct {
	Precision int32
}

// NewArithmetic returns an Arithmetic with the given precision, using
// DefaultPrecision for non-positive values.
func NewArithmetic(precision int32) Arithmetic {
	if precision <= 0 {
		precision = DefaultPrecision
	}
	return Arithmetic{Precision: precision}
}

func (a Arithmetic) precision() int32 {
	if a.Precision <= 0 {
		return DefaultPrecision
	}
	return a.Precision
}

// Add returns x + y rounded to the working precision.
func (a Arithmetic) Add(x, y decimal.Decimal) decimal.Decimal {
	return RoundSignificant(x.Add(y), a.precision())
}

// Sub returns x - y rounded to the working precision.
func (a Arithmetic) Sub(x, y decimal.Decimal) decimal.Decimal {
	return RoundSignificant(x.Sub(y), a.precision())
}

// Mul returns x * y rounded to the working precision.
func (a Arithmetic) Mul(x, y decimal.Decimal) decimal.Decimal {
	return RoundSignificant(x.Mul(y), a.precision())
}

// Div returns x / y rounded once, half away from zero, to the working
// precision. y must not be zero.
func (a Arithmetic) Div(x, y decimal.Decimal) decimal.Decimal {
	if x.IsZero() {
		return decimal.Zero
	}
	p := a.precision()
	// the quotient's leading digit sits at most one place above magnitude(x)-magnitude(y)
	guarded := p - (magnitude(x) - magnitude(y)) + divisionGuardDigits
	if guarded < 0 {
		guarded = 0
	}
	estimate := x.DivRound(y, guarded)
	places := p - magnitude(estimate)
	if places < 0 {
		return RoundSignificant(estimate, p)
	}
	return RoundSignificant(x.DivRound(y, places), p)
}

// magnitude is the position of the most significant digit, counted so that
// values in [1, 10) have magnitude 1 and values in [0.1, 1) have magnitude 0.
func magnitude(d decimal.Decimal) int32 {
	return int32(d.NumDigits()) + d.Exponent()
}

// RoundSignificant rounds d half away from zero to the given number of significant digits.
func RoundSignificant(d decimal.Decimal, digits int32) decimal.Decimal {
	if d.IsZero() || digits <= 0 {
		return d
	}
	places := digits - magnitude(d)
	if places >= -d.Exponent() {
		return d
	}
	return d.Round(places)
}

// Map accumulates decimal amounts keyed by an id, usually a currency id.
type Map map[string]decimal.Decimal

// Add accumulates amount under key. The key is recorded even when amount is zero.
func (m Map) Add(key string, amount decimal.Decimal) {
	m[key] = m[key].Add(amount)
}

// Sub accumulates -amount under key.
func (m Map) Sub(key string, amount decimal.Decimal) {
	m[key] = m[key].Sub(amount)
}

// Merge accumulates every entry of other into m.
func (m Map) Merge(other Map) {
	for k, v := range other {
		m.Add(k, v)
	}
}

// Clone returns an independent copy of m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Keys returns the map keys in ascending order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Strings renders every amount as a decimal string, the wire form of balances.
func (m Map) Strings() map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v.String()
	}
	return out
}

// Reduce folds items into a Map. fn receives the accumulator and may call Add
// or Sub any number of times per item.
func Reduce[T any](items []T, into Map, fn func(acc Map, item T)) Map {
	if into == nil {
		into = Map{}
	}
	for _, item := range items {
		fn(into, item)
	}
	return into
}

// SumBy accumulates one amount per item under the key returned by keyOf.
func SumBy[T any](items []T, keyOf func(T) string, amountOf func(T) decimal.Decimal) Map {
	return Reduce(items, nil, func(acc Map, item T) {
		acc.Add(keyOf(item), amountOf(item))
	})
}

// Parse parses a decimal string as sent by clients. Empty strings and
// non-numeric input are rejected.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty decimal string")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid decimal string %q: %w", s, err)
	}
	return d, nil
}

// IsDecimalString reports whether s parses as a decimal.
func IsDecimalString(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// FromMillis converts an epoch-millisecond value into a decimal key.
func FromMillis(ms int64) decimal.Decimal {
	return decimal.NewFromInt(ms)
}
