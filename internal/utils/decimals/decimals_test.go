package decimals

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRoundSignificant(t *testing.T) {
	tests := []struct {
		in     string
		digits int32
		want   string
	}{
		{"123.456", 4, "123.5"},
		{"0.00012345", 3, "0.000123"},
		{"-9.995", 3, "-10"},
		{"12345.678", 2, "12000"},
		{"1.25", 32, "1.25"},
		{"0", 5, "0"},
		{"52.932558139534883720930232558139432", 32, "52.932558139534883720930232558139"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundSignificant(d(tt.in), tt.digits).String())
		})
	}
}

func TestArithmeticDivision(t *testing.T) {
	a := NewArithmetic(32)

	assert.Equal(t, "0.33333333333333333333333333333333", a.Div(d("1"), d("3")).String())
	assert.Equal(t, "0.66666666666666666666666666666667", a.Div(d("2"), d("3")).String())
	assert.Equal(t, "0.65891472868217054263565891472868", a.Div(d("85"), d("129")).String())
	assert.Equal(t, "333333333333333333333.33333333333", a.Div(d("1000000000000000000000"), d("3")).String())
	assert.Equal(t, "0", a.Div(d("0"), d("7")).String())
	assert.Equal(t, "-0.5", a.Div(d("1"), d("-2")).String())
}

func TestArithmeticDivisionRoundsOnce(t *testing.T) {
	a := NewArithmetic(32)

	// the 33rd digit is a 4 followed by nines; rounding through a wider
	// intermediate would carry it into a 5 and round the 32nd digit up
	x := d("1.00000000000000000000000000000004999999996")
	assert.Equal(t, "1", a.Div(x, d("1")).String())
	assert.Equal(t, "-1", a.Div(x, d("-1")).String())
}

func TestArithmeticDefaultsPrecision(t *testing.T) {
	assert.Equal(t, DefaultPrecision, NewArithmetic(0).Precision)
	assert.Equal(t, int32(8), NewArithmetic(8).Precision)
	assert.Equal(t, "0.33333333", NewArithmetic(8).Div(d("1"), d("3")).String())

	var zero Arithmetic
	assert.Equal(t, "0.33333333333333333333333333333333", zero.Div(d("1"), d("3")).String())
}

func TestMapAccumulatesExactly(t *testing.T) {
	m := Map{}
	m.Add("BASE", d("100"))
	m.Sub("BASE", d("100"))
	m.Add("SEC", d("0"))

	assert.Equal(t, "0", m["BASE"].String())
	assert.Equal(t, []string{"BASE", "SEC"}, m.Keys())
	assert.Equal(t, map[string]string{"BASE": "0", "SEC": "0"}, m.Strings())
}

func TestMapCloneIsIndependent(t *testing.T) {
	m := Map{"A": d("1.5")}
	c := m.Clone()
	c.Add("A", d("1"))
	c.Add("B", d("2"))

	assert.Equal(t, "1.5", m["A"].String())
	assert.Len(t, m, 1)
	assert.Equal(t, "2.5", c["A"].String())
}

func TestReduceAndSumBy(t *testing.T) {
	type entry struct {
		currency string
		amount   string
	}
	entries := []entry{{"A", "1.1"}, {"B", "2"}, {"A", "-0.1"}}

	sum := SumBy(entries, func(e entry) string { return e.currency }, func(e entry) decimal.Decimal { return d(e.amount) })
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, sum.Strings())

	into := Map{"C": d("5")}
	out := Reduce(entries, into, func(acc Map, e entry) { acc.Sub(e.currency, d(e.amount)) })
	assert.Equal(t, map[string]string{"A": "-1", "B": "-2", "C": "5"}, out.Strings())

	merged := Map{"A": d("1")}
	merged.Merge(Map{"A": d("2"), "B": d("3")})
	assert.Equal(t, map[string]string{"A": "3", "B": "3"}, merged.Strings())
}

func TestParse(t *testing.T) {
	v, err := Parse(" 09037 ")
	require.NoError(t, err)
	assert.Equal(t, "9037", v.String())

	_, err = Parse("")
	assert.Error(t, err)
	_, err = Parse("12a")
	assert.Error(t, err)

	assert.True(t, IsDecimalString("-0.0001"))
	assert.False(t, IsDecimalString("abc"))
	assert.Equal(t, "1700000000000", FromMillis(1700000000000).String())
}
