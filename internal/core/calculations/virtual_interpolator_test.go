package calculations

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observation struct {
	at     string
	amount string
	// factor stands in for a further lookup, e.g. the rate of the reference currency
	factor string
}

type countingResolver struct {
	keyCalls   atomic.Int32
	valueCalls sync.Map // key string -> *atomic.Int32
	delay      time.Duration
}

func (r *countingResolver) key(_ context.Context, o observation) (decimal.Decimal, error) {
	r.keyCalls.Add(1)
	return dec(o.at), nil
}

func (r *countingResolver) value(_ context.Context, o observation) (decimal.Decimal, error) {
	c, _ := r.valueCalls.LoadOrStore(o.at, new(atomic.Int32))
	c.(*atomic.Int32).Add(1)
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
	return dec(o.amount).Mul(dec(o.factor)), nil
}

func (r *countingResolver) callsFor(at string) int32 {
	c, ok := r.valueCalls.Load(at)
	if !ok {
		return 0
	}
	return c.(*atomic.Int32).Load()
}

func TestVirtualInterpolator_MatchesExactInterpolator(t *testing.T) {
	ctx := context.Background()
	obs := []observation{
		{"1.427", "44.7", "2"},
		{"-0.725", "21.7", "1"},
		{"-0.08", "6.91", "10"},
	}
	r := &countingResolver{}
	vi, err := NewVirtualInterpolator(ctx, obs, r.key, r.value)
	require.NoError(t, err)
	assert.EqualValues(t, 3, r.keyCalls.Load())

	exact := NewLinearInterpolator(points("-0.725", "21.7", "-0.08", "69.1", "1.427", "89.4"))
	for _, x := range []string{"-1", "-0.725", "-0.3", "0.1", "1", "1.427", "1.5"} {
		want, wantOK := exact.GetValue(dec(x))
		got, ok, err := vi.GetValue(ctx, dec(x))
		require.NoError(t, err)
		assert.Equal(t, wantOK, ok, x)
		if wantOK {
			assert.Equal(t, want.String(), got.String(), x)
		}
	}

	minKey, ok := vi.MinKey()
	assert.True(t, ok)
	assert.Equal(t, "-0.725", minKey.String())
	maxKey, ok := vi.MaxKey()
	assert.True(t, ok)
	assert.Equal(t, "1.427", maxKey.String())
	assert.Len(t, vi.Keys(), 3)
}

func TestVirtualInterpolator_ResolvesLazilyAndOnce(t *testing.T) {
	ctx := context.Background()
	obs := []observation{{"0", "2", "1"}, {"1", "1", "1"}, {"2", "4", "1"}}
	r := &countingResolver{delay: 5 * time.Millisecond}
	vi, err := NewVirtualInterpolator(ctx, obs, r.key, r.value, WithConcurrency(4))
	require.NoError(t, err)

	// nothing resolved until queried
	assert.Zero(t, r.callsFor("0"))
	assert.Zero(t, r.callsFor("1"))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, ok, err := vi.GetValue(ctx, dec("0.5"))
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "1.5", v.String())
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, r.callsFor("0"))
	assert.EqualValues(t, 1, r.callsFor("1"))
	assert.Zero(t, r.callsFor("2"), "values outside the bracket stay unresolved")

	last, ok, err := vi.LastValue(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "4", last.String())
	first, ok, err := vi.FirstValue(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2", first.String())
	assert.EqualValues(t, 1, r.callsFor("0"))
}

func TestVirtualInterpolator_EagerValues(t *testing.T) {
	ctx := context.Background()
	obs := []observation{{"0", "2", "1"}, {"1", "1", "1"}, {"2", "4", "1"}}
	r := &countingResolver{}
	vi, err := NewVirtualInterpolator(ctx, obs, r.key, r.value, WithEagerValues())
	require.NoError(t, err)

	for _, at := range []string{"0", "1", "2"} {
		assert.EqualValues(t, 1, r.callsFor(at))
	}
	v, ok, err := vi.GetValue(ctx, dec("1.5"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2.5", v.String())
	assert.EqualValues(t, 1, r.callsFor("1"))
}

func TestVirtualInterpolator_Errors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	obs := []observation{{"0", "2", "1"}, {"1", "1", "1"}}

	_, err := NewVirtualInterpolator(ctx, obs,
		func(context.Context, observation) (decimal.Decimal, error) { return decimal.Zero, boom },
		func(context.Context, observation) (decimal.Decimal, error) { return decimal.Zero, nil },
	)
	assert.ErrorIs(t, err, boom)

	var failures atomic.Int32
	vi, err := NewVirtualInterpolator(ctx, obs,
		func(_ context.Context, o observation) (decimal.Decimal, error) { return dec(o.at), nil },
		func(_ context.Context, o observation) (decimal.Decimal, error) {
			if o.at == "1" && failures.Add(1) == 1 {
				return decimal.Zero, boom
			}
			return dec(o.amount), nil
		},
	)
	require.NoError(t, err)

	_, _, err = vi.GetValue(ctx, dec("0.5"))
	assert.ErrorIs(t, err, boom)

	// failures are not memoized
	v, ok, err := vi.GetValue(ctx, dec("0.5"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1.5", v.String())
}

func TestVirtualInterpolator_Empty(t *testing.T) {
	ctx := context.Background()
	r := &countingResolver{}
	vi, err := NewVirtualInterpolator[observation](ctx, nil, r.key, r.value)
	require.NoError(t, err)

	_, ok, err := vi.GetValue(ctx, dec("1"))
	assert.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = vi.LastValue(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)
	_, ok = vi.MaxKey()
	assert.False(t, ok)
	assert.Equal(t, 0, vi.Len())
}

func TestVirtualInterpolator_DuplicateKeysLastSuppliedWins(t *testing.T) {
	ctx := context.Background()
	obs := []observation{
		{"10", "5", "1"},
		{"0", "1", "1"},
		{"20", "9", "1"},
		{"10", "7", "1"},
		{"20", "11", "1"},
	}
	r := &countingResolver{}
	vi, err := NewVirtualInterpolator(ctx, obs, r.key, r.value)
	require.NoError(t, err)

	assert.Equal(t, 3, vi.Len())
	keys := vi.Keys()
	require.Len(t, keys, 3)
	for i, want := range []string{"0", "10", "20"} {
		assert.Equal(t, want, keys[i].String())
	}

	last, ok, err := vi.LastValue(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "11", last.String())

	for x, want := range map[string]string{"10": "7", "20": "11", "5": "4", "15": "9"} {
		v, ok, err := vi.GetValue(ctx, dec(x))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, v.String(), "x=%s", x)
	}
	// only the kept entry of each key is ever resolved
	assert.EqualValues(t, 1, r.callsFor("10"))
	assert.EqualValues(t, 1, r.callsFor("20"))
}
