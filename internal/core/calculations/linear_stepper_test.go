package calculations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearStepper_FloorSemantics(t *testing.T) {
	s := NewLinearStepper([]Step[int64, string]{
		{Key: 30, Value: "c"},
		{Key: 10, Value: "a"},
		{Key: 20, Value: "b"},
	})

	tests := []struct {
		x    int64
		want string
	}{
		{5, "default"},
		{9, "default"},
		{10, "a"},
		{15, "a"},
		{20, "b"},
		{29, "b"},
		{30, "c"},
		{1000, "c"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.GetValue(tt.x, "default"), "x=%d", tt.x)
	}
	assert.Equal(t, 3, s.Len())
}

func TestLinearStepper_DuplicateKeysLastSuppliedWins(t *testing.T) {
	s := NewLinearStepper([]Step[int64, string]{
		{Key: 10, Value: "first"},
		{Key: 20, Value: "other"},
		{Key: 10, Value: "second"},
		{Key: 10, Value: "third"},
	})

	assert.Equal(t, "third", s.GetValue(10, ""))
	assert.Equal(t, "third", s.GetValue(19, ""))
	assert.Equal(t, "other", s.GetValue(20, ""))
}

type timelineEntry struct {
	at  int64
	bal map[string]string
}

type snapshot struct{ balances map[string]string }

func TestLinearStepper_StructuredValues(t *testing.T) {
	entries := []timelineEntry{
		{100, map[string]string{"BASE": "1"}},
		{200, map[string]string{"BASE": "3", "SEC": "2"}},
	}
	s := LinearStepperFromEntries(entries,
		func(e timelineEntry) int64 { return e.at },
		func(e timelineEntry) snapshot { return snapshot{balances: e.bal} },
	)

	empty := snapshot{balances: map[string]string{}}
	assert.Equal(t, empty, s.GetValue(99, empty))
	assert.Equal(t, "1", s.GetValue(150, empty).balances["BASE"])
	assert.Equal(t, "2", s.GetValue(250, empty).balances["SEC"])
}

func TestLinearStepper_Empty(t *testing.T) {
	s := NewLinearStepper[float64, int](nil)
	assert.Equal(t, -1, s.GetValue(3.5, -1))
}
