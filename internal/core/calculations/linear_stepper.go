package calculations

import (
	"cmp"
	"sort"
)

// Step is one (key, value) pair of a LinearStepper.
type Step[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// LinearStepper is a step function: a lookup answers with the value recorded at
// the greatest key not above the query.
type LinearStepper[K cmp.Ordered, V any] struct {
	steps []Step[K, V]
}

// NewLinearStepper copies steps and sorts them ascending by key. The sort is
// stable, so among steps sharing a key the one supplied last wins a lookup.
func NewLinearStepper[K cmp.Ordered, V any](steps []Step[K, V]) *LinearStepper[K, V] {
	sorted := make([]Step[K, V], len(steps))
	copy(sorted, steps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})
	return &LinearStepper[K, V]{steps: sorted}
}

// LinearStepperFromEntries builds a stepper from arbitrary entries.
func LinearStepperFromEntries[T any, K cmp.Ordered, V any](entries []T, keyOf func(T) K, valueOf func(T) V) *LinearStepper[K, V] {
	steps := make([]Step[K, V], len(entries))
	for i, e := range entries {
		steps[i] = Step[K, V]{Key: keyOf(e), Value: valueOf(e)}
	}
	return NewLinearStepper(steps)
}

// Len returns the number of steps.
func (s *LinearStepper[K, V]) Len() int {
	return len(s.steps)
}

// GetValue returns the value at the greatest key <= x, or def when x is below
// every key.
func (s *LinearStepper[K, V]) GetValue(x K, def V) V {
	// first index whose key is strictly greater than x
	i := sort.Search(len(s.steps), func(i int) bool { return s.steps[i].Key > x })
	if i == 0 {
		return def
	}
	return s.steps[i-1].Value
}
