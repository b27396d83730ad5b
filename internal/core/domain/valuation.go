package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryQuery selects Division evenly spaced sample instants between
// StartDate and EndDate inclusive.
type HistoryQuery struct {
	StartDate time.Time
	EndDate   time.Time
	Division  int
}

// BalanceSample is the user-wide per-currency balance at one sample instant.
type BalanceSample struct {
	At       time.Time                  `json:"at"`
	Balances map[string]decimal.Decimal `json:"balances"`
}

// NetworthSample is the base-currency worth of all balances at one sample instant.
type NetworthSample struct {
	At    time.Time       `json:"at"`
	Worth decimal.Decimal `json:"worth"`
}

// RateSample is a currency's rate to base at one sample instant.
type RateSample struct {
	At   time.Time       `json:"at"`
	Rate decimal.Decimal `json:"rate"`
}

// TimelineQuery is a HistoryQuery whose bounds may be left for the engine to
// default. A zero Division means the configured default.
type TimelineQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
	Division  int
}

// ContainerTimelinePoint is one container's balance and worth at one sample instant.
type ContainerTimelinePoint struct {
	At      time.Time                  `json:"at"`
	Balance map[string]decimal.Decimal `json:"containerBalance"`
	Worth   decimal.Decimal            `json:"containerWorth"`
}

// ContainerTimeline maps a container id to its samples in chronological order.
type ContainerTimeline map[string][]ContainerTimelinePoint

// RangeBound names the two forms of bound a TimeRangeQuery accepts.
type RangeBound string

const (
	AtOrAfter  RangeBound = "AT_OR_AFTER"
	AtOrBefore RangeBound = "AT_OR_BEFORE"
)

// TimeRangeQuery is a named window over transaction dates. A nil bound is open.
type TimeRangeQuery struct {
	Name       string
	AtOrAfter  *time.Time
	AtOrBefore *time.Time
}

// Contains reports whether t falls inside the window, bounds included.
func (q TimeRangeQuery) Contains(t time.Time) bool {
	if q.AtOrAfter != nil && t.Before(*q.AtOrAfter) {
		return false
	}
	if q.AtOrBefore != nil && t.After(*q.AtOrBefore) {
		return false
	}
	return true
}

// IncomeExpense accumulates positive value changes as incomes and non-positive
// ones as expenses, both as non-negative magnitudes.
type IncomeExpense struct {
	Incomes  decimal.Decimal `json:"incomes"`
	Expenses decimal.Decimal `json:"expenses"`
}

// IncomeExpenseOptions tunes IncomesAndExpenses.
type IncomeExpenseOptions struct {
	IncludeExcluded bool
}
