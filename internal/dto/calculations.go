package dto

import (
	"github.com/SscSPs/networth_tracker/internal/caches"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
)

// HistoryQueryParams selects the sample instants of a history endpoint.
type HistoryQueryParams struct {
	StartDate string `form:"startDate" binding:"required,epoch_ms"`
	EndDate   string `form:"endDate" binding:"required,epoch_ms"`
	Division  int    `form:"division" binding:"required"`
}

// BalanceHistoryResponse maps each sample instant to currency balances.
type BalanceHistoryResponse struct {
	Map map[string]map[string]string `json:"map"`
}

// ValueHistoryResponse maps each sample instant to one amount. It serves the
// net worth history and the rate history.
type ValueHistoryResponse struct {
	Map map[string]string `json:"map"`
}

// ExpensesAndIncomesQuery holds the query parameters of the default windows.
type ExpensesAndIncomesQuery struct {
	IncludeExcluded   bool    `form:"includeExcluded"`
	CurrentWeekStart  *string `form:"currentWeekStart" binding:"omitempty,epoch_ms"`
	CurrentMonthStart *string `form:"currentMonthStart" binding:"omitempty,epoch_ms"`
}

// TimeRangeRequest is one named window of a custom incomes and expenses query.
type TimeRangeRequest struct {
	Name       string  `json:"name" binding:"required"`
	AtOrAfter  *string `json:"atOrAfter" binding:"omitempty,epoch_ms"`
	AtOrBefore *string `json:"atOrBefore" binding:"omitempty,epoch_ms"`
}

// ExpensesAndIncomesRequest asks for incomes and expenses over custom windows.
type ExpensesAndIncomesRequest struct {
	IncludeExcluded bool               `json:"includeExcluded"`
	Ranges          []TimeRangeRequest `json:"ranges" binding:"required,min=1,max=32,dive"`
}

// IncomeExpenseResponse is the incomes and expenses of one window.
type IncomeExpenseResponse struct {
	Incomes  string `json:"incomes"`
	Expenses string `json:"expenses"`
}

// ToIncomeExpenseResponses converts the per-window results.
func ToIncomeExpenseResponses(results map[string]domain.IncomeExpense) map[string]IncomeExpenseResponse {
	out := make(map[string]IncomeExpenseResponse, len(results))
	for name, r := range results {
		out[name] = IncomeExpenseResponse{Incomes: r.Incomes.String(), Expenses: r.Expenses.String()}
	}
	return out
}

// ToBalanceHistoryResponse keys each sample by its epoch milliseconds.
func ToBalanceHistoryResponse(samples []domain.BalanceSample) BalanceHistoryResponse {
	res := BalanceHistoryResponse{Map: make(map[string]map[string]string, len(samples))}
	for _, s := range samples {
		balances := make(map[string]string, len(s.Balances))
		for k, v := range s.Balances {
			balances[k] = v.String()
		}
		res.Map[EpochString(s.At)] = balances
	}
	return res
}

// ToNetworthHistoryResponse keys each worth by its epoch milliseconds.
func ToNetworthHistoryResponse(samples []domain.NetworthSample) ValueHistoryResponse {
	res := ValueHistoryResponse{Map: make(map[string]string, len(samples))}
	for _, s := range samples {
		res.Map[EpochString(s.At)] = s.Worth.String()
	}
	return res
}

// ToRateHistoryResponse keys each rate by its epoch milliseconds.
func ToRateHistoryResponse(samples []domain.RateSample) ValueHistoryResponse {
	res := ValueHistoryResponse{Map: make(map[string]string, len(samples))}
	for _, s := range samples {
		res.Map[EpochString(s.At)] = s.Rate.String()
	}
	return res
}

// CacheStatsResponse reports the counters of every rate cache by name.
type CacheStatsResponse map[string]caches.Stats

// Names of the default incomes and expenses windows.
const (
	WindowTotal        = "total"
	Window30d          = "30d"
	Window7d           = "7d"
	WindowCurrentWeek  = "currentWeek"
	WindowCurrentMonth = "currentMonth"
)

// ExpensesAndIncomesResponse is the flat result of the default windows. The
// current week and month are present only when their start was supplied.
type ExpensesAndIncomesResponse struct {
	ExpensesTotal        string  `json:"expensesTotal"`
	IncomesTotal         string  `json:"incomesTotal"`
	Expenses30d          string  `json:"expenses30d"`
	Incomes30d           string  `json:"incomes30d"`
	Expenses7d           string  `json:"expenses7d"`
	Incomes7d            string  `json:"incomes7d"`
	ExpensesCurrentWeek  *string `json:"expensesCurrentWeek,omitempty"`
	IncomesCurrentWeek   *string `json:"incomesCurrentWeek,omitempty"`
	ExpensesCurrentMonth *string `json:"expensesCurrentMonth,omitempty"`
	IncomesCurrentMonth  *string `json:"incomesCurrentMonth,omitempty"`
}

// ToExpensesAndIncomesResponse flattens the default windows.
func ToExpensesAndIncomesResponse(results map[string]domain.IncomeExpense) ExpensesAndIncomesResponse {
	res := ExpensesAndIncomesResponse{
		ExpensesTotal: results[WindowTotal].Expenses.String(),
		IncomesTotal:  results[WindowTotal].Incomes.String(),
		Expenses30d:   results[Window30d].Expenses.String(),
		Incomes30d:    results[Window30d].Incomes.String(),
		Expenses7d:    results[Window7d].Expenses.String(),
		Incomes7d:     results[Window7d].Incomes.String(),
	}
	if r, ok := results[WindowCurrentWeek]; ok {
		expenses, incomes := r.Expenses.String(), r.Incomes.String()
		res.ExpensesCurrentWeek, res.IncomesCurrentWeek = &expenses, &incomes
	}
	if r, ok := results[WindowCurrentMonth]; ok {
		expenses, incomes := r.Expenses.String(), r.Incomes.String()
		res.ExpensesCurrentMonth, res.IncomesCurrentMonth = &expenses, &incomes
	}
	return res
}

// ToHistoryQuery parses the epoch bounds.
func (p HistoryQueryParams) ToHistoryQuery() (domain.HistoryQuery, error) {
	start, err := ParseEpoch(p.StartDate)
	if err != nil {
		return domain.HistoryQuery{}, err
	}
	end, err := ParseEpoch(p.EndDate)
	if err != nil {
		return domain.HistoryQuery{}, err
	}
	return domain.HistoryQuery{StartDate: start, EndDate: end, Division: p.Division}, nil
}

// ToTimeRangeQueries parses the custom windows.
func (r ExpensesAndIncomesRequest) ToTimeRangeQueries() ([]domain.TimeRangeQuery, error) {
	out := make([]domain.TimeRangeQuery, len(r.Ranges))
	for i, rng := range r.Ranges {
		after, err := ParseOptionalEpoch(rng.AtOrAfter)
		if err != nil {
			return nil, err
		}
		before, err := ParseOptionalEpoch(rng.AtOrBefore)
		if err != nil {
			return nil, err
		}
		out[i] = domain.TimeRangeQuery{Name: rng.Name, AtOrAfter: after, AtOrBefore: before}
	}
	return out, nil
}
