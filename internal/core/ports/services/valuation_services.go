package services

import (
	"context"
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ValuationSvc derives container balances and converts them to base currency.
type ValuationSvc interface {
	// ContainerBalances folds every fragment touching the containers into
	// per-container, per-currency balances.
	ContainerBalances(ctx context.Context, ownerID string, containerIDs []string) (map[string]map[string]decimal.Decimal, error)

	// ContainersWorth values each container's balances in base currency. A nil
	// instant means now.
	ContainersWorth(ctx context.Context, ownerID string, containerIDs []string, at *time.Time) (map[string]decimal.Decimal, error)

	// UserNetWorth is the base worth of all of the owner's containers. A nil
	// instant means now.
	UserNetWorth(ctx context.Context, ownerID string, at *time.Time) (decimal.Decimal, error)

	// WorthOfBalances converts a per-currency balance into base currency.
	WorthOfBalances(ctx context.Context, ownerID string, balances map[string]decimal.Decimal, at time.Time) (decimal.Decimal, error)
}

// HistorySvc replays transactions over time.
type HistorySvc interface {
	// BalanceHistory samples the owner's per-currency balances.
	BalanceHistory(ctx context.Context, ownerID string, query domain.HistoryQuery) ([]domain.BalanceSample, error)

	// NetworthHistory samples the owner's base-currency worth.
	NetworthHistory(ctx context.Context, ownerID string, query domain.HistoryQuery) ([]domain.NetworthSample, error)

	// ContainerTimeline samples the balance and worth of each container.
	ContainerTimeline(ctx context.Context, ownerID string, containerIDs []string, query domain.TimelineQuery) (domain.ContainerTimeline, error)

	// IncomesAndExpenses totals value changes per named window.
	IncomesAndExpenses(ctx context.Context, ownerID string, ranges []domain.TimeRangeQuery, opts domain.IncomeExpenseOptions) (map[string]domain.IncomeExpense, error)

	// TxnIncreaseInValue is the base-currency value a transaction adds at its date.
	TxnIncreaseInValue(ctx context.Context, ownerID string, txn domain.Transaction) (decimal.Decimal, error)
}
