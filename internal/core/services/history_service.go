package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/calculations"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/utils/decimals"
	"github.com/shopspring/decimal"
)

// historyService replays the owner's transactions in chronological order to
// answer questions about past balances and value changes.
type historyService struct {
	BaseService
	userRepo        portsrepo.UserReader
	containerRepo   portsrepo.ContainerReader
	txnRepo         portsrepo.TransactionReader
	valuation       portssvc.ValuationSvc
	rates           portssvc.CurrencyRateSvc
	arith           decimals.Arithmetic
	maxDivision     int
	defaultDivision int
	now             func() time.Time
}

// HistoryOption is a functional option for configuring the history service
type HistoryOption func(*historyService)

// WithHistoryPrecision sets the number of significant digits kept while summing value changes.
func WithHistoryPrecision(precision int32) HistoryOption {
	return func(s *historyService) {
		s.arith = decimals.NewArithmetic(precision)
	}
}

// WithHistoryDivisions sets the default timeline division and the division cap.
func WithHistoryDivisions(defaultDivision, maxDivision int) HistoryOption {
	return func(s *historyService) {
		if defaultDivision >= 2 {
			s.defaultDivision = defaultDivision
		}
		s.maxDivision = maxDivision
	}
}

// WithHistoryClock replaces time.Now as the default timeline end.
func WithHistoryClock(now func() time.Time) HistoryOption {
	return func(s *historyService) {
		s.now = now
	}
}

// NewHistoryService creates the history service.
func NewHistoryService(repos portsrepo.RepositoryProvider, valuation portssvc.ValuationSvc, rates portssvc.CurrencyRateSvc, options ...HistoryOption) portssvc.HistorySvc {
	svc := &historyService{
		userRepo:        repos.UserRepo,
		containerRepo:   repos.ContainerRepo,
		txnRepo:         repos.TransactionRepo,
		valuation:       valuation,
		rates:           rates,
		arith:           decimals.NewArithmetic(decimals.DefaultPrecision),
		defaultDivision: 500,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.HistorySvc = (*historyService)(nil)

func (s *historyService) BalanceHistory(ctx context.Context, ownerID string, query domain.HistoryQuery) ([]domain.BalanceSample, error) {
	instants, err := sampleInstants(query, s.maxDivision)
	if err != nil {
		return nil, err
	}
	if _, err := ensureUserExists(ctx, s.userRepo, ownerID); err != nil {
		return nil, err
	}

	end := query.EndDate
	txns, err := s.chronologicalTxns(ctx, ownerID, portsrepo.TransactionFilter{AtOrBefore: &end})
	if err != nil {
		return nil, err
	}

	out := make([]domain.BalanceSample, len(instants))
	balances := decimals.Map{}
	next := 0
	for i, at := range instants {
		for next < len(txns) && !txns[next].CreationDate.After(at) {
			applyFragments(balances, txns[next])
			next++
		}
		out[i] = domain.BalanceSample{At: at, Balances: balances.Clone()}
	}
	return out, nil
}

func (s *historyService) NetworthHistory(ctx context.Context, ownerID string, query domain.HistoryQuery) ([]domain.NetworthSample, error) {
	balances, err := s.BalanceHistory(ctx, ownerID, query)
	if err != nil {
		return nil, err
	}

	out := make([]domain.NetworthSample, len(balances))
	for i, sample := range balances {
		worth, err := s.valuation.WorthOfBalances(ctx, ownerID, sample.Balances, sample.At)
		if err != nil {
			s.logUnexpected(ctx, err, "Failed to value balance sample", slog.Time("at", sample.At))
			return nil, fmt.Errorf("networth at %d: %w", sample.At.UnixMilli(), err)
		}
		out[i] = domain.NetworthSample{At: sample.At, Worth: worth}
	}
	return out, nil
}

// ContainerTimeline samples each container independently. Without a start the
// earliest transaction touching any requested container is used; without an
// end, now.
func (s *historyService) ContainerTimeline(ctx context.Context, ownerID string, containerIDs []string, query domain.TimelineQuery) (domain.ContainerTimeline, error) {
	if _, err := ensureUserExists(ctx, s.userRepo, ownerID); err != nil {
		return nil, err
	}
	ids, err := ensureContainersExist(ctx, s.containerRepo, ownerID, containerIDs)
	if err != nil {
		return nil, err
	}

	txns, err := s.chronologicalTxns(ctx, ownerID, portsrepo.TransactionFilter{ContainerIDs: ids})
	if err != nil {
		return nil, err
	}

	steppers := make(map[string]*calculations.LinearStepper[int64, decimals.Map], len(ids))
	for _, id := range ids {
		steppers[id] = containerStepper(id, txns)
	}
	var earliest *time.Time
	requested := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		requested[id] = struct{}{}
	}
	for i := range txns {
		if txns[i].TouchesAny(requested) {
			earliest = &txns[i].CreationDate
			break
		}
	}

	hq := domain.HistoryQuery{Division: query.Division}
	if hq.Division == 0 {
		hq.Division = s.defaultDivision
	}
	switch {
	case query.StartDate != nil:
		hq.StartDate = *query.StartDate
	case earliest != nil:
		hq.StartDate = *earliest
	default:
		return nil, fmt.Errorf("containers have no transactions, a start date is required: %w", apperrors.ErrValidation)
	}
	if query.EndDate != nil {
		hq.EndDate = *query.EndDate
	} else {
		hq.EndDate = s.now()
	}

	instants, err := sampleInstants(hq, s.maxDivision)
	if err != nil {
		return nil, err
	}

	out := make(domain.ContainerTimeline, len(ids))
	for _, id := range ids {
		points := make([]domain.ContainerTimelinePoint, len(instants))
		for i, at := range instants {
			balance := steppers[id].GetValue(at.UnixMilli(), decimals.Map{})
			worth, err := s.valuation.WorthOfBalances(ctx, ownerID, balance, at)
			if err != nil {
				s.logUnexpected(ctx, err, "Failed to value container sample",
					slog.String("container_id", id), slog.Time("at", at))
				return nil, fmt.Errorf("container %s at %d: %w", id, at.UnixMilli(), err)
			}
			points[i] = domain.ContainerTimelinePoint{At: at, Balance: balance.Clone(), Worth: worth}
		}
		out[id] = points
	}
	return out, nil
}

// containerStepper records the container's balance after every transaction
// touching it, keyed by the transaction date in ms.
func containerStepper(containerID string, txns []domain.Transaction) *calculations.LinearStepper[int64, decimals.Map] {
	var steps []calculations.Step[int64, decimals.Map]
	balance := decimals.Map{}
	for _, txn := range txns {
		touched := false
		for _, f := range txn.Fragments {
			if f.HasFrom() && *f.FromContainerID == containerID {
				balance.Sub(*f.FromCurrencyID, *f.FromAmount)
				touched = true
			}
			if f.HasTo() && *f.ToContainerID == containerID {
				balance.Add(*f.ToCurrencyID, *f.ToAmount)
				touched = true
			}
		}
		if touched {
			steps = append(steps, calculations.Step[int64, decimals.Map]{Key: txn.CreationDate.UnixMilli(), Value: balance.Clone()})
		}
	}
	return calculations.NewLinearStepper(steps)
}

func (s *historyService) IncomesAndExpenses(ctx context.Context, ownerID string, ranges []domain.TimeRangeQuery, opts domain.IncomeExpenseOptions) (map[string]domain.IncomeExpense, error) {
	if len(ranges) == 0 {
		return nil, fmt.Errorf("at least one range is required: %w", apperrors.ErrValidation)
	}
	out := make(map[string]domain.IncomeExpense, len(ranges))
	for _, r := range ranges {
		if _, dup := out[r.Name]; dup {
			return nil, fmt.Errorf("range name %q used twice: %w", r.Name, apperrors.ErrValidation)
		}
		if r.AtOrAfter != nil && r.AtOrBefore != nil && r.AtOrAfter.After(*r.AtOrBefore) {
			return nil, &apperrors.ArgsComparisonError{LeftName: "atOrAfter", Operator: "<=", RightName: "atOrBefore"}
		}
		out[r.Name] = domain.IncomeExpense{Incomes: decimal.Zero, Expenses: decimal.Zero}
	}
	if _, err := ensureUserExists(ctx, s.userRepo, ownerID); err != nil {
		return nil, err
	}

	txns, err := s.chronologicalTxns(ctx, ownerID, portsrepo.TransactionFilter{})
	if err != nil {
		return nil, err
	}

	for _, txn := range txns {
		if txn.ExcludedFromIncomesExpenses && !opts.IncludeExcluded {
			continue
		}
		var inRanges []string
		for _, r := range ranges {
			if r.Contains(txn.CreationDate) {
				inRanges = append(inRanges, r.Name)
			}
		}
		if len(inRanges) == 0 {
			continue
		}

		delta, err := s.TxnIncreaseInValue(ctx, ownerID, txn)
		if err != nil {
			return nil, err
		}
		for _, name := range inRanges {
			acc := out[name]
			if delta.IsPositive() {
				acc.Incomes = s.arith.Add(acc.Incomes, delta)
			} else {
				acc.Expenses = s.arith.Add(acc.Expenses, delta.Abs())
			}
			out[name] = acc
		}
	}
	return out, nil
}

// TxnIncreaseInValue is the base worth the transaction brings in minus the
// worth it takes out, both valued at the transaction's date.
func (s *historyService) TxnIncreaseInValue(ctx context.Context, ownerID string, txn domain.Transaction) (decimal.Decimal, error) {
	delta := decimal.Zero
	for _, f := range txn.Fragments {
		if f.HasTo() && !f.ToAmount.IsZero() {
			rate, err := s.rates.RateToBase(ctx, ownerID, *f.ToCurrencyID, txn.CreationDate)
			if err != nil {
				return decimal.Zero, fmt.Errorf("transaction %s: %w", txn.TransactionID, err)
			}
			delta = s.arith.Add(delta, s.arith.Mul(*f.ToAmount, rate))
		}
		if f.HasFrom() && !f.FromAmount.IsZero() {
			rate, err := s.rates.RateToBase(ctx, ownerID, *f.FromCurrencyID, txn.CreationDate)
			if err != nil {
				return decimal.Zero, fmt.Errorf("transaction %s: %w", txn.TransactionID, err)
			}
			delta = s.arith.Sub(delta, s.arith.Mul(*f.FromAmount, rate))
		}
	}
	return delta, nil
}

// chronologicalTxns loads transactions and sorts them by date. The sort is
// stable, so same-date transactions keep the repository's order.
func (s *historyService) chronologicalTxns(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactionsByOwner(ctx, ownerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	sorted := slices.Clone(txns)
	slices.SortStableFunc(sorted, func(a, b domain.Transaction) int {
		return a.CreationDate.Compare(b.CreationDate)
	})
	return sorted, nil
}
