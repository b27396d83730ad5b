package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/utils/decimals"
	"github.com/shopspring/decimal"
)

type valuationService struct {
	BaseService
	userRepo      portsrepo.UserReader
	containerRepo portsrepo.ContainerReader
	txnRepo       portsrepo.TransactionReader
	rates         portssvc.CurrencyRateSvc
	arith         decimals.Arithmetic
	now           func() time.Time
}

// ValuationOption is a functional option for configuring the valuation service
type ValuationOption func(*valuationService)

// WithValuationPrecision sets the number of significant digits kept while summing worth.
func WithValuationPrecision(precision int32) ValuationOption {
	return func(s *valuationService) {
		s.arith = decimals.NewArithmetic(precision)
	}
}

// WithValuationClock replaces time.Now as the default valuation instant.
func WithValuationClock(now func() time.Time) ValuationOption {
	return func(s *valuationService) {
		s.now = now
	}
}

// NewValuationService creates the valuation service.
func NewValuationService(repos portsrepo.RepositoryProvider, rates portssvc.CurrencyRateSvc, options ...ValuationOption) portssvc.ValuationSvc {
	svc := &valuationService{
		userRepo:      repos.UserRepo,
		containerRepo: repos.ContainerRepo,
		txnRepo:       repos.TransactionRepo,
		rates:         rates,
		arith:         decimals.NewArithmetic(decimals.DefaultPrecision),
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ValuationSvc = (*valuationService)(nil)

func (s *valuationService) ContainerBalances(ctx context.Context, ownerID string, containerIDs []string) (map[string]map[string]decimal.Decimal, error) {
	if _, err := ensureUserExists(ctx, s.userRepo, ownerID); err != nil {
		return nil, err
	}
	ids, err := ensureContainersExist(ctx, s.containerRepo, ownerID, containerIDs)
	if err != nil {
		return nil, err
	}
	return s.containerBalances(ctx, ownerID, ids)
}

func (s *valuationService) ContainersWorth(ctx context.Context, ownerID string, containerIDs []string, at *time.Time) (map[string]decimal.Decimal, error) {
	balances, err := s.ContainerBalances(ctx, ownerID, containerIDs)
	if err != nil {
		return nil, err
	}
	return s.worthPerContainer(ctx, ownerID, balances, s.instant(at))
}

func (s *valuationService) UserNetWorth(ctx context.Context, ownerID string, at *time.Time) (decimal.Decimal, error) {
	if _, err := ensureUserExists(ctx, s.userRepo, ownerID); err != nil {
		return decimal.Zero, err
	}
	containers, err := s.containerRepo.ListContainersByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list containers", slog.String("owner_id", ownerID))
		return decimal.Zero, fmt.Errorf("failed to list containers: %w", err)
	}
	if len(containers) == 0 {
		return decimal.Zero, nil
	}
	ids := make([]string, len(containers))
	for i, c := range containers {
		ids[i] = c.ContainerID
	}

	balances, err := s.containerBalances(ctx, ownerID, ids)
	if err != nil {
		return decimal.Zero, err
	}
	worth, err := s.worthPerContainer(ctx, ownerID, balances, s.instant(at))
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, id := range sortedKeys(worth) {
		total = s.arith.Add(total, worth[id])
	}
	return total, nil
}

// WorthOfBalances sums amount × rate over the currencies in ascending id
// order, so the rounded result does not depend on map iteration. Zero amounts
// are skipped without resolving their rate.
func (s *valuationService) WorthOfBalances(ctx context.Context, ownerID string, balances map[string]decimal.Decimal, at time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, currencyID := range decimals.Map(balances).Keys() {
		amount := balances[currencyID]
		if amount.IsZero() {
			continue
		}
		rate, err := s.rates.RateToBase(ctx, ownerID, currencyID, at)
		if err != nil {
			return decimal.Zero, fmt.Errorf("valuing currency %s: %w", currencyID, err)
		}
		total = s.arith.Add(total, s.arith.Mul(amount, rate))
	}
	return total, nil
}

func (s *valuationService) worthPerContainer(ctx context.Context, ownerID string, balances map[string]map[string]decimal.Decimal, at time.Time) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(balances))
	for _, id := range sortedKeys(balances) {
		worth, err := s.WorthOfBalances(ctx, ownerID, balances[id], at)
		if err != nil {
			s.logUnexpected(ctx, err, "Failed to value container", slog.String("container_id", id))
			return nil, fmt.Errorf("container %s: %w", id, err)
		}
		out[id] = worth
	}
	return out, nil
}

// containerBalances folds every fragment side that touches one of the
// containers. Every requested container is present in the result, even with
// no transactions.
func (s *valuationService) containerBalances(ctx context.Context, ownerID string, containerIDs []string) (map[string]map[string]decimal.Decimal, error) {
	txns, err := s.txnRepo.ListTransactionsByOwner(ctx, ownerID, portsrepo.TransactionFilter{ContainerIDs: containerIDs})
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	out := make(map[string]map[string]decimal.Decimal, len(containerIDs))
	for _, id := range containerIDs {
		out[id] = decimals.Map{}
	}
	for _, txn := range txns {
		for _, f := range txn.Fragments {
			if f.HasFrom() {
				if bal, ok := out[*f.FromContainerID]; ok {
					decimals.Map(bal).Sub(*f.FromCurrencyID, *f.FromAmount)
				}
			}
			if f.HasTo() {
				if bal, ok := out[*f.ToContainerID]; ok {
					decimals.Map(bal).Add(*f.ToCurrencyID, *f.ToAmount)
				}
			}
		}
	}
	return out, nil
}

func (s *valuationService) instant(at *time.Time) time.Time {
	if at != nil {
		return *at
	}
	return s.now()
}

// ensureContainersExist deduplicates the ids and checks the owner has every one.
func ensureContainersExist(ctx context.Context, repo portsrepo.ContainerReader, ownerID string, containerIDs []string) ([]string, error) {
	ids := slices.Clone(containerIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one container id is required: %w", apperrors.ErrValidation)
	}

	found, err := repo.FindContainersByIDs(ctx, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to find containers: %w", err)
	}
	owned := make(map[string]struct{}, len(found))
	for _, c := range found {
		if c.OwnerID == ownerID {
			owned[c.ContainerID] = struct{}{}
		}
	}
	for _, id := range ids {
		if _, ok := owned[id]; !ok {
			return nil, apperrors.NewContainerNotFound(id)
		}
	}
	return ids, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// applyFragments folds a transaction's fragments into user-wide balances.
func applyFragments(balances decimals.Map, txn domain.Transaction) {
	for _, f := range txn.Fragments {
		if f.HasFrom() {
			balances.Sub(*f.FromCurrencyID, *f.FromAmount)
		}
		if f.HasTo() {
			balances.Add(*f.ToCurrencyID, *f.ToAmount)
		}
	}
}
