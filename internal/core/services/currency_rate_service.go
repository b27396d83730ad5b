package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/caches"
	"github.com/SscSPs/networth_tracker/internal/core/calculations"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/utils/decimals"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// currencyRateService resolves a currency's value in the owner's base currency
// at any instant. Rates come from the currency's datums, each of which is
// expressed in another currency and resolved recursively, and fall back to the
// currency's static fallback rate before the first datum.
type currencyRateService struct {
	BaseService
	currencyRepo  portsrepo.CurrencyReader
	rateDatumRepo portsrepo.RateDatumReader
	caches        *caches.Set
	arith         decimals.Arithmetic
	concurrency   int
	maxDivision   int
}

// RateServiceOption is a functional option for configuring the rate service
type RateServiceOption func(*currencyRateService)

// WithRatePrecision sets the number of significant digits kept by every rate operation.
func WithRatePrecision(precision int32) RateServiceOption {
	return func(s *currencyRateService) {
		s.arith = decimals.NewArithmetic(precision)
	}
}

// WithRateConcurrency bounds the concurrent datum resolutions of one interpolation.
func WithRateConcurrency(n int) RateServiceOption {
	return func(s *currencyRateService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithRateMaxDivision caps the division of RateHistory.
func WithRateMaxDivision(n int) RateServiceOption {
	return func(s *currencyRateService) {
		s.maxDivision = n
	}
}

// NewCurrencyRateService creates the rate resolver over the given repositories and caches.
func NewCurrencyRateService(currencyRepo portsrepo.CurrencyReader, rateDatumRepo portsrepo.RateDatumReader, cacheSet *caches.Set, options ...RateServiceOption) portssvc.CurrencyRateSvc {
	svc := &currencyRateService{
		currencyRepo:  currencyRepo,
		rateDatumRepo: rateDatumRepo,
		caches:        cacheSet,
		arith:         decimals.NewArithmetic(decimals.DefaultPrecision),
		concurrency:   8,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CurrencyRateSvc = (*currencyRateService)(nil)

var one = decimal.NewFromInt(1)

// RateToBase implements portssvc.CurrencyRateSvc.
func (s *currencyRateService) RateToBase(ctx context.Context, ownerID, currencyID string, at time.Time) (decimal.Decimal, error) {
	rate, err := s.rateToBase(ctx, ownerID, currencyID, at, nil)
	if err != nil {
		if errors.Is(err, apperrors.ErrCyclicFallback) || errors.Is(err, apperrors.ErrCacheOwnerMismatch) {
			s.LogError(ctx, err, "Rate resolution aborted",
				slog.String("owner_id", ownerID),
				slog.String("currency_id", currencyID))
		}
		return decimal.Zero, err
	}
	return rate, nil
}

// CurrencyToCurrencyRate implements portssvc.CurrencyRateSvc.
func (s *currencyRateService) CurrencyToCurrencyRate(ctx context.Context, ownerID, from, to string, at time.Time) (decimal.Decimal, error) {
	var fromRate, toRate decimal.Decimal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fromRate, err = s.RateToBase(gctx, ownerID, from, at)
		return err
	})
	g.Go(func() error {
		var err error
		toRate, err = s.RateToBase(gctx, ownerID, to, at)
		return err
	})
	if err := g.Wait(); err != nil {
		return decimal.Zero, err
	}
	if toRate.IsZero() {
		return decimal.Zero, fmt.Errorf("rate of currency %s to base is zero: %w", to, apperrors.ErrValidation)
	}
	return s.arith.Div(fromRate, toRate), nil
}

// RateHistory implements portssvc.CurrencyRateSvc.
func (s *currencyRateService) RateHistory(ctx context.Context, ownerID, currencyID string, query domain.HistoryQuery) ([]domain.RateSample, error) {
	instants, err := sampleInstants(query, s.maxDivision)
	if err != nil {
		return nil, err
	}
	out := make([]domain.RateSample, len(instants))
	for i, at := range instants {
		rate, err := s.RateToBase(ctx, ownerID, currencyID, at)
		if err != nil {
			return nil, fmt.Errorf("rate history of currency %s: %w", currencyID, err)
		}
		out[i] = domain.RateSample{At: at, Rate: rate}
	}
	return out, nil
}

// rateVisit is one (currency, instant) resolution in progress.
type rateVisit struct {
	currencyID string
	atMillis   int64
}

// rateToBase resolves one rate. chain holds the resolutions in progress on
// this path. Datum values recurse at the datum's own date, so a currency may
// appear again at another instant; meeting the same currency at the same
// instant is a cycle.
func (s *currencyRateService) rateToBase(ctx context.Context, ownerID, currencyID string, at time.Time, chain []rateVisit) (decimal.Decimal, error) {
	visit := rateVisit{currencyID: currencyID, atMillis: at.UnixMilli()}
	if slices.Contains(chain, visit) {
		ids := make([]string, 0, len(chain)+1)
		for _, v := range chain {
			ids = append(ids, v.currencyID)
		}
		return decimal.Zero, &apperrors.CyclicFallbackError{Chain: append(ids, currencyID)}
	}
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}

	currency, err := s.findCurrency(ctx, ownerID, currencyID)
	if err != nil {
		return decimal.Zero, err
	}
	if currency.IsBase {
		return one, nil
	}
	if rate, ok := s.caches.BaseRates.Get(ownerID, currencyID, at); ok {
		return rate, nil
	}

	// every branch below gets its own copy
	path := append(slices.Clone(chain), visit)

	datums, err := loadRateDatums(ctx, s.rateDatumRepo, s.caches.RateDatums, ownerID, currencyID)
	if err != nil {
		return decimal.Zero, err
	}

	rate, found, err := s.interpolate(ctx, ownerID, datums, at, path)
	if err != nil {
		return decimal.Zero, err
	}
	if !found {
		if !currency.HasFallback() {
			return decimal.Zero, &apperrors.RateUnavailableError{CurrencyID: currencyID, At: at}
		}
		fallbackRate, err := s.rateToBase(ctx, ownerID, *currency.FallbackRateCurrencyID, at, path)
		if err != nil {
			return decimal.Zero, err
		}
		rate = s.arith.Mul(*currency.FallbackRateAmount, fallbackRate)
	}

	s.caches.BaseRates.Set(ownerID, currencyID, at, rate)
	return rate, nil
}

// interpolate values the datums at the instant. Past the latest datum the
// latest value holds; before the earliest there is no value.
func (s *currencyRateService) interpolate(ctx context.Context, ownerID string, datums []domain.RateDatum, at time.Time, path []rateVisit) (decimal.Decimal, bool, error) {
	if len(datums) == 0 {
		return decimal.Zero, false, nil
	}

	vi, err := calculations.NewVirtualInterpolator(ctx, datums,
		func(_ context.Context, d domain.RateDatum) (decimal.Decimal, error) {
			return decimals.FromMillis(d.Date.UnixMilli()), nil
		},
		func(ctx context.Context, d domain.RateDatum) (decimal.Decimal, error) {
			refRate, err := s.rateToBase(ctx, ownerID, d.RefAmountCurrencyID, d.Date, path)
			if err != nil {
				return decimal.Zero, err
			}
			return s.arith.Mul(d.Amount, refRate), nil
		},
		calculations.WithPrecision(s.arith.Precision),
		calculations.WithConcurrency(s.concurrency),
	)
	if err != nil {
		return decimal.Zero, false, err
	}

	x := decimals.FromMillis(at.UnixMilli())
	rate, ok, err := vi.GetValue(ctx, x)
	if err != nil || ok {
		return rate, ok, err
	}
	if maxKey, _ := vi.MaxKey(); x.GreaterThan(maxKey) {
		return vi.LastValue(ctx)
	}
	return decimal.Zero, false, nil
}

// findCurrency looks the currency up in the owner's cached currency list.
func (s *currencyRateService) findCurrency(ctx context.Context, ownerID, currencyID string) (*domain.Currency, error) {
	currencies, err := loadCurrencies(ctx, s.currencyRepo, s.caches.Currencies, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range currencies {
		if currencies[i].CurrencyID == currencyID {
			return &currencies[i], nil
		}
	}
	return nil, apperrors.NewCurrencyNotFound(currencyID)
}

// loadRateDatums returns the datums that price currencyID, through the datum cache.
func loadRateDatums(ctx context.Context, repo portsrepo.RateDatumReader, cache *caches.RateDatumCache, ownerID, currencyID string) ([]domain.RateDatum, error) {
	if datums, ok := cache.Get(ownerID, currencyID); ok {
		return datums, nil
	}
	loaded, err := repo.ListRateDatumsByCurrency(ctx, ownerID, currencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate datums of currency %s: %w", currencyID, err)
	}
	datums := make([]domain.RateDatum, 0, len(loaded))
	for _, d := range loaded {
		if d.RefCurrencyID == currencyID {
			datums = append(datums, d)
		}
	}
	if err := cache.Set(ownerID, currencyID, datums); err != nil {
		return nil, err
	}
	return datums, nil
}

// loadCurrencies returns the owner's currencies through the currency list cache.
func loadCurrencies(ctx context.Context, repo portsrepo.CurrencyReader, cache *caches.CurrencyListCache, ownerID string) ([]domain.Currency, error) {
	if currencies, ok := cache.Get(ownerID); ok {
		return currencies, nil
	}
	currencies, err := repo.ListCurrenciesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies of owner: %w", err)
	}
	if err := cache.Set(ownerID, currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}
