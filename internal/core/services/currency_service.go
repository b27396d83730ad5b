package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/caches"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/dto"
	"github.com/SscSPs/networth_tracker/internal/utils/decimals"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	caches       *caches.Set
	now          func() time.Time
}

// NewCurrencyService creates the currency service. Every write invalidates the
// owner's cached currency list and base rates.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, cacheSet *caches.Set) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo, caches: cacheSet, now: time.Now}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) ListCurrencies(ctx context.Context, ownerID string) ([]domain.Currency, error) {
	currencies, err := loadCurrencies(ctx, s.currencyRepo, s.caches.Currencies, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies", slog.String("owner_id", ownerID))
		return nil, err
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) CreateCurrency(ctx context.Context, ownerID string, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	existing, err := loadCurrencies(ctx, s.currencyRepo, s.caches.Currencies, ownerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	currency := domain.Currency{
		CurrencyID: uuid.NewString(),
		OwnerID:    ownerID,
		Name:       req.Name,
		Ticker:     req.Ticker,
		IsBase:     req.IsBase,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if req.IsBase {
		for _, c := range existing {
			if c.IsBase {
				return nil, fmt.Errorf("owner already has base currency %s: %w", c.CurrencyID, apperrors.ErrDuplicate)
			}
		}
		if req.FallbackRateAmount != nil || req.FallbackRateCurrencyID != nil {
			return nil, fmt.Errorf("a base currency cannot declare a fallback rate: %w", apperrors.ErrValidation)
		}
	} else {
		if req.FallbackRateAmount == nil || req.FallbackRateCurrencyID == nil {
			return nil, fmt.Errorf("a non-base currency requires fallbackRateAmount and fallbackRateCurrencyId: %w", apperrors.ErrValidation)
		}
		amount, err := validateFallback(existing, currency.CurrencyID, *req.FallbackRateAmount, *req.FallbackRateCurrencyID)
		if err != nil {
			return nil, err
		}
		fallbackID := *req.FallbackRateCurrencyID
		currency.FallbackRateAmount = &amount
		currency.FallbackRateCurrencyID = &fallbackID
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.logUnexpected(ctx, err, "Failed to save currency", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}
	s.invalidate(ownerID)

	s.LogInfo(ctx, "Currency created", slog.String("currency_id", currency.CurrencyID), slog.Bool("is_base", currency.IsBase))
	return &currency, nil
}

func (s *currencyService) UpdateCurrencyFallback(ctx context.Context, ownerID, currencyID string, req dto.UpdateCurrencyFallbackRequest) (*domain.Currency, error) {
	existing, err := loadCurrencies(ctx, s.currencyRepo, s.caches.Currencies, ownerID)
	if err != nil {
		return nil, err
	}

	var currency *domain.Currency
	for i := range existing {
		if existing[i].CurrencyID == currencyID {
			currency = &existing[i]
			break
		}
	}
	if currency == nil {
		return nil, apperrors.NewCurrencyNotFound(currencyID)
	}
	if currency.IsBase {
		return nil, fmt.Errorf("the base currency has no fallback rate: %w", apperrors.ErrValidation)
	}

	amount, err := validateFallback(existing, currencyID, req.FallbackRateAmount, req.FallbackRateCurrencyID)
	if err != nil {
		return nil, err
	}
	if err := checkFallbackChain(existing, currencyID, req.FallbackRateCurrencyID); err != nil {
		return nil, err
	}

	fallbackID := req.FallbackRateCurrencyID
	updated := *currency
	updated.FallbackRateAmount = &amount
	updated.FallbackRateCurrencyID = &fallbackID
	updated.LastUpdatedAt = s.now()
	updated.LastUpdatedBy = ownerID

	if err := s.currencyRepo.UpdateCurrencyFallback(ctx, updated); err != nil {
		s.logUnexpected(ctx, err, "Failed to update currency fallback", slog.String("currency_id", currencyID))
		return nil, fmt.Errorf("failed to update currency fallback: %w", err)
	}
	s.invalidate(ownerID)

	s.LogInfo(ctx, "Currency fallback updated", slog.String("currency_id", currencyID), slog.String("fallback_currency_id", fallbackID))
	return &updated, nil
}

func (s *currencyService) invalidate(ownerID string) {
	s.caches.Currencies.Invalidate(ownerID)
	s.caches.BaseRates.InvalidateOwner(ownerID)
}

// validateFallback parses a fallback amount and checks the fallback currency
// is another currency of the same owner.
func validateFallback(existing []domain.Currency, currencyID, rawAmount, fallbackID string) (decimal.Decimal, error) {
	amount, err := decimals.Parse(rawAmount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fallbackRateAmount: %v: %w", err, apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return decimal.Zero, &apperrors.ConstantComparisonError{Name: "fallbackRateAmount", Operator: ">", Constant: "0", Actual: amount.String()}
	}
	if fallbackID == currencyID {
		return decimal.Zero, fmt.Errorf("a currency cannot fall back to itself: %w", apperrors.ErrValidation)
	}
	for _, c := range existing {
		if c.CurrencyID == fallbackID {
			return amount, nil
		}
	}
	return decimal.Zero, fmt.Errorf("fallback currency %q does not exist: %w", fallbackID, apperrors.ErrValidation)
}

// checkFallbackChain follows fallbacks from the proposed target and rejects
// the update when the chain comes back to currencyID.
func checkFallbackChain(existing []domain.Currency, currencyID, fallbackID string) error {
	byID := make(map[string]domain.Currency, len(existing))
	for _, c := range existing {
		byID[c.CurrencyID] = c
	}
	chain := []string{currencyID}
	next := fallbackID
	for {
		chain = append(chain, next)
		if next == currencyID {
			return fmt.Errorf("%w: %w", apperrors.ErrValidation, &apperrors.CyclicFallbackError{Chain: chain})
		}
		c, ok := byID[next]
		if !ok || c.IsBase || c.FallbackRateCurrencyID == nil || len(chain) > len(existing)+1 {
			return nil
		}
		next = *c.FallbackRateCurrencyID
	}
}
