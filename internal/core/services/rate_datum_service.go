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
)

const defaultRateDatumPageSize = 20

type rateDatumService struct {
	BaseService
	rateDatumRepo portsrepo.RateDatumRepositoryFacade
	currencyRepo  portsrepo.CurrencyReader
	caches        *caches.Set
	now           func() time.Time
}

// NewRateDatumService creates the rate datum service.
func NewRateDatumService(rateDatumRepo portsrepo.RateDatumRepositoryFacade, currencyRepo portsrepo.CurrencyReader, cacheSet *caches.Set) portssvc.RateDatumSvcFacade {
	return &rateDatumService{
		rateDatumRepo: rateDatumRepo,
		currencyRepo:  currencyRepo,
		caches:        cacheSet,
		now:           time.Now,
	}
}

var _ portssvc.RateDatumSvcFacade = (*rateDatumService)(nil)

// CreateRateDatum records a datum. Other currencies may be priced through the
// datum's currency, so every cached base rate of the owner is dropped.
func (s *rateDatumService) CreateRateDatum(ctx context.Context, ownerID string, req dto.CreateRateDatumRequest) (*domain.RateDatum, error) {
	amount, err := decimals.Parse(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("amount: %v: %w", err, apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, &apperrors.ConstantComparisonError{Name: "amount", Operator: ">", Constant: "0", Actual: amount.String()}
	}
	if req.RefCurrencyID == req.RefAmountCurrencyID {
		return nil, &apperrors.ArgsComparisonError{LeftName: "refCurrencyId", Operator: "!=", RightName: "refAmountCurrencyId"}
	}

	currencies, err := loadCurrencies(ctx, s.currencyRepo, s.caches.Currencies, ownerID)
	if err != nil {
		return nil, err
	}
	for _, id := range []string{req.RefCurrencyID, req.RefAmountCurrencyID} {
		if !containsCurrency(currencies, id) {
			return nil, apperrors.NewCurrencyNotFound(id)
		}
	}

	now := s.now()
	date := now
	if parsed, err := dto.ParseOptionalEpoch(req.Date); err != nil {
		return nil, fmt.Errorf("date: %v: %w", err, apperrors.ErrValidation)
	} else if parsed != nil {
		date = *parsed
	}

	datum := domain.RateDatum{
		RateDatumID:         uuid.NewString(),
		OwnerID:             ownerID,
		Amount:              amount,
		RefCurrencyID:       req.RefCurrencyID,
		RefAmountCurrencyID: req.RefAmountCurrencyID,
		Date:                date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.rateDatumRepo.SaveRateDatum(ctx, datum); err != nil {
		s.logUnexpected(ctx, err, "Failed to save rate datum", slog.String("ref_currency_id", datum.RefCurrencyID))
		return nil, fmt.Errorf("failed to create rate datum: %w", err)
	}
	s.caches.RateDatums.Invalidate(ownerID, datum.RefCurrencyID)
	s.caches.BaseRates.InvalidateOwner(ownerID)

	s.LogInfo(ctx, "Rate datum created",
		slog.String("rate_datum_id", datum.RateDatumID),
		slog.String("ref_currency_id", datum.RefCurrencyID),
		slog.Int64("date", datum.Date.UnixMilli()))
	return &datum, nil
}

func (s *rateDatumService) ListRateDatums(ctx context.Context, ownerID, currencyID string, limit int, nextToken *string) ([]domain.RateDatum, *string, error) {
	currencies, err := loadCurrencies(ctx, s.currencyRepo, s.caches.Currencies, ownerID)
	if err != nil {
		return nil, nil, err
	}
	if !containsCurrency(currencies, currencyID) {
		return nil, nil, apperrors.NewCurrencyNotFound(currencyID)
	}
	if limit <= 0 {
		limit = defaultRateDatumPageSize
	}

	datums, next, err := s.rateDatumRepo.ListRateDatumsPage(ctx, ownerID, currencyID, limit, nextToken)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to list rate datums", slog.String("currency_id", currencyID))
		return nil, nil, fmt.Errorf("failed to list rate datums: %w", err)
	}
	if datums == nil {
		datums = []domain.RateDatum{}
	}
	return datums, next, nil
}

// NearestRateDatums returns up to two datums of the currency closest to at,
// nearest first. It reads the datum cache the rate engine fills and loads the
// currency's datums on a miss.
func (s *rateDatumService) NearestRateDatums(ctx context.Context, ownerID, currencyID string, at time.Time) ([]domain.RateDatum, error) {
	currencies, err := loadCurrencies(ctx, s.currencyRepo, s.caches.Currencies, ownerID)
	if err != nil {
		return nil, err
	}
	if !containsCurrency(currencies, currencyID) {
		return nil, apperrors.NewCurrencyNotFound(currencyID)
	}

	if nearest, ok := s.caches.RateDatums.FindTwoNearest(ownerID, currencyID, at); ok {
		return nearest, nil
	}
	datums, err := loadRateDatums(ctx, s.rateDatumRepo, s.caches.RateDatums, ownerID, currencyID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to load rate datums", slog.String("currency_id", currencyID))
		return nil, err
	}
	return caches.TwoNearest(datums, at), nil
}

func containsCurrency(currencies []domain.Currency, currencyID string) bool {
	for _, c := range currencies {
		if c.CurrencyID == currencyID {
			return true
		}
	}
	return false
}
