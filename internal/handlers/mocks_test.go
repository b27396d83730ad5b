package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserReaderSvc = (*MockUserService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context, ownerID string) ([]domain.Currency, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, ownerID string, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) UpdateCurrencyFallback(ctx context.Context, ownerID, currencyID string, req dto.UpdateCurrencyFallbackRequest) (*domain.Currency, error) {
	args := m.Called(ctx, ownerID, currencyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock CurrencyRateService ---
type MockCurrencyRateService struct {
	mock.Mock
}

func (m *MockCurrencyRateService) RateToBase(ctx context.Context, ownerID, currencyID string, at time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, currencyID, at)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCurrencyRateService) CurrencyToCurrencyRate(ctx context.Context, ownerID, from, to string, at time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, from, to, at)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCurrencyRateService) RateHistory(ctx context.Context, ownerID, currencyID string, query domain.HistoryQuery) ([]domain.RateSample, error) {
	args := m.Called(ctx, ownerID, currencyID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateSample), args.Error(1)
}

var _ portssvc.CurrencyRateSvc = (*MockCurrencyRateService)(nil)

// --- Mock RateDatumService ---
type MockRateDatumService struct {
	mock.Mock
}

func (m *MockRateDatumService) ListRateDatums(ctx context.Context, ownerID, currencyID string, limit int, nextToken *string) ([]domain.RateDatum, *string, error) {
	args := m.Called(ctx, ownerID, currencyID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.RateDatum), next, args.Error(2)
}

func (m *MockRateDatumService) CreateRateDatum(ctx context.Context, ownerID string, req dto.CreateRateDatumRequest) (*domain.RateDatum, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateDatum), args.Error(1)
}

func (m *MockRateDatumService) NearestRateDatums(ctx context.Context, ownerID, currencyID string, at time.Time) ([]domain.RateDatum, error) {
	args := m.Called(ctx, ownerID, currencyID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateDatum), args.Error(1)
}

var _ portssvc.RateDatumSvcFacade = (*MockRateDatumService)(nil)

// --- Mock ValuationService ---
type MockValuationService struct {
	mock.Mock
}

func (m *MockValuationService) ContainerBalances(ctx context.Context, ownerID string, containerIDs []string) (map[string]map[string]decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, containerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]map[string]decimal.Decimal), args.Error(1)
}

func (m *MockValuationService) ContainersWorth(ctx context.Context, ownerID string, containerIDs []string, at *time.Time) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, containerIDs, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockValuationService) UserNetWorth(ctx context.Context, ownerID string, at *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, at)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockValuationService) WorthOfBalances(ctx context.Context, ownerID string, balances map[string]decimal.Decimal, at time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, balances, at)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.ValuationSvc = (*MockValuationService)(nil)

// --- Mock HistoryService ---
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) BalanceHistory(ctx context.Context, ownerID string, query domain.HistoryQuery) ([]domain.BalanceSample, error) {
	args := m.Called(ctx, ownerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceSample), args.Error(1)
}

func (m *MockHistoryService) NetworthHistory(ctx context.Context, ownerID string, query domain.HistoryQuery) ([]domain.NetworthSample, error) {
	args := m.Called(ctx, ownerID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NetworthSample), args.Error(1)
}

func (m *MockHistoryService) ContainerTimeline(ctx context.Context, ownerID string, containerIDs []string, query domain.TimelineQuery) (domain.ContainerTimeline, error) {
	args := m.Called(ctx, ownerID, containerIDs, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ContainerTimeline), args.Error(1)
}

func (m *MockHistoryService) IncomesAndExpenses(ctx context.Context, ownerID string, ranges []domain.TimeRangeQuery, opts domain.IncomeExpenseOptions) (map[string]domain.IncomeExpense, error) {
	args := m.Called(ctx, ownerID, ranges, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.IncomeExpense), args.Error(1)
}

func (m *MockHistoryService) TxnIncreaseInValue(ctx context.Context, ownerID string, txn domain.Transaction) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, txn)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.HistorySvc = (*MockHistoryService)(nil)
