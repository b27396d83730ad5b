package services_test

import (
	"context"

	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserReader = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

var _ portsrepo.CurrencyRepositoryFacade = (*MockCurrencyRepository)(nil)

func (m *MockCurrencyRepository) ListCurrenciesByOwner(ctx context.Context, ownerID string) ([]domain.Currency, error) {
	args := m.Called(ctx, ownerID)
	var currencies []domain.Currency
	if args.Get(0) != nil {
		currencies = args.Get(0).([]domain.Currency)
	}
	return currencies, args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, ownerID, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, ownerID, currencyID)
	var currency *domain.Currency
	if args.Get(0) != nil {
		currency = args.Get(0).(*domain.Currency)
	}
	return currency, args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) UpdateCurrencyFallback(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

// --- Mock RateDatumRepository ---
type MockRateDatumRepository struct {
	mock.Mock
}

var _ portsrepo.RateDatumRepositoryFacade = (*MockRateDatumRepository)(nil)

func (m *MockRateDatumRepository) ListRateDatumsByCurrency(ctx context.Context, ownerID, currencyID string) ([]domain.RateDatum, error) {
	args := m.Called(ctx, ownerID, currencyID)
	var datums []domain.RateDatum
	if args.Get(0) != nil {
		datums = args.Get(0).([]domain.RateDatum)
	}
	return datums, args.Error(1)
}

func (m *MockRateDatumRepository) ListRateDatumsPage(ctx context.Context, ownerID, currencyID string, limit int, nextToken *string) ([]domain.RateDatum, *string, error) {
	args := m.Called(ctx, ownerID, currencyID, limit, nextToken)
	var datums []domain.RateDatum
	if args.Get(0) != nil {
		datums = args.Get(0).([]domain.RateDatum)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return datums, next, args.Error(2)
}

func (m *MockRateDatumRepository) SaveRateDatum(ctx context.Context, datum domain.RateDatum) error {
	args := m.Called(ctx, datum)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionReader = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) ListTransactionsByOwner(ctx context.Context, ownerID string, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

// --- Mock ContainerRepository ---
type MockContainerRepository struct {
	mock.Mock
}

var _ portsrepo.ContainerReader = (*MockContainerRepository)(nil)

func (m *MockContainerRepository) ListContainersByOwner(ctx context.Context, ownerID string) ([]domain.Container, error) {
	args := m.Called(ctx, ownerID)
	var containers []domain.Container
	if args.Get(0) != nil {
		containers = args.Get(0).([]domain.Container)
	}
	return containers, args.Error(1)
}

func (m *MockContainerRepository) FindContainersByIDs(ctx context.Context, ownerID string, containerIDs []string) ([]domain.Container, error) {
	args := m.Called(ctx, ownerID, containerIDs)
	var containers []domain.Container
	if args.Get(0) != nil {
		containers = args.Get(0).([]domain.Container)
	}
	return containers, args.Error(1)
}
