package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/caches"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyRateServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo  *MockCurrencyRepository
	mockRateDatumRepo *MockRateDatumRepository
	caches            *caches.Set
	service           portssvc.CurrencyRateSvc
}

func (suite *CurrencyRateServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockRateDatumRepo = new(MockRateDatumRepository)
	suite.caches = newTestCaches()
	suite.service = services.NewCurrencyRateService(suite.mockCurrencyRepo, suite.mockRateDatumRepo, suite.caches,
		services.WithRateMaxDivision(100))
}

func (suite *CurrencyRateServiceTestSuite) useScenario() {
	mockScenarioRates(suite.mockCurrencyRepo, suite.mockRateDatumRepo, scenarioCurrencies(), scenarioDatums())
}

func (suite *CurrencyRateServiceTestSuite) TestRateToBase_BaseIsOne() {
	suite.useScenario()

	rate, err := suite.service.RateToBase(context.Background(), testOwnerID, baseID, daysAgo(3))

	suite.Require().NoError(err)
	suite.Equal("1", rate.String())
	suite.mockRateDatumRepo.AssertNotCalled(suite.T(), "ListRateDatumsByCurrency", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CurrencyRateServiceTestSuite) TestRateToBase_Scenario() {
	suite.useScenario()
	ctx := context.Background()

	tests := []struct {
		name     string
		currency string
		ageDays  float64
		want     string
	}{
		{"datum instant", secID, 100, "0.06"},
		{"between datums", secID, 89, "0.055"},
		{"before first datum uses fallback", secID, 120, "1"},
		{"after last datum holds", secID, 5, "0.1"},
		{"datum priced in base", thiID, 78, "78"},
		{"fallback through another currency", thiID, 100, "0.06"},
		{"latest datum priced through another currency", thiID, -3, "111.1"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			rate, err := suite.service.RateToBase(ctx, testOwnerID, tt.currency, daysAgo(tt.ageDays))
			suite.Require().NoError(err)
			suite.True(decimalEqual(tt.want, rate), "want %s got %s", tt.want, rate)
		})
	}
}

func (suite *CurrencyRateServiceTestSuite) TestRateToBase_UsesCaches() {
	suite.useScenario()
	ctx := context.Background()
	at := daysAgo(89)

	first, err := suite.service.RateToBase(ctx, testOwnerID, secID, at)
	suite.Require().NoError(err)
	second, err := suite.service.RateToBase(ctx, testOwnerID, secID, at)
	suite.Require().NoError(err)

	suite.True(first.Equal(second))
	suite.mockCurrencyRepo.AssertNumberOfCalls(suite.T(), "ListCurrenciesByOwner", 1)
	suite.mockRateDatumRepo.AssertNumberOfCalls(suite.T(), "ListRateDatumsByCurrency", 1)
	stats := suite.caches.Stats()
	suite.EqualValues(1, stats["baseRate"].Hits)
	suite.Equal(1, stats["baseRate"].Size)
}

func (suite *CurrencyRateServiceTestSuite) TestRateToBase_UnknownCurrency() {
	suite.useScenario()

	_, err := suite.service.RateToBase(context.Background(), testOwnerID, "cur-missing", daysAgo(1))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	var notFound *apperrors.EntityNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("currency", notFound.Entity)
}

func (suite *CurrencyRateServiceTestSuite) TestRateToBase_Unavailable() {
	orphan := domain.Currency{CurrencyID: "cur-orphan", OwnerID: testOwnerID, Name: "Orphan", Ticker: "ORP"}
	mockScenarioRates(suite.mockCurrencyRepo, suite.mockRateDatumRepo,
		[]domain.Currency{baseCurrency(), orphan}, nil)

	_, err := suite.service.RateToBase(context.Background(), testOwnerID, orphan.CurrencyID, daysAgo(1))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	var unavailable *apperrors.RateUnavailableError
	suite.ErrorAs(err, &unavailable)
}

func (suite *CurrencyRateServiceTestSuite) TestRateToBase_CyclicFallback() {
	mockScenarioRates(suite.mockCurrencyRepo, suite.mockRateDatumRepo, []domain.Currency{
		baseCurrency(),
		fallbackCurrency("cur-a", "AAA", "2", "cur-b"),
		fallbackCurrency("cur-b", "BBB", "3", "cur-a"),
	}, nil)

	_, err := suite.service.RateToBase(context.Background(), testOwnerID, "cur-a", daysAgo(1))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCyclicFallback)
	var cyclic *apperrors.CyclicFallbackError
	suite.Require().ErrorAs(err, &cyclic)
	suite.Equal([]string{"cur-a", "cur-b", "cur-a"}, cyclic.Chain)
}

func (suite *CurrencyRateServiceTestSuite) TestRateToBase_CurrenciesQuotedAgainstEachOther() {
	mockScenarioRates(suite.mockCurrencyRepo, suite.mockRateDatumRepo, []domain.Currency{
		baseCurrency(),
		fallbackCurrency("cur-usd", "USD", "7", baseID),
		fallbackCurrency("cur-hkd", "HKD", "0.9", baseID),
	}, map[string][]domain.RateDatum{
		"cur-usd": {datum("cur-usd", "8", "cur-hkd", 10)},
		"cur-hkd": {datum("cur-hkd", "0.13", "cur-usd", 20)},
	})

	// USD@5d holds its 10d datum: 8 HKD@10d, which holds 0.13 USD@20d,
	// and USD before its first datum is 7 BASE.
	rate, err := suite.service.RateToBase(context.Background(), testOwnerID, "cur-usd", daysAgo(5))

	suite.Require().NoError(err)
	suite.True(decimalEqual("7.28", rate), "got %s", rate)
}

func (suite *CurrencyRateServiceTestSuite) TestRateToBase_DatumCycleAtSameInstant() {
	mockScenarioRates(suite.mockCurrencyRepo, suite.mockRateDatumRepo, []domain.Currency{
		baseCurrency(),
		fallbackCurrency("cur-usd", "USD", "7", baseID),
		fallbackCurrency("cur-hkd", "HKD", "0.9", baseID),
	}, map[string][]domain.RateDatum{
		"cur-usd": {datum("cur-usd", "8", "cur-hkd", 10)},
		"cur-hkd": {datum("cur-hkd", "0.13", "cur-usd", 10)},
	})

	_, err := suite.service.RateToBase(context.Background(), testOwnerID, "cur-usd", daysAgo(10))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCyclicFallback)
	var cyclic *apperrors.CyclicFallbackError
	suite.Require().ErrorAs(err, &cyclic)
	suite.Equal([]string{"cur-usd", "cur-hkd", "cur-usd"}, cyclic.Chain)
}

func (suite *CurrencyRateServiceTestSuite) TestRateToBase_ForeignCurrencyListNotCached() {
	foreign := baseCurrency()
	foreign.OwnerID = "someone-else"
	suite.mockCurrencyRepo.On("ListCurrenciesByOwner", mock.Anything, testOwnerID).Return([]domain.Currency{foreign}, nil)

	_, err := suite.service.RateToBase(context.Background(), testOwnerID, baseID, daysAgo(1))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCacheOwnerMismatch)
	suite.Equal(0, suite.caches.Stats()["currencyList"].Size)
}

func (suite *CurrencyRateServiceTestSuite) TestRateToBase_RepoError() {
	suite.mockCurrencyRepo.On("ListCurrenciesByOwner", mock.Anything, testOwnerID).Return(nil, assert.AnError)

	_, err := suite.service.RateToBase(context.Background(), testOwnerID, secID, daysAgo(1))

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CurrencyRateServiceTestSuite) TestCurrencyToCurrencyRate() {
	suite.useScenario()

	rate, err := suite.service.CurrencyToCurrencyRate(context.Background(), testOwnerID, thiID, secID, daysAgo(78))

	suite.Require().NoError(err)
	suite.True(decimalEqual("1560", rate), "got %s", rate)

	rate, err = suite.service.CurrencyToCurrencyRate(context.Background(), testOwnerID, secID, secID, daysAgo(50))
	suite.Require().NoError(err)
	suite.True(decimalEqual("1", rate), "got %s", rate)
}

func (suite *CurrencyRateServiceTestSuite) TestRateHistory() {
	suite.useScenario()

	samples, err := suite.service.RateHistory(context.Background(), testOwnerID, secID, domain.HistoryQuery{
		StartDate: daysAgo(100),
		EndDate:   daysAgo(78),
		Division:  3,
	})

	suite.Require().NoError(err)
	suite.Require().Len(samples, 3)
	for i, want := range []string{"0.06", "0.055", "0.05"} {
		suite.True(decimalEqual(want, samples[i].Rate), "sample %d: want %s got %s", i, want, samples[i].Rate)
	}
	suite.Equal(daysAgo(89), samples[1].At)
}

func (suite *CurrencyRateServiceTestSuite) TestRateHistory_InvalidQuery() {
	ctx := context.Background()
	tests := []struct {
		name  string
		query domain.HistoryQuery
	}{
		{"division one", domain.HistoryQuery{StartDate: daysAgo(10), EndDate: daysAgo(0), Division: 1}},
		{"division above cap", domain.HistoryQuery{StartDate: daysAgo(10), EndDate: daysAgo(0), Division: 101}},
		{"start after end", domain.HistoryQuery{StartDate: daysAgo(0), EndDate: daysAgo(10), Division: 5}},
		{"start equals end", domain.HistoryQuery{StartDate: daysAgo(1), EndDate: daysAgo(1), Division: 5}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.RateHistory(ctx, testOwnerID, secID, tt.query)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "ListCurrenciesByOwner", mock.Anything, mock.Anything)
}

func TestCurrencyRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyRateServiceTestSuite))
}
