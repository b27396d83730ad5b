package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/networth_tracker/internal/apperrors"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/networth_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/networth_tracker/internal/core/ports/services"
	"github.com/SscSPs/networth_tracker/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// HistoryServiceTestSuite runs the real resolver, valuation and history
// services over mocked repositories.
type HistoryServiceTestSuite struct {
	suite.Suite
	mockUserRepo      *MockUserRepository
	mockCurrencyRepo  *MockCurrencyRepository
	mockRateDatumRepo *MockRateDatumRepository
	mockTxnRepo       *MockTransactionRepository
	mockContainerRepo *MockContainerRepository
	valuation         portssvc.ValuationSvc
	service           portssvc.HistorySvc
}

func (suite *HistoryServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockRateDatumRepo = new(MockRateDatumRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockContainerRepo = new(MockContainerRepository)

	repos := portsrepo.RepositoryProvider{
		CurrencyRepo:    suite.mockCurrencyRepo,
		RateDatumRepo:   suite.mockRateDatumRepo,
		TransactionRepo: suite.mockTxnRepo,
		ContainerRepo:   suite.mockContainerRepo,
		UserRepo:        suite.mockUserRepo,
	}
	rates := services.NewCurrencyRateService(suite.mockCurrencyRepo, suite.mockRateDatumRepo, newTestCaches(),
		services.WithRatePrecision(32))
	suite.valuation = services.NewValuationService(repos, rates,
		services.WithValuationPrecision(32),
		services.WithValuationClock(testNow))
	suite.service = services.NewHistoryService(repos, suite.valuation, rates,
		services.WithHistoryPrecision(32),
		services.WithHistoryDivisions(500, 5000),
		services.WithHistoryClock(testNow))

	suite.mockUserRepo.On("FindUserByID", mock.Anything, testOwnerID).Return(testUser(), nil)
	mockScenarioRates(suite.mockCurrencyRepo, suite.mockRateDatumRepo, scenarioCurrencies(), scenarioDatums())
}

func (suite *HistoryServiceTestSuite) withTxns(txns []domain.Transaction) {
	suite.mockTxnRepo.On("ListTransactionsByOwner", mock.Anything, testOwnerID, mock.Anything).Return(txns, nil)
}

func (suite *HistoryServiceTestSuite) TestBalanceHistory_Scenario() {
	suite.withTxns(balanceScenarioTxns())

	samples, err := suite.service.BalanceHistory(context.Background(), testOwnerID, domain.HistoryQuery{
		StartDate: daysAgo(59),
		EndDate:   daysAgo(-10),
		Division:  10,
	})

	suite.Require().NoError(err)
	suite.Require().Len(samples, 10)

	early := map[string]string{baseID: "100.0001"}
	late := map[string]string{baseID: "-3632.2999", thiID: "3672.9999", secID: "151312"}
	expected := []map[string]string{
		early, early, early, early, early, early,
		{baseID: "100.0001", thiID: "-0.0001"},
		{baseID: "-1719.9999", thiID: "12709.9999"},
		late, late,
	}
	step := (daysAgo(-10).UnixMilli() - daysAgo(59).UnixMilli()) / 9
	for i, sample := range samples {
		suite.Equal(daysAgo(59).UnixMilli()+step*int64(i), sample.At.UnixMilli(), "sample %d", i)
		suite.Require().Len(sample.Balances, len(expected[i]), "sample %d", i)
		for currencyID, want := range expected[i] {
			suite.True(decimalEqual(want, sample.Balances[currencyID]), "sample %d %s: want %s got %s", i, currencyID, want, sample.Balances[currencyID])
		}
	}
	suite.Equal(daysAgo(-10), samples[9].At)
}

func (suite *HistoryServiceTestSuite) TestBalanceHistory_SamplesAreIndependent() {
	suite.withTxns(balanceScenarioTxns())

	samples, err := suite.service.BalanceHistory(context.Background(), testOwnerID, domain.HistoryQuery{
		StartDate: daysAgo(59),
		EndDate:   daysAgo(-10),
		Division:  2,
	})

	suite.Require().NoError(err)
	samples[0].Balances[baseID] = dec("999")
	suite.True(decimalEqual("-3632.2999", samples[1].Balances[baseID]))
}

func (suite *HistoryServiceTestSuite) TestBalanceHistory_InvalidDivision() {
	for _, division := range []int{0, 1, -3} {
		_, err := suite.service.BalanceHistory(context.Background(), testOwnerID, domain.HistoryQuery{
			StartDate: daysAgo(100),
			EndDate:   daysAgo(0),
			Division:  division,
		})
		suite.ErrorIs(err, apperrors.ErrValidation, "division %d", division)
		var cmp *apperrors.ConstantComparisonError
		suite.ErrorAs(err, &cmp)
	}
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactionsByOwner", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HistoryServiceTestSuite) TestBalanceHistory_UnknownUser() {
	suite.mockUserRepo.On("FindUserByID", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.BalanceHistory(context.Background(), "ghost", domain.HistoryQuery{
		StartDate: daysAgo(10),
		EndDate:   daysAgo(0),
		Division:  2,
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	var notFound *apperrors.EntityNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("user", notFound.Entity)
}

func (suite *HistoryServiceTestSuite) TestNetworthHistory_Scenario() {
	suite.withTxns(networthScenarioTxns())

	samples, err := suite.service.NetworthHistory(context.Background(), testOwnerID, domain.HistoryQuery{
		StartDate: daysAgo(100),
		EndDate:   daysAgo(0),
		Division:  10,
	})

	suite.Require().NoError(err)
	suite.Require().Len(samples, 10)
	expected := []string{
		"0",
		"100.0001",
		"100.0001",
		"100.0001",
		"837682.85341342995169082125603865",
		"761545.65594483091787439613526571",
		"683588.45847623188405797101449275",
		"1212403.7784801212121212121212122",
		"1815058.3434286060606060606060607",
		"419569.18899",
	}
	for i, want := range expected {
		suite.True(decimalEqual(want, samples[i].Worth), "sample %d: want %s got %s", i, want, samples[i].Worth)
	}
}

func (suite *HistoryServiceTestSuite) TestContainerTimeline() {
	txns := buildTxns([]txnFixture{
		{to: "100", ageDays: 10, currencyID: baseID, containerID: "c0"},
		{to: "5", ageDays: 2, currencyID: baseID, containerID: "c1"},
	})
	transfer := buildTxns([]txnFixture{{from: "30", ageDays: 5, currencyID: baseID, containerID: "c0"}})[0]
	transfer.Fragments[0].ToAmount = decPtr("30")
	transfer.Fragments[0].ToCurrencyID = strPtr(baseID)
	transfer.Fragments[0].ToContainerID = strPtr("c1")
	transfer.TransactionID = "txn-transfer"
	txns = append(txns, transfer)

	suite.withTxns(txns)
	suite.mockContainerRepo.On("FindContainersByIDs", mock.Anything, testOwnerID, []string{"c0", "c1"}).
		Return(containers("c0", "c1"), nil)

	end := daysAgo(0)
	timeline, err := suite.service.ContainerTimeline(context.Background(), testOwnerID, []string{"c1", "c0", "c1"},
		domain.TimelineQuery{EndDate: &end, Division: 3})

	suite.Require().NoError(err)
	suite.Require().Len(timeline, 2)

	c0, c1 := timeline["c0"], timeline["c1"]
	suite.Require().Len(c0, 3)
	suite.Require().Len(c1, 3)
	suite.Equal(daysAgo(10), c0[0].At)
	suite.Equal(daysAgo(5), c0[1].At)

	for i, want := range []string{"100", "70", "70"} {
		suite.True(decimalEqual(want, c0[i].Worth), "c0 sample %d got %s", i, c0[i].Worth)
		suite.True(decimalEqual(want, c0[i].Balance[baseID]), "c0 sample %d", i)
	}
	suite.Empty(c1[0].Balance)
	for i, want := range []string{"0", "30", "35"} {
		suite.True(decimalEqual(want, c1[i].Worth), "c1 sample %d got %s", i, c1[i].Worth)
	}
}

func (suite *HistoryServiceTestSuite) TestContainerTimeline_NoTransactionsNeedsStart() {
	suite.withTxns(nil)
	suite.mockContainerRepo.On("FindContainersByIDs", mock.Anything, testOwnerID, []string{"c0"}).
		Return(containers("c0"), nil)

	_, err := suite.service.ContainerTimeline(context.Background(), testOwnerID, []string{"c0"}, domain.TimelineQuery{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	start := daysAgo(4)
	timeline, err := suite.service.ContainerTimeline(context.Background(), testOwnerID, []string{"c0"}, domain.TimelineQuery{StartDate: &start})
	suite.Require().NoError(err)
	suite.Len(timeline["c0"], 500)
	suite.Equal(testNow(), timeline["c0"][499].At)
	suite.True(timeline["c0"][0].Worth.IsZero())
}

func (suite *HistoryServiceTestSuite) TestContainerTimeline_ForeignContainer() {
	suite.mockContainerRepo.On("FindContainersByIDs", mock.Anything, testOwnerID, []string{"c0", "c9"}).
		Return(containers("c0"), nil)

	_, err := suite.service.ContainerTimeline(context.Background(), testOwnerID, []string{"c0", "c9"}, domain.TimelineQuery{})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	var notFound *apperrors.EntityNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("c9", notFound.ID)
}

func expenseScenarioTxns() []domain.Transaction {
	fixtures := []txnFixture{
		{to: "100.0001", ageDays: 90},
		{from: "0.0001", to: "0.0001", ageDays: 50},
		{from: "0.0001", ageDays: 18},
		{from: "0", to: "12710", ageDays: 6.9},
		{from: "1820", ageDays: 6.7},
		{to: "78777", ageDays: 1.5},
		{from: "1912.30", ageDays: 0.3},
		{from: "192", to: "72727", ageDays: 0.1},
		{from: "09037", ageDays: 0},
		{to: "999", ageDays: 1, excluded: true},
	}
	for i := range fixtures {
		fixtures[i].currencyID = baseID
		fixtures[i].containerID = []string{"c0", "c1", "c2"}[i%3]
	}
	return buildTxns(fixtures)
}

func defaultRanges() []domain.TimeRangeQuery {
	d30 := testNow().Add(-30 * 24 * time.Hour)
	d7 := testNow().Add(-7 * 24 * time.Hour)
	return []domain.TimeRangeQuery{
		{Name: "total"},
		{Name: "30d", AtOrAfter: &d30},
		{Name: "7d", AtOrAfter: &d7},
	}
}

func (suite *HistoryServiceTestSuite) TestIncomesAndExpenses_Windows() {
	suite.withTxns(expenseScenarioTxns())

	result, err := suite.service.IncomesAndExpenses(context.Background(), testOwnerID, defaultRanges(), domain.IncomeExpenseOptions{})

	suite.Require().NoError(err)
	expected := map[string][2]string{
		"total": {"164122.0001", "12769.3001"},
		"30d":   {"164022", "12769.3001"},
		"7d":    {"164022", "12769.3"},
	}
	for name, want := range expected {
		got := result[name]
		suite.True(decimalEqual(want[0], got.Incomes), "%s incomes: want %s got %s", name, want[0], got.Incomes)
		suite.True(decimalEqual(want[1], got.Expenses), "%s expenses: want %s got %s", name, want[1], got.Expenses)
	}
}

func (suite *HistoryServiceTestSuite) TestIncomesAndExpenses_IncludeExcluded() {
	suite.withTxns(expenseScenarioTxns())

	result, err := suite.service.IncomesAndExpenses(context.Background(), testOwnerID, defaultRanges(),
		domain.IncomeExpenseOptions{IncludeExcluded: true})

	suite.Require().NoError(err)
	suite.True(decimalEqual("165021", result["7d"].Incomes), "got %s", result["7d"].Incomes)
	suite.True(decimalEqual("12769.3", result["7d"].Expenses))
}

func (suite *HistoryServiceTestSuite) TestIncomesAndExpenses_BoundedRange() {
	suite.withTxns(expenseScenarioTxns())
	from, to := daysAgo(7), daysAgo(1)

	result, err := suite.service.IncomesAndExpenses(context.Background(), testOwnerID,
		[]domain.TimeRangeQuery{{Name: "lastWeek", AtOrAfter: &from, AtOrBefore: &to}}, domain.IncomeExpenseOptions{})

	suite.Require().NoError(err)
	suite.True(decimalEqual("91487", result["lastWeek"].Incomes), "got %s", result["lastWeek"].Incomes)
	suite.True(decimalEqual("1820", result["lastWeek"].Expenses))
}

func (suite *HistoryServiceTestSuite) TestIncomesAndExpenses_InvalidRanges() {
	ctx := context.Background()
	from, to := daysAgo(1), daysAgo(7)

	_, err := suite.service.IncomesAndExpenses(ctx, testOwnerID, nil, domain.IncomeExpenseOptions{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.IncomesAndExpenses(ctx, testOwnerID,
		[]domain.TimeRangeQuery{{Name: "a"}, {Name: "a"}}, domain.IncomeExpenseOptions{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.IncomesAndExpenses(ctx, testOwnerID,
		[]domain.TimeRangeQuery{{Name: "inverted", AtOrAfter: &from, AtOrBefore: &to}}, domain.IncomeExpenseOptions{})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *HistoryServiceTestSuite) TestTxnIncreaseInValue() {
	txn := buildTxns([]txnFixture{{from: "192", to: "72727", ageDays: 9, currencyID: secID, containerID: "c0"}})[0]

	delta, err := suite.service.TxnIncreaseInValue(context.Background(), testOwnerID, txn)

	suite.Require().NoError(err)
	// SEC holds its 15-day-old rate of 0.1
	suite.True(decimalEqual("7253.5", delta), "got %s", delta)
}

func (suite *HistoryServiceTestSuite) TestContainerTimeline_SameDateKeepsFeedOrder() {
	txns := buildTxns([]txnFixture{
		{to: "10", ageDays: 3, currencyID: baseID, containerID: "c0"},
		{from: "4", ageDays: 3, currencyID: baseID, containerID: "c0"},
	})
	suite.withTxns(txns)
	suite.mockContainerRepo.On("FindContainersByIDs", mock.Anything, testOwnerID, []string{"c0"}).
		Return(containers("c0"), nil)

	end := daysAgo(0)
	timeline, err := suite.service.ContainerTimeline(context.Background(), testOwnerID, []string{"c0"},
		domain.TimelineQuery{EndDate: &end, Division: 2})

	suite.Require().NoError(err)
	suite.True(decimalEqual("6", timeline["c0"][0].Worth), "the balance after the last same-date txn wins")
}

func TestHistoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryServiceTestSuite))
}
