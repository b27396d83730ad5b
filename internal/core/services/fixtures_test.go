package services_test

import (
	"fmt"
	"math"
	"time"

	"github.com/SscSPs/networth_tracker/internal/caches"
	"github.com/SscSPs/networth_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const (
	testOwnerID = "owner-1"
	baseID      = "cur-base"
	secID       = "cur-sec"
	thiID       = "cur-thi"
	dayMillis   = int64(86_400_000)
)

var testNowMillis = int64(1_700_000_000_000)

func testNow() time.Time {
	return time.UnixMilli(testNowMillis).UTC()
}

// daysAgo is exact to the millisecond, so fractional ages land where expected.
func daysAgo(days float64) time.Time {
	return time.UnixMilli(testNowMillis - int64(math.Round(days*float64(dayMillis)))).UTC()
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func newTestCaches() *caches.Set {
	return caches.NewSet(caches.Config{}, caches.Config{}, caches.Config{}, nil)
}

func testUser() *domain.User {
	return &domain.User{UserID: testOwnerID, Name: "Owner"}
}

func baseCurrency() domain.Currency {
	return domain.Currency{CurrencyID: baseID, OwnerID: testOwnerID, Name: "BASE", Ticker: "BASE", IsBase: true}
}

func fallbackCurrency(id, ticker, amount, fallbackID string) domain.Currency {
	return domain.Currency{
		CurrencyID:             id,
		OwnerID:                testOwnerID,
		Name:                   ticker,
		Ticker:                 ticker,
		FallbackRateAmount:     decPtr(amount),
		FallbackRateCurrencyID: strPtr(fallbackID),
	}
}

// scenarioCurrencies is BASE, SEC falling back to 1 BASE and THI falling back to 1 SEC.
func scenarioCurrencies() []domain.Currency {
	return []domain.Currency{
		baseCurrency(),
		fallbackCurrency(secID, "SEC", "1", baseID),
		fallbackCurrency(thiID, "THI", "1", secID),
	}
}

func datum(refID, amount, refAmountID string, ageDays float64) domain.RateDatum {
	return domain.RateDatum{
		RateDatumID:         fmt.Sprintf("datum-%s-%v", refID, ageDays),
		OwnerID:             testOwnerID,
		Amount:              dec(amount),
		RefCurrencyID:       refID,
		RefAmountCurrencyID: refAmountID,
		Date:                daysAgo(ageDays),
	}
}

// scenarioDatums prices SEC in BASE, and THI partly in BASE and partly in SEC.
func scenarioDatums() map[string][]domain.RateDatum {
	return map[string][]domain.RateDatum{
		secID: {
			datum(secID, "0.06", baseID, 100),
			datum(secID, "0.05", baseID, 78),
			datum(secID, "0.04", baseID, 48),
			datum(secID, "0.1", baseID, 15),
		},
		thiID: {
			datum(thiID, "78", baseID, 78),
			datum(thiID, "770", secID, 32),
			datum(thiID, "147.22", baseID, 10),
			datum(thiID, "1111", secID, 0),
		},
	}
}

// txnFixture describes a single-fragment transaction. An empty amount leaves the
// side out; "0" is a present side moving nothing.
type txnFixture struct {
	from, to    string
	ageDays     float64
	currencyID  string
	containerID string
	excluded    bool
}

func buildTxns(fixtures []txnFixture) []domain.Transaction {
	out := make([]domain.Transaction, len(fixtures))
	for i, fx := range fixtures {
		var f domain.TransactionFragment
		if fx.from != "" {
			f.FromAmount = decPtr(fx.from)
			f.FromCurrencyID = strPtr(fx.currencyID)
			f.FromContainerID = strPtr(fx.containerID)
		}
		if fx.to != "" {
			f.ToAmount = decPtr(fx.to)
			f.ToCurrencyID = strPtr(fx.currencyID)
			f.ToContainerID = strPtr(fx.containerID)
		}
		out[i] = domain.Transaction{
			TransactionID:               fmt.Sprintf("txn-%d", i),
			OwnerID:                     testOwnerID,
			Title:                       fmt.Sprintf("txn %d", i),
			CreationDate:                daysAgo(fx.ageDays),
			ExcludedFromIncomesExpenses: fx.excluded,
			Fragments:                   []domain.TransactionFragment{f},
		}
	}
	return out
}

// networthScenarioTxns is listed out of date order on purpose.
func networthScenarioTxns() []domain.Transaction {
	return buildTxns([]txnFixture{
		{from: "1912.30", ageDays: 18, currencyID: baseID, containerID: "c2"},
		{to: "100.0001", ageDays: 90, currencyID: baseID, containerID: "c0"},
		{from: "0.0001", to: "0.0001", ageDays: 85, currencyID: baseID, containerID: "c1"},
		{from: "0.0001", ageDays: 65, currencyID: thiID, containerID: "c2"},
		{from: "09037", ageDays: 0, currencyID: thiID, containerID: "c1"},
		{from: "0", to: "12710", ageDays: 60, currencyID: thiID, containerID: "c1"},
		{from: "1820", ageDays: 40, currencyID: baseID, containerID: "c0"},
		{to: "78777", ageDays: 32, currencyID: secID, containerID: "c1"},
		{from: "192", to: "72727", ageDays: 9, currencyID: secID, containerID: "c0"},
	})
}

func balanceScenarioTxns() []domain.Transaction {
	return buildTxns([]txnFixture{
		{from: "192", to: "72727", ageDays: 0.1, currencyID: secID, containerID: "c0"},
		{to: "100.0001", ageDays: 90, currencyID: baseID, containerID: "c0"},
		{from: "0.0001", to: "0.0001", ageDays: 50, currencyID: baseID, containerID: "c1"},
		{from: "0.0001", ageDays: 18, currencyID: thiID, containerID: "c2"},
		{from: "0", to: "12710", ageDays: 6.9, currencyID: thiID, containerID: "c1"},
		{from: "1820", ageDays: 6.7, currencyID: baseID, containerID: "c0"},
		{to: "78777", ageDays: 1.5, currencyID: secID, containerID: "c1"},
		{from: "1912.30", ageDays: 0.3, currencyID: baseID, containerID: "c2"},
		{from: "09037", ageDays: 0, currencyID: thiID, containerID: "c1"},
	})
}

func containers(ids ...string) []domain.Container {
	out := make([]domain.Container, len(ids))
	for i, id := range ids {
		out[i] = domain.Container{ContainerID: id, OwnerID: testOwnerID, Name: id}
	}
	return out
}

// mockScenarioRates wires the currency and datum repositories to the scenario.
func mockScenarioRates(currencyRepo *MockCurrencyRepository, datumRepo *MockRateDatumRepository, currencies []domain.Currency, datums map[string][]domain.RateDatum) {
	currencyRepo.On("ListCurrenciesByOwner", mock.Anything, testOwnerID).Return(currencies, nil)
	for _, c := range currencies {
		if c.IsBase {
			continue
		}
		datumRepo.On("ListRateDatumsByCurrency", mock.Anything, testOwnerID, c.CurrencyID).Return(datums[c.CurrencyID], nil)
	}
}

// decimalEqual compares by value, so trailing zeros do not matter.
func decimalEqual(want string, got decimal.Decimal) bool {
	return dec(want).Equal(got)
}
