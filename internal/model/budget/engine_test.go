package budget

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"max.ks1230/expense-tracker/internal/model/budget/mock"
	"max.ks1230/expense-tracker/internal/model/customerr"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func assertDecimal(t assert.TestingT, want string, got decimal.Decimal) {
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func Test_OnMonthlyExpenseTotal_ShouldReturnStoredSum(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewRecordStoreMock(m)
	clock := mock.NewClockMock(m)

	storage.SumExpensesForMonthMock.
		Inspect(func(_ context.Context, month string) {
			assert.Equal(m, "2024-03", month)
		}).
		Return(decimal.NewNullDecimal(dec("50")), nil)

	engine := NewEngine(storage, clock)
	total, err := engine.MonthlyExpenseTotal(ctx, "2024-03")
	assert.NoError(m, err)
	assertDecimal(m, "50", total)
}

func Test_OnMonthlyExpenseTotalWithoutExpenses_ShouldReturnZero(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewRecordStoreMock(m)
	clock := mock.NewClockMock(m)

	storage.SumExpensesForMonthMock.Return(decimal.NullDecimal{}, nil)

	engine := NewEngine(storage, clock)
	total, err := engine.MonthlyExpenseTotal(ctx, "2024-05")
	assert.NoError(m, err)
	assert.True(m, total.IsZero())
}

func Test_OnBudgetStatus_ShouldSubtractTotalFromBudget(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewRecordStoreMock(m)
	clock := mock.NewClockMock(m)

	storage.
		GetBudgetMock.
		Inspect(func(_ context.Context, month string) {
			assert.Equal(m, "2024-03", month)
		}).
		Return(decimal.NewNullDecimal(dec("300")), nil).
		SumExpensesForMonthMock.
		Inspect(func(_ context.Context, month string) {
			assert.Equal(m, "2024-03", month)
		}).
		Return(decimal.NewNullDecimal(dec("120")), nil)

	engine := NewEngine(storage, clock)
	status, err := engine.BudgetStatus(ctx, "2024-03")
	assert.NoError(m, err)
	assertDecimal(m, "120", status.TotalExpense)
	assertDecimal(m, "300", status.Budget)
	assertDecimal(m, "180", status.Remaining)
}

func Test_OnBudgetStatusWithoutRecords_ShouldReturnZeros(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewRecordStoreMock(m)
	clock := mock.NewClockMock(m)

	storage.
		GetBudgetMock.Return(decimal.NullDecimal{}, nil).
		SumExpensesForMonthMock.Return(decimal.NullDecimal{}, nil)

	engine := NewEngine(storage, clock)
	status, err := engine.BudgetStatus(ctx, "2024-04")
	assert.NoError(m, err)
	assert.True(m, status.TotalExpense.IsZero())
	assert.True(m, status.Budget.IsZero())
	assert.True(m, status.Remaining.IsZero())
}

func Test_OnOverspentMonth_ShouldReturnNegativeRemaining(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewRecordStoreMock(m)
	clock := mock.NewClockMock(m)

	storage.
		GetBudgetMock.Return(decimal.NewNullDecimal(dec("100.10")), nil).
		SumExpensesForMonthMock.Return(decimal.NewNullDecimal(dec("250.35")), nil)

	engine := NewEngine(storage, clock)
	status, err := engine.BudgetStatus(ctx, "2024-03")
	assert.NoError(m, err)
	assertDecimal(m, "-150.25", status.Remaining)
}

func Test_OnExpensesWithoutBudget_ShouldTreatBudgetAsZero(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewRecordStoreMock(m)
	clock := mock.NewClockMock(m)

	storage.
		GetBudgetMock.Return(decimal.NullDecimal{}, nil).
		SumExpensesForMonthMock.Return(decimal.NewNullDecimal(dec("42")), nil)

	engine := NewEngine(storage, clock)
	status, err := engine.BudgetStatus(ctx, "2024-03")
	assert.NoError(m, err)
	assert.True(m, status.Budget.IsZero())
	assertDecimal(m, "-42", status.Remaining)
}

func Test_OnDailySpendingGoal_ShouldSpreadRemainingOverDaysLeft(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewRecordStoreMock(m)
	clock := mock.NewClockMock(m)

	storage.
		GetBudgetMock.Return(decimal.NewNullDecimal(dec("300")), nil).
		SumExpensesForMonthMock.Return(decimal.NewNullDecimal(dec("120")), nil)
	clock.NowMock.Return(day(2024, time.March, 22))

	engine := NewEngine(storage, clock)
	goal, err := engine.DailySpendingGoal(ctx, "2024-03")
	assert.NoError(m, err)
	assertDecimal(m, "20", goal)
}

func Test_OnLastDayOfMonth_ShouldReturnZeroGoal(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewRecordStoreMock(m)
	clock := mock.NewClockMock(m)

	storage.
		GetBudgetMock.Return(decimal.NewNullDecimal(dec("300")), nil).
		SumExpensesForMonthMock.Return(decimal.NewNullDecimal(dec("120")), nil)
	clock.NowMock.Return(day(2024, time.February, 29))

	engine := NewEngine(storage, clock)
	goal, err := engine.DailySpendingGoal(ctx, "2024-02")
	assert.NoError(m, err)
	assert.True(m, goal.IsZero())
}

func Test_OnPastMonth_ShouldReturnZeroGoal(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewRecordStoreMock(m)
	clock := mock.NewClockMock(m)

	storage.
		GetBudgetMock.Return(decimal.NewNullDecimal(dec("300")), nil).
		SumExpensesForMonthMock.Return(decimal.NewNullDecimal(dec("120")), nil)
	clock.NowMock.Return(day(2024, time.April, 3))

	engine := NewEngine(storage, clock)
	goal, err := engine.DailySpendingGoal(ctx, "2024-03")
	assert.NoError(m, err)
	assert.True(m, goal.IsZero())
}

func Test_OnFutureMonth_ShouldSpreadOverWholeMonth(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewRecordStoreMock(m)
	clock := mock.NewClockMock(m)

	storage.
		GetBudgetMock.Return(decimal.NewNullDecimal(dec("600")), nil).
		SumExpensesForMonthMock.Return(decimal.NullDecimal{}, nil)
	clock.NowMock.Return(day(2024, time.March, 31))

	engine := NewEngine(storage, clock)
	goal, err := engine.DailySpendingGoal(ctx, "2024-04")
	assert.NoError(m, err)
	assertDecimal(m, "20", goal)
}

func Test_OnInvalidMonth_ShouldFailWithoutReadingStore(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewRecordStoreMock(m)
	clock := mock.NewClockMock(m)

	engine := NewEngine(storage, clock)
	for _, key := range []string{"", "2024-3", "2024-13", "March 2024", "2024-03-01"} {
		_, err := engine.MonthlyExpenseTotal(ctx, key)
		assert.True(m, errors.Is(err, customerr.ErrInvalidMonth), "key %q", key)

		_, err = engine.BudgetStatus(ctx, key)
		assert.True(m, errors.Is(err, customerr.ErrInvalidMonth), "key %q", key)

		_, err = engine.DailySpendingGoal(ctx, key)
		assert.True(m, errors.Is(err, customerr.ErrInvalidMonth), "key %q", key)
	}
}

func Test_OnStoreFailure_ShouldWrapError(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("database is locked")

	m := minimock.NewController(t)
	storage := mock.NewRecordStoreMock(m)
	clock := mock.NewClockMock(m)

	storage.GetBudgetMock.Return(decimal.NullDecimal{}, storeErr)

	engine := NewEngine(storage, clock)
	_, err := engine.BudgetStatus(ctx, "2024-03")
	assert.ErrorIs(m, err, storeErr)
	assert.Contains(m, err.Error(), "budget status")
}

func Test_OnSystemClock_ShouldUseLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	got := SystemClock{Location: loc}.Now()
	assert.Equal(t, loc, got.Location())
}

func Test_OnFormatting_ShouldUseTwoDecimals(t *testing.T) {
	status := Status{TotalExpense: dec("120"), Budget: dec("300"), Remaining: dec("180")}
	assert.Equal(t, "Total expense: 120.00, Budget: 300.00, Remaining: 180.00", status.String())
	assert.Equal(t, "Daily spending goal: 6.67", FormatGoal(dec("200").Div(dec("30"))))
}
