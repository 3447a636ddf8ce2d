package reports

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/entity/record"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/reports/mock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func expenses() []record.ExpenseView {
	return []record.ExpenseView{
		{Amount: dec("1000"), Category: "Internet", Date: date("2023-11-20")},
		{Amount: dec("1500"), Category: "Shopping", Date: date("2024-01-15")},
		{Amount: dec("30.50"), Category: "Food", Date: date("2024-03-01")},
		{Amount: dec("100"), Category: "Shopping", Date: date("2024-03-11")},
		{Amount: dec("19.50"), Category: "Food", Date: date("2024-03-13")},
	}
}

func Test_OnGenerateReport_ShouldGroupAllExpenses(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewExpensesStorageMock(m)
	clock := mock.NewClockMock(m)

	storage.ListExpensesMock.Return(expenses(), nil)
	clock.NowMock.Return(date("2024-03-13"))

	generator := NewGenerator(storage, clock)
	report, err := generator.GenerateReport(ctx, PeriodAll)
	require.NoError(m, err)
	require.Len(m, report.Records, 3)
	assert.Equal(m, "Shopping", report.Records[0].Category)
	assert.True(m, dec("1600").Equal(report.Records[0].Amount))
	assert.Equal(m, "Internet", report.Records[1].Category)
	assert.Equal(m, "Food", report.Records[2].Category)
	assert.True(m, dec("50").Equal(report.Records[2].Amount))
	assert.True(m, dec("2650").Equal(report.Total))
}

func Test_OnGenerateReportForPeriod_ShouldFilterFromPeriodStart(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		period string
		total  string
	}{
		// Wednesday 2024-03-13: week starts on Monday 2024-03-11.
		{PeriodWeek, "119.50"},
		{PeriodMonth, "150"},
		{PeriodYear, "1650"},
	}
	for _, tc := range cases {
		t.Run(tc.period, func(t *testing.T) {
			m := minimock.NewController(t)
			storage := mock.NewExpensesStorageMock(m)
			clock := mock.NewClockMock(m)

			storage.ListExpensesMock.Return(expenses(), nil)
			clock.NowMock.Return(time.Date(2024, time.March, 13, 18, 30, 0, 0, time.UTC))

			generator := NewGenerator(storage, clock)
			report, err := generator.GenerateReport(ctx, tc.period)
			require.NoError(m, err)
			assert.Equal(m, tc.period, report.Period)
			assert.True(m, dec(tc.total).Equal(report.Total), "got %s", report.Total)
		})
	}
}

func Test_OnUnknownPeriod_ShouldFail(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewExpensesStorageMock(m)
	clock := mock.NewClockMock(m)

	generator := NewGenerator(storage, clock)
	_, err := generator.GenerateReport(ctx, "decade")
	assert.True(m, errors.Is(err, customerr.ErrUnknownPeriod))
}

func Test_OnCategoryTotals_ShouldSumPerCategoryByName(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewExpensesStorageMock(m)
	clock := mock.NewClockMock(m)

	storage.ListExpensesMock.Return(expenses(), nil)

	generator := NewGenerator(storage, clock)
	totals, err := generator.CategoryTotals(ctx)
	require.NoError(m, err)
	require.Len(m, totals, 3)
	assert.Equal(m, "Food", totals[0].Category)
	assert.Equal(m, "Internet", totals[1].Category)
	assert.Equal(m, "Shopping", totals[2].Category)
	assert.True(m, dec("1600").Equal(totals[2].Amount))
}

func Test_OnMonthlyTotals_ShouldFillGapMonthsWithZero(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewExpensesStorageMock(m)
	clock := mock.NewClockMock(m)

	storage.ListExpensesMock.Return(expenses(), nil)

	generator := NewGenerator(storage, clock)
	totals, err := generator.MonthlyTotals(ctx)
	require.NoError(m, err)

	months := make([]string, 0, len(totals))
	for _, total := range totals {
		months = append(months, total.Month)
	}
	assert.Equal(m, []string{"2023-11", "2023-12", "2024-01", "2024-02", "2024-03"}, months)
	assert.True(m, totals[1].Amount.IsZero())
	assert.True(m, totals[3].Amount.IsZero())
	assert.True(m, dec("150").Equal(totals[4].Amount))
}

func Test_OnMonthlyTotalsWithoutExpenses_ShouldReturnEmpty(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	storage := mock.NewExpensesStorageMock(m)
	clock := mock.NewClockMock(m)

	storage.ListExpensesMock.Return(nil, nil)

	generator := NewGenerator(storage, clock)
	totals, err := generator.MonthlyTotals(ctx)
	require.NoError(m, err)
	assert.Empty(m, totals)
}

func Test_OnFormatReport_ShouldListCategoriesAndTotal(t *testing.T) {
	report := Report{
		Records: []record.CategoryTotal{
			{Category: "Shopping", Amount: dec("1600")},
			{Category: "Food", Amount: dec("12.5")},
		},
		Total: dec("1612.5"),
	}
	assert.Equal(t, "Shopping: 1600.00\nFood: 12.50\n\nTotal: 1612.50", FormatReport(report))
	assert.Equal(t, "No expenses for this period", FormatReport(Report{}))
}

func Test_OnSendReport_ShouldSendFormattedText(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	client := mock.NewMessageSenderMock(m)

	client.SendMessageMock.
		Expect("Food: 3.00\n\nTotal: 3.00", int64(42)).
		Return(nil)

	sender := NewSender(client)
	err := sender.SendReport(ctx, 42, Report{
		Records: []record.CategoryTotal{{Category: "Food", Amount: dec("3")}},
		Total:   dec("3"),
	})
	assert.NoError(m, err)
}

func Test_OnReportPeriods_ShouldListNamedPeriods(t *testing.T) {
	assert.Equal(t, []string{"month", "week", "year"}, ReportPeriods())
}
