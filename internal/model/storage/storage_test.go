package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/entity/record"
)

type testConfig struct {
	driver string
	path   string
}

func (c testConfig) Driver() string   { return c.driver }
func (c testConfig) Path() string     { return c.path }
func (c testConfig) Host() string     { return "" }
func (c testConfig) Username() string { return "" }
func (c testConfig) Password() string { return "" }
func (c testConfig) Database() string { return "" }

func backends(t *testing.T) map[string]Storage {
	t.Helper()

	sqlStore, err := New(testConfig{
		driver: config.DriverSQLite,
		path:   filepath.Join(t.TempDir(), "nested", "expenses.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, sqlStore.Close())
	})

	memStore, err := New(testConfig{driver: config.DriverMemory})
	require.NoError(t, err)

	return map[string]Storage{
		"sqlite": sqlStore,
		"memory": memStore,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Test_OnNoRecords_ShouldReturnNullAggregates(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			sum, err := s.SumExpensesForMonth(ctx, "2024-03")
			require.NoError(t, err)
			assert.False(t, sum.Valid)

			budget, err := s.GetBudget(ctx, "2024-03")
			require.NoError(t, err)
			assert.False(t, budget.Valid)
		})
	}
}

func Test_OnExpenses_ShouldSumOnlyTheRequestedMonth(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			food, err := s.AddCategory(ctx, "Food")
			require.NoError(t, err)
			rent, err := s.AddCategory(ctx, "Rent")
			require.NoError(t, err)

			for _, e := range []record.Expense{
				{Amount: dec("50"), CategoryID: food.ID, Date: "2024-03-05"},
				{Amount: dec("0.10"), CategoryID: food.ID, Date: "2024-03-31", Description: "gum"},
				{Amount: dec("0.20"), CategoryID: rent.ID, Date: "2024-03-01"},
				{Amount: dec("700"), CategoryID: rent.ID, Date: "2024-04-01"},
				{Amount: dec("12"), CategoryID: food.ID, Date: "2024-02-29"},
			} {
				_, err = s.AddExpense(ctx, e)
				require.NoError(t, err)
			}

			sum, err := s.SumExpensesForMonth(ctx, "2024-03")
			require.NoError(t, err)
			require.True(t, sum.Valid)
			assert.True(t, dec("50.30").Equal(sum.Decimal), "got %s", sum.Decimal)

			sum, err = s.SumExpensesForMonth(ctx, "2024-05")
			require.NoError(t, err)
			assert.False(t, sum.Valid)

			sum, err = s.SumExpensesForMonth(ctx, "March")
			require.NoError(t, err)
			assert.False(t, sum.Valid, "malformed month matches nothing")
		})
	}
}

func Test_OnSetBudgetTwice_ShouldKeepLastValue(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.SetBudget(ctx, "2024-03", dec("300")))
			require.NoError(t, s.SetBudget(ctx, "2024-03", dec("450.50")))
			require.NoError(t, s.SetBudget(ctx, "2024-04", dec("100")))

			budget, err := s.GetBudget(ctx, "2024-03")
			require.NoError(t, err)
			require.True(t, budget.Valid)
			assert.True(t, dec("450.50").Equal(budget.Decimal), "got %s", budget.Decimal)
		})
	}
}

func Test_OnCategories_ShouldLookupAndList(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.AddCategory(ctx, "Travel")
			require.NoError(t, err)
			food, err := s.AddCategory(ctx, "Food")
			require.NoError(t, err)

			_, err = s.AddCategory(ctx, "Food")
			assert.Error(t, err, "names are unique")

			found, ok, err := s.CategoryByName(ctx, "Food")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, food, found)

			_, ok, err = s.CategoryByName(ctx, "Pets")
			require.NoError(t, err)
			assert.False(t, ok)

			all, err := s.ListCategories(ctx)
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, "Food", all[0].Name)
			assert.Equal(t, "Travel", all[1].Name)
		})
	}
}

func Test_OnListExpenses_ShouldJoinCategoryNamesInDateOrder(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			food, err := s.AddCategory(ctx, "Food")
			require.NoError(t, err)
			fun, err := s.AddCategory(ctx, "Fun")
			require.NoError(t, err)

			_, err = s.AddExpense(ctx, record.Expense{Amount: dec("20"), CategoryID: fun.ID, Date: "2024-03-10", Description: "cinema"})
			require.NoError(t, err)
			_, err = s.AddExpense(ctx, record.Expense{Amount: dec("7.25"), CategoryID: food.ID, Date: "2024-01-02"})
			require.NoError(t, err)

			exps, err := s.ListExpenses(ctx)
			require.NoError(t, err)
			require.Len(t, exps, 2)

			assert.Equal(t, "Food", exps[0].Category)
			assert.Equal(t, "2024-01-02", exps[0].Date.Format("2006-01-02"))
			assert.True(t, dec("7.25").Equal(exps[0].Amount))

			assert.Equal(t, "Fun", exps[1].Category)
			assert.Equal(t, "cinema", exps[1].Description)
		})
	}
}

func Test_OnAddSavingGoal_ShouldAssignIDs(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			first, err := s.AddSavingGoal(ctx, record.SavingGoal{Name: "Bike", Amount: dec("900")})
			require.NoError(t, err)
			second, err := s.AddSavingGoal(ctx, record.SavingGoal{Name: "Trip", Amount: dec("1500")})
			require.NoError(t, err)
			assert.Greater(t, second, first)
		})
	}
}

func Test_OnReopen_ShouldKeepRecords(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig{driver: config.DriverSQLite, path: filepath.Join(t.TempDir(), "expenses.db")}

	s, err := NewSQLStorage(cfg)
	require.NoError(t, err)
	require.NoError(t, s.SetBudget(ctx, "2024-03", dec("300")))
	require.NoError(t, s.Close())

	s, err = NewSQLStorage(cfg)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	budget, err := s.GetBudget(ctx, "2024-03")
	require.NoError(t, err)
	assert.True(t, dec("300").Equal(budget.Decimal))
}
