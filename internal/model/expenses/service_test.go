package expenses

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/storage"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Test_OnAddCategory_ShouldTrimAndRejectDuplicates(t *testing.T) {
	ctx := context.Background()
	service := NewService(storage.NewInMemStorage())

	category, err := service.AddCategory(ctx, "  Food ")
	require.NoError(t, err)
	assert.Equal(t, "Food", category.Name)

	_, err = service.AddCategory(ctx, "Food")
	assert.True(t, errors.Is(err, customerr.ErrCategoryExists))

	_, err = service.AddCategory(ctx, "   ")
	assert.True(t, errors.Is(err, customerr.ErrEmptyName))
}

func Test_OnAddExpense_ShouldStoreAgainstExistingCategory(t *testing.T) {
	ctx := context.Background()
	store := storage.NewInMemStorage()
	service := NewService(store)

	_, err := service.AddCategory(ctx, "Food")
	require.NoError(t, err)

	_, err = service.AddExpense(ctx, NewExpense{Amount: dec("50"), Category: "Food", Date: "2024-03-05"})
	require.NoError(t, err)

	sum, err := store.SumExpensesForMonth(ctx, "2024-03")
	require.NoError(t, err)
	assert.True(t, dec("50").Equal(sum.Decimal))
}

func Test_OnAddExpenseToMissingCategory_ShouldRejectWrite(t *testing.T) {
	ctx := context.Background()
	store := storage.NewInMemStorage()
	service := NewService(store)

	_, err := service.AddExpense(ctx, NewExpense{Amount: dec("10"), Category: "Pets", Date: "2024-03-05"})
	require.Error(t, err)
	assert.True(t, customerr.IsMissingCategory(err))
	assert.Contains(t, err.Error(), "category 'Pets' does not exist")

	sum, err := store.SumExpensesForMonth(ctx, "2024-03")
	require.NoError(t, err)
	assert.False(t, sum.Valid)
}

func Test_OnAddExpenseWithBadInput_ShouldFail(t *testing.T) {
	ctx := context.Background()
	service := NewService(storage.NewInMemStorage())
	_, err := service.AddCategory(ctx, "Food")
	require.NoError(t, err)

	_, err = service.AddExpense(ctx, NewExpense{Amount: dec("0"), Category: "Food", Date: "2024-03-05"})
	assert.True(t, errors.Is(err, customerr.ErrInvalidAmount))

	_, err = service.AddExpense(ctx, NewExpense{Amount: dec("-3"), Category: "Food", Date: "2024-03-05"})
	assert.True(t, errors.Is(err, customerr.ErrInvalidAmount))

	for _, date := range []string{"", "2024-3-5", "05.03.2024", "2024-02-30"} {
		_, err = service.AddExpense(ctx, NewExpense{Amount: dec("1"), Category: "Food", Date: date})
		assert.True(t, errors.Is(err, customerr.ErrInvalidDate), "date %q", date)
	}
}

func Test_OnSetBudget_ShouldValidateMonthAndAmount(t *testing.T) {
	ctx := context.Background()
	store := storage.NewInMemStorage()
	service := NewService(store)

	require.NoError(t, service.SetBudget(ctx, "2024-03", dec("300")))
	require.NoError(t, service.SetBudget(ctx, "2024-03", dec("0")))

	budget, err := store.GetBudget(ctx, "2024-03")
	require.NoError(t, err)
	assert.True(t, budget.Valid)
	assert.True(t, budget.Decimal.IsZero())

	err = service.SetBudget(ctx, "03-2024", dec("300"))
	assert.True(t, errors.Is(err, customerr.ErrInvalidMonth))

	err = service.SetBudget(ctx, "2024-04", dec("-1"))
	assert.True(t, errors.Is(err, customerr.ErrInvalidAmount))
}

func Test_OnAddSavingGoal_ShouldValidateInput(t *testing.T) {
	ctx := context.Background()
	service := NewService(storage.NewInMemStorage())

	id, err := service.AddSavingGoal(ctx, "Bike", dec("900"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = service.AddSavingGoal(ctx, "", dec("900"))
	assert.True(t, errors.Is(err, customerr.ErrEmptyName))

	_, err = service.AddSavingGoal(ctx, "Trip", dec("0"))
	assert.True(t, errors.Is(err, customerr.ErrInvalidAmount))
}

func Test_OnParseAmount_ShouldAcceptCommaSeparator(t *testing.T) {
	amount, err := ParseAmount("12,50")
	require.NoError(t, err)
	assert.True(t, dec("12.5").Equal(amount))

	amount, err = ParseAmount(" 7.25 ")
	require.NoError(t, err)
	assert.True(t, dec("7.25").Equal(amount))

	_, err = ParseAmount("ten")
	assert.True(t, errors.Is(err, customerr.ErrInvalidAmount))
}
