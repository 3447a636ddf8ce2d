package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/entity/record"
)

// Storage is the record store contract implemented by every backend.
type Storage interface {
	AddCategory(ctx context.Context, name string) (record.Category, error)
	CategoryByName(ctx context.Context, name string) (record.Category, bool, error)
	ListCategories(ctx context.Context) ([]record.Category, error)
	AddExpense(ctx context.Context, rec record.Expense) (int64, error)
	ListExpenses(ctx context.Context) ([]record.ExpenseView, error)
	SumExpensesForMonth(ctx context.Context, monthKey string) (decimal.NullDecimal, error)
	SetBudget(ctx context.Context, monthKey string, amount decimal.Decimal) error
	GetBudget(ctx context.Context, monthKey string) (decimal.NullDecimal, error)
	AddSavingGoal(ctx context.Context, goal record.SavingGoal) (int64, error)
	Close() error
}

var (
	_ Storage = (*SQLStorage)(nil)
	_ Storage = (*InMemStorage)(nil)
)

// New opens the backend selected by the configured driver.
func New(cfg dbConfig) (Storage, error) {
	if cfg.Driver() == config.DriverMemory {
		return NewInMemStorage(), nil
	}
	return NewSQLStorage(cfg)
}
