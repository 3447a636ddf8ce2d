// Package expenses validates user input before it is written to the store.
package expenses

import (
	"context"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/month"
	"max.ks1230/expense-tracker/internal/entity/record"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/customerr"
)

type recordStorage interface {
	AddCategory(ctx context.Context, name string) (record.Category, error)
	CategoryByName(ctx context.Context, name string) (record.Category, bool, error)
	AddExpense(ctx context.Context, rec record.Expense) (int64, error)
	SetBudget(ctx context.Context, monthKey string, amount decimal.Decimal) error
	AddSavingGoal(ctx context.Context, goal record.SavingGoal) (int64, error)
}

type Service struct {
	storage recordStorage
}

func NewService(storage recordStorage) *Service {
	return &Service{storage: storage}
}

// NewExpense is an expense as entered by the user, category referenced by name.
type NewExpense struct {
	Amount      decimal.Decimal
	Category    string
	Date        string
	Description string
}

func (s *Service) AddCategory(ctx context.Context, name string) (record.Category, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "addCategory")
	defer span.Finish()

	name = strings.TrimSpace(name)
	if name == "" {
		return record.Category{}, errors.Wrap(customerr.ErrEmptyName, "add category")
	}

	_, exists, err := s.storage.CategoryByName(ctx, name)
	if err != nil {
		return record.Category{}, errors.Wrap(err, "add category")
	}
	if exists {
		return record.Category{}, errors.Wrapf(customerr.ErrCategoryExists, "add category %q", name)
	}

	category, err := s.storage.AddCategory(ctx, name)
	if err != nil {
		return record.Category{}, errors.Wrap(err, "add category")
	}
	logger.Info("category added", zap.Int64("id", category.ID), zap.String("name", category.Name))
	return category, nil
}

// AddExpense rejects the write when the category does not exist.
func (s *Service) AddExpense(ctx context.Context, exp NewExpense) (int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "addExpense")
	defer span.Finish()

	if !exp.Amount.IsPositive() {
		return 0, errors.Wrap(customerr.ErrInvalidAmount, "add expense")
	}
	if _, err := time.Parse(month.DateLayout, exp.Date); err != nil {
		return 0, errors.Wrapf(customerr.ErrInvalidDate, "add expense: %q", exp.Date)
	}

	name := strings.TrimSpace(exp.Category)
	category, ok, err := s.storage.CategoryByName(ctx, name)
	if err != nil {
		return 0, errors.Wrap(err, "add expense")
	}
	if !ok {
		return 0, errors.Wrap(&customerr.MissingCategoryError{Name: name}, "add expense")
	}

	id, err := s.storage.AddExpense(ctx, record.Expense{
		Amount:      exp.Amount,
		CategoryID:  category.ID,
		Date:        exp.Date,
		Description: strings.TrimSpace(exp.Description),
	})
	if err != nil {
		return 0, errors.Wrap(err, "add expense")
	}
	logger.Info("expense added",
		zap.Int64("id", id),
		zap.String("category", name),
		zap.Stringer("amount", exp.Amount),
		zap.String("date", exp.Date))
	return id, nil
}

// SetBudget overwrites any budget already set for the month.
func (s *Service) SetBudget(ctx context.Context, monthKey string, amount decimal.Decimal) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "setBudget")
	defer span.Finish()

	key, err := month.Parse(monthKey)
	if err != nil {
		return errors.Wrap(err, "set budget")
	}
	if amount.IsNegative() {
		return errors.Wrap(customerr.ErrInvalidAmount, "set budget")
	}

	if err = s.storage.SetBudget(ctx, key.String(), amount); err != nil {
		return errors.Wrap(err, "set budget")
	}
	logger.Info("budget set", zap.String("month", key.String()), zap.Stringer("amount", amount))
	return nil
}

func (s *Service) AddSavingGoal(ctx context.Context, name string, amount decimal.Decimal) (int64, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "addSavingGoal")
	defer span.Finish()

	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errors.Wrap(customerr.ErrEmptyName, "add saving goal")
	}
	if !amount.IsPositive() {
		return 0, errors.Wrap(customerr.ErrInvalidAmount, "add saving goal")
	}

	id, err := s.storage.AddSavingGoal(ctx, record.SavingGoal{Name: name, Amount: amount})
	if err != nil {
		return 0, errors.Wrap(err, "add saving goal")
	}
	logger.Info("saving goal added", zap.Int64("id", id), zap.String("name", name))
	return id, nil
}

// ParseAmount reads a decimal amount, accepting a comma as the decimal separator.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrapf(customerr.ErrInvalidAmount, "parse %q", s)
	}
	return amount, nil
}
