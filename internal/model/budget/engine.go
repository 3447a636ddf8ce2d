// Package budget derives spending metrics for a month from stored expenses and
// budgets. It keeps no state: every call reads the store again.
package budget

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/month"
	"max.ks1230/expense-tracker/internal/logger"
)

type recordStore interface {
	SumExpensesForMonth(ctx context.Context, month string) (decimal.NullDecimal, error)
	GetBudget(ctx context.Context, month string) (decimal.NullDecimal, error)
}

type clock interface {
	Now() time.Time
}

// Status is the budget picture of one month. Remaining is negative when the
// month is overspent.
type Status struct {
	TotalExpense decimal.Decimal
	Budget       decimal.Decimal
	Remaining    decimal.Decimal
}

type Engine struct {
	storage recordStore
	clock   clock
}

func NewEngine(storage recordStore, clock clock) *Engine {
	return &Engine{
		storage: storage,
		clock:   clock,
	}
}

// MonthlyExpenseTotal sums the expenses dated in the month, zero when none.
func (e *Engine) MonthlyExpenseTotal(ctx context.Context, monthKey string) (total decimal.Decimal, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "monthlyExpenseTotal")
	defer finishSpan(span, &err)
	span.SetTag("month", monthKey)

	key, err := month.Parse(monthKey)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "monthly expense total")
	}
	total, err = e.monthlyTotal(ctx, key)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "monthly expense total")
	}
	observeComputation("total")
	return total, nil
}

// BudgetStatus reports the month's spending against its budget. A month
// without a budget has a budget of zero.
func (e *Engine) BudgetStatus(ctx context.Context, monthKey string) (status Status, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "budgetStatus")
	defer finishSpan(span, &err)
	span.SetTag("month", monthKey)

	key, err := month.Parse(monthKey)
	if err != nil {
		return Status{}, errors.Wrap(err, "budget status")
	}
	status, err = e.status(ctx, key)
	if err != nil {
		return Status{}, errors.Wrap(err, "budget status")
	}

	logger.Debug("budget status",
		zap.String("month", key.String()),
		zap.Stringer("total", status.TotalExpense),
		zap.Stringer("budget", status.Budget),
		zap.Stringer("remaining", status.Remaining))
	observeComputation("status")
	return status, nil
}

// DailySpendingGoal spreads the remaining budget over the days of the month
// still ahead. It is zero once no day is left: on the last day of the month
// and for past months.
func (e *Engine) DailySpendingGoal(ctx context.Context, monthKey string) (goal decimal.Decimal, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "dailySpendingGoal")
	defer finishSpan(span, &err)
	span.SetTag("month", monthKey)

	key, err := month.Parse(monthKey)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "daily spending goal")
	}
	status, err := e.status(ctx, key)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "daily spending goal")
	}

	daysLeft := key.DaysLeft(e.clock.Now())
	if daysLeft > 0 {
		goal = status.Remaining.Div(decimal.NewFromInt(int64(daysLeft)))
	}

	logger.Debug("daily spending goal",
		zap.String("month", key.String()),
		zap.Int("daysLeft", daysLeft),
		zap.Stringer("goal", goal))
	observeComputation("goal")
	return goal, nil
}

func (e *Engine) status(ctx context.Context, key month.Key) (Status, error) {
	budget, err := e.storage.GetBudget(ctx, key.String())
	if err != nil {
		return Status{}, err
	}
	total, err := e.monthlyTotal(ctx, key)
	if err != nil {
		return Status{}, err
	}

	amount := unwrapOrZero(budget)
	return Status{
		TotalExpense: total,
		Budget:       amount,
		Remaining:    amount.Sub(total),
	}, nil
}

func (e *Engine) monthlyTotal(ctx context.Context, key month.Key) (decimal.Decimal, error) {
	sum, err := e.storage.SumExpensesForMonth(ctx, key.String())
	if err != nil {
		return decimal.Zero, err
	}
	return unwrapOrZero(sum), nil
}

func unwrapOrZero(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}

func finishSpan(span opentracing.Span, err *error) {
	if *err != nil {
		ext.Error.Set(span, true)
	}
	span.Finish()
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}
