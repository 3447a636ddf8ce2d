// Package console runs the interactive expense tracker menu on a terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/record"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/budget"
	"max.ks1230/expense-tracker/internal/model/charts"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/expenses"
)

const menuText = `
Expense Tracker Menu
1. Add Category
2. Add Expense
3. Set Budget
4. View Budget Status
5. View Daily Spending Goal
6. Add Saving Goal
7. Visualize Expenses
8. Exit`

const invalidChoiceMessage = "Invalid choice, please try again."

type recordWriter interface {
	AddCategory(ctx context.Context, name string) (record.Category, error)
	AddExpense(ctx context.Context, exp expenses.NewExpense) (int64, error)
	SetBudget(ctx context.Context, monthKey string, amount decimal.Decimal) error
	AddSavingGoal(ctx context.Context, name string, amount decimal.Decimal) (int64, error)
}

type budgetEngine interface {
	BudgetStatus(ctx context.Context, monthKey string) (budget.Status, error)
	DailySpendingGoal(ctx context.Context, monthKey string) (decimal.Decimal, error)
}

type chartExporter interface {
	Export(ctx context.Context) ([]string, error)
}

// errExit ends the menu loop.
var errExit = errors.New("exit")

type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	writer   recordWriter
	engine   budgetEngine
	exporter chartExporter
	actions  map[string]func(ctx context.Context) error
}

func NewMenu(in io.Reader, out io.Writer, writer recordWriter, engine budgetEngine, exporter chartExporter) *Menu {
	m := &Menu{
		in:       bufio.NewScanner(in),
		out:      out,
		writer:   writer,
		engine:   engine,
		exporter: exporter,
	}
	m.actions = map[string]func(ctx context.Context) error{
		"1": m.addCategory,
		"2": m.addExpense,
		"3": m.setBudget,
		"4": m.budgetStatus,
		"5": m.dailyGoal,
		"6": m.addSavingGoal,
		"7": m.visualize,
		"8": func(context.Context) error { return errExit },
	}
	return m
}

// Run serves the menu until the user exits, the input ends or ctx is done.
// Failed actions are reported and the menu goes on.
func (m *Menu) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		m.println(menuText)
		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			return m.in.Err()
		}

		action, found := m.actions[choice]
		if !found {
			m.println(invalidChoiceMessage)
			continue
		}

		err := action(ctx)
		switch {
		case errors.Is(err, errExit):
			return nil
		case errors.Is(err, io.EOF):
			return m.in.Err()
		case err != nil:
			logger.Debug("menu action failed", zap.String("choice", choice), zap.Error(err))
			m.println(describe(err))
		}
	}
	return nil
}

func (m *Menu) addCategory(ctx context.Context) error {
	name, err := m.ask("Enter category name: ")
	if err != nil {
		return err
	}
	category, err := m.writer.AddCategory(ctx, name)
	if err != nil {
		return err
	}
	m.println(fmt.Sprintf("Category '%s' added.", category.Name))
	return nil
}

func (m *Menu) addExpense(ctx context.Context) error {
	amount, err := m.askAmount("Enter expense amount: ")
	if err != nil {
		return err
	}
	category, err := m.ask("Enter category name: ")
	if err != nil {
		return err
	}
	date, err := m.ask("Enter date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	description, err := m.ask("Enter description (optional): ")
	if err != nil {
		return err
	}

	_, err = m.writer.AddExpense(ctx, expenses.NewExpense{
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: description,
	})
	if err != nil {
		return err
	}
	m.println("Expense added.")
	return nil
}

func (m *Menu) setBudget(ctx context.Context) error {
	monthKey, err := m.ask("Enter month (YYYY-MM): ")
	if err != nil {
		return err
	}
	amount, err := m.askAmount("Enter budget amount: ")
	if err != nil {
		return err
	}
	if err = m.writer.SetBudget(ctx, monthKey, amount); err != nil {
		return err
	}
	m.println(fmt.Sprintf("Budget for %s set.", monthKey))
	return nil
}

func (m *Menu) budgetStatus(ctx context.Context) error {
	monthKey, err := m.ask("Enter month (YYYY-MM): ")
	if err != nil {
		return err
	}
	status, err := m.engine.BudgetStatus(ctx, monthKey)
	if err != nil {
		return err
	}
	m.println(status.String())
	return nil
}

func (m *Menu) dailyGoal(ctx context.Context) error {
	monthKey, err := m.ask("Enter month (YYYY-MM): ")
	if err != nil {
		return err
	}
	goal, err := m.engine.DailySpendingGoal(ctx, monthKey)
	if err != nil {
		return err
	}
	m.println(budget.FormatGoal(goal))
	return nil
}

func (m *Menu) addSavingGoal(ctx context.Context) error {
	name, err := m.ask("Enter saving goal name: ")
	if err != nil {
		return err
	}
	amount, err := m.askAmount("Enter saving goal amount: ")
	if err != nil {
		return err
	}
	if _, err = m.writer.AddSavingGoal(ctx, name, amount); err != nil {
		return err
	}
	m.println(fmt.Sprintf("Saving goal '%s' added.", strings.TrimSpace(name)))
	return nil
}

func (m *Menu) visualize(ctx context.Context) error {
	paths, err := m.exporter.Export(ctx)
	if err != nil {
		return err
	}
	m.println("Charts saved to " + strings.Join(paths, ", "))
	return nil
}

func (m *Menu) prompt(text string) (string, bool) {
	_, _ = fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// ask returns io.EOF when the input ends mid-action.
func (m *Menu) ask(text string) (string, error) {
	answer, ok := m.prompt(text)
	if !ok {
		return "", io.EOF
	}
	return answer, nil
}

func (m *Menu) askAmount(text string) (decimal.Decimal, error) {
	raw, err := m.ask(text)
	if err != nil {
		return decimal.Zero, err
	}
	return expenses.ParseAmount(raw)
}

func (m *Menu) println(text string) {
	_, _ = fmt.Fprintln(m.out, text)
}

func describe(err error) string {
	cause := errors.Cause(err)
	switch {
	case customerr.IsMissingCategory(err),
		errors.Is(err, customerr.ErrInvalidAmount),
		errors.Is(err, customerr.ErrInvalidDate),
		errors.Is(err, customerr.ErrInvalidMonth),
		errors.Is(err, customerr.ErrEmptyName),
		errors.Is(err, customerr.ErrCategoryExists),
		errors.Is(err, charts.ErrNoData):
		msg := cause.Error()
		return strings.ToUpper(msg[:1]) + msg[1:] + "."
	default:
		return "Error: " + err.Error()
	}
}
