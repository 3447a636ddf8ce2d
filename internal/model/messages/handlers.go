package messages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"max.ks1230/expense-tracker/internal/entity/month"
	"max.ks1230/expense-tracker/internal/entity/record"
	"max.ks1230/expense-tracker/internal/model/budget"
	"max.ks1230/expense-tracker/internal/model/customerr"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const (
	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! I am your expense tracker bot 🤖"
	loveToTalkMessage     = "I would love to talk about it more!"
	okMessage             = "Gotcha!"
	strangerMessage       = "Sorry, I only keep the books of my owner"
	reportQueuedMessage   = "Your report is being prepared"

	incorrectUsageMessage    = "That is an incorrect command usage"
	incorrectAmountMessage   = "The amount is incorrect"
	incorrectDateMessage     = "The date is incorrect. Should be YYYY-MM-DD"
	incorrectMonthMessage    = "The month is incorrect. Should be YYYY-MM"
	incorrectPeriodMessage   = "Unknown report period"
	emptyNameMessage         = "The name must not be empty"
	categoryExistsMessage    = "Category '%s' already exists"
	categoryAddedMessage     = "Category '%s' added"
	budgetSetMessage         = "Budget for %s set to %s"
	savingGoalAddedMessage   = "Saving goal '%s' added"
	cannotSaveMessage        = "Can't save it atm. Try later"
	cannotGetExpensesMessage = "Can't get your expenses atm. Try later"
)

const (
	startCommand    = "/start"
	helpCommand     = "/help"
	categoryCommand = "/category"
	expenseCommand  = "/expense"
	budgetCommand   = "/budget"
	statusCommand   = "/status"
	goalCommand     = "/goal"
	savingCommand   = "/saving"
	reportCommand   = "/report"
)

var helpMessage = strings.Join([]string{
	categoryCommand + " <name> - add a category",
	expenseCommand + " <category> <amount> [YYYY-MM-DD] [description] - add an expense",
	budgetCommand + " <YYYY-MM> <amount> - set the budget of a month",
	statusCommand + " [YYYY-MM] - budget status, current month by default",
	goalCommand + " [YYYY-MM] - daily spending goal, current month by default",
	savingCommand + " <name> <amount> - add a saving goal",
	reportCommand + " [" + strings.Join(reports.ReportPeriods(), "|") + "] - expenses by category",
}, "\n")

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

type reportGenerator interface {
	GenerateReport(ctx context.Context, period string) (reports.Report, error)
}

// reportRequester queues a report to be generated and sent asynchronously.
type reportRequester interface {
	RequestReport(ctx context.Context, userID int64, period string) error
}

type clock interface {
	Now() time.Time
}

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	writer      recordWriter
	engine      budgetEngine
	generator   reportGenerator
	requester   reportRequester
	clock       clock
}

// NewHandler builds the command handlers. A nil requester makes /report
// answer synchronously.
func NewHandler(writer recordWriter, engine budgetEngine, generator reportGenerator, requester reportRequester, clock clock) *HandlerService {
	res := &HandlerService{
		writer:    writer,
		engine:    engine,
		generator: generator,
		requester: requester,
		clock:     clock,
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, userID)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[categoryCommand] = s.handleCategory
	m[expenseCommand] = s.handleExpense
	m[budgetCommand] = s.handleBudget
	m[statusCommand] = s.handleStatus
	m[goalCommand] = s.handleGoal
	m[savingCommand] = s.handleSaving
	m[reportCommand] = s.handleReport

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage + "\n\n" + helpMessage, nil
}

func (s *HandlerService) handleHelp(_ context.Context, _ string, _ int64) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) handleCategory(ctx context.Context, arg string, _ int64) (string, error) {
	category, err := s.writer.AddCategory(ctx, arg)
	switch {
	case errors.Is(err, customerr.ErrEmptyName):
		return incorrectUsageMessage, nil
	case errors.Is(err, customerr.ErrCategoryExists):
		return fmt.Sprintf(categoryExistsMessage, strings.TrimSpace(arg)), nil
	case err != nil:
		return cannotSaveMessage, errors.Wrap(err, "handle category")
	}
	return fmt.Sprintf(categoryAddedMessage, category.Name), nil
}

func (s *HandlerService) handleExpense(ctx context.Context, arg string, _ int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return incorrectUsageMessage, nil
	}
	amount, err := expenses.ParseAmount(args[1])
	if err != nil {
		return incorrectAmountMessage, nil
	}

	exp := expenses.NewExpense{
		Amount:   amount,
		Category: args[0],
		Date:     s.clock.Now().Format(month.DateLayout),
	}
	if len(args) > 2 {
		exp.Date = args[2]
	}
	if len(args) > 3 {
		exp.Description = strings.Join(args[3:], " ")
	}

	_, err = s.writer.AddExpense(ctx, exp)
	switch {
	case customerr.IsMissingCategory(err):
		return fmt.Sprintf("Sorry, %s. Add it with %s first", errors.Cause(err), categoryCommand), nil
	case errors.Is(err, customerr.ErrInvalidAmount):
		return incorrectAmountMessage, nil
	case errors.Is(err, customerr.ErrInvalidDate):
		return incorrectDateMessage, nil
	case err != nil:
		return cannotSaveMessage, errors.Wrap(err, "handle expense")
	}
	return okMessage, nil
}

func (s *HandlerService) handleBudget(ctx context.Context, arg string, _ int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) != 2 {
		return incorrectUsageMessage, nil
	}
	amount, err := expenses.ParseAmount(args[1])
	if err != nil {
		return incorrectAmountMessage, nil
	}

	err = s.writer.SetBudget(ctx, args[0], amount)
	switch {
	case errors.Is(err, customerr.ErrInvalidMonth):
		return incorrectMonthMessage, nil
	case errors.Is(err, customerr.ErrInvalidAmount):
		return incorrectAmountMessage, nil
	case err != nil:
		return cannotSaveMessage, errors.Wrap(err, "handle budget")
	}
	return fmt.Sprintf(budgetSetMessage, args[0], amount.StringFixed(2)), nil
}

func (s *HandlerService) handleStatus(ctx context.Context, arg string, _ int64) (string, error) {
	status, err := s.engine.BudgetStatus(ctx, s.monthOrCurrent(arg))
	switch {
	case errors.Is(err, customerr.ErrInvalidMonth):
		return incorrectMonthMessage, nil
	case err != nil:
		return cannotGetExpensesMessage, errors.Wrap(err, "handle status")
	}
	return status.String(), nil
}

func (s *HandlerService) handleGoal(ctx context.Context, arg string, _ int64) (string, error) {
	goal, err := s.engine.DailySpendingGoal(ctx, s.monthOrCurrent(arg))
	switch {
	case errors.Is(err, customerr.ErrInvalidMonth):
		return incorrectMonthMessage, nil
	case err != nil:
		return cannotGetExpensesMessage, errors.Wrap(err, "handle goal")
	}
	return budget.FormatGoal(goal), nil
}

func (s *HandlerService) handleSaving(ctx context.Context, arg string, _ int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return incorrectUsageMessage, nil
	}
	name := strings.Join(args[:len(args)-1], " ")
	amount, err := expenses.ParseAmount(args[len(args)-1])
	if err != nil {
		return incorrectAmountMessage, nil
	}

	_, err = s.writer.AddSavingGoal(ctx, name, amount)
	switch {
	case errors.Is(err, customerr.ErrEmptyName):
		return emptyNameMessage, nil
	case errors.Is(err, customerr.ErrInvalidAmount):
		return incorrectAmountMessage, nil
	case err != nil:
		return cannotSaveMessage, errors.Wrap(err, "handle saving")
	}
	return fmt.Sprintf(savingGoalAddedMessage, name), nil
}

func (s *HandlerService) handleReport(ctx context.Context, arg string, userID int64) (string, error) {
	if s.requester != nil {
		if !isReportPeriod(arg) {
			return incorrectPeriodMessage, nil
		}
		if err := s.requester.RequestReport(ctx, userID, arg); err != nil {
			return cannotGetExpensesMessage, errors.Wrap(err, "handle report")
		}
		return reportQueuedMessage, nil
	}

	report, err := s.generator.GenerateReport(ctx, arg)
	switch {
	case errors.Is(err, customerr.ErrUnknownPeriod):
		return incorrectPeriodMessage, nil
	case err != nil:
		return cannotGetExpensesMessage, errors.Wrap(err, "handle report")
	}
	return reports.FormatReport(report), nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}

func (s *HandlerService) monthOrCurrent(arg string) string {
	if arg == "" {
		return month.Of(s.clock.Now()).String()
	}
	return arg
}

func isReportPeriod(period string) bool {
	if period == reports.PeriodAll {
		return true
	}
	for _, p := range reports.ReportPeriods() {
		if p == period {
			return true
		}
	}
	return false
}
