package reports

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/month"
	"max.ks1230/expense-tracker/internal/entity/record"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/customerr"
)

const (
	PeriodAll   = ""
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var weekConfig = &now.Config{WeekStartDay: time.Monday}

var reportFilters = map[string]func(t time.Time) time.Time{
	PeriodAll:   func(time.Time) time.Time { return time.Time{} },
	PeriodWeek:  func(t time.Time) time.Time { return weekConfig.With(t).BeginningOfWeek() },
	PeriodMonth: func(t time.Time) time.Time { return now.With(t).BeginningOfMonth() },
	PeriodYear:  func(t time.Time) time.Time { return now.With(t).BeginningOfYear() },
}

type expensesStorage interface {
	ListExpenses(ctx context.Context) ([]record.ExpenseView, error)
}

type clock interface {
	Now() time.Time
}

type Report struct {
	Period  string
	Records []record.CategoryTotal
	Total   decimal.Decimal
}

type Generator struct {
	storage expensesStorage
	clock   clock
}

func NewGenerator(storage expensesStorage, clock clock) *Generator {
	return &Generator{
		storage: storage,
		clock:   clock,
	}
}

// GenerateReport groups the expenses dated since the start of the period by
// category, largest first.
func (g *Generator) GenerateReport(ctx context.Context, period string) (Report, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "generateReport")
	defer span.Finish()

	logger.Info("GenerateReport - start", zap.String("period", period))
	defer logger.Info("GenerateReport - end")

	filter, ok := reportFilters[period]
	if !ok {
		return Report{}, errors.Wrapf(customerr.ErrUnknownPeriod, "generate report: %q", period)
	}

	expenses, err := g.storage.ListExpenses(ctx)
	if err != nil {
		return Report{}, errors.Wrap(err, "generate report")
	}
	expenses = filterExpensesSince(expenses, dateOf(filter(g.clock.Now())))

	records := groupByCategory(expenses)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Amount.GreaterThan(records[j].Amount)
	})

	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(rec.Amount)
	}
	return Report{Period: period, Records: records, Total: total}, nil
}

// CategoryTotals sums every expense per category, ordered by name.
func (g *Generator) CategoryTotals(ctx context.Context) ([]record.CategoryTotal, error) {
	expenses, err := g.storage.ListExpenses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "category totals")
	}
	return groupByCategory(expenses), nil
}

// MonthlyTotals sums expenses per calendar month from the first month with
// expenses to the last one. Months in between without expenses are zero.
func (g *Generator) MonthlyTotals(ctx context.Context) ([]record.MonthTotal, error) {
	expenses, err := g.storage.ListExpenses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "monthly totals")
	}
	if len(expenses) == 0 {
		return nil, nil
	}

	sums := make(map[month.Key]decimal.Decimal)
	first, last := month.Of(expenses[0].Date), month.Of(expenses[0].Date)
	for _, exp := range expenses {
		key := month.Of(exp.Date)
		sums[key] = sums[key].Add(exp.Amount)
		if key.Before(first) {
			first = key
		}
		if key.After(last) {
			last = key
		}
	}

	res := make([]record.MonthTotal, 0)
	for key := first; !key.After(last); key = key.Next() {
		res = append(res, record.MonthTotal{Month: key.String(), Amount: sums[key]})
	}
	return res, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func filterExpensesSince(exps []record.ExpenseView, since time.Time) []record.ExpenseView {
	res := make([]record.ExpenseView, 0, len(exps))
	for _, exp := range exps {
		if !exp.Date.Before(since) {
			res = append(res, exp)
		}
	}
	return res
}

func groupByCategory(exps []record.ExpenseView) []record.CategoryTotal {
	m := make(map[string]decimal.Decimal)
	for _, exp := range exps {
		m[exp.Category] = m[exp.Category].Add(exp.Amount)
	}
	records := make([]record.CategoryTotal, 0, len(m))
	for cat, am := range m {
		records = append(records, record.CategoryTotal{Category: cat, Amount: am})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Category < records[j].Category
	})
	return records
}

func FormatReport(report Report) string {
	if len(report.Records) == 0 {
		return "No expenses for this period"
	}
	res := make([]string, 0, len(report.Records)+2)
	for _, rec := range report.Records {
		res = append(res, fmt.Sprintf("%s: %s", rec.Category, rec.Amount.StringFixed(2)))
	}
	res = append(res, "", fmt.Sprintf("Total: %s", report.Total.StringFixed(2)))
	return strings.Join(res, "\n")
}

func ReportPeriods() []string {
	res := make([]string, 0, len(reportFilters))
	for k := range reportFilters {
		if k != PeriodAll {
			res = append(res, k)
		}
	}
	sort.Strings(res)
	return res
}
