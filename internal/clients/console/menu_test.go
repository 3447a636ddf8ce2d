package console

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/model/budget"
	"max.ks1230/expense-tracker/internal/model/charts"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2024, time.March, 22, 9, 0, 0, 0, time.UTC) }

type dirConfig string

func (d dirConfig) ChartsDirectory() string { return string(d) }

func runMenu(t *testing.T, dir string, lines ...string) string {
	t.Helper()

	store := storage.NewInMemStorage()
	renderer, err := charts.NewRenderer()
	require.NoError(t, err)

	var out bytes.Buffer
	menu := NewMenu(
		strings.NewReader(strings.Join(lines, "\n")+"\n"),
		&out,
		expenses.NewService(store),
		budget.NewEngine(store, fixedClock{}),
		charts.NewExporter(dirConfig(dir), reports.NewGenerator(store, fixedClock{}), renderer),
	)
	require.NoError(t, menu.Run(context.Background()))
	return out.String()
}

func Test_OnBudgetSession_ShouldPrintStatusAndGoal(t *testing.T) {
	out := runMenu(t, t.TempDir(),
		"1", "Food",
		"2", "120", "Food", "2024-03-05", "groceries",
		"3", "2024-03", "300",
		"4", "2024-03",
		"5", "2024-03",
		"6", "Bike", "900",
		"8",
	)

	assert.Contains(t, out, "Expense Tracker Menu")
	assert.Contains(t, out, "Category 'Food' added.")
	assert.Contains(t, out, "Expense added.")
	assert.Contains(t, out, "Total expense: 120.00, Budget: 300.00, Remaining: 180.00")
	assert.Contains(t, out, "Daily spending goal: 20.00")
	assert.Contains(t, out, "Saving goal 'Bike' added.")
}

func Test_OnRejectedInput_ShouldKeepServing(t *testing.T) {
	out := runMenu(t, t.TempDir(),
		"9",
		"2", "15", "Pets", "2024-03-05", "",
		"2", "abc",
		"4", "March",
		"4", "2024-04",
		"8",
	)

	assert.Contains(t, out, invalidChoiceMessage)
	assert.Contains(t, out, "Category 'Pets' does not exist.")
	assert.Contains(t, out, "Amount must be a positive number.")
	assert.Contains(t, out, "Month must be formatted as YYYY-MM.")
	assert.Contains(t, out, "Total expense: 0.00, Budget: 0.00, Remaining: 0.00")
}

func Test_OnVisualize_ShouldSaveCharts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	out := runMenu(t, dir,
		"7",
		"1", "Food",
		"2", "12.5", "Food", "2024-02-01", "",
		"7",
		"8",
	)

	assert.Contains(t, out, "No expenses to visualize.")
	assert.Contains(t, out, "Charts saved to ")
	_, err := os.Stat(filepath.Join(dir, charts.CategoryChartFile))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, charts.MonthlyChartFile))
	assert.NoError(t, err)
}

func Test_OnEndOfInput_ShouldStopQuietly(t *testing.T) {
	out := runMenu(t, t.TempDir(), "1")

	assert.Contains(t, out, "Enter category name: ")
	assert.NotContains(t, out, "Error")
}
