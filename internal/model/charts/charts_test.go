package charts

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/entity/record"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
)

type dirConfig string

func (d dirConfig) ChartsDirectory() string { return string(d) }

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC) }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Test_OnCategoryPie_ShouldEncodePNG(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = renderer.CategoryPie(&buf, []record.CategoryTotal{
		{Category: "Food", Amount: dec("50")},
		{Category: "Rent", Amount: dec("700")},
		{Category: "Fun", Amount: dec("0.10")},
	})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func Test_OnMonthlyBars_ShouldEncodePNG(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = renderer.MonthlyBars(&buf, []record.MonthTotal{
		{Month: "2024-01", Amount: dec("120")},
		{Month: "2024-02", Amount: decimal.Zero},
		{Month: "2024-03", Amount: dec("300")},
	})
	require.NoError(t, err)

	_, err = png.Decode(&buf)
	assert.NoError(t, err)
}

func Test_OnEmptySeries_ShouldReturnErrNoData(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.ErrorIs(t, renderer.CategoryPie(&buf, nil), ErrNoData)
	assert.ErrorIs(t, renderer.CategoryPie(&buf, []record.CategoryTotal{{Category: "Food", Amount: decimal.Zero}}), ErrNoData)
	assert.ErrorIs(t, renderer.MonthlyBars(&buf, nil), ErrNoData)
	assert.Zero(t, buf.Len())
}

func Test_OnExport_ShouldWriteBothCharts(t *testing.T) {
	ctx := context.Background()
	store := storage.NewInMemStorage()
	food, err := store.AddCategory(ctx, "Food")
	require.NoError(t, err)
	_, err = store.AddExpense(ctx, record.Expense{Amount: dec("20"), CategoryID: food.ID, Date: "2024-01-05"})
	require.NoError(t, err)
	_, err = store.AddExpense(ctx, record.Expense{Amount: dec("35"), CategoryID: food.ID, Date: "2024-03-07"})
	require.NoError(t, err)

	renderer, err := NewRenderer()
	require.NoError(t, err)
	dir := filepath.Join(t.TempDir(), "charts")

	exporter := NewExporter(dirConfig(dir), reports.NewGenerator(store, fixedClock{}), renderer)
	paths, err := exporter.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, CategoryChartFile),
		filepath.Join(dir, MonthlyChartFile),
	}, paths)

	for _, path := range paths {
		f, err := os.Open(path)
		require.NoError(t, err)
		_, err = png.Decode(f)
		assert.NoError(t, err, path)
		assert.NoError(t, f.Close())
	}
}

func Test_OnExportWithoutExpenses_ShouldWriteNothing(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)
	dir := filepath.Join(t.TempDir(), "charts")

	exporter := NewExporter(dirConfig(dir), reports.NewGenerator(storage.NewInMemStorage(), fixedClock{}), renderer)
	_, err = exporter.Export(context.Background())
	assert.True(t, errors.Is(err, ErrNoData))

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}
