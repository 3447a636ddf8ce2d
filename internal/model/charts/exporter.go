package charts

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/record"
	"max.ks1230/expense-tracker/internal/logger"
)

const (
	CategoryChartFile = "expenses_by_category.png"
	MonthlyChartFile  = "monthly_expenses.png"
)

type seriesSource interface {
	CategoryTotals(ctx context.Context) ([]record.CategoryTotal, error)
	MonthlyTotals(ctx context.Context) ([]record.MonthTotal, error)
}

type dirGetter interface {
	ChartsDirectory() string
}

// Exporter renders both expense charts into a directory.
type Exporter struct {
	source   seriesSource
	renderer *Renderer
	dir      string
}

func NewExporter(cfg dirGetter, source seriesSource, renderer *Renderer) *Exporter {
	return &Exporter{
		source:   source,
		renderer: renderer,
		dir:      cfg.ChartsDirectory(),
	}
}

// Export returns the paths of the written files. Nothing is written when
// there are no expenses.
func (e *Exporter) Export(ctx context.Context) ([]string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "exportCharts")
	defer span.Finish()

	categories, err := e.source.CategoryTotals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "export charts")
	}
	months, err := e.source.MonthlyTotals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "export charts")
	}

	var pie, bars bytes.Buffer
	if err = e.renderer.CategoryPie(&pie, categories); err != nil {
		return nil, errors.Wrap(err, "export charts")
	}
	if err = e.renderer.MonthlyBars(&bars, months); err != nil {
		return nil, errors.Wrap(err, "export charts")
	}

	if err = os.MkdirAll(e.dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "export charts")
	}
	paths := []string{
		filepath.Join(e.dir, CategoryChartFile),
		filepath.Join(e.dir, MonthlyChartFile),
	}
	for i, buf := range []*bytes.Buffer{&pie, &bars} {
		if err = os.WriteFile(paths[i], buf.Bytes(), 0o644); err != nil {
			return nil, errors.Wrap(err, "export charts")
		}
	}

	logger.Info("charts exported", zap.Strings("paths", paths))
	return paths, nil
}
