package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/clients/console"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/budget"
	"max.ks1230/expense-tracker/internal/model/charts"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/tracing"
)

func main() {
	defer logger.Sync()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer func() { _ = closer.Close() }()

	db, err := storage.New(conf.Storage())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close storage", zap.Error(err))
		}
	}()

	renderer, err := charts.NewRenderer()
	if err != nil {
		logger.Fatal("failed to init charts:", zap.Error(err))
	}

	clock := budget.SystemClock{Location: conf.App().Location()}
	menu := console.NewMenu(
		os.Stdin,
		os.Stdout,
		expenses.NewService(db),
		budget.NewEngine(db, clock),
		charts.NewExporter(conf.App(), reports.NewGenerator(db, clock), renderer),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err = menu.Run(ctx); err != nil {
		logger.Error("menu stopped", zap.Error(err))
	}
}
