package main

import (
	"console_bank/internal/bank"
	"console_bank/internal/config"
	"console_bank/internal/console"
	"console_bank/internal/repository/memory"
	"console_bank/pkg/metrics"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	appName = "console_bank"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, closeLog, err := setupLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer closeLog()

	logger.Info("Starting application",
		slog.String("name", appName),
		slog.String("interest_rate", cfg.InterestRate.String()),
		slog.Int("interest_period_days", cfg.InterestPeriodDays))

	metricsCollector := metrics.NewMetricsCollector(logger)
	if cfg.MetricsAddr != "" {
		metricsCollector.StartMetricsServer(cfg.MetricsAddr)
	}

	b := bank.NewBank(memory.NewUserRepository(), bank.Settings{
		InterestRate:       cfg.InterestRate,
		InterestPeriodDays: cfg.InterestPeriodDays,
	}, metricsCollector, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A read on stdin does not observe ctx, so the console runs aside and
	// a signal ends the process without waiting for the next line.
	done := make(chan error, 1)
	go func() {
		done <- console.NewUI(b, os.Stdin, os.Stdout, logger).Run(ctx)
	}()

	var runErr error
	select {
	case runErr = <-done:
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
		fmt.Fprintln(os.Stdout)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Error("Console stopped", slog.String("error", runErr.Error()))
	}

	shutdown(logger, metricsCollector)
	logger.Info("Application shutdown complete")

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		closeLog()
		os.Exit(1)
	}
}

// setupLogger writes JSON logs to stderr, or to cfg.LogFile when set, so
// stdout stays reserved for the console.
func setupLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler), closeFn, nil
}

func shutdown(logger *slog.Logger, metricsCollector *metrics.MetricsCollector) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := metricsCollector.Shutdown(ctx); err != nil {
		logger.Error("Metrics collector shutdown failed", slog.String("error", err.Error()))
	}
}
