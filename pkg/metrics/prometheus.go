package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
)

type MetricsCollector struct {
	registry          *prometheus.Registry
	operations        *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	interestOutcomes  *prometheus.CounterVec
	interestCredited  prometheus.Counter
	accountsOpened    *prometheus.CounterVec
	accountBalance    *prometheus.GaugeVec
	activeSessions    prometheus.Gauge
	registeredUsers   prometheus.Gauge
	mu                sync.Mutex
	server            *http.Server
	logger            *slog.Logger
}

func NewMetricsCollector(logger *slog.Logger) *MetricsCollector {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()

	collector := &MetricsCollector{
		registry: registry,
		operations: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "bank_operations_total",
			Help: "Total number of bank operations by result",
		}, []string{"operation", "result"}),
		operationDuration: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bank_operation_duration_seconds",
			Help:    "Time taken to execute a bank operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		interestOutcomes: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "bank_interest_checks_total",
			Help: "Interest calculations by outcome",
		}, []string{"outcome"}),
		interestCredited: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "bank_interest_credited_total",
			Help: "Total amount of interest credited to savings accounts",
		}),
		accountsOpened: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "bank_accounts_opened_total",
			Help: "Total number of opened accounts by type",
		}, []string{"type"}),
		accountBalance: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Name: "bank_account_balance",
			Help: "Current account balance",
		}, []string{"account_number", "type"}),
		activeSessions: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "bank_active_sessions",
			Help: "Number of logged-in sessions (0 or 1)",
		}),
		registeredUsers: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name: "bank_registered_users",
			Help: "Number of registered users",
		}),
		logger: logger,
	}

	return collector
}

func (m *MetricsCollector) RecordOperation(operation string, duration time.Duration, success bool) {
	result := ResultOK
	if !success {
		result = ResultRejected
	}
	m.operations.WithLabelValues(operation, result).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *MetricsCollector) RecordInterest(outcome string, credited float64) {
	m.interestOutcomes.WithLabelValues(outcome).Inc()
	if credited > 0 {
		m.interestCredited.Add(credited)
	}
}

func (m *MetricsCollector) RecordAccountOpened(accountType string) {
	m.accountsOpened.WithLabelValues(accountType).Inc()
}

func (m *MetricsCollector) UpdateAccountBalance(accountNumber int, accountType string, balance float64) {
	m.accountBalance.WithLabelValues(strconv.Itoa(accountNumber), accountType).Set(balance)
}

func (m *MetricsCollector) SetSessionActive(active bool) {
	if active {
		m.activeSessions.Set(1)
		return
	}
	m.activeSessions.Set(0)
}

func (m *MetricsCollector) SetRegisteredUsers(n int) {
	m.registeredUsers.Set(float64(n))
}

func (m *MetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

func (m *MetricsCollector) GetHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *MetricsCollector) StartMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.GetHandler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	m.mu.Lock()
	m.server = server
	m.mu.Unlock()

	go func() {
		m.logger.Info("Starting metrics server", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			m.logger.Error("Metrics server failed", slog.String("error", err.Error()))
		}
	}()

	return server
}

func (m *MetricsCollector) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	server := m.server
	m.server = nil
	m.mu.Unlock()

	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			return err
		}
	}
	m.logger.Info("Metrics collector shutdown complete")
	return nil
}
