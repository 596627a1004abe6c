package metrics

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCollector_RecordOperation(t *testing.T) {
	m := NewMetricsCollector(nil)

	m.RecordOperation("deposit", time.Millisecond, true)
	m.RecordOperation("deposit", time.Millisecond, true)
	m.RecordOperation("withdraw", time.Millisecond, false)

	if got := testutil.ToFloat64(m.operations.WithLabelValues("deposit", ResultOK)); got != 2 {
		t.Errorf("expected 2 successful deposits, got %v", got)
	}
	if got := testutil.ToFloat64(m.operations.WithLabelValues("withdraw", ResultRejected)); got != 1 {
		t.Errorf("expected 1 rejected withdrawal, got %v", got)
	}
}

func TestMetricsCollector_Interest(t *testing.T) {
	m := NewMetricsCollector(nil)

	m.RecordInterest("applied", 30)
	m.RecordInterest("not_due", 0)

	if got := testutil.ToFloat64(m.interestCredited); got != 30 {
		t.Errorf("expected 30 credited, got %v", got)
	}
	if got := testutil.ToFloat64(m.interestOutcomes.WithLabelValues("not_due")); got != 1 {
		t.Errorf("expected 1 not_due check, got %v", got)
	}
}

func TestMetricsCollector_GaugesAndHandler(t *testing.T) {
	m := NewMetricsCollector(nil)
	m.UpdateAccountBalance(1000, "Savings", 1200)
	m.SetSessionActive(true)
	m.SetRegisteredUsers(2)
	m.RecordAccountOpened("Savings")

	if got := testutil.ToFloat64(m.activeSessions); got != 1 {
		t.Errorf("expected active session gauge 1, got %v", got)
	}

	rec := httptest.NewRecorder()
	m.GetHandler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `bank_account_balance{account_number="1000",type="Savings"} 1200`) {
		t.Errorf("balance gauge missing from exposition:\n%s", body)
	}
	if !strings.Contains(body, "bank_registered_users 2") {
		t.Errorf("registered users gauge missing from exposition")
	}
}

func TestMetricsCollector_ShutdownWithoutServer(t *testing.T) {
	m := NewMetricsCollector(nil)
	if err := m.Shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
