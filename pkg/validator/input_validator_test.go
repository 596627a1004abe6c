package validator

import (
	"errors"
	"testing"

	"console_bank/internal/domain"

	"github.com/shopspring/decimal"
)

func TestInputValidator_ParseAmount(t *testing.T) {
	v := NewInputValidator()

	got, err := v.ParseAmount(" 100.50 ")

	if err != nil {
		t.Fatalf("expected valid amount, got err=%v", err)
	}
	if !got.Equal(decimal.RequireFromString("100.5")) {
		t.Errorf("expected 100.5, got %s", got)
	}
}

func TestInputValidator_ParseAmountComma(t *testing.T) {
	v := NewInputValidator()
	got, err := v.ParseAmount("7,25")
	if err != nil || !got.Equal(decimal.RequireFromString("7.25")) {
		t.Fatalf("expected 7.25, got %s err=%v", got, err)
	}
}

func TestInputValidator_MalformedAmount(t *testing.T) {
	v := NewInputValidator()
	for _, raw := range []string{"", "abc", "12a", "1e5", "1.2.3", "--1"} {
		if _, err := v.ParseAmount(raw); !errors.Is(err, ErrMalformedNumber) {
			t.Errorf("ParseAmount(%q): expected ErrMalformedNumber, got %v", raw, err)
		}
	}
}

func TestInputValidator_NonPositiveAmount(t *testing.T) {
	v := NewInputValidator()
	for _, raw := range []string{"0", "-10", "0.00"} {
		if _, err := v.ParseAmount(raw); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("ParseAmount(%q): expected ErrInvalidAmount, got %v", raw, err)
		}
	}
}

func TestInputValidator_ExceedsLimit(t *testing.T) {
	v := NewInputValidator()
	if _, err := v.ParseAmount("2000000000000"); !errors.Is(err, ErrAmountTooLarge) {
		t.Fatalf("expected ErrAmountTooLarge, got %v", err)
	}
}

func TestInputValidator_InitialDeposit(t *testing.T) {
	v := NewInputValidator()
	if got, err := v.ParseInitialDeposit("0"); err != nil || !got.IsZero() {
		t.Errorf("zero initial deposit should be accepted, got %s err=%v", got, err)
	}
	if _, err := v.ParseInitialDeposit("-1"); !errors.Is(err, domain.ErrNegativeDeposit) {
		t.Errorf("expected ErrNegativeDeposit, got %v", err)
	}
}

func TestInputValidator_ParseInt(t *testing.T) {
	v := NewInputValidator()
	if n, err := v.ParseInt(" 1000\r"); err != nil || n != 1000 {
		t.Errorf("expected 1000, got %d err=%v", n, err)
	}
	if _, err := v.ParseInt("ten"); !errors.Is(err, ErrMalformedNumber) {
		t.Errorf("expected ErrMalformedNumber, got %v", err)
	}
}

func TestInputValidator_Username(t *testing.T) {
	v := NewInputValidator()
	if err := v.ValidateUsername("  "); !errors.Is(err, ErrEmptyUsername) {
		t.Errorf("expected ErrEmptyUsername, got %v", err)
	}
	if err := v.ValidateUsername("alice"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
