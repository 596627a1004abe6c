package validator

import (
	"console_bank/internal/domain"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrMalformedNumber = errors.New("not a valid number")
	ErrEmptyUsername   = errors.New("username cannot be empty")
	ErrAmountTooLarge  = errors.New("amount exceeds maximum limit")
)

// InputValidator turns raw console lines into typed values.
type InputValidator struct {
	amountRegex *regexp.Regexp
	maxAmount   decimal.Decimal
}

func NewInputValidator() *InputValidator {
	return &InputValidator{
		amountRegex: regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`),
		maxAmount:   decimal.New(1, 12),
	}
}

func (v *InputValidator) ParseInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, raw)
	}
	return n, nil
}

// ParseDecimal accepts plain decimal notation, with a comma allowed as the
// decimal separator. Exponents are rejected.
func (v *InputValidator) ParseDecimal(raw string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if !v.amountRegex.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedNumber, raw)
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedNumber, raw)
	}
	return amount, nil
}

// ParseAmount parses a deposit or withdrawal amount, which must be positive.
func (v *InputValidator) ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := v.ParseDecimal(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if err := v.ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// ParseInitialDeposit allows zero.
func (v *InputValidator) ParseInitialDeposit(raw string) (decimal.Decimal, error) {
	amount, err := v.ParseDecimal(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, domain.ErrNegativeDeposit
	}
	if amount.GreaterThan(v.maxAmount) {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrAmountTooLarge, v.maxAmount.String())
	}
	return amount, nil
}

func (v *InputValidator) ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if amount.GreaterThan(v.maxAmount) {
		return fmt.Errorf("%w: %s", ErrAmountTooLarge, v.maxAmount.String())
	}
	return nil
}

func (v *InputValidator) ParseAccountType(raw string) (domain.AccountType, error) {
	return domain.ParseAccountType(raw)
}

// ValidateUsername only rejects blank names; everything else is kept as typed.
func (v *InputValidator) ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	return nil
}
