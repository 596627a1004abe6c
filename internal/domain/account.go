package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountSavings  AccountType = "Savings"
	AccountChecking AccountType = "Checking"
)

// ParseAccountType accepts "savings" or "checking" in any letter case.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "savings":
		return AccountSavings, nil
	case "checking":
		return AccountChecking, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAccountType, s)
	}
}

type InterestOutcome string

const (
	InterestApplied        InterestOutcome = "applied"
	InterestNotEligible    InterestOutcome = "not_eligible"
	InterestNotDue         InterestOutcome = "not_due"
	InterestNothingToApply InterestOutcome = "nothing_to_apply"
)

// InterestResult reports what AddInterest did. Interest and Transaction are
// only set when Outcome is InterestApplied.
type InterestResult struct {
	Outcome     InterestOutcome
	Interest    decimal.Decimal
	ElapsedDays int
	Transaction *Transaction
}

// DefaultInterestPeriodDays is the minimum number of whole days between two
// interest credits.
const DefaultInterestPeriodDays = 30

// Account owns its ledger. Balance always equals InitialDeposit plus the
// signed sum of Transactions and is never negative.
type Account struct {
	Number            int             `json:"number"`
	HolderName        string          `json:"holder_name"`
	Type              AccountType     `json:"type"`
	InitialDeposit    decimal.Decimal `json:"initial_deposit"`
	Balance           decimal.Decimal `json:"balance"`
	Transactions      []Transaction   `json:"transactions"`
	OpenedAt          time.Time       `json:"opened_at"`
	LastInterestAdded time.Time       `json:"last_interest_added"`
}

func NewAccount(number int, holder string, accountType AccountType, initialDeposit decimal.Decimal, at time.Time) (*Account, error) {
	if initialDeposit.IsNegative() {
		return nil, ErrNegativeDeposit
	}
	return &Account{
		Number:            number,
		HolderName:        holder,
		Type:              accountType,
		InitialDeposit:    initialDeposit,
		Balance:           initialDeposit,
		OpenedAt:          at,
		LastInterestAdded: at,
	}, nil
}

func (a *Account) Deposit(amount decimal.Decimal, at time.Time) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	tx := NewTransaction(TypeDeposit, amount, a.Balance, at)
	a.Transactions = append(a.Transactions, tx)
	return tx, nil
}

// Withdraw declines without touching the ledger when amount exceeds the
// current balance.
func (a *Account) Withdraw(amount decimal.Decimal, at time.Time) (Transaction, error) {
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return Transaction{}, fmt.Errorf("%w: balance %s, requested %s",
			ErrInsufficientFunds, a.Balance.String(), amount.String())
	}
	a.Balance = a.Balance.Sub(amount)
	tx := NewTransaction(TypeWithdrawal, amount, a.Balance, at)
	a.Transactions = append(a.Transactions, tx)
	return tx, nil
}

// AddInterest credits balance*rate as a regular deposit when the account is
// a savings account and at least periodDays whole days have passed since the
// last credit.
func (a *Account) AddInterest(rate decimal.Decimal, periodDays int, at time.Time) (InterestResult, error) {
	elapsed := a.ElapsedInterestDays(at)
	if a.Type != AccountSavings {
		return InterestResult{Outcome: InterestNotEligible, ElapsedDays: elapsed}, nil
	}
	if elapsed < periodDays {
		return InterestResult{Outcome: InterestNotDue, ElapsedDays: elapsed}, nil
	}

	interest := a.Balance.Mul(rate)
	if !interest.IsPositive() {
		return InterestResult{Outcome: InterestNothingToApply, ElapsedDays: elapsed}, nil
	}

	tx, err := a.Deposit(interest, at)
	if err != nil {
		return InterestResult{}, err
	}
	a.LastInterestAdded = at

	return InterestResult{
		Outcome:     InterestApplied,
		Interest:    interest,
		ElapsedDays: elapsed,
		Transaction: &tx,
	}, nil
}

// ElapsedInterestDays truncates partial days.
func (a *Account) ElapsedInterestDays(at time.Time) int {
	d := at.Sub(a.LastInterestAdded)
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}

func (a *Account) Statement() []Transaction {
	out := make([]Transaction, len(a.Transactions))
	copy(out, a.Transactions)
	return out
}
