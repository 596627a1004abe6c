package bank

import (
	"console_bank/internal/domain"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

func (b *Bank) Deposit(ctx context.Context, number int, amount decimal.Decimal) (tx domain.Transaction, err error) {
	defer b.observe(OpDeposit, time.Now(), &err)

	if err := b.validator.ValidateAmount(amount); err != nil {
		return domain.Transaction{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	a, err := b.selectLocked(number)
	if err != nil {
		return domain.Transaction{}, err
	}

	tx, err = a.Deposit(amount, b.now())
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("deposit to %d failed: %w", number, err)
	}

	b.trackBalance(a)
	b.logger.InfoContext(ctx, "Deposit completed",
		slog.Int("account_number", number),
		slog.String("transaction_id", tx.ID.String()),
		slog.String("amount", amount.String()),
		slog.String("balance", tx.BalanceAfter.String()))
	return tx, nil
}

// Withdraw declines with domain.ErrInsufficientFunds when the amount exceeds
// the balance; a declined withdrawal leaves no ledger entry.
func (b *Bank) Withdraw(ctx context.Context, number int, amount decimal.Decimal) (tx domain.Transaction, err error) {
	defer b.observe(OpWithdraw, time.Now(), &err)

	if err := b.validator.ValidateAmount(amount); err != nil {
		return domain.Transaction{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	a, err := b.selectLocked(number)
	if err != nil {
		return domain.Transaction{}, err
	}

	tx, err = a.Withdraw(amount, b.now())
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("withdrawal from %d failed: %w", number, err)
	}

	b.trackBalance(a)
	b.logger.InfoContext(ctx, "Withdrawal completed",
		slog.Int("account_number", number),
		slog.String("transaction_id", tx.ID.String()),
		slog.String("amount", amount.String()),
		slog.String("balance", tx.BalanceAfter.String()))
	return tx, nil
}

func (b *Bank) Statement(ctx context.Context, number int) (txs []domain.Transaction, err error) {
	defer b.observe(OpStatement, time.Now(), &err)

	b.mu.Lock()
	defer b.mu.Unlock()

	a, err := b.selectLocked(number)
	if err != nil {
		return nil, err
	}
	return a.Statement(), nil
}

func (b *Bank) Balance(ctx context.Context, number int) (balance decimal.Decimal, err error) {
	defer b.observe(OpBalance, time.Now(), &err)

	b.mu.Lock()
	defer b.mu.Unlock()

	a, err := b.selectLocked(number)
	if err != nil {
		return decimal.Zero, err
	}
	return a.Balance, nil
}

// CalculateInterest applies the configured rate. Unmet conditions are not
// errors; they are reported through the result's Outcome.
func (b *Bank) CalculateInterest(ctx context.Context, number int) (res domain.InterestResult, err error) {
	defer b.observe(OpInterest, time.Now(), &err)

	b.mu.Lock()
	defer b.mu.Unlock()

	a, err := b.selectLocked(number)
	if err != nil {
		return domain.InterestResult{}, err
	}

	res, err = a.AddInterest(b.rate, b.periodDays, b.now())
	if err != nil {
		return domain.InterestResult{}, fmt.Errorf("interest for %d failed: %w", number, err)
	}

	credited, _ := res.Interest.Float64()
	b.metrics.RecordInterest(string(res.Outcome), credited)
	if res.Outcome == domain.InterestApplied {
		b.trackBalance(a)
	}
	b.logger.InfoContext(ctx, "Interest calculated",
		slog.Int("account_number", number),
		slog.String("outcome", string(res.Outcome)),
		slog.Int("elapsed_days", res.ElapsedDays),
		slog.String("interest", res.Interest.String()))
	return res, nil
}
