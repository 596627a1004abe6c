package bank

import (
	"console_bank/internal/domain"
	"console_bank/internal/repository"
	"console_bank/pkg/validator"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const FirstAccountNumber = 1000

const (
	OpRegister    = "register"
	OpLogin       = "login"
	OpLogout      = "logout"
	OpOpenAccount = "open_account"
	OpDeposit     = "deposit"
	OpWithdraw    = "withdraw"
	OpStatement   = "statement"
	OpBalance     = "balance"
	OpInterest    = "interest"
)

type MetricsRecorder interface {
	RecordOperation(operation string, duration time.Duration, success bool)
	RecordInterest(outcome string, credited float64)
	RecordAccountOpened(accountType string)
	UpdateAccountBalance(accountNumber int, accountType string, balance float64)
	SetSessionActive(active bool)
	SetRegisteredUsers(n int)
}

type Settings struct {
	InterestRate       decimal.Decimal
	InterestPeriodDays int
	Clock              func() time.Time
}

// Bank is the whole application state: the user directory, the single
// session and the account number counter shared by all users.
type Bank struct {
	users      repository.UserRepository
	validator  *validator.InputValidator
	metrics    MetricsRecorder
	logger     *slog.Logger
	rate       decimal.Decimal
	periodDays int
	now        func() time.Time

	mu         sync.Mutex
	session    *domain.User
	nextNumber int
}

func NewBank(users repository.UserRepository, settings Settings, metrics MetricsRecorder, logger *slog.Logger) *Bank {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if settings.Clock == nil {
		settings.Clock = time.Now
	}
	if settings.InterestPeriodDays == 0 {
		settings.InterestPeriodDays = domain.DefaultInterestPeriodDays
	}

	return &Bank{
		users:      users,
		validator:  validator.NewInputValidator(),
		metrics:    metrics,
		logger:     logger,
		rate:       settings.InterestRate,
		periodDays: settings.InterestPeriodDays,
		now:        settings.Clock,
		nextNumber: FirstAccountNumber,
	}
}

func (b *Bank) InterestPeriodDays() int {
	return b.periodDays
}

func (b *Bank) Register(ctx context.Context, username, password string) (err error) {
	defer b.observe(OpRegister, time.Now(), &err)

	if err := b.validator.ValidateUsername(username); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	exists, err := b.users.Exists(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrUsernameTaken, username)
	}

	user := &domain.User{Username: username, Password: password, RegisteredAt: b.now()}
	if err := b.users.Save(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fmt.Errorf("%w: %s", ErrUsernameTaken, username)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}

	if n, err := b.users.Count(ctx); err == nil {
		b.metrics.SetRegisteredUsers(n)
	}
	b.logger.InfoContext(ctx, "User registered", slog.String("username", username))
	return nil
}

func (b *Bank) Login(ctx context.Context, username, password string) (err error) {
	defer b.observe(OpLogin, time.Now(), &err)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session != nil {
		return ErrSessionActive
	}

	user, err := b.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.CheckPassword(password) {
		return ErrInvalidCredentials
	}

	b.session = user
	b.metrics.SetSessionActive(true)
	b.logger.InfoContext(ctx, "User logged in", slog.String("username", username))
	return nil
}

func (b *Bank) Logout(ctx context.Context) (err error) {
	defer b.observe(OpLogout, time.Now(), &err)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil {
		return ErrNotLoggedIn
	}
	b.logger.InfoContext(ctx, "User logged out", slog.String("username", b.session.Username))
	b.session = nil
	b.metrics.SetSessionActive(false)
	return nil
}

// CurrentUser returns the username of the session, if any.
func (b *Bank) CurrentUser() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil {
		return "", false
	}
	return b.session.Username, true
}

func (b *Bank) OpenAccount(ctx context.Context, holder string, accountType domain.AccountType, initialDeposit decimal.Decimal) (account *domain.Account, err error) {
	defer b.observe(OpOpenAccount, time.Now(), &err)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil {
		return nil, ErrNotLoggedIn
	}
	if accountType != domain.AccountSavings && accountType != domain.AccountChecking {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAccountType, accountType)
	}

	a, err := domain.NewAccount(b.nextNumber, holder, accountType, initialDeposit, b.now())
	if err != nil {
		return nil, err
	}
	b.nextNumber++
	b.session.AddAccount(a)

	b.metrics.RecordAccountOpened(string(a.Type))
	b.trackBalance(a)
	b.logger.InfoContext(ctx, "Account opened",
		slog.String("username", b.session.Username),
		slog.Int("account_number", a.Number),
		slog.String("type", string(a.Type)),
		slog.String("initial_deposit", a.InitialDeposit.String()))

	return snapshot(a), nil
}

// SelectAccount only searches the accounts of the logged-in user.
func (b *Bank) SelectAccount(number int) (*domain.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	a, err := b.selectLocked(number)
	if err != nil {
		return nil, err
	}
	return snapshot(a), nil
}

// Accounts lists the session user's accounts in opening order.
func (b *Bank) Accounts() ([]*domain.Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.session == nil {
		return nil, ErrNotLoggedIn
	}
	out := make([]*domain.Account, 0, len(b.session.Accounts))
	for _, a := range b.session.Accounts {
		out = append(out, snapshot(a))
	}
	return out, nil
}

func (b *Bank) selectLocked(number int) (*domain.Account, error) {
	if b.session == nil {
		return nil, ErrNotLoggedIn
	}
	a, ok := b.session.Account(number)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrAccountNotFound, number)
	}
	return a, nil
}

func (b *Bank) observe(operation string, start time.Time, err *error) {
	success := err == nil || *err == nil
	b.metrics.RecordOperation(operation, time.Since(start), success)
	if !success {
		b.logger.Warn("Operation rejected",
			slog.String("operation", operation),
			slog.String("error", (*err).Error()))
	}
}

func (b *Bank) trackBalance(a *domain.Account) {
	balance, _ := a.Balance.Float64()
	b.metrics.UpdateAccountBalance(a.Number, string(a.Type), balance)
}

func snapshot(a *domain.Account) *domain.Account {
	cp := *a
	cp.Transactions = a.Statement()
	return &cp
}

type noopMetrics struct{}

func (noopMetrics) RecordOperation(string, time.Duration, bool) {}
func (noopMetrics) RecordInterest(string, float64) {}
func (noopMetrics) RecordAccountOpened(string) {}
func (noopMetrics) UpdateAccountBalance(int, string, float64) {}
func (noopMetrics) SetSessionActive(bool) {}
func (noopMetrics) SetRegisteredUsers(int) {}
