package console

import (
	"console_bank/internal/bank"
	"console_bank/internal/domain"
	"console_bank/pkg/validator"
	"context"
	"errors"
	"fmt"
	"log/slog"
)

func (ui *UI) openAccount(ctx context.Context) error {
	holder, err := ui.prompt("Enter Account Holder Name: ")
	if err != nil {
		return err
	}

	var accountType domain.AccountType
	for {
		raw, err := ui.prompt("Enter Account Type (savings/checking): ")
		if err != nil {
			return err
		}
		accountType, err = ui.validator.ParseAccountType(raw)
		if err == nil {
			break
		}
		ui.printError(err)
	}

	initial, err := ui.readDecimal("Enter Initial Deposit: ", ui.validator.ParseInitialDeposit)
	if err != nil {
		return err
	}

	acc, err := ui.bank.OpenAccount(ctx, holder, accountType, initial)
	if err != nil {
		ui.printError(err)
		return nil
	}
	fmt.Fprintf(ui.out, "Account created successfully with Account Number: %d\n", acc.Number)
	return nil
}

func (ui *UI) deposit(ctx context.Context) error {
	number, ok, err := ui.selectAccount()
	if err != nil || !ok {
		return err
	}
	amount, err := ui.readDecimal("Enter amount to deposit: ", ui.validator.ParseAmount)
	if err != nil {
		return err
	}

	if _, err := ui.bank.Deposit(ctx, number, amount); err != nil {
		ui.printError(err)
		return nil
	}
	fmt.Fprintln(ui.out, "Deposit successful!")
	return nil
}

func (ui *UI) withdraw(ctx context.Context) error {
	number, ok, err := ui.selectAccount()
	if err != nil || !ok {
		return err
	}
	amount, err := ui.readDecimal("Enter amount to withdraw: ", ui.validator.ParseAmount)
	if err != nil {
		return err
	}

	if _, err := ui.bank.Withdraw(ctx, number, amount); err != nil {
		ui.printError(err)
		return nil
	}
	fmt.Fprintln(ui.out, "Withdrawal successful!")
	return nil
}

func (ui *UI) statement(ctx context.Context) error {
	number, ok, err := ui.selectAccount()
	if err != nil || !ok {
		return err
	}

	txs, err := ui.bank.Statement(ctx, number)
	if err != nil {
		ui.printError(err)
		return nil
	}

	fmt.Fprintln(ui.out, "\nTransaction History:")
	if len(txs) == 0 {
		fmt.Fprintln(ui.out, "No transactions yet.")
		return nil
	}
	for _, tx := range txs {
		fmt.Fprintf(ui.out, "%s - %s - Amount: %s - Balance: %s\n",
			tx.CreatedAt.Format(dateLayout), tx.Type, formatMoney(tx.Amount), formatMoney(tx.BalanceAfter))
	}
	return nil
}

func (ui *UI) balance(ctx context.Context) error {
	number, ok, err := ui.selectAccount()
	if err != nil || !ok {
		return err
	}

	bal, err := ui.bank.Balance(ctx, number)
	if err != nil {
		ui.printError(err)
		return nil
	}
	fmt.Fprintf(ui.out, "Current Balance: %s\n", formatMoney(bal))
	return nil
}

func (ui *UI) interest(ctx context.Context) error {
	number, ok, err := ui.selectAccount()
	if err != nil || !ok {
		return err
	}

	res, err := ui.bank.CalculateInterest(ctx, number)
	if err != nil {
		ui.printError(err)
		return nil
	}

	switch res.Outcome {
	case domain.InterestApplied:
		fmt.Fprintf(ui.out, "Interest of %s added to the balance.\n", formatMoney(res.Interest))
	case domain.InterestNotEligible:
		fmt.Fprintln(ui.out, "Interest is only paid on savings accounts.")
	case domain.InterestNotDue:
		fmt.Fprintf(ui.out, "Interest is not due yet (%d of %d days elapsed).\n",
			res.ElapsedDays, ui.bank.InterestPeriodDays())
	case domain.InterestNothingToApply:
		fmt.Fprintln(ui.out, "No interest to add.")
	}
	return nil
}

// selectAccount reads an account number and checks it belongs to the
// logged-in user. ok is false when the number was rejected.
func (ui *UI) selectAccount() (number int, ok bool, err error) {
	if accounts, err := ui.bank.Accounts(); err == nil && len(accounts) > 0 {
		fmt.Fprintln(ui.out, "Your accounts:")
		for _, a := range accounts {
			fmt.Fprintf(ui.out, "  %d - %s - %s\n", a.Number, a.Type, a.HolderName)
		}
	}
	number, err = ui.readInt("Enter Account Number: ")
	if err != nil {
		return 0, false, err
	}
	if _, err := ui.bank.SelectAccount(number); err != nil {
		ui.printError(err)
		return 0, false, nil
	}
	return number, true, nil
}

func (ui *UI) printError(err error) {
	var msg string
	switch {
	case errors.Is(err, bank.ErrUsernameTaken):
		msg = "Username already exists. Try another."
	case errors.Is(err, bank.ErrInvalidCredentials):
		msg = "Invalid credentials. Try again."
	case errors.Is(err, bank.ErrAccountNotFound):
		msg = "Invalid Account Number."
	case errors.Is(err, bank.ErrNotLoggedIn):
		msg = "Please log in first."
	case errors.Is(err, bank.ErrSessionActive):
		msg = "Another user is already logged in."
	case errors.Is(err, domain.ErrInsufficientFunds):
		msg = "Insufficient balance."
	case errors.Is(err, domain.ErrInvalidAmount):
		msg = "Amount must be greater than zero."
	case errors.Is(err, domain.ErrNegativeDeposit):
		msg = "Initial deposit cannot be negative."
	case errors.Is(err, domain.ErrInvalidAccountType):
		msg = "Account type must be savings or checking."
	case errors.Is(err, validator.ErrMalformedNumber):
		msg = "Please enter a valid amount, for example 100.50."
	case errors.Is(err, validator.ErrAmountTooLarge):
		msg = "Amount is too large."
	case errors.Is(err, validator.ErrEmptyUsername):
		msg = "Username cannot be empty."
	default:
		msg = "Error: " + err.Error()
		ui.logger.Error("Unexpected error", slog.String("error", err.Error()))
	}

	fmt.Fprintln(ui.out, msg)
	ui.logger.Debug("User error shown", slog.String("message", msg), slog.String("error", err.Error()))
}
