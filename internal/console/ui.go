package console

import (
	"bufio"
	"console_bank/internal/bank"
	"console_bank/pkg/validator"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	choiceRegister = 1
	choiceLogin    = 2
	choiceExit     = 3
)

const (
	choiceOpenAccount = iota + 1
	choiceDeposit
	choiceWithdraw
	choiceStatement
	choiceBalance
	choiceInterest
	choiceLogout
)

const dateLayout = "2006-01-02 15:04:05"

// UI drives a Bank from line-based input. Every handler returns only input
// errors; banking errors are printed and control goes back to the menu.
type UI struct {
	bank      *bank.Bank
	validator *validator.InputValidator
	in        *bufio.Reader
	out       io.Writer
	logger    *slog.Logger
}

func NewUI(b *bank.Bank, in io.Reader, out io.Writer, logger *slog.Logger) *UI {
	if logger == nil {
		logger = slog.Default()
	}
	return &UI{
		bank:      b,
		validator: validator.NewInputValidator(),
		in:        bufio.NewReader(in),
		out:       out,
		logger:    logger,
	}
}

// Run shows the top-level menu until Exit is chosen, the input ends or ctx
// is cancelled. End of input is a normal exit.
func (ui *UI) Run(ctx context.Context) error {
	fmt.Fprintln(ui.out, "Welcome to Console Banking Application!")

	err := ui.mainMenu(ctx)
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(ui.out)
		return nil
	}
	return err
}

func (ui *UI) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(ui.out, "\n1. Register\n2. Login\n3. Exit")
		choice, err := ui.readInt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case choiceRegister:
			err = ui.register(ctx)
		case choiceLogin:
			err = ui.login(ctx)
		case choiceExit:
			fmt.Fprintln(ui.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(ui.out, "Invalid option.")
		}
		if err != nil {
			return err
		}
	}
}

func (ui *UI) register(ctx context.Context) error {
	username, err := ui.prompt("Enter Username: ")
	if err != nil {
		return err
	}
	password, err := ui.prompt("Enter Password: ")
	if err != nil {
		return err
	}

	if err := ui.bank.Register(ctx, username, password); err != nil {
		ui.printError(err)
		return nil
	}
	fmt.Fprintln(ui.out, "Registration successful! Please log in.")
	return nil
}

func (ui *UI) login(ctx context.Context) error {
	username, err := ui.prompt("Enter Username: ")
	if err != nil {
		return err
	}
	password, err := ui.prompt("Enter Password: ")
	if err != nil {
		return err
	}

	if err := ui.bank.Login(ctx, username, password); err != nil {
		ui.printError(err)
		return nil
	}
	fmt.Fprintln(ui.out, "Login successful!")

	err = ui.sessionMenu(ctx)
	if _, active := ui.bank.CurrentUser(); active {
		// input ended or ctx was cancelled mid-session
		_ = ui.bank.Logout(ctx)
	}
	return err
}

func (ui *UI) sessionMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(ui.out, "\n1. Open Account\n2. Deposit\n3. Withdraw\n4. View Statement\n5. Check Balance\n6. Calculate Interest\n7. Logout")
		choice, err := ui.readInt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case choiceOpenAccount:
			err = ui.openAccount(ctx)
		case choiceDeposit:
			err = ui.deposit(ctx)
		case choiceWithdraw:
			err = ui.withdraw(ctx)
		case choiceStatement:
			err = ui.statement(ctx)
		case choiceBalance:
			err = ui.balance(ctx)
		case choiceInterest:
			err = ui.interest(ctx)
		case choiceLogout:
			if err := ui.bank.Logout(ctx); err != nil {
				ui.printError(err)
			}
			fmt.Fprintln(ui.out, "Logged out.")
			return nil
		default:
			fmt.Fprintln(ui.out, "Invalid option.")
		}
		if err != nil {
			return err
		}
	}
}

func (ui *UI) readLine() (string, error) {
	s, err := ui.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

func (ui *UI) prompt(label string) (string, error) {
	fmt.Fprint(ui.out, label)
	return ui.readLine()
}

// readInt asks again until the line holds an integer.
func (ui *UI) readInt(label string) (int, error) {
	for {
		raw, err := ui.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := ui.validator.ParseInt(raw)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(ui.out, "Please enter a whole number.")
	}
}

// readDecimal asks again until parse accepts the line.
func (ui *UI) readDecimal(label string, parse func(string) (decimal.Decimal, error)) (decimal.Decimal, error) {
	for {
		raw, err := ui.prompt(label)
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := parse(raw)
		if err == nil {
			return amount, nil
		}
		ui.printError(err)
	}
}

func formatMoney(v decimal.Decimal) string {
	return v.StringFixed(2)
}
