// Package cli implements the interactive text menu of the bank.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/benx421/minibank/internal/service"
	"github.com/shopspring/decimal"
)

const menu = `
================ MENU ================
[nu] New customer
[nc] New account
[lc] List accounts
[d]  Deposit
[s]  Withdraw
[e]  Statement
[q]  Quit
=> `

const separator = "============================================================"

// CLI reads menu choices from an input stream and writes results to an output stream
type CLI struct {
	in        *bufio.Scanner
	out       io.Writer
	customers service.CustomerRegistrar
	accounts  service.AccountManager
	teller    service.Teller
	logger    *slog.Logger
}

// New creates a CLI bound to the given services
func New(
	in io.Reader,
	out io.Writer,
	customers service.CustomerRegistrar,
	accounts service.AccountManager,
	teller service.Teller,
	logger *slog.Logger,
) *CLI {
	return &CLI{
		in:        bufio.NewScanner(in),
		out:       out,
		customers: customers,
		accounts:  accounts,
		teller:    teller,
		logger:    logger,
	}
}

// Run shows the menu until the user quits, the input ends or ctx is done
func (c *CLI) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := c.readLine(menu)
		if err != nil {
			return c.endSession(err)
		}

		switch strings.ToLower(choice) {
		case "nu":
			err = c.newCustomer(ctx)
		case "nc":
			err = c.newAccount(ctx)
		case "lc":
			err = c.listAccounts(ctx)
		case "d":
			err = c.deposit(ctx)
		case "s":
			err = c.withdraw(ctx)
		case "e":
			err = c.statement(ctx)
		case "q":
			c.println("Session closed.")
			return nil
		default:
			c.println("Invalid option, please try again.")
		}

		if err != nil {
			return c.endSession(err)
		}
	}
}

func (c *CLI) endSession(err error) error {
	if errors.Is(err, io.EOF) {
		c.println("\nSession closed.")
		return nil
	}
	return err
}

func (c *CLI) newCustomer(ctx context.Context) error {
	taxID, err := c.readLine("Tax id (digits only): ")
	if err != nil {
		return err
	}
	if _, err := c.customers.GetCustomer(ctx, taxID); err == nil {
		c.println("A customer with this tax id already exists.")
		return nil
	}

	fullName, err := c.readLine("Full name: ")
	if err != nil {
		return err
	}
	birthDate, err := c.readLine("Birth date (dd-mm-yyyy): ")
	if err != nil {
		return err
	}
	address, err := c.readLine("Address (street, number - district - city/state): ")
	if err != nil {
		return err
	}

	if _, err := c.customers.CreateCustomer(ctx, taxID, fullName, birthDate, address); err != nil {
		c.reportFailure(err)
		return nil
	}
	c.println("Customer created successfully.")
	return nil
}

func (c *CLI) newAccount(ctx context.Context) error {
	taxID, err := c.readLine("Holder tax id: ")
	if err != nil {
		return err
	}

	account, err := c.accounts.OpenAccount(ctx, taxID)
	if err != nil {
		c.reportFailure(err)
		return nil
	}
	c.printf("Account created successfully. Branch %s account %d\n", account.BranchCode, account.Number)
	return nil
}

func (c *CLI) listAccounts(ctx context.Context) error {
	summaries, err := c.accounts.ListAccounts(ctx)
	if err != nil {
		c.reportFailure(err)
		return nil
	}
	if len(summaries) == 0 {
		c.println("No accounts registered.")
		return nil
	}

	for _, s := range summaries {
		c.println(separator)
		c.printf("Branch:  %s\n", s.BranchCode)
		c.printf("Account: %d\n", s.Number)
		c.printf("Holder:  %s\n", s.OwnerName)
		c.printf("Balance: $ %s\n", s.Balance.StringFixed(2))
	}
	return nil
}

func (c *CLI) deposit(ctx context.Context) error {
	return c.transact(ctx, "Deposit amount: ", "Deposit", c.teller.Deposit)
}

func (c *CLI) withdraw(ctx context.Context) error {
	return c.transact(ctx, "Withdrawal amount: ", "Withdrawal", c.teller.Withdraw)
}

type tellerFunc func(ctx context.Context, taxID string, accountNumber int, amount decimal.Decimal) (*service.Receipt, error)

func (c *CLI) transact(ctx context.Context, amountPrompt, label string, op tellerFunc) error {
	taxID, err := c.readLine("Holder tax id: ")
	if err != nil {
		return err
	}
	number, ok, err := c.readAccountNumber()
	if err != nil || !ok {
		return err
	}
	rawAmount, err := c.readLine(amountPrompt)
	if err != nil {
		return err
	}
	amount, err := service.ParseAmount(rawAmount)
	if err != nil {
		c.println("Invalid amount.")
		return nil
	}

	receipt, err := op(ctx, taxID, number, amount)
	if err != nil {
		c.reportFailure(err)
		return nil
	}
	c.printf("%s completed. Balance: $ %s\n", label, receipt.Balance.StringFixed(2))
	return nil
}

func (c *CLI) statement(ctx context.Context) error {
	number, ok, err := c.readAccountNumber()
	if err != nil || !ok {
		return err
	}

	statement, err := c.accounts.Statement(ctx, number)
	if err != nil {
		c.reportFailure(err)
		return nil
	}

	c.println("\n================ STATEMENT ================")
	c.println(statement.Text)
	c.printf("\nBalance:\t$ %s\n", statement.Balance.StringFixed(2))
	c.println("===========================================")
	return nil
}

// readAccountNumber reports ok=false after telling the user the input was not a number
func (c *CLI) readAccountNumber() (int, bool, error) {
	raw, err := c.readLine("Account number: ")
	if err != nil {
		return 0, false, err
	}
	number, err := strconv.Atoi(raw)
	if err != nil {
		c.println("Invalid account number.")
		return 0, false, nil
	}
	return number, true, nil
}

func (c *CLI) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *CLI) reportFailure(err error) {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		c.printf("Operation failed: %s.\n", svcErr.Message)
		return
	}
	c.logger.Error("unexpected error", "error", err)
	c.println("Operation failed: unexpected error.")
}

func (c *CLI) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
