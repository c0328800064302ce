package service

import (
	"context"

	"github.com/benx421/minibank/internal/models"
	"github.com/shopspring/decimal"
)

// CustomerRegistrar handles customer registration and lookup
type CustomerRegistrar interface {
	CreateCustomer(ctx context.Context, taxID, fullName, birthDate, address string) (*models.IndividualCustomer, error)
	GetCustomer(ctx context.Context, taxID string) (*models.IndividualCustomer, error)
}

// AccountManager handles account opening and read-only queries
type AccountManager interface {
	OpenAccount(ctx context.Context, taxID string) (*models.Account, error)
	ListAccounts(ctx context.Context) ([]AccountSummary, error)
	Statement(ctx context.Context, accountNumber int) (*Statement, error)
}

// Teller handles deposits and withdrawals
type Teller interface {
	Deposit(ctx context.Context, taxID string, accountNumber int, amount decimal.Decimal) (*Receipt, error)
	Withdraw(ctx context.Context, taxID string, accountNumber int, amount decimal.Decimal) (*Receipt, error)
}

// Ensure concrete types implement interfaces
var (
	_ CustomerRegistrar = (*CustomerService)(nil)
	_ AccountManager    = (*AccountService)(nil)
	_ Teller            = (*TransactionService)(nil)
)
