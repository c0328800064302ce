package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/benx421/minibank/internal/config"
	"github.com/benx421/minibank/internal/models"
	"github.com/benx421/minibank/internal/repository"
	"github.com/shopspring/decimal"
)

// AccountSummary is a read-only view of an account for listings
type AccountSummary struct {
	Balance    decimal.Decimal
	BranchCode string
	OwnerName  string
	Number     int
}

// Statement is the transaction history of an account with its balance
type Statement struct {
	Balance       decimal.Decimal
	BranchCode    string
	Text          string
	Entries       []models.TransactionRecord
	AccountNumber int
}

// AccountService handles account opening, listing and statements
type AccountService struct {
	customers repository.CustomerRepository
	accounts  repository.AccountRepository
	logger    *slog.Logger
	now       func() time.Time
	policy    models.WithdrawalPolicy
	branch    string
}

// NewAccountService creates a new AccountService opening checking accounts
// with the configured branch and withdrawal policy
func NewAccountService(
	customers repository.CustomerRepository,
	accounts repository.AccountRepository,
	cfg *config.BankConfig,
	logger *slog.Logger,
) *AccountService {
	return &AccountService{
		customers: customers,
		accounts:  accounts,
		logger:    logger,
		now:       time.Now,
		policy: models.WithdrawalPolicy{
			OverdraftLimit:       cfg.OverdraftLimit,
			DailyWithdrawalLimit: cfg.DailyWithdrawalLimit,
		},
		branch: cfg.BranchCode,
	}
}

// OpenAccount opens a checking account for the customer with the given tax id
func (s *AccountService) OpenAccount(ctx context.Context, taxID string) (*models.Account, error) {
	customer, err := s.customers.FindByTaxID(ctx, strings.TrimSpace(taxID))
	if err != nil {
		return nil, lookupError(err, ErrCodeCustomerNotFound, "customer not found")
	}

	account, err := s.accounts.CreateNext(ctx, func(number int) *models.Account {
		return models.OpenCheckingAccount(&customer.Customer, number, s.policy,
			models.WithBranchCode(s.branch),
			models.WithClock(s.now),
		)
	})
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to open account",
			Err:     err,
		}
	}
	customer.AddAccount(account)

	s.logger.Info("account opened",
		"account_number", account.Number,
		"branch", account.BranchCode,
		"customer_id", customer.ID,
	)
	return account, nil
}

// ListAccounts returns every account with its owner name and balance
func (s *AccountService) ListAccounts(ctx context.Context) ([]AccountSummary, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to list accounts",
			Err:     err,
		}
	}

	out := make([]AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		owner, err := s.customers.FindByID(ctx, account.OwnerID)
		if err != nil {
			return nil, lookupError(err, ErrCodeCustomerNotFound, "account owner not found")
		}
		out = append(out, AccountSummary{
			Number:     account.Number,
			BranchCode: account.BranchCode,
			OwnerName:  owner.FullName,
			Balance:    account.Balance(),
		})
	}

	return out, nil
}

// Statement returns the formatted history and current balance of an account
func (s *AccountService) Statement(ctx context.Context, accountNumber int) (*Statement, error) {
	account, err := s.accounts.FindByNumber(ctx, accountNumber)
	if err != nil {
		return nil, lookupError(err, ErrCodeAccountNotFound, "account not found")
	}

	history := account.History()
	return &Statement{
		AccountNumber: account.Number,
		BranchCode:    account.BranchCode,
		Entries:       history.Entries(),
		Text:          history.FormattedStatement(),
		Balance:       account.Balance(),
	}, nil
}
