package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/benx421/minibank/internal/models"
	"github.com/benx421/minibank/internal/repository"
	"github.com/shopspring/decimal"
)

// Receipt describes a posted transaction and the resulting balance
type Receipt struct {
	Record        models.TransactionRecord
	Balance       decimal.Decimal
	AccountNumber int
}

// TransactionService posts deposits and withdrawals on behalf of a customer
type TransactionService struct {
	customers repository.CustomerRepository
	accounts  repository.AccountRepository
	logger    *slog.Logger
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	customers repository.CustomerRepository,
	accounts repository.AccountRepository,
	logger *slog.Logger,
) *TransactionService {
	return &TransactionService{
		customers: customers,
		accounts:  accounts,
		logger:    logger,
	}
}

// Deposit credits amount to the account on behalf of the customer
func (s *TransactionService) Deposit(
	ctx context.Context,
	taxID string,
	accountNumber int,
	amount decimal.Decimal,
) (*Receipt, error) {
	return s.execute(ctx, taxID, accountNumber, models.NewDeposit(amount))
}

// Withdraw debits amount from the account on behalf of the customer
func (s *TransactionService) Withdraw(
	ctx context.Context,
	taxID string,
	accountNumber int,
	amount decimal.Decimal,
) (*Receipt, error) {
	return s.execute(ctx, taxID, accountNumber, models.NewWithdrawal(amount))
}

// execute resolves both parties and lets the customer apply tx. The account is
// looked up in the whole registry so that ownership is decided by the customer.
func (s *TransactionService) execute(
	ctx context.Context,
	taxID string,
	accountNumber int,
	tx models.Transaction,
) (*Receipt, error) {
	if err := ValidateAmount(tx.Amount()); err != nil {
		s.logger.Warn("transaction rejected",
			"code", ErrCodeInvalidAmount,
			"kind", tx.Kind(),
			"account_number", accountNumber,
		)
		return nil, &ServiceError{
			Code:    ErrCodeInvalidAmount,
			Message: err.Error(),
			Err:     models.ErrInvalidAmount,
		}
	}

	customer, err := s.customers.FindByTaxID(ctx, strings.TrimSpace(taxID))
	if err != nil {
		return nil, lookupError(err, ErrCodeCustomerNotFound, "customer not found")
	}

	if len(customer.Accounts()) == 0 {
		return nil, &ServiceError{
			Code:    ErrCodeCustomerHasNoAccounts,
			Message: "customer has no accounts",
		}
	}

	account, err := s.accounts.FindByNumber(ctx, accountNumber)
	if err != nil {
		return nil, lookupError(err, ErrCodeAccountNotFound, "account not found")
	}

	posting, err := customer.ExecuteTransaction(account, tx)
	if err != nil {
		svcErr := transactionError(err)
		s.logger.Warn("transaction rejected",
			"code", svcErr.Code,
			"kind", tx.Kind(),
			"amount", tx.Amount().StringFixed(2),
			"account_number", accountNumber,
		)
		return nil, svcErr
	}

	s.logger.Info("transaction posted",
		"kind", posting.Record.Kind,
		"amount", posting.Record.Amount.StringFixed(2),
		"account_number", account.Number,
		"balance", posting.Balance.StringFixed(2),
	)

	return &Receipt{
		Record:        posting.Record,
		Balance:       posting.Balance,
		AccountNumber: account.Number,
	}, nil
}
