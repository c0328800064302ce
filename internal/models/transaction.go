package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind represents the type of a posted transaction
type TransactionKind string

const (
	TransactionKindDeposit    TransactionKind = "DEPOSIT"
	TransactionKindWithdrawal TransactionKind = "WITHDRAWAL"
)

// TransactionRecord is an immutable entry of an account history
type TransactionRecord struct {
	Timestamp time.Time
	Amount    decimal.Decimal
	Kind      TransactionKind
}

// Posting is the outcome of a successful transaction: the recorded entry and
// the balance right after it, read under the same account lock.
type Posting struct {
	Record  TransactionRecord
	Balance decimal.Decimal
}

// Transaction is a command applied to an account. On success the account
// history receives a new record; on failure nothing changes.
type Transaction interface {
	Kind() TransactionKind
	Amount() decimal.Decimal
	Apply(account *Account) (Posting, error)
}

// Deposit credits an account
type Deposit struct {
	amount decimal.Decimal
}

// NewDeposit creates a deposit command for the given amount
func NewDeposit(amount decimal.Decimal) Deposit {
	return Deposit{amount: amount}
}

func (d Deposit) Kind() TransactionKind { return TransactionKindDeposit }

func (d Deposit) Amount() decimal.Decimal { return d.amount }

// Apply credits the account and records the deposit in its history
func (d Deposit) Apply(account *Account) (Posting, error) {
	account.mu.Lock()
	defer account.mu.Unlock()

	if err := account.deposit(d.amount); err != nil {
		return Posting{}, err
	}
	return account.post(TransactionKindDeposit, d.amount), nil
}

// Withdrawal debits an account
type Withdrawal struct {
	amount decimal.Decimal
}

// NewWithdrawal creates a withdrawal command for the given amount
func NewWithdrawal(amount decimal.Decimal) Withdrawal {
	return Withdrawal{amount: amount}
}

func (w Withdrawal) Kind() TransactionKind { return TransactionKindWithdrawal }

func (w Withdrawal) Amount() decimal.Decimal { return w.amount }

// Apply debits the account and records the withdrawal in its history
func (w Withdrawal) Apply(account *Account) (Posting, error) {
	account.mu.Lock()
	defer account.mu.Unlock()

	if err := account.withdraw(w.amount); err != nil {
		return Posting{}, err
	}
	return account.post(TransactionKindWithdrawal, w.amount), nil
}

var (
	_ Transaction = Deposit{}
	_ Transaction = Withdrawal{}
)
