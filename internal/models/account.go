package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultBranchCode is assigned to accounts opened without an explicit branch
const DefaultBranchCode = "0001"

// WithdrawalPolicy holds the extra withdrawal rules of a checking account
type WithdrawalPolicy struct {
	// OverdraftLimit bounds the size of a single withdrawal
	OverdraftLimit decimal.Decimal
	// DailyWithdrawalLimit bounds the number of withdrawals per calendar day
	DailyWithdrawalLimit int
}

// Account holds a balance and its transaction history. An account with a
// withdrawal policy behaves as a checking account.
type Account struct {
	balance    decimal.Decimal
	now        func() time.Time
	history    *History
	policy     *WithdrawalPolicy
	BranchCode string
	Number     int
	OwnerID    uuid.UUID
	mu         sync.Mutex
}

// AccountOption customizes an account at opening time
type AccountOption func(*Account)

// WithBranchCode overrides the default branch code
func WithBranchCode(code string) AccountOption {
	return func(a *Account) {
		if code != "" {
			a.BranchCode = code
		}
	}
}

// WithClock sets the clock used for history timestamps and daily limits
func WithClock(now func() time.Time) AccountOption {
	return func(a *Account) {
		if now != nil {
			a.now = now
		}
	}
}

// OpenAccount creates an account for owner with a zero balance and empty history
func OpenAccount(owner *Customer, number int, opts ...AccountOption) *Account {
	a := &Account{
		Number:     number,
		BranchCode: DefaultBranchCode,
		OwnerID:    owner.ID,
		balance:    decimal.Zero,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.history = NewHistory(a.now)
	return a
}

// OpenCheckingAccount creates an account governed by the given withdrawal policy
func OpenCheckingAccount(owner *Customer, number int, policy WithdrawalPolicy, opts ...AccountOption) *Account {
	a := OpenAccount(owner, number, opts...)
	a.policy = &policy
	return a
}

// Balance returns the current balance
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// History returns the account history
func (a *Account) History() *History {
	return a.history
}

// Policy returns the withdrawal policy of a checking account
func (a *Account) Policy() (WithdrawalPolicy, bool) {
	if a.policy == nil {
		return WithdrawalPolicy{}, false
	}
	return *a.policy, true
}

// IsChecking reports whether the account enforces a withdrawal policy
func (a *Account) IsChecking() bool {
	return a.policy != nil
}

func (a *Account) deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	return nil
}

// post records a movement already applied to the balance. Callers hold a.mu.
func (a *Account) post(kind TransactionKind, amount decimal.Decimal) Posting {
	return Posting{
		Record:  a.history.Record(kind, amount),
		Balance: a.balance,
	}
}

// withdraw checks, in order: amount, overdraft limit, daily count, funds.
func (a *Account) withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	if a.policy != nil {
		if amount.GreaterThan(a.policy.OverdraftLimit) {
			return ErrOverdraftLimitExceeded
		}
		if a.history.WithdrawalCountOnDate(a.now()) >= a.policy.DailyWithdrawalLimit {
			return ErrDailyWithdrawalLimitExceeded
		}
	}

	if amount.GreaterThan(a.balance) {
		return ErrInsufficientFunds
	}
	a.balance = a.balance.Sub(amount)
	return nil
}
