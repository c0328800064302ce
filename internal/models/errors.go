package models

import "errors"

// Domain errors returned by accounts, customers and the registry
var (
	// ErrInvalidAmount indicates a deposit or withdrawal amount that is not greater than zero
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds indicates a withdrawal larger than the account balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrOverdraftLimitExceeded indicates a single withdrawal above the checking account limit
	ErrOverdraftLimitExceeded = errors.New("withdrawal exceeds overdraft limit")

	// ErrDailyWithdrawalLimitExceeded indicates the checking account already reached its withdrawals for the day
	ErrDailyWithdrawalLimitExceeded = errors.New("daily withdrawal limit exceeded")

	// ErrAccountNotOwned indicates a transaction on an account the customer does not own
	ErrAccountNotOwned = errors.New("account does not belong to customer")

	// ErrDuplicateTaxID indicates a customer with the same tax id is already registered
	ErrDuplicateTaxID = errors.New("duplicate tax id")

	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")
)
