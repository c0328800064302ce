package service

import (
	"errors"
	"fmt"

	"github.com/benx421/minibank/internal/models"
)

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidAmount          = "invalid_amount"
	ErrCodeInsufficientFunds      = "insufficient_funds"
	ErrCodeOverdraftLimitExceeded = "overdraft_limit_exceeded"
	ErrCodeDailyLimitExceeded     = "daily_withdrawal_limit_exceeded"
	ErrCodeAccountNotOwned        = "account_not_owned"
	ErrCodeAccountNotFound        = "account_not_found"
	ErrCodeCustomerNotFound       = "customer_not_found"
	ErrCodeCustomerHasNoAccounts  = "customer_has_no_accounts"
	ErrCodeDuplicateTaxID         = "duplicate_tax_id"
	ErrCodeInvalidCustomer        = "invalid_customer"
	ErrCodeInternalError          = "internal_error"
)

// transactionError maps a rejected transaction to a ServiceError
func transactionError(err error) *ServiceError {
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		return &ServiceError{Code: ErrCodeInvalidAmount, Message: "amount must be greater than zero", Err: err}
	case errors.Is(err, models.ErrInsufficientFunds):
		return &ServiceError{Code: ErrCodeInsufficientFunds, Message: "insufficient funds", Err: err}
	case errors.Is(err, models.ErrOverdraftLimitExceeded):
		return &ServiceError{Code: ErrCodeOverdraftLimitExceeded, Message: "withdrawal exceeds the account limit", Err: err}
	case errors.Is(err, models.ErrDailyWithdrawalLimitExceeded):
		return &ServiceError{Code: ErrCodeDailyLimitExceeded, Message: "maximum number of daily withdrawals reached", Err: err}
	case errors.Is(err, models.ErrAccountNotOwned):
		return &ServiceError{Code: ErrCodeAccountNotOwned, Message: "account does not belong to this customer", Err: err}
	default:
		return &ServiceError{Code: ErrCodeInternalError, Message: "transaction failed", Err: err}
	}
}

// lookupError maps a registry lookup failure to a ServiceError with notFoundCode
func lookupError(err error, notFoundCode, notFoundMessage string) *ServiceError {
	if errors.Is(err, models.ErrNotFound) {
		return &ServiceError{Code: notFoundCode, Message: notFoundMessage, Err: err}
	}
	return &ServiceError{Code: ErrCodeInternalError, Message: "lookup failed", Err: err}
}
