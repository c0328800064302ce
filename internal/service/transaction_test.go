package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/benx421/minibank/internal/models"
	"github.com/benx421/minibank/internal/repository"
	"github.com/benx421/minibank/internal/repository/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransactionService_Deposit(t *testing.T) {
	t.Run("successful deposit", func(t *testing.T) {
		mockCustomers := mocks.NewMockCustomerRepository(t)
		mockAccounts := mocks.NewMockAccountRepository(t)
		service := NewTransactionService(mockCustomers, mockAccounts, discardLogger())
		ctx := context.Background()

		customer := models.NewIndividualCustomer("1", "Ana", "01-01-1990", "Street")
		account := models.OpenAccount(&customer.Customer, 1)
		customer.AddAccount(account)

		mockCustomers.On("FindByTaxID", ctx, "1").Return(customer, nil)
		mockAccounts.On("FindByNumber", ctx, 1).Return(account, nil)

		receipt, err := service.Deposit(ctx, "1", 1, dec("250.10"))

		require.NoError(t, err)
		assert.Equal(t, 1, receipt.AccountNumber)
		assert.Equal(t, models.TransactionKindDeposit, receipt.Record.Kind)
		assert.Equal(t, "250.10", receipt.Record.Amount.StringFixed(2))
		assert.Equal(t, "250.10", receipt.Balance.StringFixed(2))
		assert.Equal(t, 1, account.History().Len())
	})

	t.Run("invalid amount is rejected before any lookup", func(t *testing.T) {
		amounts := map[string]decimal.Decimal{
			"negative":            dec("-5.00"),
			"zero":                decimal.Zero,
			"three decimals":      dec("0.001"),
			"huge exponent":       decimal.New(1, 300000000),
			"too many int digits": dec("1000000000000"),
		}

		for name, amount := range amounts {
			t.Run(name, func(t *testing.T) {
				mockCustomers := mocks.NewMockCustomerRepository(t)
				mockAccounts := mocks.NewMockAccountRepository(t)
				service := NewTransactionService(mockCustomers, mockAccounts, discardLogger())

				receipt, err := service.Deposit(context.Background(), "1", 1, amount)

				assert.Nil(t, receipt)
				var svcErr *ServiceError
				if assert.ErrorAs(t, err, &svcErr) {
					assert.Equal(t, ErrCodeInvalidAmount, svcErr.Code)
				}
				assert.ErrorIs(t, err, models.ErrInvalidAmount)
			})
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		mockCustomers := mocks.NewMockCustomerRepository(t)
		mockAccounts := mocks.NewMockAccountRepository(t)
		service := NewTransactionService(mockCustomers, mockAccounts, discardLogger())
		ctx := context.Background()

		mockCustomers.On("FindByTaxID", ctx, "9").
			Return(nil, fmt.Errorf("customer with tax id 9 not found: %w", models.ErrNotFound))

		_, err := service.Deposit(ctx, "9", 1, dec("10"))

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeCustomerNotFound, svcErr.Code)
		}
		mockAccounts.AssertNotCalled(t, "FindByNumber", mock.Anything, mock.Anything)
	})

	t.Run("customer without accounts", func(t *testing.T) {
		mockCustomers := mocks.NewMockCustomerRepository(t)
		mockAccounts := mocks.NewMockAccountRepository(t)
		service := NewTransactionService(mockCustomers, mockAccounts, discardLogger())
		ctx := context.Background()

		customer := models.NewIndividualCustomer("1", "Ana", "01-01-1990", "Street")
		mockCustomers.On("FindByTaxID", ctx, "1").Return(customer, nil)

		_, err := service.Deposit(ctx, "1", 1, dec("10"))

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeCustomerHasNoAccounts, svcErr.Code)
		}
	})

	t.Run("unknown account", func(t *testing.T) {
		mockCustomers := mocks.NewMockCustomerRepository(t)
		mockAccounts := mocks.NewMockAccountRepository(t)
		service := NewTransactionService(mockCustomers, mockAccounts, discardLogger())
		ctx := context.Background()

		customer := models.NewIndividualCustomer("1", "Ana", "01-01-1990", "Street")
		customer.AddAccount(models.OpenAccount(&customer.Customer, 1))
		mockCustomers.On("FindByTaxID", ctx, "1").Return(customer, nil)
		mockAccounts.On("FindByNumber", ctx, 7).
			Return(nil, fmt.Errorf("account 7 not found: %w", models.ErrNotFound))

		_, err := service.Deposit(ctx, "1", 7, dec("10"))

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeAccountNotFound, svcErr.Code)
		}
	})
}

func TestTransactionService_Withdraw(t *testing.T) {
	tests := []struct {
		name        string
		amount      string
		wantCode    string
		wantBalance string
	}{
		{name: "successful withdrawal", amount: "200", wantBalance: "200.00"},
		{name: "insufficient funds", amount: "450", wantCode: ErrCodeInsufficientFunds, wantBalance: "400.00"},
		{name: "above overdraft limit", amount: "500.01", wantCode: ErrCodeOverdraftLimitExceeded, wantBalance: "400.00"},
		{name: "zero amount", amount: "0", wantCode: ErrCodeInvalidAmount, wantBalance: "400.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCustomers := mocks.NewMockCustomerRepository(t)
			mockAccounts := mocks.NewMockAccountRepository(t)
			service := NewTransactionService(mockCustomers, mockAccounts, discardLogger())
			ctx := context.Background()

			customer := models.NewIndividualCustomer("1", "Ana", "01-01-1990", "Street")
			account := models.OpenCheckingAccount(&customer.Customer, 1, models.WithdrawalPolicy{
				OverdraftLimit:       dec("500"),
				DailyWithdrawalLimit: 3,
			})
			customer.AddAccount(account)
			_, err := customer.ExecuteTransaction(account, models.NewDeposit(dec("1000")))
			require.NoError(t, err)
			for _, amount := range []string{"500", "100"} {
				_, err = customer.ExecuteTransaction(account, models.NewWithdrawal(dec(amount)))
				require.NoError(t, err)
			}

			// invalid amounts are rejected before the lookups
			mockCustomers.On("FindByTaxID", ctx, "1").Return(customer, nil).Maybe()
			mockAccounts.On("FindByNumber", ctx, 1).Return(account, nil).Maybe()

			receipt, err := service.Withdraw(ctx, "1", 1, dec(tt.amount))

			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, models.TransactionKindWithdrawal, receipt.Record.Kind)
				assert.Equal(t, tt.wantBalance, receipt.Balance.StringFixed(2))
			} else {
				assert.Nil(t, receipt)
				var svcErr *ServiceError
				if assert.ErrorAs(t, err, &svcErr) {
					assert.Equal(t, tt.wantCode, svcErr.Code)
				}
			}
			assert.Equal(t, tt.wantBalance, account.Balance().StringFixed(2))
		})
	}
}

func TestTransactionService_OwnershipCheck(t *testing.T) {
	ctx := context.Background()
	customers := repository.NewCustomerRepository()
	accounts := repository.NewAccountRepository()
	accountService := NewAccountService(customers, accounts, testBankConfig(), discardLogger())
	service := NewTransactionService(customers, accounts, discardLogger())

	owner := models.NewIndividualCustomer("1", "Ana", "01-01-1990", "Street")
	other := models.NewIndividualCustomer("2", "Bruno", "02-02-1992", "Avenue")
	require.NoError(t, customers.Create(ctx, owner))
	require.NoError(t, customers.Create(ctx, other))

	ownersAccount, err := accountService.OpenAccount(ctx, "1")
	require.NoError(t, err)
	_, err = accountService.OpenAccount(ctx, "2")
	require.NoError(t, err)

	_, err = service.Deposit(ctx, "1", ownersAccount.Number, dec("300"))
	require.NoError(t, err)
	before := ownersAccount.History().Entries()

	for _, op := range []func() (*Receipt, error){
		func() (*Receipt, error) { return service.Deposit(ctx, "2", ownersAccount.Number, dec("50")) },
		func() (*Receipt, error) { return service.Withdraw(ctx, "2", ownersAccount.Number, dec("50")) },
	} {
		receipt, err := op()

		assert.Nil(t, receipt)
		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, ErrCodeAccountNotOwned, svcErr.Code)
		}
		assert.ErrorIs(t, err, models.ErrAccountNotOwned)
	}

	assert.Equal(t, "300.00", ownersAccount.Balance().StringFixed(2))
	assert.Equal(t, before, ownersAccount.History().Entries())
}

func TestTransactionService_ConcurrentReceipts(t *testing.T) {
	ctx := context.Background()
	customers := repository.NewCustomerRepository()
	accounts := repository.NewAccountRepository()
	accountService := NewAccountService(customers, accounts, testBankConfig(), discardLogger())
	service := NewTransactionService(customers, accounts, discardLogger())

	require.NoError(t, customers.Create(ctx, models.NewIndividualCustomer("1", "Ana", "01-01-1990", "Street")))
	account, err := accountService.OpenAccount(ctx, "1")
	require.NoError(t, err)

	const deposits = 40
	receipts := make(chan *Receipt, deposits)
	var wg sync.WaitGroup
	for i := 0; i < deposits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			receipt, err := service.Deposit(ctx, "1", account.Number, dec("10"))
			if assert.NoError(t, err) {
				receipts <- receipt
			}
		}()
	}
	wg.Wait()
	close(receipts)

	balances := make(map[string]bool)
	for r := range receipts {
		balances[r.Balance.StringFixed(2)] = true
	}
	assert.Len(t, balances, deposits, "every receipt carries the balance right after its own deposit")
	assert.True(t, balances["400.00"])
	assert.Equal(t, "400.00", account.Balance().StringFixed(2))
}
