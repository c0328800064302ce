package models

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Customer owns accounts and is the only party allowed to transact on them
type Customer struct {
	Address  string
	accounts []*Account
	ID       uuid.UUID
	mu       sync.RWMutex
}

// IndividualCustomer is a customer identified by a personal tax id
type IndividualCustomer struct {
	TaxID     string
	FullName  string
	BirthDate string
	Customer
}

// NewIndividualCustomer creates a customer with a fresh identity and no accounts
func NewIndividualCustomer(taxID, fullName, birthDate, address string) *IndividualCustomer {
	return &IndividualCustomer{
		Customer: Customer{
			ID:      uuid.New(),
			Address: address,
		},
		TaxID:     taxID,
		FullName:  fullName,
		BirthDate: birthDate,
	}
}

// AddAccount appends account to the owned accounts
func (c *Customer) AddAccount(account *Account) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = append(c.accounts, account)
}

// Accounts returns a copy of the owned accounts in opening order
func (c *Customer) Accounts() []*Account {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.accounts)
}

// Owns reports whether account is among the customer's accounts
func (c *Customer) Owns(account *Account) bool {
	if account == nil || account.OwnerID != c.ID {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Contains(c.accounts, account)
}

// ExecuteTransaction applies tx to account after checking ownership.
func (c *Customer) ExecuteTransaction(account *Account, tx Transaction) (Posting, error) {
	if !c.Owns(account) {
		return Posting{}, ErrAccountNotOwned
	}
	return tx.Apply(account)
}
