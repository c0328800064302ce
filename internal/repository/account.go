// Package repository provides the in-memory registry of customers and accounts.
package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/benx421/minibank/internal/models"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	// CreateNext assigns the next sequential number, builds the account with
	// open and stores it.
	CreateNext(ctx context.Context, open func(number int) *models.Account) (*models.Account, error)
	FindByNumber(ctx context.Context, number int) (*models.Account, error)
	List(ctx context.Context) ([]*models.Account, error)
}

// accountRepository implements AccountRepository
type accountRepository struct {
	byNumber map[int]*models.Account
	ordered  []*models.Account
	mu       sync.RWMutex
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository() AccountRepository {
	return &accountRepository{byNumber: make(map[int]*models.Account)}
}

// CreateNext stores a new account numbered one past the last account, starting at 1
func (r *accountRepository) CreateNext(ctx context.Context, open func(number int) *models.Account) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	number := len(r.ordered) + 1
	account := open(number)
	if account == nil {
		return nil, fmt.Errorf("failed to open account %d", number)
	}
	if account.Number != number {
		return nil, fmt.Errorf("account opened with number %d, expected %d", account.Number, number)
	}

	r.byNumber[number] = account
	r.ordered = append(r.ordered, account)
	return account, nil
}

// FindByNumber retrieves an account by its number
func (r *accountRepository) FindByNumber(ctx context.Context, number int) (*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("account %d not found: %w", number, models.ErrNotFound)
	}
	return account, nil
}

// List returns all accounts ordered by number
func (r *accountRepository) List(ctx context.Context) ([]*models.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Account, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}
