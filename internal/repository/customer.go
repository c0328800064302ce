package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/benx421/minibank/internal/models"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.IndividualCustomer) error
	FindByTaxID(ctx context.Context, taxID string) (*models.IndividualCustomer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.IndividualCustomer, error)
}

// customerRepository implements CustomerRepository
type customerRepository struct {
	byTaxID map[string]*models.IndividualCustomer
	byID    map[uuid.UUID]*models.IndividualCustomer
	mu      sync.RWMutex
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository() CustomerRepository {
	return &customerRepository{
		byTaxID: make(map[string]*models.IndividualCustomer),
		byID:    make(map[uuid.UUID]*models.IndividualCustomer),
	}
}

// Create registers a customer, rejecting a tax id that is already known
func (r *customerRepository) Create(ctx context.Context, customer *models.IndividualCustomer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byTaxID[customer.TaxID]; exists {
		return fmt.Errorf("customer with tax id %s: %w", customer.TaxID, models.ErrDuplicateTaxID)
	}

	r.byTaxID[customer.TaxID] = customer
	r.byID[customer.ID] = customer
	return nil
}

// FindByTaxID retrieves a customer by tax id
func (r *customerRepository) FindByTaxID(ctx context.Context, taxID string) (*models.IndividualCustomer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.byTaxID[taxID]
	if !ok {
		return nil, fmt.Errorf("customer with tax id %s not found: %w", taxID, models.ErrNotFound)
	}
	return customer, nil
}

// FindByID retrieves a customer by its UUID
func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.IndividualCustomer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("customer %s not found: %w", id, models.ErrNotFound)
	}
	return customer, nil
}

