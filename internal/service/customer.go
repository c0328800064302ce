package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/benx421/minibank/internal/models"
	"github.com/benx421/minibank/internal/repository"
)

// CustomerService handles customer registration
type CustomerService struct {
	customers repository.CustomerRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customers repository.CustomerRepository, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		customers: customers,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateCustomer registers an individual customer with a unique tax id
func (s *CustomerService) CreateCustomer(
	ctx context.Context,
	taxID, fullName, birthDate, address string,
) (*models.IndividualCustomer, error) {
	taxID = strings.TrimSpace(taxID)
	fullName = strings.TrimSpace(fullName)
	birthDate = strings.TrimSpace(birthDate)
	address = strings.TrimSpace(address)

	if err := s.validateCustomer(taxID, fullName, birthDate); err != nil {
		return nil, err
	}

	customer := models.NewIndividualCustomer(taxID, fullName, birthDate, address)
	if err := s.customers.Create(ctx, customer); err != nil {
		if errors.Is(err, models.ErrDuplicateTaxID) {
			s.logger.Warn("customer rejected", "code", ErrCodeDuplicateTaxID, "tax_id", taxID)
			return nil, &ServiceError{
				Code:    ErrCodeDuplicateTaxID,
				Message: "a customer with this tax id already exists",
				Err:     err,
			}
		}
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to create customer",
			Err:     err,
		}
	}

	s.logger.Info("customer created", "customer_id", customer.ID, "tax_id", taxID)
	return customer, nil
}

// GetCustomer retrieves a customer by tax id
func (s *CustomerService) GetCustomer(ctx context.Context, taxID string) (*models.IndividualCustomer, error) {
	customer, err := s.customers.FindByTaxID(ctx, strings.TrimSpace(taxID))
	if err != nil {
		return nil, lookupError(err, ErrCodeCustomerNotFound, "customer not found")
	}
	return customer, nil
}

func (s *CustomerService) validateCustomer(taxID, fullName, birthDate string) error {
	if err := ValidateTaxID(taxID); err != nil {
		return &ServiceError{Code: ErrCodeInvalidCustomer, Message: err.Error()}
	}

	if err := ValidateFullName(fullName); err != nil {
		return &ServiceError{Code: ErrCodeInvalidCustomer, Message: err.Error()}
	}

	if err := ValidateBirthDate(birthDate, s.now()); err != nil {
		return &ServiceError{Code: ErrCodeInvalidCustomer, Message: err.Error()}
	}

	return nil
}
