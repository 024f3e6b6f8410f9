package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	rentalRepo   repository.RentalRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, rentalRepo repository.RentalRepository) CustomerService {
	return &customerService{customerRepo: customerRepo, rentalRepo: rentalRepo}
}

func (s *customerService) AddCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}

	existing, err := s.customerRepo.GetByLicense(ctx, customer.LicenseNumber)
	if err != nil && !errors.Is(err, domain.ErrCustomerNotFound) {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicateLicense
	}

	customer.RegistrationDate = time.Now()
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return err
	}
	logger.Info("customer added", "customer_id", customer.ID)
	return nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}

	existing, err := s.customerRepo.GetByLicense(ctx, customer.LicenseNumber)
	if err != nil && !errors.Is(err, domain.ErrCustomerNotFound) {
		return err
	}
	if existing != nil && existing.ID != customer.ID {
		return domain.ErrDuplicateLicense
	}

	return s.customerRepo.Update(ctx, customer)
}

// DeleteCustomer refuses while the customer holds an active rental. The
// repository soft-deletes, so closed rental history keeps its reference.
func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	active, err := s.rentalRepo.HasActiveByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if active {
		return domain.ErrCustomerHasActiveRental
	}
	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("customer deleted", "customer_id", id)
	return nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) SearchCustomers(ctx context.Context, term string) ([]domain.Customer, error) {
	return s.customerRepo.Search(ctx, term)
}

func validateCustomer(customer *domain.Customer) error {
	switch {
	case customer.FirstName == "":
		return fmt.Errorf("%w: first name is required", domain.ErrValidation)
	case customer.LastName == "":
		return fmt.Errorf("%w: last name is required", domain.ErrValidation)
	case customer.Phone == "":
		return fmt.Errorf("%w: phone is required", domain.ErrValidation)
	case customer.LicenseNumber == "":
		return fmt.Errorf("%w: license number is required", domain.ErrValidation)
	}
	return nil
}
