package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) AddEmployee(ctx context.Context, employee *domain.Employee, password string) error {
	if err := validateEmployee(employee); err != nil {
		return err
	}
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}

	if existing, err := s.employeeRepo.GetByEmail(ctx, employee.Email); err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
		return err
	} else if existing != nil {
		return domain.ErrDuplicateEmail
	}
	if existing, err := s.employeeRepo.GetByUsername(ctx, employee.Username); err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
		return err
	} else if existing != nil {
		return domain.ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	employee.PasswordHash = string(hash)
	if employee.Status == "" {
		employee.Status = domain.EmployeeStatusActive
	}
	if employee.Role == "" {
		employee.Role = domain.RoleEmployee
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return err
	}
	logger.Info("employee added", "employee_id", employee.ID, "role", employee.Role)
	return nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employee *domain.Employee) error {
	if err := validateEmployee(employee); err != nil {
		return err
	}

	if existing, err := s.employeeRepo.GetByEmail(ctx, employee.Email); err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
		return err
	} else if existing != nil && existing.ID != employee.ID {
		return domain.ErrDuplicateEmail
	}

	return s.employeeRepo.Update(ctx, employee)
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("employee deactivated", "employee_id", id)
	return nil
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.List(ctx)
}

func (s *employeeService) SearchEmployees(ctx context.Context, term string) ([]domain.Employee, error) {
	return s.employeeRepo.Search(ctx, term)
}

func validateEmployee(employee *domain.Employee) error {
	switch {
	case employee.FirstName == "":
		return fmt.Errorf("%w: first name is required", domain.ErrValidation)
	case employee.LastName == "":
		return fmt.Errorf("%w: last name is required", domain.ErrValidation)
	case employee.Email == "":
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	case employee.Username == "":
		return fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	return nil
}
