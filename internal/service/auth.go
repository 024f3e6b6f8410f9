package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type authService struct {
	employeeRepo repository.EmployeeRepository
	tokens       security.TokenManager
}

func NewAuthService(employeeRepo repository.EmployeeRepository, tokens security.TokenManager) AuthService {
	return &authService{employeeRepo: employeeRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.Employee, error) {
	employee, err := s.employeeRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			// Same error for unknown user and bad password.
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if employee.Status != domain.EmployeeStatusActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(employee.ID, employee.Username, employee.Role)
	if err != nil {
		return "", nil, err
	}

	logger.Info("employee logged in", "employee_id", employee.ID, "username", employee.Username)
	return token, employee, nil
}
