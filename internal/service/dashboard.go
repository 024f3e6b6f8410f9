package service

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type dashboardService struct {
	carRepo      repository.CarRepository
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
	rentalRepo   repository.RentalRepository
}

func NewDashboardService(
	carRepo repository.CarRepository,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
	rentalRepo repository.RentalRepository,
) DashboardService {
	return &dashboardService{
		carRepo:      carRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		rentalRepo:   rentalRepo,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{}

	var err error
	if summary.TotalCars, err = s.carRepo.Count(ctx); err != nil {
		return nil, err
	}
	if summary.AvailableCars, err = s.carRepo.CountByAvailability(ctx, domain.CarAvailable); err != nil {
		return nil, err
	}
	if summary.TotalCustomers, err = s.customerRepo.Count(ctx); err != nil {
		return nil, err
	}
	if summary.TotalEmployees, err = s.employeeRepo.Count(ctx); err != nil {
		return nil, err
	}
	if summary.ActiveRentals, err = s.rentalRepo.CountActive(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	if summary.MonthlyRevenueCents, err = s.rentalRepo.MonthlyRevenue(ctx, now.Year(), int(now.Month())); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *dashboardService) RecentRentals(ctx context.Context, limit int) ([]domain.RentalSummary, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.rentalRepo.ListRecentRentals(ctx, limit)
}

func (s *dashboardService) RecentReturns(ctx context.Context, limit int) ([]domain.RentalSummary, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.rentalRepo.ListRecentReturns(ctx, limit)
}
