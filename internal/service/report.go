package service

import (
	"context"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) MonthlyRevenueReport(ctx context.Context, year, month int) (*domain.MonthlyReport, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	return s.reportRepo.MonthlyReport(ctx, year, month)
}

func (s *reportService) CarUtilizationReport(ctx context.Context, year, month int) ([]domain.CarUtilization, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	return s.reportRepo.CarUtilization(ctx, year, month)
}

func (s *reportService) CustomerActivityReport(ctx context.Context, year, month int) ([]domain.CustomerActivity, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	return s.reportRepo.CustomerActivity(ctx, year, month)
}

func validatePeriod(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month must be 1-12", domain.ErrValidation)
	}
	if year < 2000 || year > time.Now().Year()+1 {
		return fmt.Errorf("%w: year out of range", domain.ErrValidation)
	}
	return nil
}
