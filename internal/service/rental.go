package service

import (
	"context"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	carRepo      repository.CarRepository
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
	emailSvc     EmailService
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	carRepo repository.CarRepository,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		carRepo:      carRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		emailSvc:     emailSvc,
	}
}

func (s *rentalService) RentCar(ctx context.Context, carID, customerID, employeeID int64, rentalDate, returnDate time.Time, totalAmountCents int64, notes string) (*domain.RentalRecord, error) {
	if returnDate.Before(rentalDate) {
		return nil, fmt.Errorf("%w: return date before rental date", domain.ErrValidation)
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	expected := car.PricePerDayCents * ChargeableDays(rentalDate, returnDate)
	if totalAmountCents != expected {
		return nil, fmt.Errorf("%w: total %d does not match %d for the rental period", domain.ErrValidation, totalAmountCents, expected)
	}

	rental := &domain.RentalRecord{
		CarID:            carID,
		CustomerID:       customerID,
		EmployeeID:       employeeID,
		RentalDate:       rentalDate,
		ReturnDate:       returnDate,
		TotalAmountCents: totalAmountCents,
		Status:           domain.RentalStatusActive,
		Notes:            notes,
	}
	if err := s.rentalRepo.CreateWithCarHold(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("rental opened", "rental_id", rental.ID, "car_id", carID, "customer_id", customerID)
	return rental, nil
}

func (s *rentalService) ReturnCar(ctx context.Context, rentalID, employeeID int64, lateFeeCents, damageFeeCents int64, notes string) (*domain.RentalRecord, error) {
	if lateFeeCents < 0 || damageFeeCents < 0 {
		return nil, fmt.Errorf("%w: fees cannot be negative", domain.ErrValidation)
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, domain.ErrRentalNotActive
	}

	now := time.Now()
	rental.Status = domain.RentalStatusReturned
	rental.ActualReturnDate = &now
	rental.LateFeeCents = lateFeeCents
	rental.DamageFeeCents = damageFeeCents
	rental.TotalAmountCents += lateFeeCents + damageFeeCents
	rental.Notes = appendNotes(rental.Notes, notes)

	if err := s.rentalRepo.CloseWithCarRelease(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("rental returned", "rental_id", rental.ID, "late_fee_cents", lateFeeCents, "damage_fee_cents", damageFeeCents)
	s.sendReturnReceipt(ctx, rental)
	return rental, nil
}

func (s *rentalService) PreviewReturn(ctx context.Context, rentalID int64, asOf time.Time, damageFeeCents int64) (*domain.ReturnPreview, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, domain.ErrRentalNotActive
	}

	car, err := s.carRepo.GetByID(ctx, rental.CarID)
	if err != nil {
		return nil, err
	}

	lateDays := LateDays(rental.ReturnDate, asOf)
	lateFee := CalculateLateFee(lateDays, car.PricePerDayCents)
	return &domain.ReturnPreview{
		RentalID:         rental.ID,
		LateDays:         lateDays,
		LateFeeCents:     lateFee,
		DamageFeeCents:   damageFeeCents,
		TotalAmountCents: rental.TotalAmountCents + lateFee + damageFeeCents,
	}, nil
}

func (s *rentalService) CancelRental(ctx context.Context, rentalID int64, reason string) (*domain.RentalRecord, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.Status != domain.RentalStatusActive {
		return nil, domain.ErrRentalNotActive
	}

	rental.Status = domain.RentalStatusCancelled
	rental.Notes = appendNotes(rental.Notes, reason)
	if err := s.rentalRepo.CloseWithCarRelease(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("rental cancelled", "rental_id", rental.ID)
	return rental, nil
}

func (s *rentalService) CompleteRental(ctx context.Context, rentalID int64) error {
	return s.rentalRepo.MarkCompleted(ctx, rentalID)
}

func (s *rentalService) GetRental(ctx context.Context, id int64) (*domain.RentalRecord, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.RentalRecord, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) ListActiveRentals(ctx context.Context) ([]domain.RentalRecord, error) {
	return s.rentalRepo.ListActive(ctx)
}

func (s *rentalService) ListRentalsByCar(ctx context.Context, carID int64) ([]domain.RentalRecord, error) {
	return s.rentalRepo.ListByCar(ctx, carID)
}

func (s *rentalService) ListRentalsByCustomer(ctx context.Context, customerID int64) ([]domain.RentalRecord, error) {
	return s.rentalRepo.ListByCustomer(ctx, customerID)
}

// appendNotes keeps whatever was recorded at rental time; later notes go on
// their own line.
func appendNotes(existing, extra string) string {
	switch {
	case extra == "":
		return existing
	case existing == "":
		return extra
	default:
		return existing + "\n" + extra
	}
}

// sendReturnReceipt is best effort. A failed email never fails the return.
func (s *rentalService) sendReturnReceipt(ctx context.Context, rental *domain.RentalRecord) {
	if s.emailSvc == nil {
		return
	}
	customer, err := s.customerRepo.GetByID(ctx, rental.CustomerID)
	if err != nil || customer.Email == "" {
		return
	}
	car, err := s.carRepo.GetByID(ctx, rental.CarID)
	if err != nil {
		return
	}
	label := fmt.Sprintf("%s %s (%s)", car.Brand, car.Model, car.RegistrationNumber)
	if err := s.emailSvc.SendReturnReceipt(ctx, customer.Email, customer.FullName(), label, rental.TotalAmountCents); err != nil {
		logger.Warn("return receipt email failed", "rental_id", rental.ID, "error", err)
	}
}
