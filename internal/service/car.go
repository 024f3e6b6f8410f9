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

type carService struct {
	carRepo    repository.CarRepository
	rentalRepo repository.RentalRepository
}

func NewCarService(carRepo repository.CarRepository, rentalRepo repository.RentalRepository) CarService {
	return &carService{carRepo: carRepo, rentalRepo: rentalRepo}
}

func (s *carService) AddCar(ctx context.Context, car *domain.Car) error {
	if err := validateCar(car); err != nil {
		return err
	}

	existing, err := s.carRepo.GetByRegistration(ctx, car.RegistrationNumber)
	if err != nil && !errors.Is(err, domain.ErrCarNotFound) {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicateRegistration
	}

	if car.Status == "" {
		car.Status = domain.CarStatusActive
	}
	if car.Availability == "" {
		car.Availability = domain.CarAvailable
	}
	if err := s.carRepo.Create(ctx, car); err != nil {
		return err
	}
	logger.Info("car added", "car_id", car.ID, "registration", car.RegistrationNumber)
	return nil
}

func (s *carService) GetCar(ctx context.Context, id int64) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) UpdateCar(ctx context.Context, car *domain.Car) error {
	if err := validateCar(car); err != nil {
		return err
	}

	existing, err := s.carRepo.GetByRegistration(ctx, car.RegistrationNumber)
	if err != nil && !errors.Is(err, domain.ErrCarNotFound) {
		return err
	}
	if existing != nil && existing.ID != car.ID {
		return domain.ErrDuplicateRegistration
	}

	return s.carRepo.Update(ctx, car)
}

func (s *carService) DeleteCar(ctx context.Context, id int64) error {
	active, err := s.rentalRepo.HasActiveByCar(ctx, id)
	if err != nil {
		return err
	}
	if active {
		return domain.ErrCarHasActiveRental
	}
	if err := s.carRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("car deleted", "car_id", id)
	return nil
}

func (s *carService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}

func (s *carService) SearchCars(ctx context.Context, term string) ([]domain.Car, error) {
	return s.carRepo.Search(ctx, term)
}

func (s *carService) ListAvailableCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.ListByAvailability(ctx, domain.CarAvailable)
}

func (s *carService) ListRentedCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.ListByAvailability(ctx, domain.CarRented)
}

func (s *carService) SetAvailability(ctx context.Context, id int64, availability domain.CarAvailability) error {
	// Rented is reserved for the rental lifecycle transactions.
	if availability != domain.CarAvailable && availability != domain.CarUnavailable {
		return fmt.Errorf("%w: availability must be Available or Unavailable", domain.ErrValidation)
	}

	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if car.Availability == domain.CarRented {
		return domain.ErrCarHasActiveRental
	}
	return s.carRepo.UpdateAvailability(ctx, id, availability)
}

func validateCar(car *domain.Car) error {
	switch {
	case car.Brand == "":
		return fmt.Errorf("%w: brand is required", domain.ErrValidation)
	case car.Model == "":
		return fmt.Errorf("%w: model is required", domain.ErrValidation)
	case car.RegistrationNumber == "":
		return fmt.Errorf("%w: registration number is required", domain.ErrValidation)
	case car.PricePerDayCents <= 0:
		return fmt.Errorf("%w: price per day must be positive", domain.ErrValidation)
	case car.Year < 1900 || car.Year > time.Now().Year()+1:
		return fmt.Errorf("%w: year out of range", domain.ErrValidation)
	case car.Mileage < 0:
		return fmt.Errorf("%w: mileage cannot be negative", domain.ErrValidation)
	}
	return nil
}
