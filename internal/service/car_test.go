package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/service"
)

func validCar() *domain.Car {
	return &domain.Car{
		Brand:              "Toyota",
		Model:              "Corolla",
		Year:               2024,
		RegistrationNumber: "KA-01-HH-1234",
		PricePerDayCents:   4000,
	}
}

func TestCarService_AddCar(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo, new(MockRentalRepo))
		car := validCar()

		carRepo.On("GetByRegistration", ctx, car.RegistrationNumber).Return(nil, domain.ErrCarNotFound)
		carRepo.On("Create", ctx, car).Return(nil)

		err := svc.AddCar(ctx, car)
		assert.NoError(t, err)
		assert.Equal(t, domain.CarAvailable, car.Availability)
		assert.Equal(t, domain.CarStatusActive, car.Status)
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo, new(MockRentalRepo))
		car := validCar()

		carRepo.On("GetByRegistration", ctx, car.RegistrationNumber).
			Return(&domain.Car{ID: 9, RegistrationNumber: car.RegistrationNumber}, nil)

		err := svc.AddCar(ctx, car)
		assert.ErrorIs(t, err, domain.ErrDuplicateRegistration)
	})

	t.Run("MissingBrand", func(t *testing.T) {
		svc := service.NewCarService(new(MockCarRepo), new(MockRentalRepo))
		car := validCar()
		car.Brand = ""

		err := svc.AddCar(ctx, car)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("NonPositivePrice", func(t *testing.T) {
		svc := service.NewCarService(new(MockCarRepo), new(MockRentalRepo))
		car := validCar()
		car.PricePerDayCents = 0

		err := svc.AddCar(ctx, car)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestCarService_DeleteCar(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		rentalRepo := new(MockRentalRepo)
		svc := service.NewCarService(carRepo, rentalRepo)

		rentalRepo.On("HasActiveByCar", ctx, int64(7)).Return(false, nil)
		carRepo.On("Delete", ctx, int64(7)).Return(nil)

		assert.NoError(t, svc.DeleteCar(ctx, 7))
	})

	t.Run("BlockedByActiveRental", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		rentalRepo := new(MockRentalRepo)
		svc := service.NewCarService(carRepo, rentalRepo)

		rentalRepo.On("HasActiveByCar", ctx, int64(7)).Return(true, nil)

		err := svc.DeleteCar(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrCarHasActiveRental)
		carRepo.AssertNotCalled(t, "Delete", ctx, int64(7))
	})
}

func TestCarService_SetAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo, new(MockRentalRepo))

		carRepo.On("GetByID", ctx, int64(7)).Return(&domain.Car{ID: 7, Availability: domain.CarAvailable}, nil)
		carRepo.On("UpdateAvailability", ctx, int64(7), domain.CarUnavailable).Return(nil)

		assert.NoError(t, svc.SetAvailability(ctx, 7, domain.CarUnavailable))
	})

	t.Run("RentedIsReserved", func(t *testing.T) {
		svc := service.NewCarService(new(MockCarRepo), new(MockRentalRepo))

		err := svc.SetAvailability(ctx, 7, domain.CarRented)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("BlockedWhileRented", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		svc := service.NewCarService(carRepo, new(MockRentalRepo))

		carRepo.On("GetByID", ctx, int64(7)).Return(&domain.Car{ID: 7, Availability: domain.CarRented}, nil)

		err := svc.SetAvailability(ctx, 7, domain.CarUnavailable)
		assert.ErrorIs(t, err, domain.ErrCarHasActiveRental)
	})
}
