package postgres_test

import (
	"context"
	"testing"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCarRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	car := &domain.Car{
		Brand:              "Toyota",
		Model:              "Corolla",
		Year:               2024,
		Color:              "White",
		RegistrationNumber: "KA-01-HH-1234",
		FuelType:           "Petrol",
		Mileage:            12000,
		PricePerDayCents:   4000,
		Status:             domain.CarStatusActive,
		Availability:       domain.CarAvailable,
	}

	mock.ExpectQuery("INSERT INTO cars").
		WithArgs(car.Brand, car.Model, car.Year, car.Color, car.RegistrationNumber, car.FuelType, car.Mileage, car.PricePerDayCents, car.Status, car.Availability, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	err = repo.Create(ctx, car)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), car.ID)
}

func TestCarRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "brand", "model", "year", "color", "registration_number", "fuel_type", "mileage", "price_per_day_cents", "status", "availability", "created_at", "deleted_at"}).
			AddRow(7, "Toyota", "Corolla", 2024, "White", "KA-01-HH-1234", "Petrol", 12000, 4000, "Active", "Available", time.Now(), nil)

		mock.ExpectQuery("SELECT (.+) FROM cars WHERE id = \\$1").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		car, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.NotNil(t, car)
		assert.Equal(t, "Toyota", car.Brand)
		assert.Equal(t, domain.CarAvailable, car.Availability)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cars WHERE id = \\$1").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		car, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrCarNotFound)
		assert.Nil(t, car)
	})
}

func TestCarRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	t.Run("SoftDeletes", func(t *testing.T) {
		mock.ExpectExec("UPDATE cars SET deleted_at").
			WithArgs(sqlmock.AnyArg(), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 7))
	})

	t.Run("AlreadyDeleted", func(t *testing.T) {
		mock.ExpectExec("UPDATE cars SET deleted_at").
			WithArgs(sqlmock.AnyArg(), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 7), domain.ErrCarNotFound)
	})
}

func TestCarRepository_ListByAvailability(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "brand", "model", "year", "color", "registration_number", "fuel_type", "mileage", "price_per_day_cents", "status", "availability", "created_at", "deleted_at"}).
		AddRow(7, "Toyota", "Corolla", 2024, "White", "KA-01-HH-1234", "Petrol", 12000, 4000, "Active", "Available", time.Now(), nil).
		AddRow(8, "Honda", "Civic", 2023, "Black", "KA-02-AB-5678", "Petrol", 30000, 5000, "Active", "Available", time.Now(), nil)

	mock.ExpectQuery("SELECT (.+) FROM cars WHERE deleted_at IS NULL AND availability = \\$1").
		WithArgs(domain.CarAvailable).
		WillReturnRows(rows)

	cars, err := repo.ListByAvailability(ctx, domain.CarAvailable)
	assert.NoError(t, err)
	assert.Len(t, cars, 2)
	assert.Equal(t, "Civic", cars[1].Model)
}
