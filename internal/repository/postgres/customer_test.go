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

func TestCustomerRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("SoftDeletes", func(t *testing.T) {
		mock.ExpectExec("UPDATE customers SET deleted_at").
			WithArgs(sqlmock.AnyArg(), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 3))
	})

	t.Run("AlreadyDeleted", func(t *testing.T) {
		mock.ExpectExec("UPDATE customers SET deleted_at").
			WithArgs(sqlmock.AnyArg(), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 3), domain.ErrCustomerNotFound)
	})
}

func TestCustomerRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCustomerRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		dob := time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone", "address", "license_number", "date_of_birth", "registration_date", "deleted_at"}).
			AddRow(3, "Ravi", "Kumar", "ravi@example.com", "9876543210", "", "DL-2026-0042", dob, time.Now(), nil)

		mock.ExpectQuery("SELECT (.+) FROM customers WHERE id = \\$1").
			WithArgs(int64(3)).
			WillReturnRows(rows)

		customer, err := repo.GetByID(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, "Ravi", customer.FirstName)
		if assert.NotNil(t, customer.DateOfBirth) {
			assert.Equal(t, dob, *customer.DateOfBirth)
		}
	})

	t.Run("NullDateOfBirth", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone", "address", "license_number", "date_of_birth", "registration_date", "deleted_at"}).
			AddRow(4, "Anita", "Desai", "", "9000000000", "", "DL-2026-0051", nil, time.Now(), nil)

		mock.ExpectQuery("SELECT (.+) FROM customers WHERE id = \\$1").
			WithArgs(int64(4)).
			WillReturnRows(rows)

		customer, err := repo.GetByID(ctx, 4)
		assert.NoError(t, err)
		assert.Nil(t, customer.DateOfBirth)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM customers WHERE id = \\$1").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		customer, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
		assert.Nil(t, customer)
	})
}
