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

func TestEmployeeRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewEmployeeRepository(db)
	ctx := context.Background()

	t.Run("DeactivatesInsteadOfDeleting", func(t *testing.T) {
		mock.ExpectExec("UPDATE employees SET status").
			WithArgs(domain.EmployeeStatusInactive, int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 5))
	})

	t.Run("AlreadyInactive", func(t *testing.T) {
		mock.ExpectExec("UPDATE employees SET status").
			WithArgs(domain.EmployeeStatusInactive, int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 5), domain.ErrEmployeeNotFound)
	})
}

func TestEmployeeRepository_GetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewEmployeeRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone", "address", "position", "salary_cents", "hire_date", "status", "username", "password_hash", "role"}).
			AddRow(5, "Priya", "Sharma", "priya@example.com", "", "", "Branch Manager", 450000, time.Now(), "Active", "priya", "$2a$10$hash", "Manager")

		mock.ExpectQuery("SELECT (.+) FROM employees WHERE username = \\$1").
			WithArgs("priya").
			WillReturnRows(rows)

		employee, err := repo.GetByUsername(ctx, "priya")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleManager, employee.Role)
		assert.Equal(t, domain.EmployeeStatusActive, employee.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM employees WHERE username = \\$1").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		employee, err := repo.GetByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
		assert.Nil(t, employee)
	})
}
