package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const customerColumns = `id, first_name, last_name, COALESCE(email, ''), phone, COALESCE(address, ''), license_number, date_of_birth, registration_date, deleted_at`

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (first_name, last_name, email, phone, address, license_number, date_of_birth, registration_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.LicenseNumber, c.DateOfBirth, c.RegistrationDate).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND deleted_at IS NULL`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address, &c.LicenseNumber, &c.DateOfBirth, &c.RegistrationDate, &c.DeletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) GetByLicense(ctx context.Context, license string) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT ` + customerColumns + ` FROM customers WHERE license_number = $1 AND deleted_at IS NULL`
	err := r.db.QueryRowContext(ctx, query, license).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address, &c.LicenseNumber, &c.DateOfBirth, &c.RegistrationDate, &c.DeletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET first_name=$1, last_name=$2, email=$3, phone=$4, address=$5, license_number=$6, date_of_birth=$7 WHERE id=$8 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.LicenseNumber, c.DateOfBirth, c.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	// Soft delete so rental history keeps a valid reference.
	query := `UPDATE customers SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE deleted_at IS NULL ORDER BY id`
	return r.queryCustomers(ctx, query)
}

func (r *customerRepository) Search(ctx context.Context, term string) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers
	          WHERE deleted_at IS NULL AND (first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%' OR phone ILIKE '%' || $1 || '%' OR license_number ILIKE '%' || $1 || '%')
	          ORDER BY id`
	return r.queryCustomers(ctx, query, term)
}

func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM customers WHERE deleted_at IS NULL`).Scan(&count)
	return count, err
}

func (r *customerRepository) queryCustomers(ctx context.Context, query string, args ...interface{}) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address, &c.LicenseNumber, &c.DateOfBirth, &c.RegistrationDate, &c.DeletedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
