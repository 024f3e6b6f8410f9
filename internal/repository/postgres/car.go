package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const carColumns = `id, brand, model, year, COALESCE(color, ''), registration_number, COALESCE(fuel_type, ''), mileage, price_per_day_cents, status, availability, created_at, deleted_at`

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (brand, model, year, color, registration_number, fuel_type, mileage, price_per_day_cents, status, availability, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Brand, c.Model, c.Year, c.Color, c.RegistrationNumber, c.FuelType, c.Mileage, c.PricePerDayCents, c.Status, c.Availability, time.Now()).Scan(&c.ID)
}

func (r *carRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1 AND deleted_at IS NULL`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Brand, &c.Model, &c.Year, &c.Color, &c.RegistrationNumber, &c.FuelType, &c.Mileage, &c.PricePerDayCents, &c.Status, &c.Availability, &c.CreatedAt, &c.DeletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCarNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) GetByRegistration(ctx context.Context, registration string) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT ` + carColumns + ` FROM cars WHERE registration_number = $1 AND deleted_at IS NULL`
	err := r.db.QueryRowContext(ctx, query, registration).Scan(&c.ID, &c.Brand, &c.Model, &c.Year, &c.Color, &c.RegistrationNumber, &c.FuelType, &c.Mileage, &c.PricePerDayCents, &c.Status, &c.Availability, &c.CreatedAt, &c.DeletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCarNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars SET brand=$1, model=$2, year=$3, color=$4, registration_number=$5, fuel_type=$6, mileage=$7, price_per_day_cents=$8, status=$9 WHERE id=$10 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, c.Brand, c.Model, c.Year, c.Color, c.RegistrationNumber, c.FuelType, c.Mileage, c.PricePerDayCents, c.Status, c.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrCarNotFound
	}
	return nil
}

func (r *carRepository) UpdateAvailability(ctx context.Context, id int64, availability domain.CarAvailability) error {
	query := `UPDATE cars SET availability=$1 WHERE id=$2 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, availability, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrCarNotFound
	}
	return nil
}

func (r *carRepository) Delete(ctx context.Context, id int64) error {
	// Soft delete so rental history keeps a valid reference.
	query := `UPDATE cars SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrCarNotFound
	}
	return nil
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE deleted_at IS NULL ORDER BY id`
	return r.queryCars(ctx, query)
}

func (r *carRepository) Search(ctx context.Context, term string) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars
	          WHERE deleted_at IS NULL AND (brand ILIKE '%' || $1 || '%' OR model ILIKE '%' || $1 || '%' OR registration_number ILIKE '%' || $1 || '%')
	          ORDER BY id`
	return r.queryCars(ctx, query, term)
}

func (r *carRepository) ListByAvailability(ctx context.Context, availability domain.CarAvailability) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE deleted_at IS NULL AND availability = $1 ORDER BY id`
	return r.queryCars(ctx, query, availability)
}

func (r *carRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM cars WHERE deleted_at IS NULL`).Scan(&count)
	return count, err
}

func (r *carRepository) CountByAvailability(ctx context.Context, availability domain.CarAvailability) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM cars WHERE deleted_at IS NULL AND availability = $1`, availability).Scan(&count)
	return count, err
}

func (r *carRepository) queryCars(ctx context.Context, query string, args ...interface{}) ([]domain.Car, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.Brand, &c.Model, &c.Year, &c.Color, &c.RegistrationNumber, &c.FuelType, &c.Mileage, &c.PricePerDayCents, &c.Status, &c.Availability, &c.CreatedAt, &c.DeletedAt); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}
