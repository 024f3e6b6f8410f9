package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const rentalColumns = `id, car_id, customer_id, employee_id, rental_date, return_date, actual_return_date, total_amount_cents, late_fee_cents, damage_fee_cents, status, COALESCE(notes, ''), created_at`

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// CreateWithCarHold performs the rent write pair atomically: the conditional
// availability update stands in for "transition Available -> Rented, fail if
// it is not Available", so two concurrent rents on the same car cannot both
// pass.
func (r *rentalRepository) CreateWithCarHold(ctx context.Context, rt *domain.RentalRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLedgerUpdateFailed, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE cars SET availability = $1 WHERE id = $2 AND availability = $3 AND deleted_at IS NULL`,
		domain.CarRented, rt.CarID, domain.CarAvailable)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCarUpdateFailed, err)
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return domain.ErrCarNotAvailable
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO rental_records (car_id, customer_id, employee_id, rental_date, return_date, total_amount_cents, late_fee_cents, damage_fee_cents, status, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
		rt.CarID, rt.CustomerID, rt.EmployeeID, rt.RentalDate, rt.ReturnDate, rt.TotalAmountCents, rt.LateFeeCents, rt.DamageFeeCents, rt.Status, rt.Notes, time.Now()).Scan(&rt.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLedgerUpdateFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLedgerUpdateFailed, err)
	}
	return nil
}

// CloseWithCarRelease writes the terminal rental state and releases the car
// in one transaction. The status guard makes a second close of the same
// rental miss and report ErrRentalNotActive instead of double-applying fees.
func (r *rentalRepository) CloseWithCarRelease(ctx context.Context, rt *domain.RentalRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLedgerUpdateFailed, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE cars SET availability = $1 WHERE id = $2 AND deleted_at IS NULL`,
		domain.CarAvailable, rt.CarID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCarUpdateFailed, err)
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return fmt.Errorf("%w: car %d missing", domain.ErrCarUpdateFailed, rt.CarID)
	}

	res, err = tx.ExecContext(ctx,
		`UPDATE rental_records SET status=$1, actual_return_date=$2, total_amount_cents=$3, late_fee_cents=$4, damage_fee_cents=$5, notes=$6 WHERE id=$7 AND status=$8`,
		rt.Status, rt.ActualReturnDate, rt.TotalAmountCents, rt.LateFeeCents, rt.DamageFeeCents, rt.Notes, rt.ID, domain.RentalStatusActive)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLedgerUpdateFailed, err)
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return domain.ErrRentalNotActive
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLedgerUpdateFailed, err)
	}
	return nil
}

func (r *rentalRepository) MarkCompleted(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rental_records SET status=$1 WHERE id=$2 AND status=$3`,
		domain.RentalStatusCompleted, id, domain.RentalStatusReturned)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLedgerUpdateFailed, err)
	}
	if n, err := res.RowsAffected(); err != nil || n == 0 {
		return domain.ErrRentalNotReturned
	}
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.RentalRecord, error) {
	rt := &domain.RentalRecord{}
	query := `SELECT ` + rentalColumns + ` FROM rental_records WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.CarID, &rt.CustomerID, &rt.EmployeeID, &rt.RentalDate, &rt.ReturnDate, &rt.ActualReturnDate, &rt.TotalAmountCents, &rt.LateFeeCents, &rt.DamageFeeCents, &rt.Status, &rt.Notes, &rt.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.RentalRecord, error) {
	query := `SELECT ` + rentalColumns + ` FROM rental_records ORDER BY id DESC`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) ListActive(ctx context.Context) ([]domain.RentalRecord, error) {
	query := `SELECT ` + rentalColumns + ` FROM rental_records WHERE status = $1 ORDER BY rental_date DESC`
	return r.queryRentals(ctx, query, domain.RentalStatusActive)
}

func (r *rentalRepository) ListByCar(ctx context.Context, carID int64) ([]domain.RentalRecord, error) {
	query := `SELECT ` + rentalColumns + ` FROM rental_records WHERE car_id = $1 ORDER BY rental_date DESC`
	return r.queryRentals(ctx, query, carID)
}

func (r *rentalRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.RentalRecord, error) {
	query := `SELECT ` + rentalColumns + ` FROM rental_records WHERE customer_id = $1 ORDER BY rental_date DESC`
	return r.queryRentals(ctx, query, customerID)
}

func (r *rentalRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.RentalRecord, error) {
	query := `SELECT ` + rentalColumns + ` FROM rental_records WHERE status = $1 AND return_date < $2 ORDER BY return_date`
	return r.queryRentals(ctx, query, domain.RentalStatusActive, asOf)
}

func (r *rentalRepository) HasActiveByCar(ctx context.Context, carID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM rental_records WHERE car_id = $1 AND status = $2)`,
		carID, domain.RentalStatusActive).Scan(&exists)
	return exists, err
}

func (r *rentalRepository) HasActiveByCustomer(ctx context.Context, customerID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM rental_records WHERE customer_id = $1 AND status = $2)`,
		customerID, domain.RentalStatusActive).Scan(&exists)
	return exists, err
}

func (r *rentalRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM rental_records WHERE status = $1`, domain.RentalStatusActive).Scan(&count)
	return count, err
}

func (r *rentalRepository) MonthlyRevenue(ctx context.Context, year, month int) (int64, error) {
	var total int64
	query := `SELECT COALESCE(SUM(total_amount_cents), 0) FROM rental_records
	          WHERE EXTRACT(YEAR FROM rental_date) = $1 AND EXTRACT(MONTH FROM rental_date) = $2
	            AND status IN ($3, $4, $5)`
	err := r.db.QueryRowContext(ctx, query, year, month,
		domain.RentalStatusActive, domain.RentalStatusReturned, domain.RentalStatusCompleted).Scan(&total)
	return total, err
}

func (r *rentalRepository) CompleteReturnedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rental_records SET status=$1 WHERE status=$2 AND actual_return_date < $3`,
		domain.RentalStatusCompleted, domain.RentalStatusReturned, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *rentalRepository) ListRecentRentals(ctx context.Context, limit int) ([]domain.RentalSummary, error) {
	query := `SELECT r.id, r.car_id, r.customer_id, c.brand, c.model,
	                 cust.first_name || ' ' || cust.last_name,
	                 e.first_name || ' ' || e.last_name,
	                 r.rental_date, r.return_date, r.actual_return_date,
	                 r.total_amount_cents, r.late_fee_cents, r.damage_fee_cents
	          FROM rental_records r
	          LEFT JOIN cars c ON r.car_id = c.id
	          LEFT JOIN customers cust ON r.customer_id = cust.id
	          LEFT JOIN employees e ON r.employee_id = e.id
	          WHERE r.status = $1
	          ORDER BY r.rental_date DESC LIMIT $2`
	return r.querySummaries(ctx, query, domain.RentalStatusActive, limit)
}

func (r *rentalRepository) ListRecentReturns(ctx context.Context, limit int) ([]domain.RentalSummary, error) {
	query := `SELECT r.id, r.car_id, r.customer_id, c.brand, c.model,
	                 cust.first_name || ' ' || cust.last_name,
	                 e.first_name || ' ' || e.last_name,
	                 r.rental_date, r.return_date, r.actual_return_date,
	                 r.total_amount_cents, r.late_fee_cents, r.damage_fee_cents
	          FROM rental_records r
	          LEFT JOIN cars c ON r.car_id = c.id
	          LEFT JOIN customers cust ON r.customer_id = cust.id
	          LEFT JOIN employees e ON r.employee_id = e.id
	          WHERE r.status = $1
	          ORDER BY r.actual_return_date DESC LIMIT $2`
	return r.querySummaries(ctx, query, domain.RentalStatusReturned, limit)
}

func (r *rentalRepository) querySummaries(ctx context.Context, query string, args ...interface{}) ([]domain.RentalSummary, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.RentalSummary
	for rows.Next() {
		var s domain.RentalSummary
		if err := rows.Scan(&s.RentalID, &s.CarID, &s.CustomerID, &s.Brand, &s.Model, &s.CustomerName, &s.EmployeeName, &s.RentalDate, &s.ReturnDate, &s.ActualReturnDate, &s.TotalAmountCents, &s.LateFeeCents, &s.DamageFeeCents); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...interface{}) ([]domain.RentalRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalRecord
	for rows.Next() {
		var rt domain.RentalRecord
		if err := rows.Scan(&rt.ID, &rt.CarID, &rt.CustomerID, &rt.EmployeeID, &rt.RentalDate, &rt.ReturnDate, &rt.ActualReturnDate, &rt.TotalAmountCents, &rt.LateFeeCents, &rt.DamageFeeCents, &rt.Status, &rt.Notes, &rt.CreatedAt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
