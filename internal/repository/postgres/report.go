package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) MonthlyReport(ctx context.Context, year, month int) (*domain.MonthlyReport, error) {
	report := &domain.MonthlyReport{
		Period: fmt.Sprintf("%04d-%02d", year, month),
		Year:   year,
		Month:  month,
	}
	query := `SELECT
	            count(*),
	            count(*) FILTER (WHERE status = $3),
	            count(*) FILTER (WHERE status = $4),
	            count(*) FILTER (WHERE status = $5),
	            count(*) FILTER (WHERE status = $6),
	            COALESCE(SUM(total_amount_cents) FILTER (WHERE status <> $6), 0),
	            COALESCE(SUM(late_fee_cents) FILTER (WHERE status <> $6), 0),
	            COALESCE(SUM(damage_fee_cents) FILTER (WHERE status <> $6), 0)
	          FROM rental_records
	          WHERE EXTRACT(YEAR FROM rental_date) = $1 AND EXTRACT(MONTH FROM rental_date) = $2`
	err := r.db.QueryRowContext(ctx, query, year, month,
		domain.RentalStatusActive, domain.RentalStatusReturned, domain.RentalStatusCompleted, domain.RentalStatusCancelled).Scan(
		&report.TotalRentals, &report.ActiveRentals, &report.ReturnedRentals,
		&report.CompletedRentals, &report.CancelledRentals,
		&report.TotalRevenueCents, &report.LateFeeCents, &report.DamageFeeCents)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *reportRepository) CarUtilization(ctx context.Context, year, month int) ([]domain.CarUtilization, error) {
	query := `SELECT c.id, c.brand, c.model, c.registration_number,
	                 count(r.id), COALESCE(SUM(r.total_amount_cents), 0)
	          FROM cars c
	          JOIN rental_records r ON r.car_id = c.id
	          WHERE EXTRACT(YEAR FROM r.rental_date) = $1 AND EXTRACT(MONTH FROM r.rental_date) = $2
	            AND r.status <> $3
	          GROUP BY c.id, c.brand, c.model, c.registration_number
	          ORDER BY count(r.id) DESC, c.id`
	rows, err := r.db.QueryContext(ctx, query, year, month, domain.RentalStatusCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CarUtilization
	for rows.Next() {
		var u domain.CarUtilization
		if err := rows.Scan(&u.CarID, &u.Brand, &u.Model, &u.RegistrationNumber, &u.TimesRented, &u.RevenueCents); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

func (r *reportRepository) CustomerActivity(ctx context.Context, year, month int) ([]domain.CustomerActivity, error) {
	query := `SELECT cust.id, cust.first_name || ' ' || cust.last_name, cust.phone,
	                 count(r.id), COALESCE(SUM(r.total_amount_cents), 0)
	          FROM customers cust
	          JOIN rental_records r ON r.customer_id = cust.id
	          WHERE EXTRACT(YEAR FROM r.rental_date) = $1 AND EXTRACT(MONTH FROM r.rental_date) = $2
	            AND r.status <> $3
	          GROUP BY cust.id, cust.first_name, cust.last_name, cust.phone
	          ORDER BY count(r.id) DESC, cust.id`
	rows, err := r.db.QueryContext(ctx, query, year, month, domain.RentalStatusCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.CustomerActivity
	for rows.Next() {
		var a domain.CustomerActivity
		if err := rows.Scan(&a.CustomerID, &a.CustomerName, &a.Phone, &a.Rentals, &a.SpentCents); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}
