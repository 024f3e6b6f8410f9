package repository

import (
	"context"
	"time"

	"carrental-backend/internal/domain"
)

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	GetByRegistration(ctx context.Context, registration string) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	// UpdateAvailability is the administrative Available/Unavailable switch.
	// The Rented transition is owned by RentalRepository's transactional ops.
	UpdateAvailability(ctx context.Context, id int64, availability domain.CarAvailability) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Car, error)
	Search(ctx context.Context, term string) ([]domain.Car, error)
	ListByAvailability(ctx context.Context, availability domain.CarAvailability) ([]domain.Car, error)
	Count(ctx context.Context) (int64, error)
	CountByAvailability(ctx context.Context, availability domain.CarAvailability) (int64, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByLicense(ctx context.Context, license string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Customer, error)
	Search(ctx context.Context, term string) ([]domain.Customer, error)
	Count(ctx context.Context) (int64, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	GetByUsername(ctx context.Context, username string) (*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Employee, error)
	Search(ctx context.Context, term string) ([]domain.Employee, error)
	Count(ctx context.Context) (int64, error)
}

// RentalRepository is the rental ledger. CreateWithCarHold and
// CloseWithCarRelease couple the car availability write and the ledger write
// into a single database transaction, so a rent or return either lands
// completely or not at all.
type RentalRepository interface {
	// CreateWithCarHold flips the car Available -> Rented with a conditional
	// update and inserts the Active record in the same transaction. Returns
	// domain.ErrCarNotAvailable when the car was not Available.
	CreateWithCarHold(ctx context.Context, rental *domain.RentalRecord) error
	// CloseWithCarRelease sets the car back to Available and writes the
	// rental's terminal state (Returned or Cancelled) in the same
	// transaction. The rental row update is guarded on status Active;
	// returns domain.ErrRentalNotActive when the guard misses.
	CloseWithCarRelease(ctx context.Context, rental *domain.RentalRecord) error
	// MarkCompleted moves a Returned rental to Completed.
	MarkCompleted(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (*domain.RentalRecord, error)
	List(ctx context.Context) ([]domain.RentalRecord, error)
	ListActive(ctx context.Context) ([]domain.RentalRecord, error)
	ListByCar(ctx context.Context, carID int64) ([]domain.RentalRecord, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.RentalRecord, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.RentalRecord, error)
	HasActiveByCar(ctx context.Context, carID int64) (bool, error)
	HasActiveByCustomer(ctx context.Context, customerID int64) (bool, error)
	CountActive(ctx context.Context) (int64, error)
	// MonthlyRevenue sums total_amount_cents over non-cancelled records whose
	// rental_date falls in the given month.
	MonthlyRevenue(ctx context.Context, year, month int) (int64, error)
	// CompleteReturnedBefore marks rentals Returned before the cutoff as
	// Completed and reports how many rows it touched.
	CompleteReturnedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	ListRecentRentals(ctx context.Context, limit int) ([]domain.RentalSummary, error)
	ListRecentReturns(ctx context.Context, limit int) ([]domain.RentalSummary, error)
}

type DamagePhotoRepository interface {
	Create(ctx context.Context, photo *domain.DamagePhoto) error
	GetByID(ctx context.Context, id int64) (*domain.DamagePhoto, error)
	ListByRental(ctx context.Context, rentalID int64) ([]domain.DamagePhoto, error)
}

// ReportRepository serves the read-only monthly aggregates. Everything is
// recomputed per call; nothing is persisted.
type ReportRepository interface {
	MonthlyReport(ctx context.Context, year, month int) (*domain.MonthlyReport, error)
	CarUtilization(ctx context.Context, year, month int) ([]domain.CarUtilization, error)
	CustomerActivity(ctx context.Context, year, month int) ([]domain.CustomerActivity, error)
}
