package service

import (
	"context"
	"io"
	"time"

	"carrental-backend/internal/domain"
)

type AuthService interface {
	// Login verifies employee credentials and returns a signed access token
	// together with the authenticated employee.
	Login(ctx context.Context, username, password string) (string, *domain.Employee, error)
}

type CarService interface {
	AddCar(ctx context.Context, car *domain.Car) error
	GetCar(ctx context.Context, id int64) (*domain.Car, error)
	UpdateCar(ctx context.Context, car *domain.Car) error
	// DeleteCar soft-deletes. Fails with domain.ErrCarHasActiveRental while
	// an active rental references the car.
	DeleteCar(ctx context.Context, id int64) error
	ListCars(ctx context.Context) ([]domain.Car, error)
	SearchCars(ctx context.Context, term string) ([]domain.Car, error)
	ListAvailableCars(ctx context.Context) ([]domain.Car, error)
	ListRentedCars(ctx context.Context) ([]domain.Car, error)
	// SetAvailability is the administrative Available/Unavailable switch.
	// The Rented state belongs to the rental lifecycle and is rejected here.
	SetAvailability(ctx context.Context, id int64, availability domain.CarAvailability) error
}

type CustomerService interface {
	AddCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	SearchCustomers(ctx context.Context, term string) ([]domain.Customer, error)
}

type EmployeeService interface {
	AddEmployee(ctx context.Context, employee *domain.Employee, password string) error
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employee *domain.Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	SearchEmployees(ctx context.Context, term string) ([]domain.Employee, error)
}

type RentalService interface {
	// RentCar opens an Active rental and holds the car, atomically.
	RentCar(ctx context.Context, carID, customerID, employeeID int64, rentalDate, returnDate time.Time, totalAmountCents int64, notes string) (*domain.RentalRecord, error)
	// ReturnCar closes an Active rental with the supplied fees. The fees are
	// authoritative; PreviewReturn is the display path.
	ReturnCar(ctx context.Context, rentalID, employeeID int64, lateFeeCents, damageFeeCents int64, notes string) (*domain.RentalRecord, error)
	// PreviewReturn computes the late fee and final total for returning as of
	// the given date without writing anything.
	PreviewReturn(ctx context.Context, rentalID int64, asOf time.Time, damageFeeCents int64) (*domain.ReturnPreview, error)
	// CancelRental voids an Active rental and releases the car.
	CancelRental(ctx context.Context, rentalID int64, reason string) (*domain.RentalRecord, error)
	// CompleteRental settles a Returned rental.
	CompleteRental(ctx context.Context, rentalID int64) error
	GetRental(ctx context.Context, id int64) (*domain.RentalRecord, error)
	ListRentals(ctx context.Context) ([]domain.RentalRecord, error)
	ListActiveRentals(ctx context.Context) ([]domain.RentalRecord, error)
	ListRentalsByCar(ctx context.Context, carID int64) ([]domain.RentalRecord, error)
	ListRentalsByCustomer(ctx context.Context, customerID int64) ([]domain.RentalRecord, error)
}

type ReportService interface {
	MonthlyRevenueReport(ctx context.Context, year, month int) (*domain.MonthlyReport, error)
	CarUtilizationReport(ctx context.Context, year, month int) ([]domain.CarUtilization, error)
	CustomerActivityReport(ctx context.Context, year, month int) ([]domain.CustomerActivity, error)
}

type DashboardService interface {
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
	RecentRentals(ctx context.Context, limit int) ([]domain.RentalSummary, error)
	RecentReturns(ctx context.Context, limit int) ([]domain.RentalSummary, error)
}

type PhotoService interface {
	// AttachDamagePhoto stores the file and records it against the rental.
	// Photos may only be attached to Active or Returned rentals.
	AttachDamagePhoto(ctx context.Context, rentalID, uploadedBy int64, fileName, contentType string, data io.Reader) (*domain.DamagePhoto, error)
	ListDamagePhotos(ctx context.Context, rentalID int64) ([]domain.DamagePhoto, error)
	// OpenDamagePhoto returns the photo row and a reader over its bytes.
	OpenDamagePhoto(ctx context.Context, photoID int64) (*domain.DamagePhoto, io.ReadCloser, error)
}

type EmailService interface {
	SendOverdueReminder(ctx context.Context, toEmail, customerName, carLabel string, dueDate time.Time) error
	SendReturnReceipt(ctx context.Context, toEmail, customerName, carLabel string, totalCents int64) error
}
