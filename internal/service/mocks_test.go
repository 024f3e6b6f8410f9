package service_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/domain"
)

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) GetByRegistration(ctx context.Context, registration string) (*domain.Car, error) {
	args := m.Called(ctx, registration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) UpdateAvailability(ctx context.Context, id int64, availability domain.CarAvailability) error {
	args := m.Called(ctx, id, availability)
	return args.Error(0)
}
func (m *MockCarRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCarRepo) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) Search(ctx context.Context, term string) ([]domain.Car, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) ListByAvailability(ctx context.Context, availability domain.CarAvailability) ([]domain.Car, error) {
	args := m.Called(ctx, availability)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCarRepo) CountByAvailability(ctx context.Context, availability domain.CarAvailability) (int64, error) {
	args := m.Called(ctx, availability)
	return args.Get(0).(int64), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByLicense(ctx context.Context, license string) (*domain.Customer, error) {
	args := m.Called(ctx, license)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Search(ctx context.Context, term string) ([]domain.Customer, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmployeeRepo
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}
func (m *MockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) GetByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}
func (m *MockEmployeeRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) Search(ctx context.Context, term string) ([]domain.Employee, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) CreateWithCarHold(ctx context.Context, rental *domain.RentalRecord) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) CloseWithCarRelease(ctx context.Context, rental *domain.RentalRecord) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) MarkCompleted(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int64) (*domain.RentalRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRecord), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context) ([]domain.RentalRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RentalRecord), args.Error(1)
}
func (m *MockRentalRepo) ListActive(ctx context.Context) ([]domain.RentalRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RentalRecord), args.Error(1)
}
func (m *MockRentalRepo) ListByCar(ctx context.Context, carID int64) ([]domain.RentalRecord, error) {
	args := m.Called(ctx, carID)
	return args.Get(0).([]domain.RentalRecord), args.Error(1)
}
func (m *MockRentalRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.RentalRecord, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.RentalRecord), args.Error(1)
}
func (m *MockRentalRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.RentalRecord, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).([]domain.RentalRecord), args.Error(1)
}
func (m *MockRentalRepo) HasActiveByCar(ctx context.Context, carID int64) (bool, error) {
	args := m.Called(ctx, carID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) HasActiveByCustomer(ctx context.Context, customerID int64) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockRentalRepo) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRentalRepo) MonthlyRevenue(ctx context.Context, year, month int) (int64, error) {
	args := m.Called(ctx, year, month)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRentalRepo) CompleteReturnedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRentalRepo) ListRecentRentals(ctx context.Context, limit int) ([]domain.RentalSummary, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.RentalSummary), args.Error(1)
}
func (m *MockRentalRepo) ListRecentReturns(ctx context.Context, limit int) ([]domain.RentalSummary, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.RentalSummary), args.Error(1)
}

// MockPhotoRepo
type MockPhotoRepo struct {
	mock.Mock
}

func (m *MockPhotoRepo) Create(ctx context.Context, photo *domain.DamagePhoto) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}
func (m *MockPhotoRepo) GetByID(ctx context.Context, id int64) (*domain.DamagePhoto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DamagePhoto), args.Error(1)
}
func (m *MockPhotoRepo) ListByRental(ctx context.Context, rentalID int64) ([]domain.DamagePhoto, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.DamagePhoto), args.Error(1)
}

// MockPhotoStore
type MockPhotoStore struct {
	mock.Mock
}

func (m *MockPhotoStore) Save(key string, reader io.Reader) (int64, error) {
	args := m.Called(key, reader)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPhotoStore) Open(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
func (m *MockPhotoStore) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOverdueReminder(ctx context.Context, toEmail, customerName, carLabel string, dueDate time.Time) error {
	args := m.Called(ctx, toEmail, customerName, carLabel, dueDate)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReceipt(ctx context.Context, toEmail, customerName, carLabel string, totalCents int64) error {
	args := m.Called(ctx, toEmail, customerName, carLabel, totalCents)
	return args.Error(0)
}
