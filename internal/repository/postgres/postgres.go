package postgres

import (
	"database/sql"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CarRepository
	repository.CustomerRepository
	repository.EmployeeRepository
	repository.RentalRepository
	repository.DamagePhotoRepository
	repository.ReportRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		CarRepository:         NewCarRepository(db),
		CustomerRepository:    NewCustomerRepository(db),
		EmployeeRepository:    NewEmployeeRepository(db),
		RentalRepository:      NewRentalRepository(db),
		DamagePhotoRepository: NewDamagePhotoRepository(db),
		ReportRepository:      NewReportRepository(db),
	}
}
