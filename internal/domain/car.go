package domain

import "time"

type CarStatus string

const (
	CarStatusActive      CarStatus = "Active"
	CarStatusUnavailable CarStatus = "Unavailable"
)

type CarAvailability string

const (
	CarAvailable   CarAvailability = "Available"
	CarRented      CarAvailability = "Rented"
	CarUnavailable CarAvailability = "Unavailable"
)

// Car is a vehicle in the rental fleet. Status is the administrative
// lifecycle of the record; Availability is the current rentability and is
// transitioned together with rental records by the rental service only.
type Car struct {
	ID                 int64           `json:"id"`
	Brand              string          `json:"brand"`
	Model              string          `json:"model"`
	Year               int             `json:"year"`
	Color              string          `json:"color"`
	RegistrationNumber string          `json:"registration_number"`
	FuelType           string          `json:"fuel_type"`
	Mileage            int             `json:"mileage"`
	PricePerDayCents   int64           `json:"price_per_day_cents"`
	Status             CarStatus       `json:"status"`
	Availability       CarAvailability `json:"availability"`
	CreatedAt          time.Time       `json:"created_at"`
	DeletedAt          *time.Time      `json:"deleted_at,omitempty"`
}
