package domain

import "time"

// MonthlyReport aggregates one calendar month of rental activity. Revenue
// counts every non-cancelled record whose rental_date falls in the month.
type MonthlyReport struct {
	Period            string `json:"period"`
	Month             int    `json:"month"`
	Year              int    `json:"year"`
	TotalRentals      int64  `json:"total_rentals"`
	ActiveRentals     int64  `json:"active_rentals"`
	ReturnedRentals   int64  `json:"returned_rentals"`
	CompletedRentals  int64  `json:"completed_rentals"`
	CancelledRentals  int64  `json:"cancelled_rentals"`
	TotalRevenueCents int64  `json:"total_revenue_cents"`
	LateFeeCents      int64  `json:"late_fee_cents"`
	DamageFeeCents    int64  `json:"damage_fee_cents"`
}

type CarUtilization struct {
	CarID              int64  `json:"car_id"`
	Brand              string `json:"brand"`
	Model              string `json:"model"`
	RegistrationNumber string `json:"registration_number"`
	TimesRented        int64  `json:"times_rented"`
	RevenueCents       int64  `json:"revenue_cents"`
}

type CustomerActivity struct {
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Rentals      int64  `json:"rentals"`
	SpentCents   int64  `json:"spent_cents"`
}

// DashboardSummary is the landing-page counter block.
type DashboardSummary struct {
	TotalCars           int64 `json:"total_cars"`
	AvailableCars       int64 `json:"available_cars"`
	TotalCustomers      int64 `json:"total_customers"`
	TotalEmployees      int64 `json:"total_employees"`
	ActiveRentals       int64 `json:"active_rentals"`
	MonthlyRevenueCents int64 `json:"monthly_revenue_cents"`
}

// RentalSummary is a rental row joined with its car, customer and employee
// display fields for dashboard listings.
type RentalSummary struct {
	RentalID         int64      `json:"rental_id"`
	CarID            int64      `json:"car_id"`
	CustomerID       int64      `json:"customer_id"`
	Brand            string     `json:"brand"`
	Model            string     `json:"model"`
	CustomerName     string     `json:"customer_name"`
	EmployeeName     string     `json:"employee_name"`
	RentalDate       time.Time  `json:"rental_date"`
	ReturnDate       time.Time  `json:"return_date"`
	ActualReturnDate *time.Time `json:"actual_return_date,omitempty"`
	TotalAmountCents int64      `json:"total_amount_cents"`
	LateFeeCents     int64      `json:"late_fee_cents"`
	DamageFeeCents   int64      `json:"damage_fee_cents"`
}
