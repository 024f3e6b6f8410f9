package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "Active"
	RentalStatusReturned  RentalStatus = "Returned"
	RentalStatusCompleted RentalStatus = "Completed"
	RentalStatusCancelled RentalStatus = "Cancelled"
)

// RentalRecord ties one car, one customer and the employee who processed the
// rental to a date range and its charges. TotalAmountCents is the base price
// captured at rental time; the return adds late and damage fees to it exactly
// once, so for a returned record total == base + late_fee + damage_fee.
type RentalRecord struct {
	ID               int64        `json:"id"`
	CarID            int64        `json:"car_id"`
	CustomerID       int64        `json:"customer_id"`
	EmployeeID       int64        `json:"employee_id"`
	RentalDate       time.Time    `json:"rental_date"`
	ReturnDate       time.Time    `json:"return_date"`
	ActualReturnDate *time.Time   `json:"actual_return_date,omitempty"`
	TotalAmountCents int64        `json:"total_amount_cents"`
	LateFeeCents     int64        `json:"late_fee_cents"`
	DamageFeeCents   int64        `json:"damage_fee_cents"`
	Status           RentalStatus `json:"status"`
	Notes            string       `json:"notes"`
	CreatedAt        time.Time    `json:"created_at"`
}

// ReturnPreview is the calculate-for-display half of the return flow: what
// the charges would be if the rental came back on ActualReturnDate. The
// commit path accepts the caller's fees as authoritative.
type ReturnPreview struct {
	RentalID         int64 `json:"rental_id"`
	LateDays         int64 `json:"late_days"`
	LateFeeCents     int64 `json:"late_fee_cents"`
	DamageFeeCents   int64 `json:"damage_fee_cents"`
	TotalAmountCents int64 `json:"total_amount_cents"`
}
