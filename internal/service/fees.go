package service

import "time"

// ChargeableDays counts the whole days billed between the rental date and the
// scheduled return date. A same-day rental bills one day.
func ChargeableDays(rentalDate, returnDate time.Time) int64 {
	days := int64(returnDate.Sub(rentalDate).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// LateDays counts the whole days past the scheduled return date. Returns
// on or before the due date count zero.
func LateDays(scheduledReturn, actualReturn time.Time) int64 {
	days := int64(actualReturn.Sub(scheduledReturn).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// CalculateLateFee charges half the daily rate per late day.
func CalculateLateFee(lateDays, pricePerDayCents int64) int64 {
	return lateDays * pricePerDayCents / 2
}
