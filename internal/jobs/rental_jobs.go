package jobs

import (
	"context"
	"fmt"
	"time"

	"carrental-backend/internal/logger"
)

// SendOverdueReminders emails every customer whose rental is past its
// scheduled return date and still out.
func (jr *JobRunner) SendOverdueReminders() {
	jr.runWithRecovery("SendOverdueReminders", func() {
		ctx := context.Background()

		overdue, err := jr.store.RentalRepository.ListOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		sent := 0
		for _, rental := range overdue {
			customer, err := jr.store.CustomerRepository.GetByID(ctx, rental.CustomerID)
			if err != nil || customer.Email == "" {
				continue
			}
			car, err := jr.store.CarRepository.GetByID(ctx, rental.CarID)
			if err != nil {
				continue
			}

			label := fmt.Sprintf("%s %s (%s)", car.Brand, car.Model, car.RegistrationNumber)
			if err := jr.emailSvc.SendOverdueReminder(ctx, customer.Email, customer.FullName(), label, rental.ReturnDate); err != nil {
				logger.Error("Failed to send overdue reminder",
					"rental_id", rental.ID,
					"customer_id", customer.ID,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent overdue reminders", "overdue", len(overdue), "sent", sent)
	})
}

// CompleteReturnedRentals settles rentals that have sat in Returned past the
// settlement window.
func (jr *JobRunner) CompleteReturnedRentals() {
	jr.runWithRecovery("CompleteReturnedRentals", func() {
		ctx := context.Background()

		cutoff := time.Now().AddDate(0, 0, -jr.config.Rental.SettlementDays)
		count, err := jr.store.RentalRepository.CompleteReturnedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to complete returned rentals", "error", err)
			return
		}

		logger.Info("Completed settled rentals", "count", count, "cutoff", cutoff.Format("2006-01-02"))
	})
}
