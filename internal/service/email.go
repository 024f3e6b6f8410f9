package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"carrental-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendOverdueReminder(ctx context.Context, toEmail, customerName, carLabel string, dueDate time.Time) error {
	subject := "Rental return overdue"
	body := fmt.Sprintf("Hello %s,\n\nYour rental of %s was due back on %s. Please return the vehicle or contact our office to extend the rental.\n\nLate fees accrue daily.\n\nThe Rental Team",
		customerName, carLabel, dueDate.Format("January 2, 2006"))
	return s.send(toEmail, customerName, subject, body)
}

func (s *emailService) SendReturnReceipt(ctx context.Context, toEmail, customerName, carLabel string, totalCents int64) error {
	subject := "Rental return receipt"
	body := fmt.Sprintf("Hello %s,\n\nThank you for returning %s. The final charge for your rental is $%.2f.\n\nWe hope to see you again.\n\nThe Rental Team",
		customerName, carLabel, float64(totalCents)/100)
	return s.send(toEmail, customerName, subject, body)
}

func (s *emailService) send(toEmail, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	logger.Debug("email sent", "to", toEmail, "subject", subject)
	return nil
}
