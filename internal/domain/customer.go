package domain

import "time"

type Customer struct {
	ID               int64      `json:"id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	LicenseNumber    string     `json:"license_number"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	RegistrationDate time.Time  `json:"registration_date"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
