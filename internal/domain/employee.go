package domain

import "time"

type EmployeeRole string

const (
	RoleAdmin    EmployeeRole = "Admin"
	RoleManager  EmployeeRole = "Manager"
	RoleEmployee EmployeeRole = "Employee"
)

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "Active"
	EmployeeStatusInactive EmployeeStatus = "Inactive"
)

type Employee struct {
	ID           int64          `json:"id"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	Position     string         `json:"position"`
	SalaryCents  int64          `json:"salary_cents"`
	HireDate     time.Time      `json:"hire_date"`
	Status       EmployeeStatus `json:"status"`
	Username     string         `json:"username"`
	PasswordHash string         `json:"-"`
	Role         EmployeeRole   `json:"role"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
