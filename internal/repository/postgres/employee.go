package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

const employeeColumns = `id, first_name, last_name, email, COALESCE(phone, ''), COALESCE(address, ''), COALESCE(position, ''), salary_cents, hire_date, status, username, password_hash, role`

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (first_name, last_name, email, phone, address, position, salary_cents, hire_date, status, username, password_hash, role)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRowContext(ctx, query, e.FirstName, e.LastName, e.Email, e.Phone, e.Address, e.Position, e.SalaryCents, e.HireDate, e.Status, e.Username, e.PasswordHash, e.Role).Scan(&e.ID)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE email = $1`, email)
}

func (r *employeeRepository) GetByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	return r.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE username = $1`, username)
}

func (r *employeeRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.Employee, error) {
	e := &domain.Employee{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Address, &e.Position, &e.SalaryCents, &e.HireDate, &e.Status, &e.Username, &e.PasswordHash, &e.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employees SET first_name=$1, last_name=$2, email=$3, phone=$4, address=$5, position=$6, salary_cents=$7, hire_date=$8, status=$9, username=$10, password_hash=$11, role=$12 WHERE id=$13`
	res, err := r.db.ExecContext(ctx, query, e.FirstName, e.LastName, e.Email, e.Phone, e.Address, e.Position, e.SalaryCents, e.HireDate, e.Status, e.Username, e.PasswordHash, e.Role, e.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	// Deactivate instead of deleting; rental history references the row and
	// login rejects inactive employees.
	query := `UPDATE employees SET status = $1 WHERE id = $2 AND status <> $1`
	res, err := r.db.ExecContext(ctx, query, domain.EmployeeStatusInactive, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	return r.queryEmployees(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
}

func (r *employeeRepository) Search(ctx context.Context, term string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees
	          WHERE first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%' OR position ILIKE '%' || $1 || '%'
	          ORDER BY id`
	return r.queryEmployees(ctx, query, term)
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM employees`).Scan(&count)
	return count, err
}

func (r *employeeRepository) queryEmployees(ctx context.Context, query string, args ...interface{}) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Address, &e.Position, &e.SalaryCents, &e.HireDate, &e.Status, &e.Username, &e.PasswordHash, &e.Role); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
