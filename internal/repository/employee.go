package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hitsa/emp-mgmt/internal/models"
)

// ListEmployees returns every employee record ordered by identifier. An empty
// table yields an empty, non-nil slice.
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("list_employees").Observe(duration)
	}()
	query := `SELECT id, first_name, last_name, email_id FROM employees ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	result := make([]models.Employee, 0)
	for rows.Next() {
		var employee models.Employee
		if err = rows.Scan(&employee.ID, &employee.FirstName, &employee.LastName, &employee.EmailID); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		result = append(result, employee)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee rows: %w", err)
	}

	return result, nil
}

// CreateEmployee inserts a new employee record. The database assigns the
// identifier; any identifier submitted by the client is never consulted.
func (r *Repository) CreateEmployee(
	ctx context.Context,
	firstName, lastName, emailID string,
) (models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("create_employee").Observe(duration)
	}()
	query := `
		INSERT INTO employees (first_name, last_name, email_id)
		VALUES ($1, $2, $3)
		RETURNING id, first_name, last_name, email_id;
	`

	var result models.Employee
	err := r.db.QueryRow(ctx, query, firstName, lastName, emailID).Scan(
		&result.ID, &result.FirstName, &result.LastName, &result.EmailID)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// GetEmployeeByID retrieves an employee from the database by their ID.
// It returns ErrEmployeeNotFound when no record matches.
func (r *Repository) GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error) {
	var result models.Employee

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("get_employee_by_id").Observe(duration)
	}()
	query := `SELECT id, first_name, last_name, email_id FROM employees WHERE id=$1`

	err := r.db.QueryRow(ctx, query, identifier).Scan(
		&result.ID, &result.FirstName, &result.LastName, &result.EmailID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return result, nil
}

// UpdateEmployee overwrites the first name, last name and email of an existing
// record, leaving the identifier untouched. It returns ErrEmployeeNotFound
// when no record matches.
func (r *Repository) UpdateEmployee(
	ctx context.Context,
	identifier int64,
	firstName, lastName, emailID string,
) (models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("update_employee").Observe(duration)
	}()
	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email_id = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING id, first_name, last_name, email_id;
	`

	var result models.Employee
	err := r.db.QueryRow(ctx, query, identifier, firstName, lastName, emailID).Scan(
		&result.ID, &result.FirstName, &result.LastName, &result.EmailID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to update employee data: %w", err)
	}

	return result, nil
}

// DeleteEmployee removes an employee record by ID. It returns
// ErrEmployeeNotFound when no record matches.
func (r *Repository) DeleteEmployee(ctx context.Context, identifier int64) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("delete_employee").Observe(duration)
	}()
	query := `DELETE FROM employees WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, identifier)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}
