package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hitsa/emp-mgmt/internal/lib/logger/sl"
	"github.com/hitsa/emp-mgmt/internal/metrics"
	"github.com/hitsa/emp-mgmt/internal/models"
	"github.com/hitsa/emp-mgmt/internal/repository"
)

// Roster implements the employee use-cases on top of the repository. It holds
// no per-request state; one instance serves all requests.
type Roster struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	metrics *metrics.Metrics
}

func NewRoster(log *slog.Logger, repo repository.EmployeeRepoIface, mtr *metrics.Metrics) *Roster {
	return &Roster{log: log, repo: repo, metrics: mtr}
}

func (r *Roster) initLogger(opn string) *slog.Logger {
	return r.log.With(
		slog.String("op", opn),
		slog.String("division", "employee"),
	)
}

// List returns all employee records in storage order.
func (r *Roster) List(ctx context.Context) ([]models.Employee, error) {
	const opn = "Employee.List"
	log := r.initLogger(opn)

	employees, err := r.repo.ListEmployees(ctx)
	if err != nil {
		log.ErrorContext(ctx, "Failed to list employees", sl.Err(err))
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

// Create persists a new employee record. The identifier is assigned by the
// persistence layer; whatever the caller put in the id field is discarded.
func (r *Roster) Create(ctx context.Context, employee models.Employee) (models.Employee, error) {
	const opn = "Employee.Create"
	log := r.initLogger(opn)

	created, err := r.repo.CreateEmployee(ctx, employee.FirstName, employee.LastName, employee.EmailID)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create employee", sl.Err(err))
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	r.metrics.EmployeesCreated.Inc()
	log.InfoContext(ctx, "Employee created", "id", created.ID)

	return created, nil
}

// Get returns the employee with the given identifier, or
// repository.ErrEmployeeNotFound if no such record exists.
func (r *Roster) Get(ctx context.Context, identifier int64) (models.Employee, error) {
	const opn = "Employee.Get"
	log := r.initLogger(opn)

	employee, err := r.repo.GetEmployeeByID(ctx, identifier)
	if err != nil {
		if !errors.Is(err, repository.ErrEmployeeNotFound) {
			log.ErrorContext(ctx, "Failed to get employee", "id", identifier, sl.Err(err))
		}
		return models.Employee{}, fmt.Errorf("failed to get employee %d: %w", identifier, err)
	}

	return employee, nil
}

// Update overwrites the first name, last name and email of an existing record.
// The identifier is preserved; any other submitted field is ignored. It
// returns repository.ErrEmployeeNotFound if no such record exists.
func (r *Roster) Update(ctx context.Context, identifier int64, details models.Employee) (models.Employee, error) {
	const opn = "Employee.Update"
	log := r.initLogger(opn)

	updated, err := r.repo.UpdateEmployee(ctx, identifier, details.FirstName, details.LastName, details.EmailID)
	if err != nil {
		if !errors.Is(err, repository.ErrEmployeeNotFound) {
			log.ErrorContext(ctx, "Failed to update employee", "id", identifier, sl.Err(err))
		}
		return models.Employee{}, fmt.Errorf("failed to update employee %d: %w", identifier, err)
	}

	log.InfoContext(ctx, "Employee updated", "id", identifier)

	return updated, nil
}

// Delete removes the employee with the given identifier. It returns
// repository.ErrEmployeeNotFound if no such record exists.
func (r *Roster) Delete(ctx context.Context, identifier int64) error {
	const opn = "Employee.Delete"
	log := r.initLogger(opn)

	if err := r.repo.DeleteEmployee(ctx, identifier); err != nil {
		if !errors.Is(err, repository.ErrEmployeeNotFound) {
			log.ErrorContext(ctx, "Failed to delete employee", "id", identifier, sl.Err(err))
		}
		return fmt.Errorf("failed to delete employee %d: %w", identifier, err)
	}

	r.metrics.EmployeesDeleted.Inc()
	log.InfoContext(ctx, "Employee deleted", "id", identifier)

	return nil
}
