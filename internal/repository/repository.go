package repository

import (
	"context"
	"errors"

	"github.com/hitsa/emp-mgmt/internal/metrics"
	"github.com/hitsa/emp-mgmt/internal/models"
)

// ErrEmployeeNotFound is returned when a lookup by id matches no record.
var ErrEmployeeNotFound = errors.New("employee not found")

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, firstName, lastName, emailID string) (models.Employee, error)
	GetEmployeeByID(ctx context.Context, identifier int64) (models.Employee, error)
	UpdateEmployee(ctx context.Context, identifier int64, firstName, lastName, emailID string) (models.Employee, error)
	DeleteEmployee(ctx context.Context, identifier int64) error
}

func NewEmployeeRepository(db Database, mtr *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: mtr}
}
