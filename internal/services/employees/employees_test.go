package employees_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitsa/emp-mgmt/internal/metrics"
	"github.com/hitsa/emp-mgmt/internal/models"
	"github.com/hitsa/emp-mgmt/internal/repository"
	"github.com/hitsa/emp-mgmt/internal/services/employees"
	mocks "github.com/hitsa/emp-mgmt/mock"
)

func newTestRoster(repo repository.EmployeeRepoIface) *employees.Roster {
	return employees.NewRoster(slog.Default(), repo, metrics.NewMetrics(prometheus.NewRegistry()))
}

func TestNewRoster(t *testing.T) {
	t.Parallel()

	mockRepo := new(mocks.EmployeeRepoIface)

	r := newTestRoster(mockRepo)

	assert.NotNil(t, r)
}

func TestList_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	expected := []models.Employee{
		{ID: 1, FirstName: "Ann", LastName: "Lee", EmailID: "a@x.com"},
	}
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("ListEmployees", ctx).Return(expected, nil)

	actual, err := newTestRoster(mockRepo).List(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestList_Error(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("ListEmployees", ctx).Return(nil, assert.AnError)

	actual, err := newTestRoster(mockRepo).List(ctx)

	require.Error(t, err)
	assert.Nil(t, actual)
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	expected := models.Employee{ID: 1, FirstName: "Ann", LastName: "Lee", EmailID: "a@x.com"}
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("CreateEmployee", ctx, "Ann", "Lee", "a@x.com").Return(expected, nil)

	// the submitted id must never reach the repository
	actual, err := newTestRoster(mockRepo).Create(ctx, models.Employee{
		ID:        99,
		FirstName: "Ann",
		LastName:  "Lee",
		EmailID:   "a@x.com",
	})

	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	mockRepo.AssertExpectations(t)
}

func TestCreate_Error(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("CreateEmployee", ctx, "Ann", "Lee", "a@x.com").Return(models.Employee{}, assert.AnError)

	_, err := newTestRoster(mockRepo).Create(ctx, models.Employee{FirstName: "Ann", LastName: "Lee", EmailID: "a@x.com"})

	require.Error(t, err)
}

func TestGet_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	expected := models.Employee{ID: 123, FirstName: "Test", LastName: "User", EmailID: "test@test.com"}
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("GetEmployeeByID", ctx, int64(123)).Return(expected, nil)

	actual, err := newTestRoster(mockRepo).Get(ctx, 123)

	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("GetEmployeeByID", ctx, int64(404)).Return(models.Employee{}, repository.ErrEmployeeNotFound)

	_, err := newTestRoster(mockRepo).Get(ctx, 404)

	require.ErrorIs(t, err, repository.ErrEmployeeNotFound)
}

func TestUpdate_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	expected := models.Employee{ID: 123, FirstName: "New", LastName: "Name", EmailID: "new@test.com"}
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("UpdateEmployee", ctx, int64(123), "New", "Name", "new@test.com").Return(expected, nil)

	// only the three mutable fields of the payload may reach the repository
	actual, err := newTestRoster(mockRepo).Update(ctx, 123, models.Employee{
		ID:        777,
		FirstName: "New",
		LastName:  "Name",
		EmailID:   "new@test.com",
	})

	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	mockRepo.AssertExpectations(t)
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("UpdateEmployee", ctx, int64(404), "New", "Name", "new@test.com").
		Return(models.Employee{}, repository.ErrEmployeeNotFound)

	_, err := newTestRoster(mockRepo).Update(ctx, 404, models.Employee{
		FirstName: "New",
		LastName:  "Name",
		EmailID:   "new@test.com",
	})

	require.ErrorIs(t, err, repository.ErrEmployeeNotFound)
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("DeleteEmployee", ctx, int64(123)).Return(nil)

	err := newTestRoster(mockRepo).Delete(ctx, 123)

	require.NoError(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("DeleteEmployee", ctx, int64(404)).Return(repository.ErrEmployeeNotFound)

	err := newTestRoster(mockRepo).Delete(ctx, 404)

	require.ErrorIs(t, err, repository.ErrEmployeeNotFound)
}

func TestDelete_Error(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mockRepo := new(mocks.EmployeeRepoIface)
	mockRepo.On("DeleteEmployee", ctx, int64(123)).Return(assert.AnError)

	err := newTestRoster(mockRepo).Delete(ctx, 123)

	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrEmployeeNotFound)
}
