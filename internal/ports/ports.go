package ports

import (
	"context"
	"errors"

	"github.com/csg33k/employee-manager/internal/domain"
)

// EmployeeAPI is the access layer over the remote employee store.
// Every method performs exactly one HTTP call and fails with a single
// *domain.OpError.
type EmployeeAPI interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, payload domain.EmployeeFormData) (domain.Employee, error)
	Update(ctx context.Context, id string, payload domain.EmployeeFormData) (domain.Employee, error)
	Delete(ctx context.Context, id string) error
}

// ErrRecordNotFound is returned by an EmployeeRepository for unknown ids.
var ErrRecordNotFound = errors.New("record not found")

// EmployeeRepository defines persistence for the local mock store.
type EmployeeRepository interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
	// CreateEmployee fills in e.ID and e.CreatedAt.
	CreateEmployee(ctx context.Context, e *domain.Employee) error
	UpdateEmployee(ctx context.Context, e *domain.Employee) error
	DeleteEmployee(ctx context.Context, id string) error
}
