package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	// Create assigns an ID when newEmployee.ID is empty.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	UpdateStatus(ctx context.Context, id string, status EmploymentStatus) error
}
