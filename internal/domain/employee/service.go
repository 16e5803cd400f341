package employee

import (
	"context"

	"github.com/grx10/hris-backend-go/internal/domain/user"
)

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees lists the whole directory (manager+ only)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// Onboard adds a new hire (HR/Admin only)
	Onboard(ctx context.Context, actor user.Actor, req OnboardRequest) (EmployeeResponse, error)

	// Offboard marks an employee as exited, revoking login (HR/Admin only)
	Offboard(ctx context.Context, actor user.Actor, req OffboardRequest) (EmployeeResponse, error)
}

// SessionRevoker ends the sessions of an employee who lost access.
type SessionRevoker interface {
	RevokeEmployee(employeeID string)
}
