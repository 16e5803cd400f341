package employee

import (
	"time"

	"github.com/grx10/hris-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	Name         string
	Email        string
	Role         user.Role
	Department   string
	Designation  string
	JoinDate     time.Time
	ManagerID    *string
	AvatarURL    *string
	Salary       *decimal.Decimal // Annual CTC
	Status       EmploymentStatus
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive EmploymentStatus = "Active"
	EmploymentStatusExited EmploymentStatus = "Exited"
)

// IsActive reports whether the employee still has access.
func (e *Employee) IsActive() bool {
	return e.Status == EmploymentStatusActive
}

// Actor returns the identity used for authorization decisions.
func (e *Employee) Actor() user.Actor {
	return user.Actor{ID: e.ID, Role: e.Role}
}
