package user

import "strings"

type Role string

const (
	RoleEmployee Role = "Employee" // Regular employee
	RoleManager  Role = "Manager"  // Can approve team requests
	RoleHR       Role = "HR"       // Can approve and manage employees
	RoleFinance  Role = "Finance"  // Payroll access, no approvals
	RoleAdmin    Role = "Admin"    // Full access
)

var roles = []Role{RoleEmployee, RoleManager, RoleHR, RoleFinance, RoleAdmin}

// ParseRole accepts any casing of a known role name.
func ParseRole(s string) (Role, bool) {
	for _, r := range roles {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, true
		}
	}
	return "", false
}

// Actor is the authenticated identity performing an operation. It is
// derived from verified token claims and never persisted.
type Actor struct {
	ID   string
	Role Role
}

// IsHRorAdmin reports whether the actor has organisation-wide access.
func (a Actor) IsHRorAdmin() bool {
	return a.Role == RoleHR || a.Role == RoleAdmin
}

// IsManager checks if actor is a line manager
func (a Actor) IsManager() bool {
	return a.Role == RoleManager
}

// CanApprove checks if the actor's role may decide requests at all.
func (a Actor) CanApprove() bool {
	return HasPermission(a.Role, PermissionRegularizationApprove)
}
