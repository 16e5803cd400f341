package regularization

import "github.com/grx10/hris-backend-go/internal/domain/user"

// VisibleTo reports whether actor may read req.
//
// Managers see every request except their own: there is no reporting-line
// data to narrow this to direct reports.
func VisibleTo(actor user.Actor, req Request) bool {
	if actor.ID == req.EmployeeID {
		return true
	}
	if actor.IsHRorAdmin() {
		return true
	}
	return actor.IsManager()
}

// CanDecide reports whether actor may approve or reject req right now.
func CanDecide(actor user.Actor, req Request) bool {
	return req.Status == StatusPending && MayDecide(actor, req)
}

// MayDecide is CanDecide without the status check. The lifecycle engine
// uses it to tell a forbidden actor apart from a request that is already
// decided. Managers may not decide their own requests; HR and Admin may.
func MayDecide(actor user.Actor, req Request) bool {
	if !actor.CanApprove() {
		return false
	}
	return !(actor.IsManager() && actor.ID == req.EmployeeID)
}
