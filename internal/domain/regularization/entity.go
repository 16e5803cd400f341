package regularization

import (
	"strings"
	"time"
)

// Kind of attendance correction being requested.
type Kind string

const (
	KindMissingPunch   Kind = "Missing Punch"
	KindIncorrectPunch Kind = "Incorrect Punch"
	KindWorkFromHome   Kind = "Work From Home"
)

var kindAliases = map[string]Kind{
	"missingpunch":   KindMissingPunch,
	"incorrectpunch": KindIncorrectPunch,
	"workfromhome":   KindWorkFromHome,
	"wfh":            KindWorkFromHome,
}

// ParseKind accepts the display name, the CamelCase name or snake_case,
// e.g. "Missing Punch", "MissingPunch", "missing_punch". "WFH" is accepted too.
func ParseKind(s string) (Kind, bool) {
	k, ok := kindAliases[normalize(s)]
	return k, ok
}

// RequiresProposedTimes reports whether check-in/check-out times must be supplied.
func (k Kind) RequiresProposedTimes() bool {
	return k != KindWorkFromHome
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Decision is an approver's verdict on a pending request.
type Decision string

const (
	DecisionApprove Decision = "Approve"
	DecisionReject  Decision = "Reject"
)

// ParseDecision accepts both the verb and the past-tense status name
// ("Approve"/"Approved", "Reject"/"Rejected"), case-insensitively.
func ParseDecision(s string) (Decision, bool) {
	switch normalize(s) {
	case "approve", "approved":
		return DecisionApprove, true
	case "reject", "rejected":
		return DecisionReject, true
	}
	return "", false
}

// Status returns the terminal status the decision moves a request to.
func (d Decision) Status() Status {
	if d == DecisionApprove {
		return StatusApproved
	}
	return StatusRejected
}

// Scope selects which requests ListFor returns.
type Scope string

const (
	ScopeOwn              Scope = "own"
	ScopePendingApprovals Scope = "pending_approvals"
)

// Request is an attendance regularization request. Identity fields and
// SubmittedOn never change after creation; only Status and the decision
// stamp move, exactly once.
type Request struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Date         string // YYYY-MM-DD
	Kind         Kind
	Reason       string

	// Nil for work-from-home requests.
	ProposedCheckIn  *string
	ProposedCheckOut *string

	Status      Status
	SubmittedOn time.Time

	DecidedBy *string
	DecidedAt *time.Time
}

// Filter narrows List. Nil fields match everything.
type Filter struct {
	EmployeeID *string
	Status     *Status
}

func (f Filter) Matches(r Request) bool {
	if f.EmployeeID != nil && r.EmployeeID != *f.EmployeeID {
		return false
	}
	if f.Status != nil && r.Status != *f.Status {
		return false
	}
	return true
}

// StatusChange is the single mutation the store accepts.
type StatusChange struct {
	ID        string
	Status    Status
	DecidedBy string
	DecidedAt time.Time
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}
