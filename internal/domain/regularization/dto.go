package regularization

import (
	"strings"
	"time"

	"github.com/grx10/hris-backend-go/internal/pkg/validator"
)

// ========================================
// REQUEST DTOs
// ========================================

type SubmitRequest struct {
	Date             string  `json:"date"`
	Kind             string  `json:"kind"`
	Reason           string  `json:"reason"`
	ProposedCheckIn  *string `json:"proposed_check_in,omitempty"`
	ProposedCheckOut *string `json:"proposed_check_out,omitempty"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(strings.TrimSpace(r.Date)); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	kind, ok := ParseKind(r.Kind)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: Missing Punch, Incorrect Punch, Work From Home",
		})
	}

	if ok && kind.RequiresProposedTimes() {
		errs = append(errs, validateClockTime("proposed_check_in", r.ProposedCheckIn)...)
		errs = append(errs, validateClockTime("proposed_check_out", r.ProposedCheckOut)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateClockTime(field string, value *string) validator.ValidationErrors {
	if validator.IsEmptyPtr(value) {
		return validator.ValidationErrors{{
			Field:   field,
			Message: field + " is required unless kind is Work From Home",
		}}
	}
	if !validator.IsValidClockTime(strings.TrimSpace(*value)) {
		return validator.ValidationErrors{{
			Field:   field,
			Message: field + " must be in HH:MM format",
		}}
	}
	return nil
}

// ToRequest builds the Pending record for a validated submission.
// Proposed times are dropped for work-from-home requests.
func (r *SubmitRequest) ToRequest(employeeID, employeeName string, submittedOn time.Time) Request {
	kind, _ := ParseKind(r.Kind)
	req := Request{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Date:         strings.TrimSpace(r.Date),
		Kind:         kind,
		Reason:       strings.TrimSpace(r.Reason),
		Status:       StatusPending,
		SubmittedOn:  submittedOn,
	}
	if kind.RequiresProposedTimes() {
		in := strings.TrimSpace(*r.ProposedCheckIn)
		out := strings.TrimSpace(*r.ProposedCheckOut)
		req.ProposedCheckIn = &in
		req.ProposedCheckOut = &out
	}
	return req
}

// ========================================
// RESPONSE DTOs
// ========================================

type RequestResponse struct {
	ID               string     `json:"id"`
	EmployeeID       string     `json:"employee_id"`
	EmployeeName     string     `json:"employee_name"`
	Date             string     `json:"date"`
	Kind             Kind       `json:"kind"`
	Reason           string     `json:"reason"`
	ProposedCheckIn  *string    `json:"proposed_check_in,omitempty"`
	ProposedCheckOut *string    `json:"proposed_check_out,omitempty"`
	Status           Status     `json:"status"`
	SubmittedOn      time.Time  `json:"submitted_on"`
	DecidedBy        *string    `json:"decided_by,omitempty"`
	DecidedAt        *time.Time `json:"decided_at,omitempty"`
}

func NewRequestResponse(r Request) RequestResponse {
	return RequestResponse{
		ID:               r.ID,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     r.EmployeeName,
		Date:             r.Date,
		Kind:             r.Kind,
		Reason:           r.Reason,
		ProposedCheckIn:  r.ProposedCheckIn,
		ProposedCheckOut: r.ProposedCheckOut,
		Status:           r.Status,
		SubmittedOn:      r.SubmittedOn,
		DecidedBy:        r.DecidedBy,
		DecidedAt:        r.DecidedAt,
	}
}

func NewRequestResponses(reqs []Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, NewRequestResponse(r))
	}
	return out
}
