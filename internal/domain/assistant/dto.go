package assistant

import "github.com/grx10/hris-backend-go/internal/pkg/validator"

type ChatRequest struct {
	Message string `json:"message"`
}

func (r *ChatRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	} else if len(r.Message) > 4000 {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message must not exceed 4000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ActionRequest invokes an action directly, e.g. from an approve button
// rendered next to a list result.
type ActionRequest struct {
	Action NamedAction `json:"action"`
	Args   Args        `json:"args"`
}

func (r *ActionRequest) Validate() error {
	if validator.IsEmpty(string(r.Action)) {
		return validator.ValidationErrors{{
			Field:   "action",
			Message: "action is required",
		}}
	}
	return nil
}

type JobDescriptionRequest struct {
	Role       string `json:"role"`
	Department string `json:"department"`
	Skills     string `json:"skills"`
}

func (r *JobDescriptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JobDescriptionResponse struct {
	Markdown string `json:"markdown"`
}
