package employee

import (
	"time"

	"github.com/grx10/hris-backend-go/internal/domain/user"
	"github.com/grx10/hris-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type OnboardRequest struct {
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Role            string           `json:"role"`
	Department      string           `json:"department"`
	Designation     string           `json:"designation"`
	JoinDate        string           `json:"join_date"`
	ManagerID       *string          `json:"manager_id,omitempty"`
	Salary          *decimal.Decimal `json:"salary,omitempty"`
	InitialPassword string           `json:"initial_password"`
}

func (r *OnboardRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if _, ok := user.ParseRole(r.Role); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: Employee, Manager, HR, Finance, Admin",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary cannot be negative",
		})
	}

	if len(r.InitialPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "initial_password",
			Message: "initial_password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OffboardRequest struct {
	EmployeeID string `json:"-"`
	Reason     string `json:"reason"`
}

func (r *OffboardRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Role        user.Role        `json:"role"`
	Department  string           `json:"department"`
	Designation string           `json:"designation"`
	JoinDate    string           `json:"join_date"`
	ManagerID   *string          `json:"manager_id,omitempty"`
	AvatarURL   *string          `json:"avatar_url,omitempty"`
	Status      EmploymentStatus `json:"status"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Role:        e.Role,
		Department:  e.Department,
		Designation: e.Designation,
		JoinDate:    e.JoinDate.Format(time.DateOnly),
		ManagerID:   e.ManagerID,
		AvatarURL:   e.AvatarURL,
		Status:      e.Status,
	}
}
