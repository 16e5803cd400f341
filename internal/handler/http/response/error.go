package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/grx10/hris-backend-go/internal/domain/assistant"
	"github.com/grx10/hris-backend-go/internal/domain/auth"
	"github.com/grx10/hris-backend-go/internal/domain/employee"
	"github.com/grx10/hris-backend-go/internal/domain/payroll"
	"github.com/grx10/hris-backend-go/internal/domain/regularization"
	"github.com/grx10/hris-backend-go/internal/domain/user"
	"github.com/grx10/hris-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrAccessRevoked):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrGoogleEmailNotVerified):
		Forbidden(w, "Google account email is not verified")
	case errors.Is(err, auth.ErrGoogleAccessDeniedByUser):
		Unauthorized(w, "Google access denied")
	case errors.Is(err, auth.ErrSSONotConfigured):
		NotFound(w, "Single sign-on is not configured")

	// User domain errors
	case errors.Is(err, user.ErrActorMissing):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Regularization domain errors
	case errors.Is(err, regularization.ErrRequestNotFound):
		NotFound(w, "Regularization request not found")
	case errors.Is(err, regularization.ErrForbidden):
		Forbidden(w, "Not allowed to act on this regularization request")
	case errors.Is(err, regularization.ErrAlreadyDecided):
		Conflict(w, "Regularization request already processed")
	case errors.Is(err, regularization.ErrDuplicateRequestID):
		Conflict(w, "Regularization request already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")
	case errors.Is(err, employee.ErrEmployeeAlreadyExited):
		Conflict(w, "Employee has already exited")
	case errors.Is(err, employee.ErrCannotOffboardSelf):
		UnprocessableEntity(w, "You cannot offboard yourself")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrEmployeeHasNoBaseSalary):
		UnprocessableEntity(w, "Employee has no base salary configured")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		UnprocessableEntity(w, "Payslip period is in the future")

	// Assistant
	case errors.Is(err, assistant.ErrAssistantUnavailable):
		ServiceUnavailable(w, "The HR Assistant is temporarily unavailable")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
