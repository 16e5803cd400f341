package http

import (
	"net/http"

	"github.com/grx10/hris-backend-go/internal/domain/payroll"
	"github.com/grx10/hris-backend-go/internal/domain/user"
	"github.com/grx10/hris-backend-go/internal/handler/http/middleware"
	"github.com/grx10/hris-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// GetPayslip returns the caller's payslip for ?month=&year=. Roles holding
// payroll.view_all may pass ?employee_id= to view someone else's.
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query()
	req := payroll.PayslipRequest{
		EmployeeID: actor.ID,
		Month:      query.Get("month"),
		Year:       query.Get("year"),
	}

	if other := query.Get("employee_id"); other != "" && other != actor.ID {
		if !user.HasPermission(actor.Role, user.PermissionPayrollViewAll) {
			response.HandleError(w, user.ErrInsufficientPermissions)
			return
		}
		req.EmployeeID = other
	}

	result, err := h.payrollService.GeneratePayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
