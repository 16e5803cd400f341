package payroll

import (
	"context"
	"time"

	"github.com/grx10/hris-backend-go/internal/domain/employee"
	"github.com/grx10/hris-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewPayrollService(employeeRepo employee.EmployeeRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// GeneratePayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayslip(ctx context.Context, req payroll.PayslipRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	if emp.Salary == nil || !emp.Salary.IsPositive() {
		return payroll.PayslipResponse{}, payroll.ErrEmployeeHasNoBaseSalary
	}

	now := s.now()
	month, year := req.Period()
	if year > now.Year() || (year == now.Year() && month > now.Month()) {
		return payroll.PayslipResponse{}, payroll.ErrInvalidPeriod
	}

	slip := payroll.ComputePayslip(*emp.Salary, month, year, now)
	slip.EmployeeID = emp.ID
	slip.EmployeeName = emp.Name
	slip.Department = emp.Department
	slip.Designation = emp.Designation

	return payroll.NewPayslipResponse(slip), nil
}
