package payroll

import "context"

// PayrollService exposes read-only payroll views.
type PayrollService interface {
	// GeneratePayslip computes the employee's payslip for the requested month.
	GeneratePayslip(ctx context.Context, req PayslipRequest) (PayslipResponse, error)
}
