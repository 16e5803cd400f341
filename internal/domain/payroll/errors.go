package payroll

import "errors"

var (
	ErrEmployeeHasNoBaseSalary = errors.New("employee has no base salary configured")
	ErrInvalidPeriod           = errors.New("payslip period is in the future")
)
