package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salary structure applied to the monthly share of annual CTC.
var (
	basicShare = decimal.NewFromFloat(0.50)
	hraShare   = decimal.NewFromFloat(0.20)
	// Provident fund, on basic only.
	deductionRate = decimal.NewFromFloat(0.12)
	monthsInYear  = decimal.NewFromInt(12)
)

// Payslip is a computed monthly salary breakdown. It is derived on demand
// and never stored.
type Payslip struct {
	EmployeeID    string
	EmployeeName  string
	Department    string
	Designation   string
	Month         time.Month
	Year          int
	Basic         decimal.Decimal
	HRA           decimal.Decimal
	Allowances    decimal.Decimal
	Deductions    decimal.Decimal
	NetPay        decimal.Decimal
	GeneratedDate time.Time
}

// ComputePayslip splits annualCTC/12 into basic (50%), HRA (20%) and
// allowances (the remaining 30%, absorbing rounding so the components
// always add up to the gross). Amounts are rounded to two decimals.
func ComputePayslip(annualCTC decimal.Decimal, month time.Month, year int, generated time.Time) Payslip {
	gross := annualCTC.Div(monthsInYear).Round(2)
	basic := gross.Mul(basicShare).Round(2)
	hra := gross.Mul(hraShare).Round(2)
	allowances := gross.Sub(basic).Sub(hra)
	deductions := basic.Mul(deductionRate).Round(2)

	return Payslip{
		Month:         month,
		Year:          year,
		Basic:         basic,
		HRA:           hra,
		Allowances:    allowances,
		Deductions:    deductions,
		NetPay:        gross.Sub(deductions),
		GeneratedDate: generated,
	}
}
