package payroll

import (
	"strconv"
	"strings"
	"time"

	"github.com/grx10/hris-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PAYSLIP DTOs ==========

type PayslipRequest struct {
	EmployeeID string `json:"-"`
	Month      string `json:"month"` // "October", "Oct" or "10"
	Year       string `json:"year"`
}

func (r *PayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := ParseMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a month name or a number from 1 to 12"})
	}
	if _, ok := parseYear(r.Year); !ok {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a four digit year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the parsed month and year. Call Validate first.
func (r *PayslipRequest) Period() (time.Month, int) {
	m, _ := ParseMonth(r.Month)
	y, _ := parseYear(r.Year)
	return m, y
}

// ParseMonth accepts full or three-letter English month names in any case,
// or a number from 1 to 12.
func ParseMonth(s string) (time.Month, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, false
		}
		return time.Month(n), true
	}
	if len(s) < 3 {
		return 0, false
	}
	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if strings.EqualFold(name, s) || strings.EqualFold(name[:3], s) {
			return m, true
		}
	}
	return 0, false
}

func parseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 4 || !validator.IsNumeric(s) {
		return 0, false
	}
	y, err := strconv.Atoi(s)
	return y, err == nil
}

type PayslipResponse struct {
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	Department    string          `json:"department"`
	Designation   string          `json:"designation"`
	Month         string          `json:"month"`
	Year          string          `json:"year"`
	Basic         decimal.Decimal `json:"basic"`
	HRA           decimal.Decimal `json:"hra"`
	Allowances    decimal.Decimal `json:"allowances"`
	Deductions    decimal.Decimal `json:"deductions"`
	NetPay        decimal.Decimal `json:"net_pay"`
	GeneratedDate string          `json:"generated_date"`
}

func NewPayslipResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		EmployeeID:    p.EmployeeID,
		EmployeeName:  p.EmployeeName,
		Department:    p.Department,
		Designation:   p.Designation,
		Month:         p.Month.String(),
		Year:          strconv.Itoa(p.Year),
		Basic:         p.Basic,
		HRA:           p.HRA,
		Allowances:    p.Allowances,
		Deductions:    p.Deductions,
		NetPay:        p.NetPay,
		GeneratedDate: p.GeneratedDate.Format(time.DateOnly),
	}
}
