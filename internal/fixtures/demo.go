package fixtures

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/grx10/hris-backend-go/internal/domain/employee"
	"github.com/grx10/hris-backend-go/internal/domain/regularization"
	"github.com/grx10/hris-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

type employeeFixture struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Email       string    `yaml:"email"`
	Role        string    `yaml:"role"`
	Department  string    `yaml:"department"`
	Designation string    `yaml:"designation"`
	JoinDate    time.Time `yaml:"join_date"`
	ManagerID   string    `yaml:"manager_id"`
	AvatarURL   string    `yaml:"avatar_url"`
	Salary      string    `yaml:"salary"`
	Password    string    `yaml:"password"`
}

type regularizationFixture struct {
	ID               string     `yaml:"id"`
	EmployeeID       string     `yaml:"employee_id"`
	EmployeeName     string     `yaml:"employee_name"`
	Date             string     `yaml:"date"`
	Kind             string     `yaml:"kind"`
	Reason           string     `yaml:"reason"`
	Status           string     `yaml:"status"`
	SubmittedOn      time.Time  `yaml:"submitted_on"`
	ProposedCheckIn  *string    `yaml:"proposed_check_in"`
	ProposedCheckOut *string    `yaml:"proposed_check_out"`
	DecidedBy        *string    `yaml:"decided_by"`
	DecidedAt        *time.Time `yaml:"decided_at"`
}

type demoFile struct {
	Policy          string                  `yaml:"policy"`
	Employees       []employeeFixture       `yaml:"employees"`
	Regularizations []regularizationFixture `yaml:"regularizations"`
}

// Demo is the decoded demo dataset: the GRX10 directory, a few
// regularization requests and the handbook text the assistant answers from.
type Demo struct {
	Policy          string
	Employees       []employee.Employee
	Regularizations []regularization.Request

	// passwords holds the plaintext demo credentials by employee id. They are
	// hashed by Seed, only for the employees it creates.
	passwords map[string]string
}

// LoadDemo decodes the embedded dataset without hashing anything.
func LoadDemo() (Demo, error) {
	return parseDemo(demoYAML)
}

func parseDemo(data []byte) (Demo, error) {
	var file demoFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Demo{}, fmt.Errorf("fixtures: decode demo data: %w", err)
	}

	demo := Demo{Policy: file.Policy, passwords: make(map[string]string)}
	for _, f := range file.Employees {
		emp, err := f.toEmployee()
		if err != nil {
			return Demo{}, fmt.Errorf("fixtures: employee %s: %w", f.ID, err)
		}
		demo.Employees = append(demo.Employees, emp)
		if f.Password != "" {
			demo.passwords[f.ID] = f.Password
		}
	}
	for _, f := range file.Regularizations {
		req, err := f.toRequest()
		if err != nil {
			return Demo{}, fmt.Errorf("fixtures: regularization %s: %w", f.ID, err)
		}
		demo.Regularizations = append(demo.Regularizations, req)
	}
	return demo, nil
}

func (f employeeFixture) toEmployee() (employee.Employee, error) {
	role, ok := user.ParseRole(f.Role)
	if !ok {
		return employee.Employee{}, fmt.Errorf("unknown role %q", f.Role)
	}

	emp := employee.Employee{
		ID:          f.ID,
		Name:        f.Name,
		Email:       f.Email,
		Role:        role,
		Department:  f.Department,
		Designation: f.Designation,
		JoinDate:    f.JoinDate,
		ManagerID:   optional(f.ManagerID),
		AvatarURL:   optional(f.AvatarURL),
		Status:      employee.EmploymentStatusActive,
	}

	if f.Salary != "" {
		salary, err := decimal.NewFromString(f.Salary)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("invalid salary: %w", err)
		}
		emp.Salary = &salary
	}
	return emp, nil
}

func (f regularizationFixture) toRequest() (regularization.Request, error) {
	kind, ok := regularization.ParseKind(f.Kind)
	if !ok {
		return regularization.Request{}, fmt.Errorf("unknown kind %q", f.Kind)
	}
	status := regularization.Status(f.Status)
	switch status {
	case regularization.StatusPending, regularization.StatusApproved, regularization.StatusRejected:
	default:
		return regularization.Request{}, fmt.Errorf("unknown status %q", f.Status)
	}

	req := regularization.Request{
		ID:               f.ID,
		EmployeeID:       f.EmployeeID,
		EmployeeName:     f.EmployeeName,
		Date:             f.Date,
		Kind:             kind,
		Reason:           f.Reason,
		ProposedCheckIn:  f.ProposedCheckIn,
		ProposedCheckOut: f.ProposedCheckOut,
		Status:           status,
		SubmittedOn:      f.SubmittedOn.UTC(),
		DecidedBy:        f.DecidedBy,
	}
	if f.DecidedAt != nil {
		t := f.DecidedAt.UTC()
		req.DecidedAt = &t
	}
	return req, nil
}

// Seed writes the dataset into the stores. Records whose id already exists
// are left untouched, so seeding a persistent store twice is harmless.
func Seed(ctx context.Context, demo Demo, employees employee.EmployeeRepository, requests regularization.RegularizationRepository) error {
	var created, skipped int
	for _, emp := range demo.Employees {
		if _, err := employees.GetByID(ctx, emp.ID); err == nil {
			skipped++
			continue
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return fmt.Errorf("failed to look up employee %s: %w", emp.ID, err)
		}

		if password, ok := demo.passwords[emp.ID]; ok {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password for %s: %w", emp.ID, err)
			}
			hashed := string(hash)
			emp.PasswordHash = &hashed
		}

		_, err := employees.Create(ctx, emp)
		switch {
		case err == nil:
			created++
		case errors.Is(err, employee.ErrEmployeeIDExists), errors.Is(err, employee.ErrEmailExists):
			skipped++
		default:
			return fmt.Errorf("failed to seed employee %s: %w", emp.ID, err)
		}
	}
	for _, req := range demo.Regularizations {
		_, err := requests.Create(ctx, req)
		switch {
		case err == nil:
			created++
		case errors.Is(err, regularization.ErrDuplicateRequestID):
			skipped++
		default:
			return fmt.Errorf("failed to seed regularization request %s: %w", req.ID, err)
		}
	}

	slog.Info("demo data seeded", "created", created, "skipped", skipped)
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
