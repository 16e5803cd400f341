package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/grx10/hris-backend-go/internal/domain/employee"
	"github.com/grx10/hris-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	sessions     employee.SessionRevoker
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, sessions employee.SessionRevoker) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		sessions:     sessions,
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}
	return responses, nil
}

// Onboard implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Onboard(ctx context.Context, actor user.Actor, req employee.OnboardRequest) (employee.EmployeeResponse, error) {
	if !actor.IsHRorAdmin() {
		return employee.EmployeeResponse{}, user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	role, _ := user.ParseRole(req.Role)
	joinDate, err := time.Parse(time.DateOnly, req.JoinDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse join date: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.InitialPassword), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	newEmployee := employee.Employee{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Role:         role,
		Department:   strings.TrimSpace(req.Department),
		Designation:  strings.TrimSpace(req.Designation),
		JoinDate:     joinDate,
		ManagerID:    req.ManagerID,
		Salary:       req.Salary,
		Status:       employee.EmploymentStatusActive,
		PasswordHash: &hashed,
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("employee onboarded", "employee_id", created.ID, "by", actor.ID)
	return employee.NewEmployeeResponse(created), nil
}

// Offboard implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Offboard(ctx context.Context, actor user.Actor, req employee.OffboardRequest) (employee.EmployeeResponse, error) {
	if !actor.IsHRorAdmin() {
		return employee.EmployeeResponse{}, user.ErrInsufficientPermissions
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if req.EmployeeID == actor.ID {
		return employee.EmployeeResponse{}, employee.ErrCannotOffboardSelf
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if !emp.IsActive() {
		return employee.EmployeeResponse{}, employee.ErrEmployeeAlreadyExited
	}

	if err := s.employeeRepo.UpdateStatus(ctx, emp.ID, employee.EmploymentStatusExited); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employment status: %w", err)
	}
	emp.Status = employee.EmploymentStatusExited
	s.sessions.RevokeEmployee(emp.ID)

	slog.Info("employee offboarded", "employee_id", emp.ID, "by", actor.ID, "reason", req.Reason)
	return employee.NewEmployeeResponse(emp), nil
}
