package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grx10/hris-backend-go/internal/domain/employee"
)

type employeeRepositoryImpl struct {
	mu        sync.RWMutex
	employees []employee.Employee
	byID      map[string]int
}

func NewEmployeeRepository() employee.EmployeeRepository {
	return &employeeRepositoryImpl{byID: make(map[string]int)}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	i, ok := e.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e.employees[i], nil
}

// GetByEmail implements employee.EmployeeRepository. Emails compare case-insensitively.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, emp := range e.employees {
		if strings.EqualFold(emp.Email, strings.TrimSpace(email)) {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	employees := make([]employee.Employee, len(e.employees))
	copy(employees, e.employees)
	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	if newEmployee.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to generate employee id: %w", err)
		}
		newEmployee.ID = id.String()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.byID[newEmployee.ID]; exists {
		return employee.Employee{}, employee.ErrEmployeeIDExists
	}
	for _, emp := range e.employees {
		if strings.EqualFold(emp.Email, newEmployee.Email) {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	now := time.Now()
	newEmployee.CreatedAt = now
	newEmployee.UpdatedAt = now
	if newEmployee.Status == "" {
		newEmployee.Status = employee.EmploymentStatusActive
	}

	e.byID[newEmployee.ID] = len(e.employees)
	e.employees = append(e.employees, newEmployee)

	return newEmployee, nil
}

// UpdateStatus implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateStatus(ctx context.Context, id string, status employee.EmploymentStatus) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	i, ok := e.byID[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.employees[i].Status = status
	e.employees[i].UpdatedAt = time.Now()
	return nil
}
