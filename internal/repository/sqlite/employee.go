package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grx10/hris-backend-go/internal/domain/employee"
	"github.com/grx10/hris-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	sqlite3 "modernc.org/sqlite/lib"
)

const employeeColumns = `id, name, email, role, department, designation, join_date, manager_id,
	avatar_url, salary, status, password_hash, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return e.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
}

// GetByEmail implements employee.EmployeeRepository. The email column is
// NOCASE, so lookups ignore case.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return e.getOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE email = ?`, email)
}

func (e *employeeRepositoryImpl) getOne(ctx context.Context, query string, arg string) (employee.Employee, error) {
	emp, err := scanEmployee(e.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	rows, err := e.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
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
	if newEmployee.Status == "" {
		newEmployee.Status = employee.EmploymentStatusActive
	}

	var joinDate *string
	if !newEmployee.JoinDate.IsZero() {
		s := newEmployee.JoinDate.Format(time.DateOnly)
		joinDate = &s
	}
	var salary *string
	if newEmployee.Salary != nil {
		s := newEmployee.Salary.String()
		salary = &s
	}
	now := formatTime(time.Now())

	_, err := e.db.ExecContext(ctx, `
		INSERT INTO employees (`+employeeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		newEmployee.ID, newEmployee.Name, newEmployee.Email, string(newEmployee.Role),
		newEmployee.Department, newEmployee.Designation, joinDate, newEmployee.ManagerID,
		newEmployee.AvatarURL, salary, string(newEmployee.Status), newEmployee.PasswordHash, now, now,
	)
	if err != nil {
		switch constraintCode(err) {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return employee.Employee{}, employee.ErrEmployeeIDExists
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to insert employee: %w", err)
	}

	return e.GetByID(ctx, newEmployee.ID)
}

// UpdateStatus implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateStatus(ctx context.Context, id string, status employee.EmploymentStatus) error {
	res, err := e.db.ExecContext(ctx, `UPDATE employees SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), formatTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("failed to update status for employee %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func scanEmployee(row scanner) (employee.Employee, error) {
	var (
		emp                            employee.Employee
		role, status                   string
		joinDate, managerID, avatarURL sql.NullString
		passwordHash                   sql.NullString
		salary                         decimal.NullDecimal
		createdAt, updatedAt           string
	)
	err := row.Scan(
		&emp.ID, &emp.Name, &emp.Email, &role, &emp.Department, &emp.Designation,
		&joinDate, &managerID, &avatarURL, &salary, &status, &passwordHash, &createdAt, &updatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	emp.Role = user.Role(role)
	emp.Status = employee.EmploymentStatus(status)
	emp.ManagerID = nullString(managerID)
	emp.AvatarURL = nullString(avatarURL)
	emp.PasswordHash = nullString(passwordHash)
	if salary.Valid {
		s := salary.Decimal
		emp.Salary = &s
	}
	if joinDate.Valid {
		if emp.JoinDate, err = time.Parse(time.DateOnly, joinDate.String); err != nil {
			return employee.Employee{}, fmt.Errorf("bad join_date for %s: %w", emp.ID, err)
		}
	}
	if emp.CreatedAt, err = parseTime(createdAt); err != nil {
		return employee.Employee{}, err
	}
	if emp.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}
