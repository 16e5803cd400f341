package employee

import (
	"context"
	"testing"

	"github.com/grx10/hris-backend-go/internal/domain/employee"
	"github.com/grx10/hris-backend-go/internal/domain/user"
	"github.com/grx10/hris-backend-go/internal/pkg/validator"
	"github.com/grx10/hris-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	hr      = user.Actor{ID: "EMP001", Role: user.RoleHR}
	manager = user.Actor{ID: "EMP002", Role: user.RoleManager}
)

type recordingRevoker struct {
	revoked []string
}

func (r *recordingRevoker) RevokeEmployee(employeeID string) {
	r.revoked = append(r.revoked, employeeID)
}

func newTestEmployeeService(t *testing.T) (employee.EmployeeService, employee.EmployeeRepository) {
	svc, repo, _ := newTestEmployeeServiceWithRevoker(t)
	return svc, repo
}

func newTestEmployeeServiceWithRevoker(t *testing.T) (employee.EmployeeService, employee.EmployeeRepository, *recordingRevoker) {
	t.Helper()
	repo := memory.NewEmployeeRepository()
	_, err := repo.Create(context.Background(), employee.Employee{ID: "EMP001", Name: "Sarah Jenkins", Email: "sarah@grx10.com", Role: user.RoleHR})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), employee.Employee{ID: "EMP003", Name: "Rahul Verma", Email: "rahul@grx10.com", Role: user.RoleEmployee})
	require.NoError(t, err)
	revoker := &recordingRevoker{}
	return NewEmployeeService(repo, revoker), repo, revoker
}

func validOnboard() employee.OnboardRequest {
	salary := decimal.NewFromInt(90000)
	return employee.OnboardRequest{
		Name:            "Priya Nair",
		Email:           "  Priya@GRX10.com ",
		Role:            "employee",
		Department:      "Engineering",
		Designation:     "Software Engineer",
		JoinDate:        "2024-01-15",
		Salary:          &salary,
		InitialPassword: "welcome-123",
	}
}

func TestOnboard_HashesPasswordAndNormalizesEmail(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestEmployeeService(t)

	resp, err := svc.Onboard(ctx, hr, validOnboard())
	require.NoError(t, err)
	assert.Equal(t, "priya@grx10.com", resp.Email)
	assert.Equal(t, user.RoleEmployee, resp.Role)
	assert.Equal(t, "2024-01-15", resp.JoinDate)
	assert.Equal(t, employee.EmploymentStatusActive, resp.Status)

	stored, err := repo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*stored.PasswordHash), []byte("welcome-123")))
}

func TestOnboard_Rules(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestEmployeeService(t)

	_, err := svc.Onboard(ctx, manager, validOnboard())
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)

	bad := validOnboard()
	bad.Role = "CEO"
	bad.InitialPassword = "short"
	_, err = svc.Onboard(ctx, hr, bad)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "role")
	assert.Contains(t, verrs.ToMap(), "initial_password")

	dup := validOnboard()
	dup.Email = "rahul@grx10.com"
	_, err = svc.Onboard(ctx, hr, dup)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestOffboard(t *testing.T) {
	ctx := context.Background()
	svc, repo, revoker := newTestEmployeeServiceWithRevoker(t)

	_, err := svc.Offboard(ctx, manager, employee.OffboardRequest{EmployeeID: "EMP003", Reason: "Resigned"})
	assert.ErrorIs(t, err, user.ErrInsufficientPermissions)

	_, err = svc.Offboard(ctx, hr, employee.OffboardRequest{EmployeeID: "EMP001", Reason: "Testing"})
	assert.ErrorIs(t, err, employee.ErrCannotOffboardSelf)

	_, err = svc.Offboard(ctx, hr, employee.OffboardRequest{EmployeeID: "EMP404", Reason: "Resigned"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	resp, err := svc.Offboard(ctx, hr, employee.OffboardRequest{EmployeeID: "EMP003", Reason: "Resigned"})
	require.NoError(t, err)
	assert.Equal(t, employee.EmploymentStatusExited, resp.Status)

	stored, err := repo.GetByID(ctx, "EMP003")
	require.NoError(t, err)
	assert.False(t, stored.IsActive())

	_, err = svc.Offboard(ctx, hr, employee.OffboardRequest{EmployeeID: "EMP003", Reason: "Again"})
	assert.ErrorIs(t, err, employee.ErrEmployeeAlreadyExited)

	assert.Equal(t, []string{"EMP003"}, revoker.revoked)
}

func TestListEmployees(t *testing.T) {
	svc, _ := newTestEmployeeService(t)

	list, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "EMP001", list[0].ID)
}
