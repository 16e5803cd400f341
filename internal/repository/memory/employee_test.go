package memory

import (
	"context"
	"testing"

	"github.com/grx10/hris-backend-go/internal/domain/employee"
	"github.com/grx10/hris-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	created, err := repo.Create(ctx, employee.Employee{ID: "EMP003", Name: "Rahul Verma", Email: "rahul@grx10.com", Role: user.RoleEmployee})
	require.NoError(t, err)
	assert.Equal(t, employee.EmploymentStatusActive, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "RAHUL@grx10.com")
	require.NoError(t, err)
	assert.Equal(t, "EMP003", byEmail.ID)

	_, err = repo.GetByID(ctx, "EMP999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_CreateRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	_, err := repo.Create(ctx, employee.Employee{ID: "EMP001", Email: "sarah@grx10.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, employee.Employee{ID: "EMP001", Email: "other@grx10.com"})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)

	_, err = repo.Create(ctx, employee.Employee{Email: "Sarah@grx10.com"})
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	created, err := repo.Create(ctx, employee.Employee{Email: "new@grx10.com"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	require.NoError(t, repo.UpdateStatus(ctx, created.ID, employee.EmploymentStatusExited))
	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive())

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "nobody", employee.EmploymentStatusExited), employee.ErrEmployeeNotFound)
}
