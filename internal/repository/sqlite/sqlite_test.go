package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/grx10/hris-backend-go/internal/domain/employee"
	"github.com/grx10/hris-backend-go/internal/domain/regularization"
	"github.com/grx10/hris-backend-go/internal/domain/user"
	"github.com/grx10/hris-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "hris.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, EnsureSchema(context.Background(), db))
	return db
}

func pendingRequest(employeeID string) regularization.Request {
	in, out := "09:30", "18:30"
	return regularization.Request{
		EmployeeID:       employeeID,
		EmployeeName:     "Rahul Verma",
		Date:             "2023-10-26",
		Kind:             regularization.KindMissingPunch,
		Reason:           "Forgot to punch out",
		ProposedCheckIn:  &in,
		ProposedCheckOut: &out,
		Status:           regularization.StatusPending,
		SubmittedOn:      time.Date(2023, 10, 27, 9, 0, 0, 0, time.UTC),
	}
}

var timeEqual = cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, EnsureSchema(context.Background(), db))
}

func TestRegularizationRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRegularizationRepository(openTestDB(t))

	want := pendingRequest("EMP003")
	want.ID = "REG001"
	got, err := repo.Create(ctx, want)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, timeEqual); diff != "" {
		t.Errorf("Create mismatch (-want +got):\n%s", diff)
	}

	_, err = repo.Create(ctx, want)
	assert.ErrorIs(t, err, regularization.ErrDuplicateRequestID)

	_, err = repo.GetByID(ctx, "REG404")
	assert.ErrorIs(t, err, regularization.ErrRequestNotFound)
}

func TestRegularizationRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewRegularizationRepository(openTestDB(t))

	var ids []string
	for _, emp := range []string{"EMP003", "EMP005", "EMP003"} {
		created, err := repo.Create(ctx, pendingRequest(emp))
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	all, err := repo.List(ctx, regularization.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{all[0].ID, all[1].ID, all[2].ID})

	emp := "EMP003"
	pending := regularization.StatusPending
	own, err := repo.List(ctx, regularization.Filter{EmployeeID: &emp, Status: &pending})
	require.NoError(t, err)
	assert.Len(t, own, 2)
}

func TestRegularizationRepository_SetStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewRegularizationRepository(openTestDB(t))

	created, err := repo.Create(ctx, pendingRequest("EMP003"))
	require.NoError(t, err)

	decidedAt := time.Date(2023, 10, 28, 10, 0, 0, 0, time.UTC)
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		winners   []regularization.Request
		conflicts int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			updated, err := repo.SetStatus(ctx, regularization.StatusChange{ID: created.ID, Status: regularization.StatusApproved, DecidedBy: "EMP002", DecidedAt: decidedAt})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners = append(winners, updated)
			case errors.Is(err, regularization.ErrAlreadyDecided):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Len(t, winners, 1)
	assert.Equal(t, 7, conflicts)
	assert.Equal(t, regularization.StatusApproved, winners[0].Status)
	assert.Equal(t, "EMP002", *winners[0].DecidedBy)
	assert.True(t, decidedAt.Equal(*winners[0].DecidedAt))

	_, err = repo.SetStatus(ctx, regularization.StatusChange{ID: "REG404", Status: regularization.StatusApproved, DecidedAt: decidedAt})
	assert.ErrorIs(t, err, regularization.ErrRequestNotFound)
}

func TestEmployeeRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(openTestDB(t))

	salary := decimal.RequireFromString("1200000.50")
	manager := "EMP002"
	want := employee.Employee{
		ID:          "EMP003",
		Name:        "Rahul Verma",
		Email:       "rahul@grx10.com",
		Role:        user.RoleEmployee,
		Department:  "Engineering",
		Designation: "Software Engineer",
		JoinDate:    time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC),
		ManagerID:   &manager,
		Salary:      &salary,
		Status:      employee.EmploymentStatusActive,
	}
	created, err := repo.Create(ctx, want)
	require.NoError(t, err)
	want.CreatedAt, want.UpdatedAt = created.CreatedAt, created.UpdatedAt
	if diff := cmp.Diff(want, created, timeEqual, cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })); diff != "" {
		t.Errorf("Create mismatch (-want +got):\n%s", diff)
	}

	byEmail, err := repo.GetByEmail(ctx, "Rahul@GRX10.com")
	require.NoError(t, err)
	assert.Equal(t, "EMP003", byEmail.ID)

	_, err = repo.Create(ctx, employee.Employee{ID: "EMP003", Name: "Dup", Email: "dup@grx10.com", Role: user.RoleEmployee})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)
	_, err = repo.Create(ctx, employee.Employee{Name: "Dup", Email: "RAHUL@grx10.com", Role: user.RoleEmployee})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	require.NoError(t, repo.UpdateStatus(ctx, "EMP003", employee.EmploymentStatusExited))
	got, err := repo.GetByID(ctx, "EMP003")
	require.NoError(t, err)
	assert.Equal(t, employee.EmploymentStatusExited, got.Status)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, "EMP404", employee.EmploymentStatusExited), employee.ErrEmployeeNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
