package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grx10/hris-backend-go/internal/domain/regularization"
	"github.com/grx10/hris-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const regularizationColumns = `id, employee_id, employee_name, to_char(date, 'YYYY-MM-DD'), kind, reason,
	proposed_check_in, proposed_check_out, status, submitted_on, decided_by, decided_at`

type regularizationRepositoryImpl struct {
	db *database.DB
}

func NewRegularizationRepository(db *database.DB) regularization.RegularizationRepository {
	return &regularizationRepositoryImpl{db: db}
}

// Create implements regularization.RegularizationRepository.
func (r *regularizationRepositoryImpl) Create(ctx context.Context, req regularization.Request) (regularization.Request, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return regularization.Request{}, fmt.Errorf("failed to generate request id: %w", err)
		}
		req.ID = id.String()
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return regularization.Request{}, fmt.Errorf("invalid request date %q: %w", req.Date, err)
	}

	query := `
		INSERT INTO regularization_requests (
			id, employee_id, employee_name, date, kind, reason,
			proposed_check_in, proposed_check_out, status, submitted_on, decided_by, decided_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + regularizationColumns

	created, err := scanRequest(q.QueryRow(ctx, query,
		req.ID, req.EmployeeID, req.EmployeeName, date, req.Kind, req.Reason,
		req.ProposedCheckIn, req.ProposedCheckOut, req.Status, req.SubmittedOn, req.DecidedBy, req.DecidedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return regularization.Request{}, regularization.ErrDuplicateRequestID
		}
		return regularization.Request{}, fmt.Errorf("failed to insert regularization request: %w", err)
	}

	return created, nil
}

// GetByID implements regularization.RegularizationRepository.
func (r *regularizationRepositoryImpl) GetByID(ctx context.Context, id string) (regularization.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + regularizationColumns + ` FROM regularization_requests WHERE id = $1`

	req, err := scanRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return regularization.Request{}, regularization.ErrRequestNotFound
		}
		return regularization.Request{}, fmt.Errorf("failed to get regularization request %s: %w", id, err)
	}
	return req, nil
}

// List implements regularization.RegularizationRepository.
func (r *regularizationRepositoryImpl) List(ctx context.Context, filter regularization.Filter) ([]regularization.Request, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + regularizationColumns + ` FROM regularization_requests`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY seq DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list regularization requests: %w", err)
	}
	defer rows.Close()

	requests := make([]regularization.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// SetStatus implements regularization.RegularizationRepository. The status
// guard lives in the WHERE clause so concurrent deciders cannot both win.
func (r *regularizationRepositoryImpl) SetStatus(ctx context.Context, change regularization.StatusChange) (regularization.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE regularization_requests
		SET status = $2, decided_by = $3, decided_at = $4
		WHERE id = $1 AND status = $5
		RETURNING ` + regularizationColumns

	updated, err := scanRequest(q.QueryRow(ctx, query, change.ID, change.Status, change.DecidedBy, change.DecidedAt, regularization.StatusPending))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return regularization.Request{}, fmt.Errorf("failed to update regularization request %s: %w", change.ID, err)
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM regularization_requests WHERE id = $1)`, change.ID).Scan(&exists); err != nil {
		return regularization.Request{}, fmt.Errorf("failed to check regularization request %s: %w", change.ID, err)
	}
	if !exists {
		return regularization.Request{}, regularization.ErrRequestNotFound
	}
	return regularization.Request{}, regularization.ErrAlreadyDecided
}

func scanRequest(row pgx.Row) (regularization.Request, error) {
	var req regularization.Request
	err := row.Scan(
		&req.ID,
		&req.EmployeeID,
		&req.EmployeeName,
		&req.Date,
		&req.Kind,
		&req.Reason,
		&req.ProposedCheckIn,
		&req.ProposedCheckOut,
		&req.Status,
		&req.SubmittedOn,
		&req.DecidedBy,
		&req.DecidedAt,
	)
	return req, err
}
