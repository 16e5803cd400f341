package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/grx10/hris-backend-go/internal/domain/regularization"
)

const regularizationColumns = `id, employee_id, employee_name, date, kind, reason,
	proposed_check_in, proposed_check_out, status, submitted_on, decided_by, decided_at`

type regularizationRepositoryImpl struct {
	db *sql.DB
}

func NewRegularizationRepository(db *sql.DB) regularization.RegularizationRepository {
	return &regularizationRepositoryImpl{db: db}
}

// Create implements regularization.RegularizationRepository.
func (r *regularizationRepositoryImpl) Create(ctx context.Context, req regularization.Request) (regularization.Request, error) {
	if req.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return regularization.Request{}, fmt.Errorf("failed to generate request id: %w", err)
		}
		req.ID = id.String()
	}

	var decidedAt *string
	if req.DecidedAt != nil {
		s := formatTime(*req.DecidedAt)
		decidedAt = &s
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO regularization_requests (`+regularizationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, req.EmployeeID, req.EmployeeName, req.Date, string(req.Kind), req.Reason,
		req.ProposedCheckIn, req.ProposedCheckOut, string(req.Status), formatTime(req.SubmittedOn),
		req.DecidedBy, decidedAt,
	)
	if err != nil {
		if constraintCode(err) != 0 {
			return regularization.Request{}, regularization.ErrDuplicateRequestID
		}
		return regularization.Request{}, fmt.Errorf("failed to insert regularization request: %w", err)
	}

	return r.GetByID(ctx, req.ID)
}

// GetByID implements regularization.RegularizationRepository.
func (r *regularizationRepositoryImpl) GetByID(ctx context.Context, id string) (regularization.Request, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+regularizationColumns+` FROM regularization_requests WHERE id = ?`, id)

	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return regularization.Request{}, regularization.ErrRequestNotFound
		}
		return regularization.Request{}, fmt.Errorf("failed to get regularization request %s: %w", id, err)
	}
	return req, nil
}

// List implements regularization.RegularizationRepository.
func (r *regularizationRepositoryImpl) List(ctx context.Context, filter regularization.Filter) ([]regularization.Request, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if filter.EmployeeID != nil {
		conditions = append(conditions, "employee_id = ?")
		args = append(args, *filter.EmployeeID)
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, string(*filter.Status))
	}

	query := `SELECT ` + regularizationColumns + ` FROM regularization_requests`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY rowid DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
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

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

// SetStatus implements regularization.RegularizationRepository.
func (r *regularizationRepositoryImpl) SetStatus(ctx context.Context, change regularization.StatusChange) (regularization.Request, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE regularization_requests
		SET status = ?, decided_by = ?, decided_at = ?
		WHERE id = ? AND status = ?`,
		string(change.Status), change.DecidedBy, formatTime(change.DecidedAt),
		change.ID, string(regularization.StatusPending),
	)
	if err != nil {
		return regularization.Request{}, fmt.Errorf("failed to update regularization request %s: %w", change.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return regularization.Request{}, err
	}

	current, err := r.GetByID(ctx, change.ID)
	if err != nil {
		return regularization.Request{}, err
	}
	if affected == 0 {
		return regularization.Request{}, regularization.ErrAlreadyDecided
	}
	return current, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRequest(row scanner) (regularization.Request, error) {
	var (
		req                  regularization.Request
		kind, status         string
		checkIn, checkOut    sql.NullString
		submittedOn          string
		decidedBy, decidedAt sql.NullString
	)
	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.EmployeeName, &req.Date, &kind, &req.Reason,
		&checkIn, &checkOut, &status, &submittedOn, &decidedBy, &decidedAt,
	)
	if err != nil {
		return regularization.Request{}, err
	}

	req.Kind = regularization.Kind(kind)
	req.Status = regularization.Status(status)
	req.ProposedCheckIn = nullString(checkIn)
	req.ProposedCheckOut = nullString(checkOut)
	req.DecidedBy = nullString(decidedBy)

	if req.SubmittedOn, err = parseTime(submittedOn); err != nil {
		return regularization.Request{}, fmt.Errorf("bad submitted_on for %s: %w", req.ID, err)
	}
	if req.DecidedAt, err = parseNullTime(decidedAt); err != nil {
		return regularization.Request{}, fmt.Errorf("bad decided_at for %s: %w", req.ID, err)
	}
	return req, nil
}
