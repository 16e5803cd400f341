package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE COLLATE NOCASE,
		role          TEXT NOT NULL,
		department    TEXT NOT NULL DEFAULT '',
		designation   TEXT NOT NULL DEFAULT '',
		join_date     TEXT,
		manager_id    TEXT,
		avatar_url    TEXT,
		salary        TEXT,
		status        TEXT NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Exited')),
		password_hash TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS regularization_requests (
		id                 TEXT PRIMARY KEY,
		employee_id        TEXT NOT NULL,
		employee_name      TEXT NOT NULL,
		date               TEXT NOT NULL,
		kind               TEXT NOT NULL CHECK (kind IN ('Missing Punch', 'Incorrect Punch', 'Work From Home')),
		reason             TEXT NOT NULL CHECK (reason <> ''),
		proposed_check_in  TEXT,
		proposed_check_out TEXT,
		status             TEXT NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'Approved', 'Rejected')),
		submitted_on       TEXT NOT NULL,
		decided_by         TEXT,
		decided_at         TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_regularization_requests_employee_id ON regularization_requests (employee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_regularization_requests_status ON regularization_requests (status)`,
}

// EnsureSchema creates the tables this service needs. It is idempotent.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return tx.Commit()
}

// Timestamps are stored as UTC RFC 3339 text so they sort lexically.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// constraintCode returns the extended SQLite result code of a constraint
// violation, or 0 for any other error.
func constraintCode(err error) int {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return 0
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return sqliteErr.Code()
	}
	return 0
}
