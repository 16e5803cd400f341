package postgresql

import (
	"context"
	"fmt"

	"github.com/grx10/hris-backend-go/internal/pkg/database"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL,
		role          TEXT NOT NULL,
		department    TEXT NOT NULL DEFAULT '',
		designation   TEXT NOT NULL DEFAULT '',
		join_date     DATE,
		manager_id    TEXT,
		avatar_url    TEXT,
		salary        NUMERIC(15, 2),
		status        TEXT NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Exited')),
		password_hash TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS employees_email_key ON employees (lower(email))`,
	`CREATE TABLE IF NOT EXISTS regularization_requests (
		seq                BIGSERIAL NOT NULL UNIQUE,
		id                 TEXT PRIMARY KEY,
		employee_id        TEXT NOT NULL,
		employee_name      TEXT NOT NULL,
		date               DATE NOT NULL,
		kind               TEXT NOT NULL CHECK (kind IN ('Missing Punch', 'Incorrect Punch', 'Work From Home')),
		reason             TEXT NOT NULL CHECK (reason <> ''),
		proposed_check_in  TEXT,
		proposed_check_out TEXT,
		status             TEXT NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'Approved', 'Rejected')),
		submitted_on       TIMESTAMPTZ NOT NULL,
		decided_by         TEXT,
		decided_at         TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS idx_regularization_requests_employee_id ON regularization_requests (employee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_regularization_requests_status ON regularization_requests (status)`,
}

// Migrate creates the tables this service needs. It is idempotent.
func Migrate(ctx context.Context, db *database.DB) error {
	return WithTransaction(ctx, db, func(ctx context.Context) error {
		q := GetQuerier(ctx, db)
		for _, stmt := range schema {
			if _, err := q.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply schema: %w", err)
			}
		}
		return nil
	})
}
