package regularization

import (
	"context"
)

// RegularizationRepository is the record store for regularization requests.
// Requests are never deleted; only their status changes.
type RegularizationRepository interface {
	// Create stores a new request, assigning an ID when req.ID is empty.
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	// List returns matching requests, most recently created first.
	List(ctx context.Context, filter Filter) ([]Request, error)
	// SetStatus moves a Pending request to change.Status atomically.
	// It fails with ErrAlreadyDecided when the request is no longer Pending.
	SetStatus(ctx context.Context, change StatusChange) (Request, error)
}
