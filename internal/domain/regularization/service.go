package regularization

import (
	"context"

	"github.com/grx10/hris-backend-go/internal/domain/user"
)

// RegularizationService is the request lifecycle engine.
type RegularizationService interface {
	// Submit validates and stores a new Pending request for the actor.
	Submit(ctx context.Context, actor user.Actor, req SubmitRequest) (Request, error)

	// Decide approves or rejects a Pending request on behalf of an approver.
	Decide(ctx context.Context, actor user.Actor, id string, decision Decision) (Request, error)

	// ListFor returns the actor's own requests or the ones awaiting their decision.
	ListFor(ctx context.Context, actor user.Actor, scope Scope) ([]Request, error)

	// Get returns a single request the actor is allowed to see.
	Get(ctx context.Context, actor user.Actor, id string) (Request, error)
}

// DecisionNotifier is told about every request that leaves Pending.
type DecisionNotifier interface {
	RequestDecided(ctx context.Context, req Request)
}
