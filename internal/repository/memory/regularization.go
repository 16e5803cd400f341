package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/grx10/hris-backend-go/internal/domain/regularization"
)

type regularizationRepositoryImpl struct {
	mu      sync.RWMutex
	records []regularization.Request // insertion order
	index   map[string]int
}

func NewRegularizationRepository() regularization.RegularizationRepository {
	return &regularizationRepositoryImpl{index: make(map[string]int)}
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

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[req.ID]; exists {
		return regularization.Request{}, regularization.ErrDuplicateRequestID
	}
	r.index[req.ID] = len(r.records)
	r.records = append(r.records, cloneRequest(req))

	return cloneRequest(req), nil
}

// GetByID implements regularization.RegularizationRepository.
func (r *regularizationRepositoryImpl) GetByID(ctx context.Context, id string) (regularization.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return regularization.Request{}, regularization.ErrRequestNotFound
	}
	return cloneRequest(r.records[i]), nil
}

// List implements regularization.RegularizationRepository.
func (r *regularizationRepositoryImpl) List(ctx context.Context, filter regularization.Filter) ([]regularization.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	requests := make([]regularization.Request, 0)
	for i := len(r.records) - 1; i >= 0; i-- {
		if filter.Matches(r.records[i]) {
			requests = append(requests, cloneRequest(r.records[i]))
		}
	}
	return requests, nil
}

// SetStatus implements regularization.RegularizationRepository.
func (r *regularizationRepositoryImpl) SetStatus(ctx context.Context, change regularization.StatusChange) (regularization.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[change.ID]
	if !ok {
		return regularization.Request{}, regularization.ErrRequestNotFound
	}
	if r.records[i].Status != regularization.StatusPending {
		return regularization.Request{}, regularization.ErrAlreadyDecided
	}

	decidedBy := change.DecidedBy
	decidedAt := change.DecidedAt
	r.records[i].Status = change.Status
	r.records[i].DecidedBy = &decidedBy
	r.records[i].DecidedAt = &decidedAt

	return cloneRequest(r.records[i]), nil
}

// cloneRequest copies pointer fields so callers cannot mutate stored records.
func cloneRequest(req regularization.Request) regularization.Request {
	req.ProposedCheckIn = cloneString(req.ProposedCheckIn)
	req.ProposedCheckOut = cloneString(req.ProposedCheckOut)
	req.DecidedBy = cloneString(req.DecidedBy)
	if req.DecidedAt != nil {
		t := *req.DecidedAt
		req.DecidedAt = &t
	}
	return req
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
