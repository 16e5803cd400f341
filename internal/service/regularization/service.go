package regularization

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grx10/hris-backend-go/internal/domain/employee"
	"github.com/grx10/hris-backend-go/internal/domain/regularization"
	"github.com/grx10/hris-backend-go/internal/domain/user"
)

type RegularizationServiceImpl struct {
	regularization.RegularizationRepository
	employee.EmployeeRepository
	now      func() time.Time
	notifier regularization.DecisionNotifier
}

func NewRegularizationService(regularizationRepository regularization.RegularizationRepository, employeeRepository employee.EmployeeRepository) *RegularizationServiceImpl {
	return &RegularizationServiceImpl{
		RegularizationRepository: regularizationRepository,
		EmployeeRepository:       employeeRepository,
		now:                      time.Now,
	}
}

// WithClock replaces the time source used for submission and decision stamps.
func (s *RegularizationServiceImpl) WithClock(now func() time.Time) *RegularizationServiceImpl {
	s.now = now
	return s
}

// WithNotifier registers a notifier for completed decisions.
func (s *RegularizationServiceImpl) WithNotifier(n regularization.DecisionNotifier) *RegularizationServiceImpl {
	s.notifier = n
	return s
}

// Submit implements regularization.RegularizationService.
func (s *RegularizationServiceImpl) Submit(ctx context.Context, actor user.Actor, req regularization.SubmitRequest) (regularization.Request, error) {
	if actor.ID == "" {
		return regularization.Request{}, user.ErrActorMissing
	}
	if err := req.Validate(); err != nil {
		return regularization.Request{}, err
	}

	name, err := s.employeeName(ctx, actor.ID)
	if err != nil {
		return regularization.Request{}, err
	}

	created, err := s.RegularizationRepository.Create(ctx, req.ToRequest(actor.ID, name, s.now()))
	if err != nil {
		return regularization.Request{}, fmt.Errorf("failed to create regularization request: %w", err)
	}

	return created, nil
}

// Decide implements regularization.RegularizationService.
func (s *RegularizationServiceImpl) Decide(ctx context.Context, actor user.Actor, id string, decision regularization.Decision) (regularization.Request, error) {
	if actor.ID == "" {
		return regularization.Request{}, user.ErrActorMissing
	}

	request, err := s.RegularizationRepository.GetByID(ctx, id)
	if err != nil {
		return regularization.Request{}, err
	}

	if !regularization.MayDecide(actor, request) {
		return regularization.Request{}, regularization.ErrForbidden
	}
	if request.Status.IsTerminal() {
		return regularization.Request{}, regularization.ErrAlreadyDecided
	}

	// The store re-checks Pending atomically; a concurrent decision that
	// landed after GetByID surfaces here as ErrAlreadyDecided.
	updated, err := s.RegularizationRepository.SetStatus(ctx, regularization.StatusChange{
		ID:        request.ID,
		Status:    decision.Status(),
		DecidedBy: actor.ID,
		DecidedAt: s.now(),
	})
	if err != nil {
		return regularization.Request{}, err
	}

	if s.notifier != nil {
		s.notifier.RequestDecided(ctx, updated)
	}
	return updated, nil
}

// ListFor implements regularization.RegularizationService.
func (s *RegularizationServiceImpl) ListFor(ctx context.Context, actor user.Actor, scope regularization.Scope) ([]regularization.Request, error) {
	switch scope {
	case regularization.ScopeOwn:
		requests, err := s.RegularizationRepository.List(ctx, regularization.Filter{EmployeeID: &actor.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to list own regularization requests: %w", err)
		}
		return requests, nil

	case regularization.ScopePendingApprovals:
		if !actor.CanApprove() {
			return []regularization.Request{}, nil
		}
		pending := regularization.StatusPending
		requests, err := s.RegularizationRepository.List(ctx, regularization.Filter{Status: &pending})
		if err != nil {
			return nil, fmt.Errorf("failed to list pending regularization requests: %w", err)
		}
		decidable := make([]regularization.Request, 0, len(requests))
		for _, r := range requests {
			if regularization.CanDecide(actor, r) {
				decidable = append(decidable, r)
			}
		}
		return decidable, nil
	}

	return nil, fmt.Errorf("unknown scope %q", scope)
}

// Get implements regularization.RegularizationService.
func (s *RegularizationServiceImpl) Get(ctx context.Context, actor user.Actor, id string) (regularization.Request, error) {
	request, err := s.RegularizationRepository.GetByID(ctx, id)
	if err != nil {
		return regularization.Request{}, err
	}
	if !regularization.VisibleTo(actor, request) {
		return regularization.Request{}, regularization.ErrForbidden
	}
	return request, nil
}

func (s *RegularizationServiceImpl) employeeName(ctx context.Context, employeeID string) (string, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employeeID, nil
		}
		return "", fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return emp.Name, nil
}

var _ regularization.RegularizationService = (*RegularizationServiceImpl)(nil)
