package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grx10/hris-backend-go/internal/domain/regularization"
	"github.com/grx10/hris-backend-go/internal/handler/http/middleware"
	"github.com/grx10/hris-backend-go/internal/handler/http/response"
)

type RegularizationHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPendingApprovals(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type regularizationHandlerImpl struct {
	regularizationService regularization.RegularizationService
}

func NewRegularizationHandler(regularizationService regularization.RegularizationService) RegularizationHandler {
	return &regularizationHandlerImpl{regularizationService: regularizationService}
}

// Submit implements RegularizationHandler.
func (h *regularizationHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req regularization.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit regularization decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.regularizationService.Submit(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Regularization request submitted", regularization.NewRequestResponse(created))
}

// ListMine implements RegularizationHandler.
func (h *regularizationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, regularization.ScopeOwn)
}

// ListPendingApprovals implements RegularizationHandler.
func (h *regularizationHandlerImpl) ListPendingApprovals(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, regularization.ScopePendingApprovals)
}

func (h *regularizationHandlerImpl) list(w http.ResponseWriter, r *http.Request, scope regularization.Scope) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.regularizationService.ListFor(r.Context(), actor, scope)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, regularization.NewRequestResponses(requests))
}

// Get implements RegularizationHandler.
func (h *regularizationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	req, err := h.regularizationService.Get(r.Context(), actor, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, regularization.NewRequestResponse(req))
}

// Approve implements RegularizationHandler.
func (h *regularizationHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, regularization.DecisionApprove, "Regularization request approved")
}

// Reject implements RegularizationHandler.
func (h *regularizationHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, regularization.DecisionReject, "Regularization request rejected")
}

func (h *regularizationHandlerImpl) decide(w http.ResponseWriter, r *http.Request, decision regularization.Decision, message string) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	updated, err := h.regularizationService.Decide(r.Context(), actor, id, decision)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Regularization request decided", "request_id", id, "status", updated.Status, "decided_by", actor.ID)
	response.SuccessWithMessage(w, message, regularization.NewRequestResponse(updated))
}
