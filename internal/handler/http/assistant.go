package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/grx10/hris-backend-go/internal/domain/assistant"
	"github.com/grx10/hris-backend-go/internal/handler/http/middleware"
	"github.com/grx10/hris-backend-go/internal/handler/http/response"
)

type AssistantHandler interface {
	Chat(w http.ResponseWriter, r *http.Request)
	Action(w http.ResponseWriter, r *http.Request)
	JobDescription(w http.ResponseWriter, r *http.Request)
}

type assistantHandlerImpl struct {
	chatService assistant.ChatService
	router      assistant.Router
}

func NewAssistantHandler(chatService assistant.ChatService, router assistant.Router) AssistantHandler {
	return &assistantHandlerImpl{chatService: chatService, router: router}
}

// Chat implements AssistantHandler. Every outcome, including failures of
// the underlying action, is a 200 carrying an ActionResult.
func (h *assistantHandlerImpl) Chat(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req assistant.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Chat decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, h.chatService.Chat(r.Context(), actor, req.Message))
}

// Action implements AssistantHandler.
func (h *assistantHandlerImpl) Action(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req assistant.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Action decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	action, ok := assistant.ParseAction(string(req.Action))
	if !ok {
		response.Success(w, assistant.Error(assistant.ErrorKindUnknownAction, "Unknown action: "+string(req.Action)))
		return
	}

	response.Success(w, h.router.Dispatch(r.Context(), actor, action, req.Args))
}

// JobDescription implements AssistantHandler.
func (h *assistantHandlerImpl) JobDescription(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req assistant.JobDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("JobDescription decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.chatService.DraftJobDescription(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
