package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/grx10/hris-backend-go/internal/domain/regularization"
	"github.com/grx10/hris-backend-go/internal/handler/http/middleware"
	"github.com/grx10/hris-backend-go/internal/handler/http/response"
	"github.com/grx10/hris-backend-go/internal/pkg/sse"
)

const (
	EventRegularizationDecided = "regularization.decided"

	keepaliveInterval = 30 * time.Second
)

// DecisionPublisher forwards completed decisions to the submitter's streams.
type DecisionPublisher struct {
	hub *sse.Hub
}

func NewDecisionPublisher(hub *sse.Hub) *DecisionPublisher {
	return &DecisionPublisher{hub: hub}
}

// RequestDecided implements regularization.DecisionNotifier.
func (p *DecisionPublisher) RequestDecided(_ context.Context, req regularization.Request) {
	p.hub.Publish(req.EmployeeID, sse.Event{
		Name: EventRegularizationDecided,
		Data: regularization.NewRequestResponse(req),
	})
}

type EventsHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventsHandlerImpl struct {
	hub *sse.Hub
}

func NewEventsHandler(hub *sse.Hub) EventsHandler {
	return &eventsHandlerImpl{hub: hub}
}

// Stream keeps a text/event-stream open for the actor until the client leaves.
func (h *eventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.hub.Subscribe(actor.ID)
	defer cleanup()

	if _, err := (sse.Event{Name: "connected", Data: map[string]string{"employee_id": actor.ID}}).WriteTo(w); err != nil {
		return
	}
	flusher.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if _, err := event.WriteTo(w); err != nil {
				slog.Warn("dropping event stream", "employee_id", actor.ID, "error", err)
				return
			}
			flusher.Flush()

		case <-keepalive.C:
			if _, err := (sse.Event{Name: "ping", Data: map[string]int64{"timestamp": time.Now().Unix()}}).WriteTo(w); err != nil {
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
