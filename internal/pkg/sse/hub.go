package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Event is one server-sent event addressed to an employee.
type Event struct {
	Name string
	Data interface{}
}

// WriteTo encodes the event in text/event-stream framing.
func (e Event) WriteTo(w io.Writer) (int64, error) {
	payload, err := json.Marshal(e.Data)
	if err != nil {
		return 0, fmt.Errorf("failed to encode event %s: %w", e.Name, err)
	}
	n, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Name, payload)
	return int64(n), err
}

// Hub fans events out to the open streams of each employee.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
	bufferSize  int
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
		bufferSize:  10,
	}
}

// Subscribe registers a stream for employeeID. The returned cleanup closes
// the channel unless Close already did.
func (h *Hub) Subscribe(employeeID string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.bufferSize)

	if h.subscribers[employeeID] == nil {
		h.subscribers[employeeID] = make(map[chan Event]struct{})
	}
	h.subscribers[employeeID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subscribers[employeeID][ch]; !ok {
			return
		}
		delete(h.subscribers[employeeID], ch)
		close(ch)
		if len(h.subscribers[employeeID]) == 0 {
			delete(h.subscribers, employeeID)
		}
	}

	return ch, cleanup
}

// Publish delivers event to every open stream of employeeID. Slow streams
// whose buffer is full miss the event rather than block the publisher.
func (h *Hub) Publish(employeeID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers[employeeID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of open streams for employeeID.
func (h *Hub) SubscriberCount(employeeID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[employeeID])
}

// Close ends every open stream.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for employeeID, subs := range h.subscribers {
		for ch := range subs {
			close(ch)
		}
		delete(h.subscribers, employeeID)
	}
}
