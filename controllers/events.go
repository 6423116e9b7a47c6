package controllers

import (
	"fmt"
	"net/http"
	"sync"
)

// EventHub fans register events out to connected UIs over SSE: audio
// cues, scan results and scanner connectivity. Slow clients get
// dropped rather than blocking the register.
type EventHub struct {
	mu      sync.Mutex
	clients map[chan sseMessage]struct{}
}

type sseMessage struct {
	event string
	data  string
}

// NewEventHub creates an empty hub.
func NewEventHub() *EventHub {
	return &EventHub{clients: make(map[chan sseMessage]struct{})}
}

// Broadcast sends an event to every connected client.
func (h *EventHub) Broadcast(event, data string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- sseMessage{event: event, data: data}:
		default:
			delete(h.clients, ch)
			close(ch)
		}
	}
}

// Stream is the GET /events handler.
func (h *EventHub) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan sseMessage, 64)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		if _, still := h.clients[ch]; still {
			delete(h.clients, ch)
			close(ch)
		}
		h.mu.Unlock()
	}()

	fmt.Fprint(w, "event: hello\ndata: ready\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, open := <-ch:
			if !open {
				return
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.event, msg.data)
			flusher.Flush()
		}
	}
}

// HubSounder turns the register's audio cues into hub events the UI
// plays back, honoring the sound setting at emit time.
type HubSounder struct {
	Hub     *EventHub
	Enabled func() bool
}

func (s *HubSounder) emit(cue string) {
	if s.Enabled != nil && !s.Enabled() {
		return
	}
	s.Hub.Broadcast("sound", cue)
}

func (s *HubSounder) ScanOK()  { s.emit("scan-ok") }
func (s *HubSounder) Error()   { s.emit("error") }
func (s *HubSounder) PrintOK() { s.emit("print-ok") }
