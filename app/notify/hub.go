package notify

import (
	"sync"

	"github.com/recargaexpress/ms-go-recharges/app/factory"
	"github.com/sirupsen/logrus"
)

type EventType string

const (
	EventTypeConnected      EventType = "connected"
	EventTypeNewTransaction EventType = "NEW_TRANSACTION"
	EventTypeProofSubmitted EventType = "PROOF_SUBMITTED"
)

// Event is the tagged variant pushed to admin sessions. Payload is the full
// updated record for ledger events, or a plain message for the connect ack.
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Hub tracks the live admin sessions and fans ledger events out to them.
// Delivery is fire-and-forget: a session whose buffer is full has the event
// dropped, and a disconnected session is removed without replay.
type Hub struct {
	mu      sync.Mutex
	nextID  uint64
	buffer  int
	streams map[uint64]chan Event
	logger  logrus.FieldLogger
}

func NewHub(sessionBuffer int) *Hub {
	if sessionBuffer <= 0 {
		sessionBuffer = 16
	}
	return &Hub{
		buffer:  sessionBuffer,
		streams: make(map[uint64]chan Event),
		logger:  factory.NewModuleLogger("notify-hub"),
	}
}

// Subscribe registers a new session and returns its id and event channel.
// The channel is closed by Unsubscribe.
func (h *Hub) Subscribe() (uint64, <-chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan Event, h.buffer)
	h.streams[id] = ch

	h.logger.WithField("session_id", id).Info("Admin session connected")
	return id, ch
}

func (h *Hub) Unsubscribe(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch, ok := h.streams[id]
	if !ok {
		return
	}
	delete(h.streams, id)
	close(ch)

	h.logger.WithField("session_id", id).Info("Admin session disconnected")
}

// Publish delivers the event to every live session without blocking. It never
// returns an error so the write path cannot be failed or delayed by a slow or
// gone session.
func (h *Hub) Publish(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.streams {
		select {
		case ch <- event:
		default:
			h.logger.WithFields(logrus.Fields{
				"session_id": id,
				"event_type": event.Type,
			}).Warn("Session buffer full, event dropped")
		}
	}
}

func (h *Hub) SessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.streams)
}
