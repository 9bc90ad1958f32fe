package notes

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"quirknotes/internal/logger"

	"github.com/oklog/ulid/v2"
)

// Subscriber represents a connection that can receive note events
type Subscriber struct {
	Ch   chan NoteEvent
	Done chan struct{}
}

// ConnInfo holds connection metadata
type ConnInfo struct {
	ID          ulid.ULID
	ConnectedAt time.Time
	Subscriber  *Subscriber
}

// Hub fans note events out to every stream subscriber
type Hub struct {
	mu          sync.RWMutex
	subscribers map[ulid.ULID]ConnInfo
	bufferSize  int
	dropped     uint64
}

// NewHub creates a new event hub with configurable buffer size
func NewHub(bufferSize int) *Hub {
	return &Hub{
		subscribers: make(map[ulid.ULID]ConnInfo),
		bufferSize:  bufferSize,
	}
}

// Subscribe adds a new subscriber to the hub
func (h *Hub) Subscribe(connULID ulid.ULID) (*Subscriber, func()) {
	log := logger.L()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("subscribing connection", "conn_id", connULID.String())
	}

	sub := &Subscriber{
		Ch:   make(chan NoteEvent, h.bufferSize),
		Done: make(chan struct{}),
	}

	h.mu.Lock()
	h.subscribers[connULID] = ConnInfo{
		ID:          connULID,
		ConnectedAt: time.Now(),
		Subscriber:  sub,
	}
	h.mu.Unlock()

	cancel := func() {
		h.Unsubscribe(connULID)
	}
	return sub, cancel
}

// Unsubscribe removes a subscriber from the hub. Safe to call more than once.
func (h *Hub) Unsubscribe(connULID ulid.ULID) {
	log := logger.L()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("unsubscribing connection", "conn_id", connULID.String())
	}

	h.mu.Lock()
	connInfo, exists := h.subscribers[connULID]
	if exists {
		delete(h.subscribers, connULID)
		close(connInfo.Subscriber.Ch)
		close(connInfo.Subscriber.Done)
	}
	h.mu.Unlock()
}

// Broadcast delivers ev to every subscriber without blocking
func (h *Hub) Broadcast(_ context.Context, ev NoteEvent) {
	log := logger.L()
	if log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("broadcasting event", "event_type", ev.Type, "note_id", ev.ID)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, connInfo := range h.subscribers {
		sendOrDrop(connInfo.Subscriber.Ch, ev, func() {
			atomic.AddUint64(&h.dropped, 1)
			log.Warn("outbox full, dropping event", "conn_id", connInfo.ID.String(), "event_type", ev.Type)
		})
	}
}

// GetSubscriberCount returns the current number of subscribers
func (h *Hub) GetSubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// sendOrDrop is the only place that can decide to drop an event.
func sendOrDrop(ch chan NoteEvent, ev NoteEvent, onDrop func()) {
	select {
	case ch <- ev:
	default:
		onDrop()
	}
}

// Stats returns current counters for observability / tests.
func (h *Hub) Stats() (subscribers int, dropped uint64) {
	return h.GetSubscriberCount(), atomic.LoadUint64(&h.dropped)
}
