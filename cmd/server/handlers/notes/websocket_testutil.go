package notes

import (
	"crypto/rand"
	"sync"
	"testing"
	"time"

	"quirknotes/cmd/server/testutil"
	"quirknotes/internal/services/notes"

	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
)

// MockHub implements the Hub interface for testing
type MockHub struct {
	mu             sync.Mutex
	subscribers    map[ulid.ULID]*notes.Subscriber
	subscribeCount int
}

func NewMockHub() *MockHub {
	return &MockHub{
		subscribers: make(map[ulid.ULID]*notes.Subscriber),
	}
}

func (m *MockHub) Subscribe(connULID ulid.ULID) (*notes.Subscriber, func()) {
	sub := &notes.Subscriber{
		Ch:   make(chan notes.NoteEvent, 10),
		Done: make(chan struct{}),
	}

	m.mu.Lock()
	m.subscribers[connULID] = sub
	m.subscribeCount++
	m.mu.Unlock()

	return sub, func() { m.Unsubscribe(connULID) }
}

func (m *MockHub) Unsubscribe(connULID ulid.ULID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sub, exists := m.subscribers[connULID]; exists {
		close(sub.Ch)
		close(sub.Done)
		delete(m.subscribers, connULID)
	}
}

func (m *MockHub) GetSubscriberCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subscribers)
}

// SetupWebSocketHandlersApp creates a test app whose /ws route answers 200 once the upgrade check passes
func SetupWebSocketHandlersApp(t *testing.T, maxSessionSec int) (*fiber.App, *MockHub, *WebSocketHandlers) {
	t.Helper()

	app := testutil.CreateTestApp(t)
	hub := NewMockHub()
	wsHandlers := NewWebSocketHandlers(hub, maxSessionSec)

	app.Get("/ws", wsHandlers.WSUpgrade, func(c *fiber.Ctx) error {
		_, hasParent := c.Locals(parentCtxKey).(interface{ Done() <-chan struct{} })
		return c.JSON(fiber.Map{"parent_ctx": hasParent})
	})

	return app, hub, wsHandlers
}

// WebSocketConnectionTest subscribes to hub and unsubscribes on test cleanup
func WebSocketConnectionTest(t *testing.T, hub *MockHub) *notes.Subscriber {
	t.Helper()

	connULID := ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader)
	sub, cancel := hub.Subscribe(connULID)
	t.Cleanup(cancel)

	return sub
}
