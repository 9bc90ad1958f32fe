package notes

import (
	"context"
	"errors"
	"fmt"
	"net"
	"runtime"
	"strings"
	"testing"
	"time"

	"quirknotes/cmd/server/testutil"
	"quirknotes/internal/services/notes"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	gorillaws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const wsMaxIncomingBytes = 1 << 20

// startStreamServer serves WSNotesStream on a random local port and returns its ws:// URL
func startStreamServer(t *testing.T, hub Hub, maxSessionSec int) string {
	t.Helper()

	wsHandlers := NewWebSocketHandlers(hub, maxSessionSec)

	app := testutil.CreateTestApp(t)
	app.Get("/ws", wsHandlers.WSUpgrade, websocket.New(wsHandlers.WSNotesStream))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = app.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = app.Shutdown()
	})

	return fmt.Sprintf("ws://%s/ws", ln.Addr().String())
}

func dialStream(t *testing.T, url string) *gorillaws.Conn {
	t.Helper()

	var conn *gorillaws.Conn
	require.Eventually(t, func() bool {
		c, _, err := gorillaws.DefaultDialer.Dial(url, nil)
		if err != nil {
			return false
		}
		conn = c
		return true
	}, 2*time.Second, 20*time.Millisecond, "could not establish WebSocket connection")

	conn.SetReadLimit(wsMaxIncomingBytes)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestWSUpgrade(t *testing.T) {
	testCases := []struct {
		name           string
		upgrade        bool
		expectedStatus int
	}{
		{name: "WebSocketUpgrade", upgrade: true, expectedStatus: fiber.StatusOK},
		{name: "PlainRequest", upgrade: false, expectedStatus: fiber.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app, _, _ := SetupWebSocketHandlersApp(t, 900)

			req := testutil.CreateJSONRequest("GET", "/ws", nil)
			if tc.upgrade {
				req = testutil.CreateWebSocketRequest("/ws")
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			if tc.upgrade {
				body := testutil.DecodeJSON(t, resp)
				assert.Equal(t, true, body["parent_ctx"])
			}
		})
	}
}

func TestWSStreamDeliversHubEvents(t *testing.T) {
	hub := notes.NewHub(8)
	url := startStreamServer(t, hub, 900)
	conn := dialStream(t, url)

	require.Eventually(t, func() bool {
		return hub.GetSubscriberCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	id := bson.NewObjectID()
	hub.Broadcast(context.Background(), notes.NoteEvent{
		Type:   notes.EventPatched,
		ID:     id.Hex(),
		Fields: notes.Fields{notes.FieldTitle: "new title"},
	})
	hub.Broadcast(context.Background(), notes.NoteEvent{Type: notes.EventCleared, Deleted: 3})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var patched map[string]any
	require.NoError(t, conn.ReadJSON(&patched))
	assert.Equal(t, "patched", patched["type"])
	assert.Equal(t, map[string]any{"_id": id.Hex(), "title": "new title"}, patched["note"])

	var cleared map[string]any
	require.NoError(t, conn.ReadJSON(&cleared))
	assert.Equal(t, "cleared", cleared["type"])
	assert.InDelta(t, 3, cleared["deleted"], 0)
}

func TestWSStreamUnsubscribesOnClientClose(t *testing.T) {
	hub := notes.NewHub(8)
	url := startStreamServer(t, hub, 900)
	conn := dialStream(t, url)

	require.Eventually(t, func() bool {
		return hub.GetSubscriberCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(gorillaws.CloseMessage,
		gorillaws.FormatCloseMessage(gorillaws.CloseNormalClosure, "bye")))
	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return hub.GetSubscriberCount() == 0
	}, 2*time.Second, 10*time.Millisecond, "hub should drop the subscriber after the client leaves")
}

// keepAliveGoroutines counts live goroutines running the ping loop
func keepAliveGoroutines() int {
	buf := make([]byte, 1<<20)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) {
			buf = buf[:n]
			break
		}
		buf = make([]byte, 2*len(buf))
	}

	count := 0
	for _, g := range strings.Split(string(buf), "\n\n") {
		if strings.Contains(g, "startKeepAlive.func") {
			count++
		}
	}
	return count
}

func TestWSKeepAliveStopsAfterDisconnect(t *testing.T) {
	const clients = 10

	hub := notes.NewHub(8)
	url := startStreamServer(t, hub, 900)
	baseline := keepAliveGoroutines()

	conns := make([]*gorillaws.Conn, 0, clients)
	for range clients {
		conns = append(conns, dialStream(t, url))
	}

	require.Eventually(t, func() bool {
		return hub.GetSubscriberCount() == clients
	}, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return keepAliveGoroutines() >= clients
	}, 2*time.Second, 10*time.Millisecond, "every connection should run a ping loop")

	for _, conn := range conns {
		_ = conn.WriteMessage(gorillaws.CloseMessage,
			gorillaws.FormatCloseMessage(gorillaws.CloseNormalClosure, "bye"))
		require.NoError(t, conn.Close())
	}

	require.Eventually(t, func() bool {
		return hub.GetSubscriberCount() == 0
	}, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		return keepAliveGoroutines() <= baseline
	}, 2*time.Second, 10*time.Millisecond, "ping loops must exit once their connections are gone")
}

func TestWSSessionTimeout(t *testing.T) {
	hub := NewMockHub()
	maxSessionSec := 1
	url := startStreamServer(t, hub, maxSessionSec)
	conn := dialStream(t, url)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	start := time.Now()
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	elapsed := time.Since(start)

	var closeErr *gorillaws.CloseError
	if errors.As(err, &closeErr) {
		assert.Equal(t, WSClosePolicyViolation, closeErr.Code, "Expected policy violation close code")
	}
	assert.Less(t, elapsed, 4*time.Second, "Connection should have been closed promptly")
}

func TestWSConnectionCleanup(t *testing.T) {
	hub := NewMockHub()

	var sub *notes.Subscriber

	// runs after the cancel registered by WebSocketConnectionTest
	t.Cleanup(func() {
		assert.Equal(t, 0, hub.GetSubscriberCount())

		select {
		case <-sub.Done:
		case <-time.After(50 * time.Millisecond):
			t.Fatal("Done channel should be closed after cleanup")
		}

		_, ok := <-sub.Ch
		assert.False(t, ok, "event channel should be closed after cleanup")
	})

	sub = WebSocketConnectionTest(t, hub)
	require.Equal(t, 1, hub.GetSubscriberCount())
}

func TestBuildEventMessage(t *testing.T) {
	id := bson.NewObjectID()
	note := &notes.Note{ID: id, Title: "t", Content: "c"}

	tests := []struct {
		name  string
		event notes.NoteEvent
		want  map[string]any
	}{
		{
			name:  "created carries the full note",
			event: notes.NoteEvent{Type: notes.EventCreated, ID: id.Hex(), Note: note},
			want:  map[string]any{"type": "created", "note": note},
		},
		{
			name:  "recolored carries only the color",
			event: notes.NoteEvent{Type: notes.EventRecolored, ID: id.Hex(), Fields: notes.Fields{notes.FieldColor: "#FF0000"}},
			want:  map[string]any{"type": "recolored", "note": map[string]any{"_id": id.Hex(), "color": "#FF0000"}},
		},
		{
			name:  "deleted carries only the id",
			event: notes.NoteEvent{Type: notes.EventDeleted, ID: id.Hex()},
			want:  map[string]any{"type": "deleted", "note": map[string]any{"_id": id.Hex()}},
		},
		{
			name:  "cleared carries the count",
			event: notes.NoteEvent{Type: notes.EventCleared, Deleted: 2},
			want:  map[string]any{"type": "cleared", "deleted": int64(2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildEventMessage(tt.event))
		})
	}
}
