package notes

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"quirknotes/cmd/server/handlers/httperr"
	"quirknotes/internal/logger"
	"quirknotes/internal/services/notes"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
)

const (
	// WSClosePolicyViolation represents WebSocket close code for policy violation
	WSClosePolicyViolation = 1008

	wsWriteTimeout     = 10 * time.Second
	wsPingInterval     = 25 * time.Second
	wsPingWriteTimeout = 5 * time.Second

	// parentCtxKey carries the request context from the upgrade into the stream handler.
	parentCtxKey = "parentCtx"

	msgFailedToCloseWebSocketConnection = "failed to close WebSocket connection"
)

var errNoParentCtx = errors.New(parentCtxKey + " not found")

// Hub is the subscription side of the event hub
type Hub interface {
	Subscribe(connULID ulid.ULID) (*notes.Subscriber, func())
	Unsubscribe(connULID ulid.ULID)
}

// WebSocketHandlers streams note change events to connected clients
type WebSocketHandlers struct {
	hub           Hub
	maxSessionSec int
}

// NewWebSocketHandlers creates new WebSocket handlers
func NewWebSocketHandlers(hub Hub, maxSessionSec int) *WebSocketHandlers {
	return &WebSocketHandlers{
		hub:           hub,
		maxSessionSec: maxSessionSec,
	}
}

// WSUpgrade rejects anything that is not a WebSocket upgrade
// @Summary Stream note change events
// @Description Upgrades to a WebSocket that receives created, patched, recolored, deleted and cleared events.
// @Tags notes
// @Success 101
// @Failure 400 {object} httperr.E
// @Router /ws/notes/stream [get]
func (h *WebSocketHandlers) WSUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals(parentCtxKey, c.UserContext())
		return c.Next()
	}

	logger.L().Warn("websocket upgrade required", "handler", "WSUpgrade", "path", c.Path())
	return httperr.Fail(httperr.E{
		Status:  fiber.StatusBadRequest,
		Message: "WebSocket upgrade required",
	})
}

// WSNotesStream pushes hub events to one client until it disconnects or its session expires
func (h *WebSocketHandlers) WSNotesStream(c *websocket.Conn) {
	parentCtx, ok := c.Locals(parentCtxKey).(context.Context)
	if !ok {
		logger.L().Error("failed to start note stream", "error", errNoParentCtx)
		h.closeConnection(c)
		return
	}

	connULID := ulid.MustNew(ulid.Timestamp(time.Now().UTC()), rand.Reader)
	conn := &wsConnection{connULID: connULID, connID: connULID.String()}

	ctx, cancelCtx := context.WithCancel(parentCtx)
	defer cancelCtx()

	subscriber, cancel := h.hub.Subscribe(conn.connULID)
	defer cancel()

	logger.L().Info("WebSocket connection established", "conn_id", conn.connID)

	sessionTimer := h.startSessionTimer(c, conn, cancelCtx)
	defer sessionTimer.Stop()

	h.startKeepAlive(ctx, c, conn)

	go h.handleOutgoingMessages(ctx, c, conn, subscriber)

	h.handleIncomingMessages(c, conn)

	logger.L().Info("WebSocket connection closed", "conn_id", conn.connID)
}

type wsConnection struct {
	connULID ulid.ULID
	connID   string
}

func (h *WebSocketHandlers) closeConnection(c *websocket.Conn) {
	if err := c.Close(); err != nil {
		logger.L().Error(msgFailedToCloseWebSocketConnection, "error", err)
	}
}

func (h *WebSocketHandlers) startSessionTimer(c *websocket.Conn, conn *wsConnection, cancelCtx context.CancelFunc) *time.Timer {
	return time.AfterFunc(time.Duration(h.maxSessionSec)*time.Second, func() {
		logger.L().Info("WebSocket session timeout", "conn_id", conn.connID)
		err := c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(WSClosePolicyViolation, "session timeout"))
		if err != nil {
			logger.L().Error("failed to send close message", "error", err, "conn_id", conn.connID)
		}
		h.closeConnection(c)
		cancelCtx()
	})
}

// startKeepAlive pings the client until ctx is done.
func (h *WebSocketHandlers) startKeepAlive(ctx context.Context, c *websocket.Conn, conn *wsConnection) {
	ping := time.NewTicker(wsPingInterval)
	go func() {
		defer ping.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ping.C:
				if err := c.SetWriteDeadline(time.Now().Add(wsPingWriteTimeout)); err != nil {
					return
				}
				if err := c.WriteMessage(websocket.PingMessage, nil); err != nil {
					logger.L().Warn("failed to write ping message", "error", err, "conn_id", conn.connID)
					return
				}
			}
		}
	}()
}

func (h *WebSocketHandlers) handleOutgoingMessages(ctx context.Context, c *websocket.Conn, conn *wsConnection, subscriber *notes.Subscriber) {
	defer func() {
		if r := recover(); r != nil {
			logger.L().Error("panic in WebSocket sender", "error", r, "conn_id", conn.connID)
		}
	}()

	for {
		select {
		case event, ok := <-subscriber.Ch:
			if !ok {
				return
			}
			if err := c.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
				return
			}
			if err := c.WriteJSON(buildEventMessage(event)); err != nil {
				logger.L().Error("failed to write WebSocket message", "error", err, "conn_id", conn.connID)
				return
			}
		case <-subscriber.Done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// buildEventMessage shapes an event for the wire. Field-level events carry
// the note id alongside only the fields that changed.
func buildEventMessage(event notes.NoteEvent) map[string]any {
	msg := map[string]any{"type": event.Type}

	switch event.Type {
	case notes.EventCreated:
		msg["note"] = event.Note
	case notes.EventCleared:
		msg["deleted"] = event.Deleted
	default:
		note := map[string]any{"_id": event.ID}
		for k, v := range event.Fields {
			note[k] = v
		}
		msg["note"] = note
	}

	return msg
}

func (h *WebSocketHandlers) handleIncomingMessages(c *websocket.Conn, conn *wsConnection) {
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.L().Error("WebSocket error", "error", err, "conn_id", conn.connID)
			}
			return
		}
	}
}

// LogWSConnections logs every WebSocket upgrade attempt
func LogWSConnections() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			logger.L().Info("WebSocket upgrade attempt", "ip", c.IP(), "path", c.Path())
		}
		return c.Next()
	}
}
