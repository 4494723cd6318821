package notification

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"gymhub/internal/logging"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

const (
	EventSubscriptionExpired = "subscription_expired"
	EventQuotaDenied         = "quota_denied"
)

// Event is a real-time message pushed to a connected owner.
type Event struct {
	Type           string `json:"type"`
	SubscriptionID string `json:"subscription_id,omitempty"`
	Resource       string `json:"resource,omitempty"`
	Current        int64  `json:"current,omitempty"`
	Max            int64  `json:"max,omitempty"`
	OccurredAt     string `json:"occurred_at"`
}

// connection is a single WebSocket client. The send channel is buffered
// so slow readers never block the hub.
type connection struct {
	userID int64
	conn   *websocket.Conn
	send   chan []byte
}

// Hub tracks active WebSocket connections keyed by user ID. The feed is
// push-only; inbound frames are read solely to keep the connection
// alive and detect disconnects.
type Hub struct {
	mu          sync.RWMutex
	connections map[int64]*connection
}

func NewHub() *Hub {
	return &Hub{connections: make(map[int64]*connection)}
}

// SubscriptionExpired satisfies the expiry notifier used by the sweeper.
func (h *Hub) SubscriptionExpired(ownerID int64, subscriptionID string) {
	h.SendToUser(ownerID, &Event{
		Type:           EventSubscriptionExpired,
		SubscriptionID: subscriptionID,
		OccurredAt:     time.Now().UTC().Format(time.RFC3339),
	})
}

// QuotaDenied satisfies the limit enforcer's rejection feed.
func (h *Hub) QuotaDenied(ownerID int64, resource string, current, max int64) {
	h.SendToUser(ownerID, &Event{
		Type:       EventQuotaDenied,
		Resource:   resource,
		Current:    current,
		Max:        max,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// SendToUser delivers an event to the user's connection if present.
// Returns false when the user is offline or the buffer is full.
func (h *Hub) SendToUser(userID int64, event *Event) bool {
	data, err := json.Marshal(event)
	if err != nil {
		return false
	}

	h.mu.RLock()
	c, ok := h.connections[userID]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	// A newer connection for the same user replaces the old one.
	if existing, ok := h.connections[c.userID]; ok {
		close(existing.send)
	}
	h.connections[c.userID] = c
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.connections[c.userID]; ok && existing == c {
		delete(h.connections, c.userID)
		close(c.send)
	}
}

// ServeWS registers the connection and runs its pumps; blocks until the
// client disconnects.
func (h *Hub) ServeWS(conn *websocket.Conn, userID int64) {
	c := &connection{
		userID: userID,
		conn:   conn,
		send:   make(chan []byte, 64),
	}
	h.register(c)

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				logging.Module("notification").
					WithField("user_id", c.userID).
					WithError(err).Debug("websocket closed")
			}
			return
		}
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
