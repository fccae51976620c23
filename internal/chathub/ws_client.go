package chathub

import (
	"log"
	"sync"
	"time"

	"pingo/backend/internal/models"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 64
)

// WebSocketClient implements Client over a gorilla websocket connection.
type WebSocketClient struct {
	connID string
	userID uint
	conn   *websocket.Conn
	hub    *Hub

	mu     sync.Mutex
	closed bool
	send   chan models.Event

	closeOnce sync.Once
}

func NewWebSocketClient(hub *Hub, userID uint, conn *websocket.Conn) *WebSocketClient {
	return &WebSocketClient{
		connID: uuid.NewString(),
		userID: userID,
		conn:   conn,
		hub:    hub,
		send:   make(chan models.Event, sendBufferSize),
	}
}

func (c *WebSocketClient) GetUserID() uint   { return c.userID }
func (c *WebSocketClient) GetConnID() string { return c.connID }

// Enqueue buffers an event for the write pump. It never blocks: a closed
// connection or a full buffer drops the event.
func (c *WebSocketClient) Enqueue(event models.Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.send <- event:
		return true
	default:
		return false
	}
}

// Run starts the pumps.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close stops the write pump and tears down the underlying connection, which
// in turn unblocks the read pump.
func (c *WebSocketClient) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.send)
		c.mu.Unlock()
		c.conn.Close()
	})
}

// readPump drains the connection to service pong frames and detect
// disconnects. The protocol is server-push only; inbound payloads are
// ignored.
func (c *WebSocketClient) readPump() {
	defer func() {
		c.hub.Unregister(c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Printf("Unexpected close on connection %s (user %d): %v", c.connID, c.userID, err)
			}
			return
		}
	}
}

// writePump serializes buffered events onto the wire and keeps the
// connection alive with pings.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed this connection.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(event); err != nil {
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
