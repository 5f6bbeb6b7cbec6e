package realtime

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// writeWait is how long one frame write may take
	writeWait = 10 * time.Second

	// pongWait is how long the peer may stay silent
	pongWait = 60 * time.Second

	// pingPeriod must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 64 * 1024

	sendBufferSize = 256
)

var (
	ErrConnectionClosed = errors.New("connection closed")
	ErrSendBufferFull   = errors.New("send buffer full")
)

// client is one websocket. It satisfies hub.Connection.
type client struct {
	id     string
	userID string
	conn   *websocket.Conn

	mu     sync.Mutex
	send   chan []byte
	closed bool

	// sessions holds the rooms this socket joined, touched only by readPump
	sessions map[string]struct{}
}

func newClient(id, userID string, conn *websocket.Conn) *client {
	return &client{
		id:       id,
		userID:   userID,
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
		sessions: make(map[string]struct{}),
	}
}

func (c *client) ID() string {
	return c.id
}

func (c *client) UserID() string {
	return c.userID
}

// Send queues message for the writer. A slow client gets ErrSendBufferFull, never a blocked hub.
func (c *client) Send(message []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrConnectionClosed
	}
	select {
	case c.send <- message:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// close stops the writer. Safe to call more than once.
func (c *client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// writePump is the only goroutine that writes to conn
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("Failed to write to connection %s (user %s): %v", c.id, c.userID, err)
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
