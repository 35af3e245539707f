package server

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/bonaken-game/bonaken/internal/protocol"
)

const (
	writeWait = 10 * time.Second

	// Pong wait; pings must come more often than this.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 4096
)

// Client is one WebSocket connection. It carries no game state beyond
// its id; the registry maps it to a seat.
type Client struct {
	ID string
	IP string

	server *Server
	conn   *websocket.Conn
	send   chan []byte

	mu     sync.Mutex
	closed bool
}

func newClient(s *Server, conn *websocket.Conn, ip string) *Client {
	return &Client{
		ID:     uuid.NewString(),
		IP:     ip,
		server: s,
		conn:   conn,
		send:   make(chan []byte, 256),
	}
}

// readPump reads messages until the connection drops.
func (c *Client) readPump() {
	defer func() {
		c.server.handleDisconnect(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("read error from %s: %v", c.ID, err)
			}
			break
		}

		msg, err := protocol.Decode(data)
		if err != nil {
			c.SendMessage(protocol.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			continue
		}
		c.server.handler.Handle(c, msg)
	}
}

// writePump serializes all writes to the connection and keeps it alive
// with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
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

// SendMessage queues a message for the client. A full send buffer drops
// the connection rather than blocking the caller.
func (c *Client) SendMessage(msg *protocol.Message) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	data, err := msg.Encode()
	if err != nil {
		log.Printf("encode error: %v", err)
		return
	}

	select {
	case c.send <- data:
	default:
		log.Printf("⚠️ Client %s send buffer full, closing", c.ID)
		c.Close()
	}
}

// Close shuts the client's send channel once.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}
