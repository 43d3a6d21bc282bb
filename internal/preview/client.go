package preview

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/logging"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192

	// Frames buffered per client before it is dropped
	sendBuffer = 16
)

// client is one WebSocket connection.
type client struct {
	server     *Server
	conn       *websocket.Conn
	remoteAddr string
	send       chan []byte
	// replies carries messages for this client only; never closed
	replies    chan []byte
}

func newClient(s *Server, conn *websocket.Conn, remoteAddr string) *client {
	return &client{
		server:     s,
		conn:       conn,
		remoteAddr: remoteAddr,
		send:       make(chan []byte, sendBuffer),
		replies:    make(chan []byte, 1),
	}
}

// readPump decodes event messages and queues them for the loop.
func (c *client) readPump() {
	defer func() {
		select {
		case c.server.unregister <- c:
		case <-c.server.done:
		}
		_ = c.conn.Close()
		logging.LogPreviewClient(c.remoteAddr, "closed")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Info("Preview connection closed unexpectedly",
					zap.String("remote_addr", c.remoteAddr),
					zap.Error(err),
				)
			}
			return
		}
		logging.LogPreviewMessage(c.remoteAddr, "received", msgType, data)

		if err := c.handle(data); err != nil {
			c.reply(Message{Type: TypeError, Error: err.Error()})
		}
	}
}

func (c *client) handle(data []byte) error {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return err
	}
	if msg.Type != TypeEvent {
		return &unknownTypeError{msg.Type}
	}
	ev, err := event.Parse(msg.Event)
	if err != nil {
		return err
	}
	return c.server.Enqueue(ev)
}

type unknownTypeError struct{ typ string }

func (e *unknownTypeError) Error() string {
	return "unknown message type " + e.typ
}

// reply queues msg for this client only. It is dropped when the buffer is full.
func (c *client) reply(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.replies <- data:
	default:
	}
}

// writePump writes queued messages and keeps the connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logging.Debug("Preview write failed",
					zap.String("remote_addr", c.remoteAddr),
					zap.Error(err),
				)
				return
			}

		case data := <-c.replies:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
