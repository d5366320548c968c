// Package client implements the player side of a session: one TCP
// connection, frame decoding, and in-order delivery to a registered
// handler. It holds no game state itself; the presentation layer owns
// that.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"time"

	"geoquiz/internal/protocol"
)

const (
	// Time allowed to write a frame to the host
	writeWait = 10 * time.Second

	// Size of the inbound read buffer
	readBufferSize = 4096
)

// Handler receives every decoded inbound message, in arrival order.
type Handler func(protocol.Message)

// DisconnectHandler is called once when the transport fails underneath
// an established connection. It is not called after a deliberate
// Disconnect.
type DisconnectHandler func(error)

// Connection is one player's link to a host session.
type Connection struct {
	onMessage    Handler
	onDisconnect DisconnectHandler
	logger       *slog.Logger

	mu     sync.Mutex
	conn   net.Conn
	dec    *protocol.Decoder
	closed bool
}

// New creates an unconnected client. onDisconnect may be nil.
func New(onMessage Handler, onDisconnect DisconnectHandler, logger *slog.Logger) *Connection {
	return &Connection{
		onMessage:    onMessage,
		onDisconnect: onDisconnect,
		logger:       logger,
	}
}

// Connect dials the host and, on success, immediately sends the join
// message and starts delivering inbound messages to the handler.
// Dial failure is returned to the caller.
func (c *Connection) Connect(ctx context.Context, address string, port int, playerID, playerName string) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(address, strconv.Itoa(port)))
	if err != nil {
		return fmt.Errorf("connect to host: %w", err)
	}

	c.mu.Lock()
	c.conn = conn
	c.dec = protocol.NewDecoder(c.logger)
	c.closed = false
	c.mu.Unlock()

	c.logger.Info("connected to host", "addr", conn.RemoteAddr().String())

	c.Send(protocol.JoinGame{PlayerID: playerID, PlayerName: playerName})

	go c.readLoop(conn)

	return nil
}

// Send writes one encoded frame. It is a no-op when not connected and
// never panics past this boundary.
func (c *Connection) Send(msg protocol.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.closed {
		return
	}

	frame, err := protocol.Encode(msg)
	if err != nil {
		c.logger.Warn("encode outbound message", "type", msg.Type(), "error", err)
		return
	}

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if _, err := c.conn.Write(frame); err != nil {
		c.logger.Debug("write failed", "type", msg.Type(), "error", err)
	}
}

// Disconnect tears down the transport and discards any buffered
// partial frame. Safe to call when not connected.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil || c.closed {
		return
	}

	c.closed = true
	c.conn.Close()
	c.dec.Reset()

	c.logger.Info("disconnected from host")
}

// readLoop pumps inbound bytes through the decoder and hands each
// message to the handler. A transport error surfaces through the
// disconnect handler; a deliberate Disconnect does not.
func (c *Connection) readLoop(conn net.Conn) {
	buf := make([]byte, readBufferSize)

	for {
		n, err := conn.Read(buf)
		if n > 0 {
			c.mu.Lock()
			msgs := c.dec.Push(buf[:n])
			c.mu.Unlock()

			for _, msg := range msgs {
				c.onMessage(msg)
			}
		}
		if err != nil {
			c.mu.Lock()
			deliberate := c.closed
			c.closed = true
			c.conn.Close()
			c.mu.Unlock()

			if !deliberate {
				c.logger.Debug("connection lost", "error", err)
				if c.onDisconnect != nil {
					c.onDisconnect(err)
				}
			}
			return
		}
	}
}
