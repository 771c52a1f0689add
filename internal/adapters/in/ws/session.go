// Package ws provides the push-channel transport: websocket sessions that
// subscribe to the notification hub and forward its events to connected
// clients. The hub stays transport-agnostic; everything websocket-specific
// lives here.
package ws

import (
	"errors"
	"sync"
	"time"

	"inventory/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ErrSessionClosed is returned by Send once the session's connection is gone.
var ErrSessionClosed = errors.New("session is closed")

const (
	writeWait = 10 * time.Second

	// sendBuffer absorbs bursts between publish and the write pump. A client
	// that cannot drain this many events is treated as dead.
	sendBuffer = 16
)

// Session adapts one websocket connection to the hub's Session contract.
// Send never blocks the publisher: events go through a buffered channel
// drained by a single write pump goroutine, keeping connection writes
// serialized.
type Session struct {
	id   uuid.UUID
	conn *websocket.Conn

	send chan notification.Event

	closeOnce sync.Once
	closed    chan struct{}
}

// NewSession wraps an upgraded websocket connection.
func NewSession(conn *websocket.Conn) *Session {
	return &Session{
		id:     uuid.New(),
		conn:   conn,
		send:   make(chan notification.Event, sendBuffer),
		closed: make(chan struct{}),
	}
}

// ID identifies the session within the hub's registries.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Send queues one event for delivery. Returns ErrSessionClosed when the
// connection is gone and ErrSessionClosed also when the client has fallen
// so far behind that its buffer is full.
func (s *Session) Send(event notification.Event) error {
	select {
	case <-s.closed:
		return ErrSessionClosed
	default:
	}

	select {
	case s.send <- event:
		return nil
	case <-s.closed:
		return ErrSessionClosed
	default:
		return ErrSessionClosed
	}
}

// Close releases the connection. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
		_ = s.conn.Close()
	})
}

// Closed is closed once the session is gone, whichever side ended it.
func (s *Session) Closed() <-chan struct{} {
	return s.closed
}

// WritePump serializes queued events onto the connection. Runs until the
// session closes or a write fails. Must be started exactly once.
func (s *Session) WritePump() {
	defer s.Close()

	for {
		select {
		case event := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(event); err != nil {
				return
			}
		case <-s.closed:
			return
		}
	}
}

// ReadPump discards inbound frames and unblocks on disconnect. The protocol
// is push-only; reading is still required to process client close frames.
// Must be started exactly once.
func (s *Session) ReadPump() {
	defer s.Close()

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}
