// Package notify provides the in-process pub/sub hub that fans order events
// out to connected push-channel sessions. Topics are plain strings: one per
// user plus a shared admin topic, named by the notification package.
package notify

import (
	"log/slog"
	"sync"

	"inventory/internal/core/domain/model/notification"
	"inventory/internal/core/ports"

	"github.com/google/uuid"
)

// Hub is a topic-keyed registry of live sessions. Publishing to a topic with
// no subscribers is a silent no-op; a session whose Send fails is logged and
// skipped, never unsubscribed by the hub itself. The owning transport
// adapter unsubscribes when its connection dies.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[uuid.UUID]ports.Session
	logger *slog.Logger
}

var _ ports.NotificationHub = (*Hub)(nil)

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		topics: make(map[string]map[uuid.UUID]ports.Session),
		logger: logger.With("component", "NotificationHub"),
	}
}

// Subscribe registers a session on a topic. Re-subscribing the same session
// is idempotent.
func (h *Hub) Subscribe(topic string, session ports.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessions, ok := h.topics[topic]
	if !ok {
		sessions = make(map[uuid.UUID]ports.Session)
		h.topics[topic] = sessions
	}

	sessions[session.ID()] = session
}

// Unsubscribe removes a session from a topic. Unknown topic or session pairs
// are ignored.
func (h *Hub) Unsubscribe(topic string, session ports.Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sessions, ok := h.topics[topic]
	if !ok {
		return
	}

	delete(sessions, session.ID())
	if len(sessions) == 0 {
		delete(h.topics, topic)
	}
}

// Publish delivers an event to every session subscribed to the topic.
// Delivery is best-effort and at-most-once: send failures are logged and do
// not affect the other subscribers or the publisher.
func (h *Hub) Publish(topic string, event notification.Event) {
	h.mu.RLock()
	sessions := make([]ports.Session, 0, len(h.topics[topic]))
	for _, s := range h.topics[topic] {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()

	for _, s := range sessions {
		if err := s.Send(event); err != nil {
			h.logger.Warn("dropping event for session",
				"topic", topic,
				"sessionID", s.ID(),
				"error", err,
			)
		}
	}
}

// SubscriberCount reports how many sessions are subscribed to a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}
