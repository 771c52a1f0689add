package ports

import (
	"inventory/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// Session is a connected push-channel subscriber. Implementations wrap the
// concrete transport (e.g. a websocket connection) and must tolerate Send
// being called concurrently with the connection closing.
type Session interface {
	// ID identifies the session within the hub's registries.
	ID() uuid.UUID

	// Send delivers one event to the subscriber. Errors indicate a dead or
	// closing connection; publishers never see them.
	Send(event notification.Event) error
}

// NotificationPublisher is the write side of the hub, injected into the
// operations that apply state transitions. Publish is best-effort,
// at-most-once: with zero subscribers it is a silent no-op, and per-session
// delivery failures are logged, never surfaced to the publisher.
type NotificationPublisher interface {
	Publish(topic string, event notification.Event)
}

// NotificationHub is the full pub/sub contract, adding the subscription
// registry used by the push-channel transport adapter. Subscribe and
// Unsubscribe are idempotent; discarding an unknown pair is not an error.
type NotificationHub interface {
	NotificationPublisher

	Subscribe(topic string, session Session)
	Unsubscribe(topic string, session Session)
}
