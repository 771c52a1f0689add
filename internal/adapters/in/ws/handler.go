package ws

import (
	"log/slog"
	"net/http"

	httpadapter "inventory/internal/adapters/in/http"
	"inventory/internal/core/domain/model/notification"
	"inventory/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// Handler upgrades authenticated requests to websocket sessions and keeps
// each session subscribed to its topic for the lifetime of the connection.
type Handler struct {
	hub      ports.NotificationHub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler creates the websocket handler over the given hub.
func NewHandler(hub ports.NotificationHub, logger *slog.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.With("component", "ws_handler"),
	}
}

// UserOrders handles GET /ws/orders - subscribes the caller to their own
// order events.
func (h *Handler) UserOrders(c echo.Context) error {
	ident, err := httpadapter.IdentityFromContext(c)
	if err != nil {
		return c.NoContent(http.StatusUnauthorized)
	}

	return h.serve(c, notification.UserTopic(ident.Username()))
}

// AdminOrders handles GET /ws/admin/orders - subscribes an operator to the
// admin topic. Admin only.
func (h *Handler) AdminOrders(c echo.Context) error {
	ident, err := httpadapter.IdentityFromContext(c)
	if err != nil {
		return c.NoContent(http.StatusUnauthorized)
	}
	if !ident.IsAdmin() {
		return c.NoContent(http.StatusForbidden)
	}

	return h.serve(c, notification.TopicAdmin)
}

// serve upgrades the connection, runs the session pumps, and keeps the hub
// registration alive until the connection dies.
func (h *Handler) serve(c echo.Context, topic string) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return nil
	}

	session := NewSession(conn)
	h.hub.Subscribe(topic, session)
	h.logger.Info("session subscribed", "topic", topic, "sessionID", session.ID())

	go session.WritePump()
	session.ReadPump()

	h.hub.Unsubscribe(topic, session)
	h.logger.Info("session closed", "topic", topic, "sessionID", session.ID())
	return nil
}
