// Package notification defines the events pushed to connected clients when an
// order changes state, and the topics they are addressed to.
//
// Two event shapes exist, matching the wire contract consumed by the
// frontend portals:
//
//	{"type": "order_status", "data": {"order_id": 1, "status": "Processing", "item_name": "apple"}}
//	{"type": "order_update", "data": {"order_id": 1, "action": "accepted", "status": "Processing"}}
//
// order_status events target the owning user's topic; order_update events
// target the shared admin topic. Events are ephemeral: they exist only in
// transit from the hub to its subscribers and are never persisted.
package notification

import (
	"inventory/internal/core/domain/model/order"
)

// Event types.
const (
	TypeOrderStatus = "order_status"
	TypeOrderUpdate = "order_update"
)

// Actions carried by order_update events.
const (
	ActionNewOrder  = "new_order"
	ActionAccepted  = "accepted"
	ActionCompleted = "completed"
	ActionCancelled = "cancelled"
)

// TopicAdmin is the shared topic subscribed by every connected operator session.
const TopicAdmin = "admin"

// UserTopic returns the topic subscribed by the given user's sessions.
func UserTopic(username string) string {
	return "user:" + username
}

// Event is a tagged union of the two event shapes. Data holds either an
// OrderStatusData or an OrderUpdateData; the Type field tells them apart.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// OrderStatusData is the payload of events addressed to the owning user.
type OrderStatusData struct {
	OrderID  int64  `json:"order_id"`
	Status   string `json:"status"`
	ItemName string `json:"item_name"`
}

// OrderUpdateData is the payload of events addressed to the admin topic.
type OrderUpdateData struct {
	OrderID int64  `json:"order_id"`
	Action  string `json:"action"`
	Status  string `json:"status"`
}

// NewOrderStatusEvent builds the user-facing event for an order's current state.
func NewOrderStatusEvent(o *order.Order) Event {
	return Event{
		Type: TypeOrderStatus,
		Data: OrderStatusData{
			OrderID:  o.ID(),
			Status:   o.Status().String(),
			ItemName: o.ItemName(),
		},
	}
}

// NewOrderUpdateEvent builds the admin-facing event for an order's current
// state, labeled with the action that caused the change.
func NewOrderUpdateEvent(o *order.Order, action string) Event {
	return Event{
		Type: TypeOrderUpdate,
		Data: OrderUpdateData{
			OrderID: o.ID(),
			Action:  action,
			Status:  o.Status().String(),
		},
	}
}
