package commands

import (
	"context"

	"inventory/internal/core/domain/model/notification"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates new orders in Pending status and announces each one on the admin
// topic. The owning user is deliberately not notified on creation; the first
// event they see is the acceptance.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a publisher
// for admin notifications.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order creation command. All orders in the command are
// persisted in one transaction; notifications go out only after a successful
// commit. Returns the store-assigned ids of the created orders.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) ([]int64, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders := make([]*order.Order, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		o, err := order.NewOrder(cmd.OwnerID(), cmd.OwnerUsername(), line.ItemID, line.ItemName, line.Quantity)
		if err != nil {
			return nil, err
		}

		if err = orderRepo.Add(ctx, o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		h.publisher.Publish(notification.TopicAdmin, notification.NewOrderUpdateEvent(o, notification.ActionNewOrder))
		ids = append(ids, o.ID())
	}

	return ids, nil
}
