package commands

import (
	"context"

	"inventory/internal/core/domain/model/notification"
	"inventory/internal/core/ports"
)

// CancelOrderCommandHandler cancels a Pending or Processing order and notifies
// both audiences. An order the worker has already picked up and started
// holding is still cancellable on paper; whichever status write lands first
// wins the compare-and-set and the loser turns into a no-op.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// Returns an ObjectNotFoundError if the order does not exist and an
// InvalidStateError if it is already terminal.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := o.Status()
	if err = o.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, o.ID(), from, o.Status()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(notification.UserTopic(o.OwnerUsername()), notification.NewOrderStatusEvent(o))
	h.publisher.Publish(notification.TopicAdmin, notification.NewOrderUpdateEvent(o, notification.ActionCancelled))

	return nil
}
