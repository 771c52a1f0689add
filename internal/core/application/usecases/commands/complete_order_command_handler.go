package commands

import (
	"context"

	"inventory/internal/core/domain/model/notification"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/ports"
)

// CompleteOrderCommandHandler marks a Processing order as Processed and
// notifies both audiences. It is invoked by the consumer worker after the
// simulated-fulfillment hold.
//
// The compare-and-set on Processing is what makes id redelivery safe: if the
// order was cancelled while the worker held it, or a duplicate queue entry
// already completed it, the write fails with an InvalidStateError, no event is
// emitted, and the stored status stands.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the completion command.
// Returns an ObjectNotFoundError if the order does not exist and an
// InvalidStateError if it is not currently Processing.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = o.Complete(); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, o.ID(), order.Processing, order.Processed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(notification.UserTopic(o.OwnerUsername()), notification.NewOrderStatusEvent(o))
	h.publisher.Publish(notification.TopicAdmin, notification.NewOrderUpdateEvent(o, notification.ActionCompleted))

	return nil
}
