package commands

import (
	"context"

	"inventory/internal/core/domain/model/notification"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/ports"
)

// AcceptOrderCommandHandler moves a Pending order into Processing, hands its
// id to the work queue, and notifies both audiences.
//
// The status write is a compare-and-set on Pending, so two operators accepting
// the same order concurrently cannot both succeed. The id is only enqueued
// after the transaction commits; should the same id ever be enqueued twice,
// the worker's status guard turns the second delivery into a no-op.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	queue      ports.WorkQueue
	publisher  ports.NotificationPublisher
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	queue ports.WorkQueue,
	publisher ports.NotificationPublisher,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
		publisher:  publisher,
	}
}

// Handle processes the acceptance command.
// Returns an ObjectNotFoundError if the order does not exist and an
// InvalidStateError if it is not currently Pending.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	if err = o.Accept(); err != nil {
		return err
	}

	if err = orderRepo.UpdateStatus(ctx, o.ID(), order.Pending, order.Processing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.queue.Enqueue(o.ID())
	h.publisher.Publish(notification.UserTopic(o.OwnerUsername()), notification.NewOrderStatusEvent(o))
	h.publisher.Publish(notification.TopicAdmin, notification.NewOrderUpdateEvent(o, notification.ActionAccepted))

	return nil
}
