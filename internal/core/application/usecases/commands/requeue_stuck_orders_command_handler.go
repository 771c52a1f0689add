package commands

import (
	"context"
	"log/slog"
	"time"

	"inventory/internal/core/ports"
)

// RequeueStuckOrdersCommandHandler finds orders stuck in Processing and
// pushes their ids back onto the work queue. Duplicates are harmless: the
// completion compare-and-set rejects any order the worker already finished.
type RequeueStuckOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	queue      ports.WorkQueue
	logger     *slog.Logger
}

// NewRequeueStuckOrdersCommandHandler creates a handler for the stuck-order
// sweep.
func NewRequeueStuckOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	queue ports.WorkQueue,
	logger *slog.Logger,
) RequeueStuckOrdersCommandHandler {
	return RequeueStuckOrdersCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
		logger:     logger.With("component", "RequeueStuckOrdersCommandHandler"),
	}
}

// Handle re-enqueues every order stuck in Processing longer than the
// command's max age. Returns the number of orders re-enqueued.
func (h *RequeueStuckOrdersCommandHandler) Handle(ctx context.Context, cmd RequeueStuckOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())

	ids, err := uow.OrderRepository().GetStuckProcessingIDs(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	for _, id := range ids {
		h.queue.Enqueue(id)
		h.logger.Warn("re-enqueued stuck order", "orderID", id)
	}

	return len(ids), nil
}
