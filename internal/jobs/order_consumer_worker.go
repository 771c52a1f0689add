package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/application/usecases/queries"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/ports"
	"inventory/internal/pkg/errs"
)

// OrderGetter reads the current state of one order.
type OrderGetter interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderResponse, error)
}

// OrderCompleter marks a Processing order as fulfilled.
type OrderCompleter interface {
	Handle(ctx context.Context, cmd commands.CompleteOrderCommand) error
}

// OrderConsumerWorker is the single fulfillment consumer. It takes order ids
// off the work queue one at a time, holds each order for the configured
// processing delay, and then marks it Processed.
//
// Two guards make the loop safe against stale and duplicate queue entries:
// the worker re-reads the order's status before starting the hold and skips
// anything no longer Processing, and the completion itself is rejected by
// the store unless the order is still Processing when the hold ends. An
// order cancelled mid-hold therefore stays Cancelled.
//
// The hold is a plain sleep. Shutdown waits for an in-flight order to finish
// rather than abandoning it halfway.
type OrderConsumerWorker struct {
	queue     ports.WorkQueue
	getter    OrderGetter
	completer OrderCompleter
	delay     time.Duration
	logger    *slog.Logger

	done chan struct{}
}

// NewOrderConsumerWorker creates the consumer worker. delay is how long each
// order is held in Processing before completion.
func NewOrderConsumerWorker(
	queue ports.WorkQueue,
	getter OrderGetter,
	completer OrderCompleter,
	delay time.Duration,
	logger *slog.Logger,
) *OrderConsumerWorker {
	return &OrderConsumerWorker{
		queue:     queue,
		getter:    getter,
		completer: completer,
		delay:     delay,
		logger:    logger.With("component", "order_consumer_worker"),
	}
}

// Start launches the consumer loop in its own goroutine.
func (w *OrderConsumerWorker) Start(ctx context.Context) {
	w.done = make(chan struct{})
	go func() {
		defer close(w.done)
		w.Run(ctx)
	}()
}

// Stop blocks until the consumer loop has exited. The loop exits when the
// work queue is closed and drained or the start context is cancelled, so
// callers close the queue first.
func (w *OrderConsumerWorker) Stop() {
	if w.done != nil {
		<-w.done
	}
}

// Run executes the consumer loop until the queue closes or ctx is cancelled.
func (w *OrderConsumerWorker) Run(ctx context.Context) {
	w.logger.InfoContext(ctx, "Order consumer worker started", "delay", w.delay)

	for {
		id, err := w.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ports.ErrWorkQueueClosed) || errors.Is(err, context.Canceled) {
				w.logger.InfoContext(ctx, "Order consumer worker stopped")
				return
			}
			w.logger.ErrorContext(ctx, "Dequeue failed", "error", err)
			return
		}

		w.process(ctx, id)
	}
}

func (w *OrderConsumerWorker) process(ctx context.Context, id int64) {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		w.logger.ErrorContext(ctx, "Invalid order id on queue", "orderID", id, "error", err)
		return
	}

	current, err := w.getter.Handle(ctx, query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			w.logger.WarnContext(ctx, "Queued order no longer exists", "orderID", id)
			return
		}
		w.logger.ErrorContext(ctx, "Reading queued order failed", "orderID", id, "error", err)
		return
	}

	// Cancelled before the worker got to it, or a duplicate entry for an
	// order that already completed.
	if current.Status != order.Processing.String() {
		w.logger.InfoContext(ctx, "Skipping queued order",
			"orderID", id, "status", current.Status)
		return
	}

	time.Sleep(w.delay)

	cmd, err := commands.NewCompleteOrderCommand(id)
	if err != nil {
		w.logger.ErrorContext(ctx, "Building completion command failed", "orderID", id, "error", err)
		return
	}

	if err := w.completer.Handle(ctx, cmd); err != nil {
		// A cancellation that landed during the hold wins; that is expected.
		if errors.Is(err, errs.ErrInvalidState) {
			w.logger.InfoContext(ctx, "Order left Processing during hold", "orderID", id)
			return
		}
		w.logger.ErrorContext(ctx, "Completing order failed", "orderID", id, "error", err)
		return
	}

	w.logger.InfoContext(ctx, "Order processed", "orderID", id)
}
