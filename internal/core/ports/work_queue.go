package ports

import (
	"context"
	"errors"
)

// ErrWorkQueueClosed is returned by Dequeue once the queue is closed and drained.
var ErrWorkQueueClosed = errors.New("work queue is closed")

// WorkQueue is an unbounded FIFO of order ids awaiting processing. It is
// shared between the API producers and the single consumer worker, so
// implementations must be safe for concurrent use.
//
// The queue carries only ids, not order data: the worker always re-reads
// authoritative state from the store before acting, so an entry means
// "reconsider this id" and tolerates being stale. There is no deduplication;
// redelivered ids are handled by the worker's status guard.
type WorkQueue interface {
	// Enqueue appends an order id. It never blocks and is a no-op after Close.
	Enqueue(orderID int64)

	// Dequeue removes and returns the oldest id, blocking while the queue is
	// empty. It returns ctx.Err() when the context is cancelled and
	// ErrWorkQueueClosed once the queue is closed and empty; pending items are
	// still drained after Close.
	Dequeue(ctx context.Context) (int64, error)

	// Len reports the number of queued ids.
	Len() int

	// Close marks the queue closed and wakes blocked consumers. Safe to call
	// more than once.
	Close()
}
