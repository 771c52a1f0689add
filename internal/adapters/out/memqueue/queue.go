// Package memqueue provides the in-process work queue shared by the API
// producers and the consumer worker. The queue is unbounded, so Enqueue
// never blocks a request handler; backpressure is not a concern at the
// volumes a single fulfillment worker handles.
package memqueue

import (
	"context"

	"inventory/internal/core/ports"
)

// Queue is an unbounded FIFO of order ids, safe for concurrent use.
// Consumers block in Dequeue until an id arrives, the context is cancelled,
// or the queue is closed and drained.
type Queue struct {
	mu     chan struct{} // 1-buffered; held while items/closed are touched
	items  []int64
	closed bool
	wake   chan struct{} // closed and replaced on every state change
}

var _ ports.WorkQueue = (*Queue)(nil)

// NewQueue creates an empty open queue.
func NewQueue() *Queue {
	mu := make(chan struct{}, 1)
	mu <- struct{}{}
	return &Queue{
		mu:   mu,
		wake: make(chan struct{}),
	}
}

func (q *Queue) lock() { <-q.mu }

func (q *Queue) unlock() { q.mu <- struct{}{} }

// notify wakes every waiter currently parked in Dequeue. Must hold the lock.
func (q *Queue) notify() {
	close(q.wake)
	q.wake = make(chan struct{})
}

// Enqueue appends an order id. After Close it is a silent no-op, so late
// producers during shutdown do not need their own closed check.
func (q *Queue) Enqueue(orderID int64) {
	q.lock()
	defer q.unlock()

	if q.closed {
		return
	}

	q.items = append(q.items, orderID)
	q.notify()
}

// Dequeue removes and returns the oldest id, blocking while the queue is
// empty. Returns ctx.Err() on cancellation and ErrWorkQueueClosed once the
// queue is closed and fully drained. Items enqueued before Close are still
// delivered.
func (q *Queue) Dequeue(ctx context.Context) (int64, error) {
	for {
		q.lock()

		if len(q.items) > 0 {
			id := q.items[0]
			q.items = q.items[1:]
			q.unlock()
			return id, nil
		}

		if q.closed {
			q.unlock()
			return 0, ports.ErrWorkQueueClosed
		}

		wake := q.wake
		q.unlock()

		select {
		case <-wake:
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}

// Len reports the number of queued ids.
func (q *Queue) Len() int {
	q.lock()
	defer q.unlock()
	return len(q.items)
}

// Close marks the queue closed and wakes blocked consumers. Pending items
// remain dequeueable. Safe to call more than once.
func (q *Queue) Close() {
	q.lock()
	defer q.unlock()

	if q.closed {
		return
	}

	q.closed = true
	q.notify()
}
