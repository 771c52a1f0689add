package ports

import (
	"context"
	"time"

	"inventory/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and transitioning order entities.
type OrderRepository interface {
	// Add persists a new order aggregate to storage and assigns its
	// store-generated id to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no order has the given id.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// UpdateStatus persists a status transition with a compare-and-set on the
	// expected source status, so concurrent writers cannot race on the same
	// order's status. Returns an ObjectNotFoundError if the order does not
	// exist and an InvalidStateError if its current status is not `from`.
	UpdateStatus(ctx context.Context, id int64, from, to order.Status) error

	// GetStuckProcessingIDs retrieves the ids of orders that entered
	// Processing before the given cutoff and never left it. Used by the
	// sweep job to re-enqueue work that was lost, e.g. across a restart.
	GetStuckProcessingIDs(ctx context.Context, cutoff time.Time) ([]int64, error)
}
