package commands

import (
	"errors"

	"inventory/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel a non-terminal order.
// Cancellation bypasses the work queue: the status moves directly to
// Cancelled, and a later dequeue of the same id is a no-op.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel the given order.
// Validates that the order id is positive.
func NewCancelOrderCommand(orderID int64) (CancelOrderCommand, error) {
	if orderID <= 0 {
		return CancelOrderCommand{}, ErrOrderIDIsInvalid
	}

	return CancelOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to cancel.
func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}
