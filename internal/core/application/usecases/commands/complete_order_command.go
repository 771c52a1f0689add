package commands

import (
	"errors"

	"inventory/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents the consumer worker's request to mark a
// dequeued order as fulfilled.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete the given order.
// Validates that the order id is positive.
func NewCompleteOrderCommand(orderID int64) (CompleteOrderCommand, error) {
	if orderID <= 0 {
		return CompleteOrderCommand{}, ErrOrderIDIsInvalid
	}

	return CompleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to complete.
func (c CompleteOrderCommand) OrderID() int64 {
	return c.orderID
}
