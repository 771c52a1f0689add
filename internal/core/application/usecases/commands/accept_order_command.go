package commands

import (
	"errors"

	"inventory/internal/pkg/guard"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// AcceptOrderCommand represents an operator's request to accept a pending
// order into the fulfillment queue.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept the given order.
// Validates that the order id is positive.
func NewAcceptOrderCommand(orderID int64) (AcceptOrderCommand, error) {
	if orderID <= 0 {
		return AcceptOrderCommand{}, ErrOrderIDIsInvalid
	}

	return AcceptOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrderCommandIsNotConstructed if validation fails.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to accept.
func (c AcceptOrderCommand) OrderID() int64 {
	return c.orderID
}
