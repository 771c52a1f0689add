package queries

import (
	"errors"

	"inventory/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrOrderIDIsInvalid = errors.New("order id must be greater than 0")
)

// GetOrderQuery retrieves a single order by id. The consumer worker uses it
// to re-read an order's current status right before acting on a queue entry.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	o, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order id.
// Validates that the id is positive.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, ErrOrderIDIsInvalid
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the id of the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}
