package queries

import (
	"errors"

	"inventory/internal/pkg/guard"
)

var (
	ErrGetOrdersByOwnerQueryIsNotConstructed = errors.New(
		"GetOrdersByOwnerQuery must be created via NewGetOrdersByOwnerQuery constructor",
	)
	ErrOwnerIDIsInvalid = errors.New("owner id must be greater than 0")
)

// GetOrdersByOwnerQuery retrieves every order belonging to one user, newest
// first. Backs the customer-facing order history view.
type GetOrdersByOwnerQuery struct {
	ownerID int64

	guard guard.ConstructorGuard
}

// NewGetOrdersByOwnerQuery creates a query for the given owner.
// Validates that the owner id is positive.
func NewGetOrdersByOwnerQuery(ownerID int64) (GetOrdersByOwnerQuery, error) {
	if ownerID <= 0 {
		return GetOrdersByOwnerQuery{}, ErrOwnerIDIsInvalid
	}

	return GetOrdersByOwnerQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByOwnerQueryIsNotConstructed if validation fails.
func (q GetOrdersByOwnerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByOwnerQueryIsNotConstructed)
}

// OwnerID returns the id of the owner whose orders are requested.
func (q GetOrdersByOwnerQuery) OwnerID() int64 {
	return q.ownerID
}
