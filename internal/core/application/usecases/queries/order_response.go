// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern of the CQRS architecture: handlers read
// straight from the database with raw SQL, bypassing the aggregate layer.
package queries

import "time"

// OrderResponse is the read model returned by every order query. Status is
// carried as its display string, the form the API and push events use.
type OrderResponse struct {
	ID            int64
	OwnerID       int64
	OwnerUsername string
	ItemID        int64
	ItemName      string
	Quantity      int
	Status        string
	CreatedAt     time.Time
}
