// Package order provides domain entities and business logic for order
// management in the inventory system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, item data, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid owner, a named item, and a positive quantity
//   - Order status follows a defined workflow: Pending -> Processing -> Processed
//   - Orders can be cancelled from Pending or Processing
//   - Processed and Cancelled are terminal; no transition leaves them
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
