package order

import (
	"errors"
	"fmt"
	"time"

	"inventory/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called on an order
	// that already carries a store-assigned id.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Order represents a customer order in the system. It is the aggregate root
// that manages the order lifecycle from creation through acceptance to
// fulfillment or cancellation.
//
// Order follows these invariants:
//   - Identity and item fields are immutable after construction; only the
//     status field moves, and only along the transitions Status permits
//   - The owner user id must be positive and the owner username non-empty
//   - The item quantity must be positive
//   - The store-assigned id is set exactly once, by the persistence layer
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the store-assigned unique identifier, zero until persisted
	id int64

	// ownerID is the id of the user who placed the order
	ownerID int64

	// ownerUsername is denormalized for notification topic addressing
	ownerUsername string

	// itemID and itemName identify the ordered catalog item
	itemID   int64
	itemName string

	// quantity is the ordered amount (must be positive)
	quantity int

	// status is the current state in the order lifecycle
	status Status

	// createdAt is set once at construction
	createdAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. The id is
// left unassigned; the persistence layer sets it via AssignID on first save.
//
// Returns a validation error if the owner id is not positive, the owner
// username or item name is empty, or the quantity is not positive.
func NewOrder(ownerID int64, ownerUsername string, itemID int64, itemName string, quantity int) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setOwner(ownerID, ownerUsername),
		order.setItem(itemID, itemName, quantity),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// requires a store-assigned id and accepts any valid status, so the
// persistence layer can rehydrate orders at every point of their lifecycle.
func RestoreOrder(
	id int64,
	ownerID int64,
	ownerUsername string,
	itemID int64,
	itemName string,
	quantity int,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.AssignID(id),
		order.setOwner(ownerID, ownerUsername),
		order.setItem(itemID, itemName, quantity),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructing orders
// from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their store-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the store-assigned identifier, zero if not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// OwnerID returns the id of the user who placed the order.
func (o *Order) OwnerID() int64 {
	return o.ownerID
}

// OwnerUsername returns the owner's username.
func (o *Order) OwnerUsername() string {
	return o.ownerUsername
}

// ItemID returns the ordered item's catalog id.
func (o *Order) ItemID() int64 {
	return o.itemID
}

// ItemName returns the ordered item's name.
func (o *Order) ItemName() string {
	return o.itemName
}

// Quantity returns the ordered amount.
func (o *Order) Quantity() int {
	return o.quantity
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignID sets the store-assigned identifier. It may be called exactly once,
// by the persistence layer after the first insert.
func (o *Order) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}

	o.id = id
	return nil
}

// Accept moves the order from Pending to Processing.
// Fails with an InvalidStateError from any other status.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete moves the order from Processing to Processed.
// Fails with an InvalidStateError from any other status, which makes a second
// completion of the same order a detectable no-op for the consumer worker.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order from Pending or Processing to Cancelled.
// Fails with an InvalidStateError once the order is terminal.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setOwner(ownerID int64, ownerUsername string) error {
	if ownerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("owner id", fmt.Errorf("%d is not greater than 0", ownerID))
	}
	if ownerUsername == "" {
		return errs.NewValueIsRequiredError("owner username")
	}

	o.ownerID = ownerID
	o.ownerUsername = ownerUsername
	return nil
}

func (o *Order) setItem(itemID int64, itemName string, quantity int) error {
	if itemID < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is negative", itemID))
	}
	if itemName == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	o.itemID = itemID
	o.itemName = itemName
	o.quantity = quantity
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}
