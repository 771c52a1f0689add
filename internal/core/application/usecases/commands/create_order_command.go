package commands

import (
	"errors"

	"inventory/internal/pkg/errs"
	"inventory/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOwnerIsRequired = errors.New("owner id and username are required")
	ErrLinesAreEmpty   = errors.New("at least one order line is required")
)

// OrderLine is one requested item within a CreateOrderCommand. A separate
// order is created per line, matching the batch shape the ordering portal
// submits.
type OrderLine struct {
	ItemID   int64
	ItemName string
	Quantity int
}

// CreateOrderCommand represents a request to register one or more new orders
// for an authenticated owner. Every resulting order starts in Pending status.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(ident.UserID(), ident.Username(), []OrderLine{
//	    {ItemID: 1, ItemName: "apple", Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	ids, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID       int64
	ownerUsername string
	lines         []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register new orders.
// Validates that the owner is identified and every line names an item with a
// positive quantity. Returns an error if any validation fails.
func NewCreateOrderCommand(ownerID int64, ownerUsername string, lines []OrderLine) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOwner(ownerID, ownerUsername),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OwnerID returns the id of the user placing the orders.
func (c CreateOrderCommand) OwnerID() int64 {
	return c.ownerID
}

// OwnerUsername returns the username of the user placing the orders.
func (c CreateOrderCommand) OwnerUsername() string {
	return c.ownerUsername
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *CreateOrderCommand) setOwner(ownerID int64, ownerUsername string) error {
	if ownerID <= 0 || ownerUsername == "" {
		return ErrOwnerIsRequired
	}

	c.ownerID = ownerID
	c.ownerUsername = ownerUsername
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrLinesAreEmpty
	}

	for _, line := range lines {
		if line.ItemName == "" {
			return errs.NewValueIsRequiredError("item name")
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
		if line.ItemID < 0 {
			return errs.NewValueIsInvalidError("item id")
		}
	}

	c.lines = lines
	return nil
}
