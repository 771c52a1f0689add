// Package guard provides a defensive programming pattern that ensures value
// objects, commands, and queries are only created through their designated
// constructor functions.
//
// By embedding a ConstructorGuard in a struct, code can detect whether the
// struct was properly initialized through its constructor or created as a
// zero value, and fail validation in the latter case.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error. This ensures that validation always fails with a
// meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The guard works by
// maintaining an internal flag that is only set to true when the object is
// created through the proper constructor function. Any attempt to use a
// zero-value struct will fail validation.
//
// Example usage:
//
//	var ErrOrderNotConstructed = errors.New("Order must be created via NewOrder")
//
//	type Order struct {
//	    id    int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewOrder(id int64) Order {
//	    return Order{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (o Order) Validate() error {
//	    return o.guard.Validate(ErrOrderNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. This should be called in the constructor of domain objects.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// Returns:
//   - nil if the object was properly constructed
//   - validationError if the object was not constructed through its constructor
//   - ErrDefaultConstructorGuard if validationError is nil and object not constructed
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
