package order

import (
	"fmt"

	"inventory/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Processed
//	   │            │
//	   └────────────┴──> Cancelled
//
// Processed and Cancelled are terminal: no transition leaves them.
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be accepted by an operator.
	Pending

	// Processing indicates the order has been accepted and queued for
	// fulfillment by the consumer worker.
	Processing

	// Processed indicates fulfillment finished. Terminal.
	Processed

	// Cancelled indicates the order was cancelled before fulfillment
	// finished. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Processed:  "Processed",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Processed:  "Processed",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Processed, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones, which yield "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions leave this status.
func (s Status) IsTerminal() bool {
	return s == Processed || s == Cancelled
}

// Accept transitions the status to Processing.
//
// Valid transitions:
//   - Pending -> Processing (operator accepted the order)
//
// Any other source status fails with an InvalidStateError and leaves
// the current status unchanged.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("order status", s.String(), Processing.String())
	}

	return Processing, nil
}

// Complete transitions the status to Processed.
//
// Valid transitions:
//   - Processing -> Processed (fulfillment finished)
//
// Any other source status fails with an InvalidStateError and leaves
// the current status unchanged. In particular a second completion of
// an already Processed order is rejected, which makes redelivery of a
// queued order id a safe no-op for the consumer worker.
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return 0, errs.NewInvalidStateError("order status", s.String(), Processed.String())
	}

	return Processed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Processing -> Cancelled
//
// Terminal statuses fail with an InvalidStateError and remain unchanged.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Processing {
		return 0, errs.NewInvalidStateError("order status", s.String(), Cancelled.String())
	}

	return Cancelled, nil
}
