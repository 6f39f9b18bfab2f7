package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Assigned ──> Picked ──> Delivered
//
// Delivered is final; no transition leaves it. The assignment pipeline never
// mutates order status itself — transitions happen only through the explicit
// status-change operation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order.
	Pending

	// Assigned indicates a delivery partner has taken the order.
	Assigned

	// Picked indicates the partner has collected the order.
	Picked

	// Delivered indicates the order reached the customer. Final state.
	Delivered
)

// getStatusStrings maps every Status to its wire representation.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		Picked:    "picked",
		Delivered: "delivered",
	}
}

// getValidStatusStrings maps only the valid statuses, for validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		Picked:    "picked",
		Delivered: "delivered",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer and is
// safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Only single forward steps are allowed; Delivered is terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case Pending:
		return next == Assigned
	case Assigned:
		return next == Picked
	case Picked:
		return next == Delivered
	default:
		return false
	}
}
