package assignment

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Machine-readable failure reasons recorded on rejected assignment attempts.
// The exact strings are part of the external contract: the metrics report
// groups failures by them, so they must stay stable.
const (
	// ReasonShiftMismatch is recorded when the evaluation hour falls outside
	// the partner's shift window.
	ReasonShiftMismatch = "Delivery partner not available during this time."

	// ReasonAreaMismatch is recorded when the partner does not serve the
	// order's area.
	ReasonAreaMismatch = "Delivery partner does not serve the order's area."

	// ReasonLoadExceeded is recorded when the partner already carries the
	// maximum concurrent load.
	ReasonLoadExceeded = "Partner load exceeded"

	// ReasonUnknown buckets failed records whose reason was lost or never set.
	// It is used by the metrics aggregation, never written by the evaluator.
	ReasonUnknown = "Unknown"
)

var (
	// ErrAssignmentIsNotConstructed is returned when using an improperly
	// initialized Assignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
)

// Assignment is an immutable audit record of a single evaluation attempt.
// Exactly one record exists per evaluation that passed the existence check,
// whether the outcome was success or failure. Multiple records may reference
// the same order if assignment was re-attempted.
//
// Invariant: reason is non-nil iff status is Failed.
type Assignment struct {
	// id uniquely identifies the record
	id kernel.UUID
	// orderID references the evaluated order
	orderID kernel.UUID
	// partnerID references the evaluated partner
	partnerID kernel.UUID
	// timestamp is the moment of evaluation, the same instant used for the
	// shift-rule hour derivation
	timestamp time.Time
	// status is the terminal outcome
	status Status
	// reason is the machine-readable failure reason, nil on success
	reason *string

	guard kernel.ConstructorGuard
}

// NewSuccessAssignment creates the audit record of a successful evaluation.
func NewSuccessAssignment(id, orderID, partnerID kernel.UUID, timestamp time.Time) (*Assignment, error) {
	return newAssignment(id, orderID, partnerID, timestamp, Success, nil)
}

// NewFailedAssignment creates the audit record of a rejected evaluation with
// its machine-readable reason.
func NewFailedAssignment(id, orderID, partnerID kernel.UUID, timestamp time.Time, reason string) (*Assignment, error) {
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}
	return newAssignment(id, orderID, partnerID, timestamp, Failed, &reason)
}

// RestoreAssignment reconstructs a record from persistent storage.
func RestoreAssignment(
	id, orderID, partnerID kernel.UUID,
	timestamp time.Time,
	status Status,
	reason *string,
) (*Assignment, error) {
	return newAssignment(id, orderID, partnerID, timestamp, status, reason)
}

func newAssignment(
	id, orderID, partnerID kernel.UUID,
	timestamp time.Time,
	status Status,
	reason *string,
) (*Assignment, error) {
	record := &Assignment{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		record.setID(id),
		record.setOrderID(orderID),
		record.setPartnerID(partnerID),
		record.setTimestamp(timestamp),
		record.setOutcome(status, reason),
	); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate ensures the Assignment was created through one of the constructors.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// IsEqual compares two records by their unique identifiers.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the record's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the evaluated order's identifier.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// PartnerID returns the evaluated partner's identifier.
func (a *Assignment) PartnerID() kernel.UUID {
	return a.partnerID
}

// Timestamp returns the moment of evaluation.
func (a *Assignment) Timestamp() time.Time {
	return a.timestamp
}

// Status returns the terminal outcome.
func (a *Assignment) Status() Status {
	return a.status
}

// Reason returns the failure reason, or nil for successful records.
func (a *Assignment) Reason() *string {
	return a.reason
}

// IsSuccess reports whether the evaluation assigned the order.
func (a *Assignment) IsSuccess() bool {
	return a.status == Success
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	a.orderID = orderID
	return nil
}

func (a *Assignment) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("partnerId", err)
	}
	a.partnerID = partnerID
	return nil
}

func (a *Assignment) setTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	a.timestamp = timestamp
	return nil
}

// setOutcome enforces the reason-iff-failed invariant.
func (a *Assignment) setOutcome(status Status, reason *string) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if status == Failed && (reason == nil || *reason == "") {
		return errs.NewValueIsRequiredError("reason")
	}
	if status == Success && reason != nil {
		return errs.NewValueIsInvalidError("reason must be empty for successful assignments")
	}

	a.status = status
	a.reason = reason
	return nil
}
