package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrStatusTransitionNotAllowed is returned when an order status change
	// violates the lifecycle state machine.
	ErrStatusTransitionNotAllowed = errors.New("order status transition is not allowed")
)

// Order is the aggregate root for a delivery order.
//
// Invariants:
//   - valid unique identifier
//   - valid customer contact details
//   - non-empty serviced area label
//   - at least one valid item
//   - scheduled fulfillment time is not before creation time
//   - status transitions follow the lifecycle state machine
//
// An order is immutable once created except for its status, which changes
// only through ChangeStatus.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer holds the recipient contact details
	customer Customer

	// area is the geographic zone label the order must be delivered in
	area string

	// items are the ordered positions, at least one
	items []Item

	// scheduledFor is the requested fulfillment time
	scheduledFor time.Time

	// createdAt is the moment the order entered the system
	createdAt time.Time

	// status is the current lifecycle state
	status Status

	guard kernel.ConstructorGuard
}

// NewOrder creates a new Order in Pending status with validation of all
// invariants. The now argument anchors both createdAt and the
// scheduledFor-is-not-in-the-past check; callers pass the current time so
// the rule stays deterministic under test.
func NewOrder(
	id kernel.UUID,
	customer Customer,
	area string,
	items []Item,
	scheduledFor time.Time,
	now time.Time,
) (*Order, error) {
	order := &Order{
		status:    Pending,
		createdAt: now,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setArea(area),
		order.setItems(items),
		order.setScheduledFor(scheduledFor, now),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage, preserving its
// status and creation time. Unlike NewOrder it does not re-check the
// scheduledFor-against-now rule, since that rule only binds at creation.
func RestoreOrder(
	id kernel.UUID,
	customer Customer,
	area string,
	items []Item,
	scheduledFor time.Time,
	createdAt time.Time,
	status Status,
) (*Order, error) {
	order := &Order{
		createdAt: createdAt,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setArea(area),
		order.setItems(items),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}
	order.scheduledFor = scheduledFor

	return order, nil
}

// Validate ensures the Order was created through one of the constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the recipient contact details.
func (o *Order) Customer() Customer {
	return o.customer
}

// Area returns the serviced area label.
func (o *Order) Area() string {
	return o.area
}

// Items returns a copy of the ordered positions.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// ScheduledFor returns the requested fulfillment time.
func (o *Order) ScheduledFor() time.Time {
	return o.scheduledFor
}

// CreatedAt returns the moment the order entered the system.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus moves the order to the next lifecycle state.
// Returns ErrStatusTransitionNotAllowed when the state machine forbids the move.
func (o *Order) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if !o.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrStatusTransitionNotAllowed, o.status, next)
	}

	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setArea(area string) error {
	if area == "" {
		return errs.NewValueIsRequiredError("area")
	}
	o.area = area
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setScheduledFor(scheduledFor, now time.Time) error {
	if scheduledFor.IsZero() {
		return errs.NewValueIsRequiredError("scheduledFor")
	}
	if scheduledFor.Before(now) {
		return errs.NewValueIsInvalidErrorWithCause(
			"scheduledFor",
			fmt.Errorf("%s is in the past", scheduledFor.Format(time.RFC3339)),
		)
	}
	o.scheduledFor = scheduledFor
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
