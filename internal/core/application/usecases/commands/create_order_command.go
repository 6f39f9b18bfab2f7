package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand carries the data for order intake.
// Field-level invariants (customer details, item quantities, the
// scheduled-time-not-in-the-past rule) are enforced by the order aggregate
// when the handler constructs it; the command only requires presence.
type CreateOrderCommand struct {
	customer     order.Customer
	area         string
	items        []order.Item
	scheduledFor time.Time

	guard kernel.ConstructorGuard
}

// NewCreateOrderCommand creates the command from already validated value objects.
func NewCreateOrderCommand(
	customer order.Customer,
	area string,
	items []order.Item,
	scheduledFor time.Time,
) (CreateOrderCommand, error) {
	if err := customer.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if area == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("area")
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}
	if scheduledFor.IsZero() {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("scheduledFor")
	}

	return CreateOrderCommand{
		customer:     customer,
		area:         area,
		items:        items,
		scheduledFor: scheduledFor,
		guard:        kernel.NewConstructorGuard(),
	}, nil
}

// Customer returns the recipient contact details.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Area returns the serviced area label.
func (c CreateOrderCommand) Area() string {
	return c.area
}

// Items returns the ordered positions.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// ScheduledFor returns the requested fulfillment time.
func (c CreateOrderCommand) ScheduledFor() time.Time {
	return c.scheduledFor
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}
