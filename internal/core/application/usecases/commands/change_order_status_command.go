package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order to the next lifecycle state.
// This is the only mutation path for order status; the assignment pipeline
// never touches it.
type ChangeOrderStatusCommand struct {
	orderID kernel.UUID
	status  order.Status

	guard kernel.ConstructorGuard
}

// NewChangeOrderStatusCommand creates the command with a validated target status.
func NewChangeOrderStatusCommand(orderID kernel.UUID, status order.Status) (ChangeOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := status.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		status:  status,
		guard:   kernel.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target lifecycle state.
func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}
