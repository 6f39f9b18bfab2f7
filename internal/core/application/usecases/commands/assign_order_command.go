package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand requests one evaluation of an order-partner pairing.
// Each command evaluates exactly one pair; there is no search across
// candidate partners and no idempotency guard, so re-issuing the command for
// an already assigned pair re-runs the full pipeline against the partner's
// current load.
type AssignOrderCommand struct {
	orderID   kernel.UUID
	partnerID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewAssignOrderCommand creates the command, requiring both identifiers.
func NewAssignOrderCommand(orderID, partnerID kernel.UUID) (AssignOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	if err := partnerID.Validate(); err != nil {
		return AssignOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("partnerId", err)
	}

	return AssignOrderCommand{
		orderID:   orderID,
		partnerID: partnerID,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// OrderID returns the identifier of the order to evaluate.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerID returns the identifier of the candidate partner.
func (c AssignOrderCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}
