package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var ErrDeletePartnerCommandIsNotConstructed = errors.New(
	"DeletePartnerCommand must be created via NewDeletePartnerCommand constructor",
)

// DeletePartnerCommand removes a delivery partner from the roster.
// Historical assignment records referencing the partner stay untouched.
type DeletePartnerCommand struct {
	partnerID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewDeletePartnerCommand creates the command, requiring the partner identifier.
func NewDeletePartnerCommand(partnerID kernel.UUID) (DeletePartnerCommand, error) {
	if err := partnerID.Validate(); err != nil {
		return DeletePartnerCommand{}, errs.NewValueIsRequiredErrorWithCause("partnerId", err)
	}

	return DeletePartnerCommand{
		partnerID: partnerID,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// PartnerID returns the identifier of the partner to delete.
func (c DeletePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Validate ensures the command was created through the constructor.
func (c DeletePartnerCommand) Validate() error {
	return c.guard.Validate(ErrDeletePartnerCommandIsNotConstructed)
}
