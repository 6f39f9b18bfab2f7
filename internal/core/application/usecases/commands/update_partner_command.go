package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"
)

var ErrUpdatePartnerCommandIsNotConstructed = errors.New(
	"UpdatePartnerCommand must be created via NewUpdatePartnerCommand constructor",
)

// UpdatePartnerCommand carries a partial update of a partner's details.
// Zero-valued fields (empty strings, nil slices, nil pointers) keep the
// partner's current value, mirroring the partial-update semantics of the
// management API.
type UpdatePartnerCommand struct {
	partnerID kernel.UUID
	name      string
	email     string
	phone     string
	areas     []string
	shift     *partner.Shift
	status    *partner.Status

	guard kernel.ConstructorGuard
}

// NewUpdatePartnerCommand creates the command. Optional fields may be empty
// or nil; provided values are validated here so the handler only sees
// well-formed updates.
func NewUpdatePartnerCommand(
	partnerID kernel.UUID,
	name string,
	email string,
	phone string,
	areas []string,
	shift *partner.Shift,
	status *partner.Status,
) (UpdatePartnerCommand, error) {
	if err := partnerID.Validate(); err != nil {
		return UpdatePartnerCommand{}, errs.NewValueIsRequiredErrorWithCause("partnerId", err)
	}
	if shift != nil {
		if err := shift.Validate(); err != nil {
			return UpdatePartnerCommand{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return UpdatePartnerCommand{}, err
		}
	}

	return UpdatePartnerCommand{
		partnerID: partnerID,
		name:      name,
		email:     email,
		phone:     phone,
		areas:     areas,
		shift:     shift,
		status:    status,
		guard:     kernel.NewConstructorGuard(),
	}, nil
}

// PartnerID returns the identifier of the partner to update.
func (c UpdatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the new display name, empty to keep the current one.
func (c UpdatePartnerCommand) Name() string {
	return c.name
}

// Email returns the new contact email, empty to keep the current one.
func (c UpdatePartnerCommand) Email() string {
	return c.email
}

// Phone returns the new phone number, empty to keep the current one.
func (c UpdatePartnerCommand) Phone() string {
	return c.phone
}

// Areas returns the replacement area set, nil to keep the current one.
func (c UpdatePartnerCommand) Areas() []string {
	return c.areas
}

// Shift returns the replacement shift window, nil to keep the current one.
func (c UpdatePartnerCommand) Shift() *partner.Shift {
	return c.shift
}

// Status returns the replacement status, nil to keep the current one.
func (c UpdatePartnerCommand) Status() *partner.Status {
	return c.status
}

// Validate ensures the command was created through the constructor.
func (c UpdatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerCommandIsNotConstructed)
}
