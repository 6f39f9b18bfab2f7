package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"
)

var ErrCreatePartnerCommandIsNotConstructed = errors.New(
	"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
)

// CreatePartnerCommand carries the data for registering a delivery partner.
type CreatePartnerCommand struct {
	name  string
	email string
	phone string
	areas []string
	shift partner.Shift

	guard kernel.ConstructorGuard
}

// NewCreatePartnerCommand creates the command with a validated shift window.
func NewCreatePartnerCommand(
	name string,
	email string,
	phone string,
	areas []string,
	shift partner.Shift,
) (CreatePartnerCommand, error) {
	if name == "" {
		return CreatePartnerCommand{}, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return CreatePartnerCommand{}, errs.NewValueIsRequiredError("email")
	}
	if phone == "" {
		return CreatePartnerCommand{}, errs.NewValueIsRequiredError("phone")
	}
	if len(areas) == 0 {
		return CreatePartnerCommand{}, errs.NewValueIsRequiredError("areas")
	}
	if err := shift.Validate(); err != nil {
		return CreatePartnerCommand{}, err
	}

	return CreatePartnerCommand{
		name:  name,
		email: email,
		phone: phone,
		areas: areas,
		shift: shift,
		guard: kernel.NewConstructorGuard(),
	}, nil
}

// Name returns the partner's display name.
func (c CreatePartnerCommand) Name() string {
	return c.name
}

// Email returns the partner's contact email.
func (c CreatePartnerCommand) Email() string {
	return c.email
}

// Phone returns the partner's contact phone number.
func (c CreatePartnerCommand) Phone() string {
	return c.phone
}

// Areas returns the served area labels.
func (c CreatePartnerCommand) Areas() []string {
	return c.areas
}

// Shift returns the daily availability window.
func (c CreatePartnerCommand) Shift() partner.Shift {
	return c.shift
}

// Validate ensures the command was created through the constructor.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}
