package order

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"errors"
)

// ErrCustomerIsNotConstructed is returned when a Customer was created
// bypassing the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a value object holding the recipient contact details of an order.
// All three fields are required; the value is immutable after construction.
type Customer struct {
	name    string
	phone   string
	address string

	guard kernel.ConstructorGuard
}

// NewCustomer creates a Customer value and validates that name, phone and
// address are all present.
func NewCustomer(name, phone, address string) (Customer, error) {
	customer := Customer{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setPhone(phone),
		customer.setAddress(address),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's contact phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Address returns the delivery address.
func (c Customer) Address() string {
	return c.address
}

// IsEqual compares two customers by all attributes, as befits a value object.
func (c Customer) IsEqual(other Customer) bool {
	return c.name == other.name && c.phone == other.phone && c.address == other.address
}

// Validate ensures the Customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("customer address")
	}
	c.address = address
	return nil
}
