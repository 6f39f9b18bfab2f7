package order

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was created bypassing
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object describing a single ordered position.
//
// Invariants:
//   - name is non-empty
//   - quantity is greater than 0
//   - price is not negative (a zero price is allowed for promo items)
type Item struct {
	name     string
	quantity int
	price    float64

	guard kernel.ConstructorGuard
}

// NewItem creates an Item and validates its invariants.
func NewItem(name string, quantity int, price float64) (Item, error) {
	item := Item{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Name returns the item name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered amount.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}

// IsEqual compares two items by all attributes.
func (i Item) IsEqual(other Item) bool {
	return i.name == other.name && i.quantity == other.quantity && i.price == other.price
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"item quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"item price",
			fmt.Errorf("%v is negative", price),
		)
	}
	i.price = price
	return nil
}
