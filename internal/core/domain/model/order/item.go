package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable line item of an order. It snapshots the catalog price
// at settlement time: the subtotal an item contributes never changes when the
// live menu price does. Items are exclusively owned by their order and are
// persisted with it in the same transaction.
type Item struct { //nolint:recvcheck //using for validation
	menuItemID   kernel.UUID
	quantity     int
	priceAtOrder int64

	guard guard.ConstructorGuard
}

// NewItem creates a line item for the given menu item. Quantity must be
// positive; priceAtOrder is the current catalog price in minor currency units
// and must not be negative.
func NewItem(menuItemID kernel.UUID, quantity int, priceAtOrder int64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setPriceAtOrder(priceAtOrder),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// PriceAtOrder returns the unit price snapshotted at settlement, in minor
// currency units.
func (i Item) PriceAtOrder() int64 {
	return i.priceAtOrder
}

// Subtotal returns priceAtOrder multiplied by quantity, in minor currency
// units.
func (i Item) Subtotal() int64 {
	return i.priceAtOrder * int64(i.quantity)
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPriceAtOrder(priceAtOrder int64) error {
	if priceAtOrder < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"priceAtOrder", fmt.Errorf("%d is negative", priceAtOrder))
	}
	i.priceAtOrder = priceAtOrder
	return nil
}
