package services

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// CartLine is a single entry of a customer's cart as submitted by the client:
// a menu item reference and a quantity. Prices never travel with the cart.
type CartLine struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// PriceCalculator is a domain service that turns a submitted cart into
// committed line-item snapshots priced from the current catalog.
//
// Business rules:
//   - client-supplied amounts are never trusted; every line is priced from
//     the catalog at the moment of calculation
//   - every cart line must reference a known menu item
//   - the resulting total must be positive, a zero-priced cart is rejected
//
// The same calculation runs at payment initiation and again at settlement,
// so the charged amount and the committed order total always agree.
type PriceCalculator struct{}

// NewPriceCalculator creates a new PriceCalculator instance.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// PriceCart builds order line items from cart lines and catalog prices.
// prices maps menu item IDs to unit prices in minor currency units.
//
// Returns the priced items and the order total, or an error when the cart is
// empty, a line references an unknown menu item, a quantity is not positive,
// or the total is not positive.
func (PriceCalculator) PriceCart(lines []CartLine, prices map[kernel.UUID]int64) ([]order.Item, int64, error) {
	if len(lines) == 0 {
		return nil, 0, errs.NewValueIsRequiredError("cart lines")
	}

	items := make([]order.Item, 0, len(lines))
	var total int64
	for _, line := range lines {
		price, ok := prices[line.MenuItemID]
		if !ok {
			return nil, 0, errs.NewObjectNotFoundError("menuItemID", line.MenuItemID)
		}

		item, err := order.NewItem(line.MenuItemID, line.Quantity, price)
		if err != nil {
			return nil, 0, err
		}

		items = append(items, item)
		total += item.Subtotal()
	}

	if total <= 0 {
		return nil, 0, errs.NewValueIsInvalidErrorWithCause(
			"cart total", fmt.Errorf("%d is not greater than 0", total))
	}

	return items, total, nil
}
