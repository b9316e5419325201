package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders and their line items are always written together in the same
// transaction; an order is never persisted without its items.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Line items are immutable after commit and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves the customer's order history, newest first,
	// excluding orders the customer has hidden.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetByRestaurant retrieves the restaurant's orders, newest first,
	// excluding orders the owner has hidden.
	GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)

	// GetLatestByCustomer retrieves the customer's most recent visible order.
	// Used by the live tracking page.
	GetLatestByCustomer(ctx context.Context, customerID kernel.UUID) (*order.Order, error)
}
