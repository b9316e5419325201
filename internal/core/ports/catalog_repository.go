package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// MenuItemRepository provides read access to catalog prices.
// Catalog management itself is outside this service; orders only need the
// current unit price of each referenced item at pricing time.
type MenuItemRepository interface {
	// GetPrices returns the current unit prices, in minor currency units,
	// for the given menu items. Items that do not exist are absent from the
	// returned map.
	GetPrices(ctx context.Context, menuItemIDs []kernel.UUID) (map[kernel.UUID]int64, error)
}

// Restaurant is the read model of a restaurant as this service needs it:
// identity, the owning account for authorization checks, display name for
// notifications, and location for proximity search.
type Restaurant struct {
	ID       kernel.UUID
	OwnerID  kernel.UUID
	Name     string
	Address  string
	Location kernel.GeoPoint
}

// RestaurantRepository provides read access to restaurant reference data.
type RestaurantRepository interface {
	// Get retrieves a restaurant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (Restaurant, error)

	// WithinRadius retrieves restaurants whose location lies within
	// radiusMeters of center, nearest first.
	WithinRadius(ctx context.Context, center kernel.GeoPoint, radiusMeters float64) ([]Restaurant, error)
}
