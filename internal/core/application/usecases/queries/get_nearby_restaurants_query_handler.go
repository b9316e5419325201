package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// GetNearbyRestaurantsQueryHandler resolves proximity searches through the
// restaurant repository's radius capability.
type GetNearbyRestaurantsQueryHandler struct {
	restaurants ports.RestaurantRepository
}

// NewGetNearbyRestaurantsQueryHandler creates a handler for proximity queries.
func NewGetNearbyRestaurantsQueryHandler(restaurants ports.RestaurantRepository) GetNearbyRestaurantsQueryHandler {
	return GetNearbyRestaurantsQueryHandler{restaurants: restaurants}
}

// Handle returns restaurants within the radius, nearest first, with the
// great-circle distance from the search center.
func (h GetNearbyRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyRestaurantsQuery,
) ([]GetNearbyRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.restaurants.WithinRadius(ctx, query.Center(), query.RadiusMeters())
	if err != nil {
		return nil, err
	}

	restaurants := make([]GetNearbyRestaurantsQueryResponse, 0, len(found))
	for _, r := range found {
		distance, distErr := query.Center().DistanceMeters(r.Location)
		if distErr != nil {
			return nil, distErr
		}

		restaurants = append(restaurants, GetNearbyRestaurantsQueryResponse{
			ID:             r.ID,
			Name:           r.Name,
			Address:        r.Address,
			Location:       r.Location,
			DistanceMeters: distance,
		})
	}

	return restaurants, nil
}
