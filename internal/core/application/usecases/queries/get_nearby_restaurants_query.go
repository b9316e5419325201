package queries

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrGetNearbyRestaurantsQueryIsNotConstructed is returned when the query was
// not created through its constructor.
var ErrGetNearbyRestaurantsQueryIsNotConstructed = errors.New(
	"GetNearbyRestaurantsQuery must be created via NewGetNearbyRestaurantsQuery constructor",
)

// GetNearbyRestaurantsQuery retrieves restaurants within a radius of the
// customer's position, nearest first.
type GetNearbyRestaurantsQuery struct {
	center       kernel.GeoPoint
	radiusMeters float64

	guard guard.ConstructorGuard
}

// NewGetNearbyRestaurantsQuery creates a proximity search query. The radius
// is in meters and must be positive.
func NewGetNearbyRestaurantsQuery(center kernel.GeoPoint, radiusMeters float64) (GetNearbyRestaurantsQuery, error) {
	if err := center.Validate(); err != nil {
		return GetNearbyRestaurantsQuery{}, err
	}
	if radiusMeters <= 0 {
		return GetNearbyRestaurantsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"radiusMeters", fmt.Errorf("%f is not greater than 0", radiusMeters))
	}

	return GetNearbyRestaurantsQuery{
		center:       center,
		radiusMeters: radiusMeters,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNearbyRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyRestaurantsQueryIsNotConstructed)
}

// Center returns the search center.
func (q GetNearbyRestaurantsQuery) Center() kernel.GeoPoint {
	return q.center
}

// RadiusMeters returns the search radius in meters.
func (q GetNearbyRestaurantsQuery) RadiusMeters() float64 {
	return q.radiusMeters
}

// GetNearbyRestaurantsQueryResponse is one restaurant within the radius.
type GetNearbyRestaurantsQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Address        string
	Location       kernel.GeoPoint
	DistanceMeters float64
}
