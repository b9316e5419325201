// Package restaurantrepo provides read access to restaurant reference data.
// Restaurant management lives outside this service; orders read identity,
// ownership, display name, and location from it.
package restaurantrepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for restaurants.
type RestaurantDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`
	Name    string
	Address string
	Lat     float64
	Lng     float64
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// toReadModel converts a database row to the restaurant read model.
func toReadModel(dto RestaurantDTO) (ports.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Restaurant{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return ports.Restaurant{}, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return ports.Restaurant{}, err
	}

	return ports.Restaurant{
		ID:       id,
		OwnerID:  ownerID,
		Name:     dto.Name,
		Address:  dto.Address,
		Location: location,
	}, nil
}
