package restaurantrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// haversineSQL computes the great-circle distance in meters between each
// restaurant and the given point, entirely in the database so filtering and
// ordering happen before rows reach the application.
const haversineSQL = `
SELECT *, 2 * 6371000 * asin(sqrt(
    pow(sin(radians(lat - ?) / 2), 2) +
    cos(radians(?)) * cos(radians(lat)) *
    pow(sin(radians(lng - ?) / 2), 2)
)) AS distance_meters
FROM restaurants
WHERE 2 * 6371000 * asin(sqrt(
    pow(sin(radians(lat - ?) / 2), 2) +
    cos(radians(?)) * cos(radians(lat)) *
    pow(sin(radians(lng - ?) / 2), 2)
)) <= ?
ORDER BY distance_meters`

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Get retrieves a restaurant by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (ports.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return ports.Restaurant{}, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Restaurant{}, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return ports.Restaurant{}, err
	}

	return toReadModel(dto)
}

// WithinRadius retrieves restaurants within radiusMeters of center, nearest
// first.
func (r *GormRestaurantRepository) WithinRadius(
	ctx context.Context, center kernel.GeoPoint, radiusMeters float64,
) ([]ports.Restaurant, error) {
	if err := center.Validate(); err != nil {
		return nil, err
	}
	if radiusMeters <= 0 {
		return nil, errs.NewValueIsInvalidError("radiusMeters")
	}

	lat, lng := center.Latitude(), center.Longitude()

	var dtos []RestaurantDTO
	err := r.db.WithContext(ctx).
		Raw(haversineSQL, lat, lat, lng, lat, lat, lng, radiusMeters).
		Scan(&dtos).Error
	if err != nil {
		return nil, err
	}

	restaurants := make([]ports.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		restaurant, convErr := toReadModel(dto)
		if convErr != nil {
			return nil, convErr
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, nil
}
