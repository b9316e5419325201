package catalogrepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMenuItemRepository implements MenuItemRepository using GORM.
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GORM menu item repository.
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// GetPrices returns the current unit prices for the given menu items.
// IDs that do not exist in the catalog are simply absent from the result;
// the caller decides whether that is an error.
func (r *GormMenuItemRepository) GetPrices(
	ctx context.Context, menuItemIDs []kernel.UUID,
) (map[kernel.UUID]int64, error) {
	ids := make([]uuid.UUID, 0, len(menuItemIDs))
	for _, id := range menuItemIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, id.Bytes())
	}

	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, err
	}

	prices := make(map[kernel.UUID]int64, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		prices[id] = dto.Price
	}

	return prices, nil
}
