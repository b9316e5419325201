// Package catalogrepo provides read access to menu item reference data.
// The catalog is managed outside this service; orders only read current
// prices from it when a cart is priced.
package catalogrepo

import (
	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for menu items.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Price        int64
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}
