// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
// Orders and their line items live in separate tables but are always written
// together.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its wire string so rows stay readable; visibility flags
// are plain booleans filtered in queries.
type OrderDTO struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID      `gorm:"type:uuid;index"`
	RestaurantID      uuid.UUID      `gorm:"type:uuid;index"`
	Items             []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount       int64
	PaymentRef        string
	DeliveryAddress   string
	DeliveryLat       *float64
	DeliveryLng       *float64
	DeliveryCode      *string
	Status            string `gorm:"type:varchar(32);index"`
	VisibleToCustomer bool
	VisibleToOwner    bool
	CreatedAt         time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one committed line item of an order. Line items
// are immutable after settlement and are only ever written alongside their
// order.
type OrderItemDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID   uuid.UUID `gorm:"type:uuid"`
	Quantity     int
	PriceAtOrder int64
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var lat, lng *float64
	if point := aggregate.DeliveryPoint(); point != nil {
		latitude, longitude := point.Latitude(), point.Longitude()
		lat, lng = &latitude, &longitude
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:      aggregate.ID().Bytes(),
			MenuItemID:   item.MenuItemID().Bytes(),
			Quantity:     item.Quantity(),
			PriceAtOrder: item.PriceAtOrder(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		RestaurantID:      aggregate.RestaurantID().Bytes(),
		Items:             items,
		TotalAmount:       aggregate.TotalAmount(),
		PaymentRef:        aggregate.PaymentRef(),
		DeliveryAddress:   aggregate.DeliveryAddress(),
		DeliveryLat:       lat,
		DeliveryLng:       lng,
		DeliveryCode:      aggregate.DeliveryCode(),
		Status:            aggregate.Status().String(),
		VisibleToCustomer: aggregate.VisibleToCustomer(),
		VisibleToOwner:    aggregate.VisibleToOwner(),
		CreatedAt:         aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the aggregate with the stored total via RestoreOrder; totals
// are never recomputed from the items on load.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(menuItemID, itemDTO.Quantity, itemDTO.PriceAtOrder)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	var deliveryPoint *kernel.GeoPoint
	if dto.DeliveryLat != nil && dto.DeliveryLng != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.DeliveryLat, *dto.DeliveryLng)
		if pointErr != nil {
			return nil, pointErr
		}
		deliveryPoint = &point
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		items,
		dto.TotalAmount,
		dto.PaymentRef,
		dto.DeliveryAddress,
		deliveryPoint,
		dto.DeliveryCode,
		status,
		dto.VisibleToCustomer,
		dto.VisibleToOwner,
		dto.CreatedAt,
	)
}
