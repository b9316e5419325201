package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOwnerOrdersQueryHandler reads the owner's visible dashboard orders.
type GetOwnerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOwnerOrdersQueryHandler creates a handler for owner dashboard queries.
func NewGetOwnerOrdersQueryHandler(db *gorm.DB) GetOwnerOrdersQueryHandler {
	return GetOwnerOrdersQueryHandler{db: db}
}

// Handle returns orders of the owner's restaurants newest first, excluding
// orders the owner has hidden. Customer visibility flags do not apply here.
func (h GetOwnerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOwnerOrdersQuery,
) ([]GetOwnerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOwnerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.restaurant_id,
			o.status,
			o.total_amount,
			o.delivery_address,
			o.created_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE r.owner_id = ? AND o.visible_to_owner
		ORDER BY o.created_at DESC
	`, query.OwnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOwnerOrdersQueryResponse
		var id, customerID, restaurantID uuid.UUID
		var status string
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&status,
			&resp.TotalAmount,
			&resp.DeliveryAddress,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if resp.Status, err = order.StatusFromString(status); err != nil {
			return nil, err
		}
		resp.CreatedAt = createdAt

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
