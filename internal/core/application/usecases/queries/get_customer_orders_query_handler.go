package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's visible order history.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer history queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns the customer's orders newest first, excluding hidden ones.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			status,
			total_amount,
			delivery_address,
			created_at
		FROM orders
		WHERE customer_id = ? AND visible_to_customer
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCustomerOrdersQueryResponse
		var id, restaurantID uuid.UUID
		var status string
		var createdAt time.Time

		err = rows.Scan(
			&id,
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
