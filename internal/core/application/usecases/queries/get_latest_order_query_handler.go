package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLatestOrderQueryHandler reads the customer's most recent visible order.
type GetLatestOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetLatestOrderQueryHandler creates a handler for latest-order queries.
func NewGetLatestOrderQueryHandler(db *gorm.DB) GetLatestOrderQueryHandler {
	return GetLatestOrderQueryHandler{db: db}
}

// Handle returns the newest visible order, or ObjectNotFoundError when the
// customer has none.
func (h GetLatestOrderQueryHandler) Handle(
	ctx context.Context,
	query GetLatestOrderQuery,
) (GetLatestOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLatestOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			status,
			total_amount,
			delivery_address,
			delivery_lat,
			delivery_lng,
			created_at
		FROM orders
		WHERE customer_id = ? AND visible_to_customer
		ORDER BY created_at DESC
		LIMIT 1
	`, query.CustomerID().Bytes()).Row()

	var resp GetLatestOrderQueryResponse
	var id, restaurantID uuid.UUID
	var status string
	var createdAt time.Time

	err := row.Scan(
		&id,
		&restaurantID,
		&status,
		&resp.TotalAmount,
		&resp.DeliveryAddress,
		&resp.DeliveryLat,
		&resp.DeliveryLng,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetLatestOrderQueryResponse{}, errs.NewObjectNotFoundError(
				"latest order for customer", query.CustomerID().String())
		}
		return GetLatestOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetLatestOrderQueryResponse{}, err
	}
	if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return GetLatestOrderQueryResponse{}, err
	}
	if resp.Status, err = order.StatusFromString(status); err != nil {
		return GetLatestOrderQueryResponse{}, err
	}
	resp.CreatedAt = createdAt

	return resp, nil
}
