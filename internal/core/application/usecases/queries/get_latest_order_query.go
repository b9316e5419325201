package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrGetLatestOrderQueryIsNotConstructed is returned when the query was not
// created through its constructor.
var ErrGetLatestOrderQueryIsNotConstructed = errors.New(
	"GetLatestOrderQuery must be created via NewGetLatestOrderQuery constructor",
)

// GetLatestOrderQuery retrieves the customer's most recent visible order.
// Backs the live tracking page, which always shows the newest order.
type GetLatestOrderQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLatestOrderQuery creates a latest-order query for the customer.
func NewGetLatestOrderQuery(customerID kernel.UUID) (GetLatestOrderQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetLatestOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}

	return GetLatestOrderQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLatestOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestOrderQueryIsNotConstructed)
}

// CustomerID returns the customer whose latest order is requested.
func (q GetLatestOrderQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetLatestOrderQueryResponse is the tracking view of the newest order.
// DeliveryLat/DeliveryLng are nil when the customer supplied no coordinates.
type GetLatestOrderQueryResponse struct {
	ID              kernel.UUID
	RestaurantID    kernel.UUID
	Status          order.Status
	TotalAmount     int64
	DeliveryAddress string
	DeliveryLat     *float64
	DeliveryLng     *float64
	CreatedAt       time.Time
}
