package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrGetOwnerOrdersQueryIsNotConstructed is returned when the query was not
// created through its constructor.
var ErrGetOwnerOrdersQueryIsNotConstructed = errors.New(
	"GetOwnerOrdersQuery must be created via NewGetOwnerOrdersQuery constructor",
)

// GetOwnerOrdersQuery retrieves the dashboard orders for every restaurant the
// owner operates, excluding orders the owner has hidden.
type GetOwnerOrdersQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOwnerOrdersQuery creates a dashboard query for the owner.
func NewGetOwnerOrdersQuery(ownerID kernel.UUID) (GetOwnerOrdersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetOwnerOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("ownerID", err)
	}

	return GetOwnerOrdersQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOwnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerOrdersQueryIsNotConstructed)
}

// OwnerID returns the owner whose dashboard is requested.
func (q GetOwnerOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// GetOwnerOrdersQueryResponse is one row of the owner's dashboard.
type GetOwnerOrdersQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	RestaurantID    kernel.UUID
	Status          order.Status
	TotalAmount     int64
	DeliveryAddress string
	CreatedAt       time.Time
}
