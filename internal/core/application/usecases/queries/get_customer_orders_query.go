// Package queries contains read-only operations over the order store.
// Query handlers bypass the domain aggregates and read projection rows
// straight from the database, per the CQRS split.
package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrGetCustomerOrdersQueryIsNotConstructed is returned when the query was
// not created through its constructor.
var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves a customer's order history: every order
// the customer has not hidden, newest first.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates an order history query for the customer.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose history is requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerOrdersQueryResponse is one row of the customer's history.
type GetCustomerOrdersQueryResponse struct {
	ID              kernel.UUID
	RestaurantID    kernel.UUID
	Status          order.Status
	TotalAmount     int64
	DeliveryAddress string
	CreatedAt       time.Time
}
