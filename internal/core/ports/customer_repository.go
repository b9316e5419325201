package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
)

// Customer is the read model of a customer as this service needs it:
// identity and the phone number notifications go to. Account management is
// outside this service.
type Customer struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

// CustomerRepository provides read access to customer reference data.
type CustomerRepository interface {
	// Get retrieves a customer by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (Customer, error)
}
