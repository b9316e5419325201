package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The expected progression is:
//
//	Pending ──> Preparing ──> ReadyForPickup ──> OutForDelivery ──> Delivered
//	    │            │               │                  │
//	    └────────────┴───────────────┴──────────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Transitions out of a terminal state
// are rejected; transitions between non-terminal states only check that the
// target is a recognized status, not that it is the next step in the
// progression. Restaurant owners use that freedom to correct mistakes
// (e.g. jumping back from OutForDelivery to Preparing).
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status set when an order is committed
	// by settlement, before the restaurant accepts it.
	StatusPending

	// StatusPreparing indicates the restaurant accepted the order and is
	// preparing the food.
	StatusPreparing

	// StatusReadyForPickup indicates the food is ready and waiting for a
	// driver.
	StatusReadyForPickup

	// StatusOutForDelivery indicates a driver picked up the order and is
	// on the way to the customer.
	StatusOutForDelivery

	// StatusDelivered indicates the order reached the customer.
	// Terminal; reached only through the delivery-code handshake.
	StatusDelivered

	// StatusCancelled indicates the order was called off before delivery.
	// Terminal.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their wire
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusPending:        "PENDING",
		StatusPreparing:      "PREPARING",
		StatusReadyForPickup: "READY_FOR_PICKUP",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusCancelled:      "CANCELLED",
	}
}

// getValidStatusStrings returns only the valid statuses keyed by wire
// representation, to support parsing and validation.
func getValidStatusStrings() map[string]Status {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[string]Status{
		"PENDING":          StatusPending,
		"PREPARING":        StatusPreparing,
		"READY_FOR_PICKUP": StatusReadyForPickup,
		"OUT_FOR_DELIVERY": StatusOutForDelivery,
		"DELIVERED":        StatusDelivered,
		"CANCELLED":        StatusCancelled,
	}
}

// StatusFromString parses the wire representation of a status.
// Unrecognized strings fail with a validation error and no side effects.
func StatusFromString(s string) (Status, error) {
	if status, ok := getValidStatusStrings()[s]; ok {
		return status, nil
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is a recognized enum member.
// StatusUnknown and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status ends the order lifecycle.
// No transition is allowed out of a terminal status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
