package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrInvalidDeliveryCode is returned by CompleteDelivery when no code is
	// stored or the submitted code does not match. The order is left
	// unchanged in both cases.
	ErrInvalidDeliveryCode = errors.New("invalid delivery code")
)

// Order is the aggregate root of the settlement and delivery lifecycle.
// Orders are created only through successful settlement, never directly.
//
// Invariants:
//   - total amount equals the sum of the line items' subtotals, fixed at
//     creation and never recomputed from live catalog prices
//   - line items are immutable after commit and owned exclusively by the order
//   - status moves through the lifecycle defined by Status; Delivered and
//     Cancelled are terminal
//   - the visibility flags are independent, one-way presentation filters
//     (true to false only), unrelated to business state
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the paying customer
	customerID kernel.UUID

	// restaurantID references the restaurant fulfilling the order
	restaurantID kernel.UUID

	// items are the committed line-item snapshots
	items []Item

	// totalAmount is the settled total in minor currency units
	totalAmount int64

	// paymentRef is the captured charge's reference at the payment gateway
	paymentRef string

	// deliveryAddress is stored verbatim as supplied by the customer
	deliveryAddress string

	// deliveryPoint is the parsed delivery coordinate (nil if not supplied)
	deliveryPoint *kernel.GeoPoint

	// deliveryCode is the single-use code gating the Delivered transition
	// (nil when no code is outstanding)
	deliveryCode *string

	// status is the current lifecycle state
	status Status

	// visibleToCustomer / visibleToOwner are soft-delete presentation flags
	visibleToCustomer bool
	visibleToOwner    bool

	// createdAt is the settlement commit time
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a settled order in Pending status. The total amount is
// computed from the supplied line items and fixed for the order's lifetime.
// At least one item is required and the total must be positive; paymentRef
// must reference the captured charge.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	paymentRef string,
	deliveryAddress string,
	deliveryPoint *kernel.GeoPoint,
) (*Order, error) {
	order := &Order{
		status:            StatusPending,
		visibleToCustomer: true,
		visibleToOwner:    true,
		createdAt:         time.Now().UTC(),
		isConstructed:     true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setItems(items),
		order.setPaymentRef(paymentRef),
		order.setDeliveryPoint(deliveryPoint),
	); err != nil {
		return nil, err
	}

	var total int64
	for _, item := range order.items {
		total += item.Subtotal()
	}
	if total <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalAmount", fmt.Errorf("%d is not greater than 0", total))
	}

	order.totalAmount = total
	order.deliveryAddress = deliveryAddress
	return order, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts the stored total, status, delivery code, visibility flags, and
// creation time as-is; the total is deliberately NOT recomputed from items.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	totalAmount int64,
	paymentRef string,
	deliveryAddress string,
	deliveryPoint *kernel.GeoPoint,
	deliveryCode *string,
	status Status,
	visibleToCustomer bool,
	visibleToOwner bool,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		totalAmount:       totalAmount,
		deliveryAddress:   deliveryAddress,
		deliveryCode:      deliveryCode,
		visibleToCustomer: visibleToCustomer,
		visibleToOwner:    visibleToOwner,
		createdAt:         createdAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setItems(items),
		order.setPaymentRef(paymentRef),
		order.setDeliveryPoint(deliveryPoint),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.status = status
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the paying customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the fulfilling restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Items returns a copy of the committed line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the settled total in minor currency units.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// PaymentRef returns the payment gateway's charge reference.
func (o *Order) PaymentRef() string {
	return o.paymentRef
}

// DeliveryAddress returns the delivery address as supplied by the customer.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryPoint returns the parsed delivery coordinate, or nil when the
// customer supplied no coordinates.
func (o *Order) DeliveryPoint() *kernel.GeoPoint {
	return o.deliveryPoint
}

// DeliveryCode returns the outstanding delivery code, or nil when none is
// issued or the last one was consumed.
func (o *Order) DeliveryCode() *string {
	return o.deliveryCode
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// VisibleToCustomer reports whether the order appears in the customer's history.
func (o *Order) VisibleToCustomer() bool {
	return o.visibleToCustomer
}

// VisibleToOwner reports whether the order appears on the owner's dashboard.
func (o *Order) VisibleToOwner() bool {
	return o.visibleToOwner
}

// CreatedAt returns the settlement commit time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to newStatus.
//
// newStatus must be a recognized status and the order must not already be in
// a terminal state. Beyond the terminal guard, no adjacency is enforced:
// owners may jump the order to any recognized status.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("order is already %s, which is terminal", o.status),
		)
	}

	o.status = newStatus
	return nil
}

// IssueDeliveryCode stores a new delivery code, overwriting any unconsumed
// prior code. The code must be exactly four digits.
func (o *Order) IssueDeliveryCode(code string) error {
	if len(code) != 4 {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryCode", fmt.Errorf("%q is not a 4-digit code", code))
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause(
				"deliveryCode", fmt.Errorf("%q is not a 4-digit code", code))
		}
	}

	o.deliveryCode = &code
	return nil
}

// CompleteDelivery finishes the handshake: if submitted matches the stored
// delivery code the order becomes Delivered and the code is consumed.
// Fails closed with ErrInvalidDeliveryCode when no code is stored or the
// codes differ, leaving the order unchanged. A consumed code cannot be used
// again; only reissuance makes another completion possible, and a terminal
// order rejects even a reissued code.
func (o *Order) CompleteDelivery(submitted string) error {
	if o.deliveryCode == nil || *o.deliveryCode != submitted {
		return ErrInvalidDeliveryCode
	}

	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("order is already %s, which is terminal", o.status),
		)
	}

	o.status = StatusDelivered
	o.deliveryCode = nil
	return nil
}

// HideFromCustomer removes the order from the customer's history view.
// Only terminal orders can be hidden; active orders must stay visible.
// The flag is one-way and does not affect owner visibility.
func (o *Order) HideFromCustomer() error {
	if !o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot hide an active order in status %s", o.status),
		)
	}

	o.visibleToCustomer = false
	return nil
}

// HideFromOwner removes the order from the owner's dashboard view.
// The flag is one-way and does not affect customer visibility.
func (o *Order) HideFromOwner() {
	o.visibleToOwner = false
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurantID", err)
	}
	o.restaurantID = restaurantID
	return nil
}

// setItems validates and copies the line items. The total amount is handled
// by the constructors: NewOrder derives it from the items, RestoreOrder keeps
// the stored value.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPaymentRef(paymentRef string) error {
	if paymentRef == "" {
		return errs.NewValueIsRequiredError("paymentRef")
	}
	o.paymentRef = paymentRef
	return nil
}

func (o *Order) setDeliveryPoint(point *kernel.GeoPoint) error {
	if point == nil {
		return nil
	}
	if err := point.Validate(); err != nil {
		return err
	}
	o.deliveryPoint = point
	return nil
}
