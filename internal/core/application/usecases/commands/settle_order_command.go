package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrSettleOrderCommandIsNotConstructed is returned when the command was not
// created through its constructor.
var ErrSettleOrderCommandIsNotConstructed = errors.New(
	"SettleOrderCommand must be created via NewSettleOrderCommand constructor",
)

// SettleOrderCommand represents the client's claim that payment for a cart
// completed: the charge reference from initiation, the gateway's payment
// reference, and the gateway signature over both. The cart is resubmitted so
// the committed order can be repriced server side.
type SettleOrderCommand struct { //nolint:recvcheck //using for validation
	actor           account.Actor
	restaurantID    kernel.UUID
	lines           []services.CartLine
	chargeRef       string
	paymentRef      string
	signature       string
	deliveryAddress string
	deliveryPoint   *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewSettleOrderCommand creates a settlement command. The payment references
// and signature are required; deliveryPoint is optional.
func NewSettleOrderCommand(
	actor account.Actor,
	restaurantID kernel.UUID,
	lines []services.CartLine,
	chargeRef string,
	paymentRef string,
	signature string,
	deliveryAddress string,
	deliveryPoint *kernel.GeoPoint,
) (SettleOrderCommand, error) {
	cmd := SettleOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRestaurantID(restaurantID),
		cmd.setLines(lines),
		cmd.setRequired("chargeRef", chargeRef, &cmd.chargeRef),
		cmd.setRequired("paymentRef", paymentRef, &cmd.paymentRef),
		cmd.setRequired("signature", signature, &cmd.signature),
		cmd.setRequired("deliveryAddress", deliveryAddress, &cmd.deliveryAddress),
		cmd.setDeliveryPoint(deliveryPoint),
	); err != nil {
		return SettleOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleOrderCommand) Validate() error {
	return c.guard.Validate(ErrSettleOrderCommandIsNotConstructed)
}

// Actor returns the authenticated customer settling the order.
func (c SettleOrderCommand) Actor() account.Actor {
	return c.actor
}

// RestaurantID returns the restaurant the order is placed with.
func (c SettleOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Lines returns the cart lines to commit.
func (c SettleOrderCommand) Lines() []services.CartLine {
	lines := make([]services.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// ChargeRef returns the gateway charge reference from payment initiation.
func (c SettleOrderCommand) ChargeRef() string {
	return c.chargeRef
}

// PaymentRef returns the gateway's reference for the captured payment.
func (c SettleOrderCommand) PaymentRef() string {
	return c.paymentRef
}

// Signature returns the gateway signature over charge and payment references.
func (c SettleOrderCommand) Signature() string {
	return c.signature
}

// DeliveryAddress returns the customer-supplied delivery address.
func (c SettleOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryPoint returns the delivery coordinate, or nil when not supplied.
func (c SettleOrderCommand) DeliveryPoint() *kernel.GeoPoint {
	return c.deliveryPoint
}

func (c *SettleOrderCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *SettleOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurantID", err)
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *SettleOrderCommand) setLines(lines []services.CartLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("cart lines")
	}

	c.lines = make([]services.CartLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *SettleOrderCommand) setRequired(name, value string, field *string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}

	*field = value
	return nil
}

func (c *SettleOrderCommand) setDeliveryPoint(point *kernel.GeoPoint) error {
	if point == nil {
		return nil
	}
	if err := point.Validate(); err != nil {
		return err
	}

	c.deliveryPoint = point
	return nil
}
