package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrInitiatePaymentCommandIsNotConstructed is returned when the command was
// not created through its constructor.
var ErrInitiatePaymentCommandIsNotConstructed = errors.New(
	"InitiatePaymentCommand must be created via NewInitiatePaymentCommand constructor",
)

// InitiatePaymentCommand represents a customer's request to start paying for
// a cart. The cart carries only menu item references and quantities; amounts
// are always computed server side from the current catalog.
//
// Example:
//
//	cmd, err := NewInitiatePaymentCommand(actor, restaurantID, lines)
//	if err != nil {
//	    return fmt.Errorf("invalid cart: %w", err)
//	}
//
//	charge, err := handler.Handle(ctx, cmd)
//	// charge.Reference goes back to the client for checkout
type InitiatePaymentCommand struct { //nolint:recvcheck //using for validation
	actor        account.Actor
	restaurantID kernel.UUID
	lines        []services.CartLine

	guard guard.ConstructorGuard
}

// NewInitiatePaymentCommand creates a command to start payment for a cart.
// The actor must be valid and the cart must have at least one line.
func NewInitiatePaymentCommand(
	actor account.Actor,
	restaurantID kernel.UUID,
	lines []services.CartLine,
) (InitiatePaymentCommand, error) {
	cmd := InitiatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRestaurantID(restaurantID),
		cmd.setLines(lines),
	); err != nil {
		return InitiatePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InitiatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrInitiatePaymentCommandIsNotConstructed)
}

// Actor returns the authenticated customer initiating the payment.
func (c InitiatePaymentCommand) Actor() account.Actor {
	return c.actor
}

// RestaurantID returns the restaurant the cart belongs to.
func (c InitiatePaymentCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Lines returns the cart lines.
func (c InitiatePaymentCommand) Lines() []services.CartLine {
	lines := make([]services.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *InitiatePaymentCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *InitiatePaymentCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurantID", err)
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *InitiatePaymentCommand) setLines(lines []services.CartLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("cart lines")
	}

	c.lines = make([]services.CartLine, len(lines))
	copy(c.lines, lines)
	return nil
}
