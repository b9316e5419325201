package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrHideOrderCommandIsNotConstructed is returned when the command was not
// created through its constructor.
var ErrHideOrderCommandIsNotConstructed = errors.New(
	"HideOrderCommand must be created via NewHideOrderCommand constructor",
)

// HideOrderCommand represents a request to remove an order from the acting
// user's own view. The order itself is untouched; only the requester's
// visibility flag flips, and only from visible to hidden.
type HideOrderCommand struct { //nolint:recvcheck //using for validation
	actor   account.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewHideOrderCommand creates an order hiding command.
func NewHideOrderCommand(actor account.Actor, orderID kernel.UUID) (HideOrderCommand, error) {
	cmd := HideOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return HideOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HideOrderCommand) Validate() error {
	return c.guard.Validate(ErrHideOrderCommandIsNotConstructed)
}

// Actor returns the authenticated actor hiding the order.
func (c HideOrderCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the order to hide.
func (c HideOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *HideOrderCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *HideOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}
