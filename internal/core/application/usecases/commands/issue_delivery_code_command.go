package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrIssueDeliveryCodeCommandIsNotConstructed is returned when the command
// was not created through its constructor.
var ErrIssueDeliveryCodeCommandIsNotConstructed = errors.New(
	"IssueDeliveryCodeCommand must be created via NewIssueDeliveryCodeCommand constructor",
)

// IssueDeliveryCodeCommand represents a request to generate a fresh delivery
// code for an order and text it to the customer. Reissuing replaces any
// outstanding code.
//
// Any authenticated actor may request a code; the code itself is what gates
// the Delivered transition.
type IssueDeliveryCodeCommand struct { //nolint:recvcheck //using for validation
	actor   account.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewIssueDeliveryCodeCommand creates a delivery code issuance command.
func NewIssueDeliveryCodeCommand(actor account.Actor, orderID kernel.UUID) (IssueDeliveryCodeCommand, error) {
	cmd := IssueDeliveryCodeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return IssueDeliveryCodeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IssueDeliveryCodeCommand) Validate() error {
	return c.guard.Validate(ErrIssueDeliveryCodeCommandIsNotConstructed)
}

// Actor returns the authenticated actor requesting the code.
func (c IssueDeliveryCodeCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the order the code is issued for.
func (c IssueDeliveryCodeCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *IssueDeliveryCodeCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *IssueDeliveryCodeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}
