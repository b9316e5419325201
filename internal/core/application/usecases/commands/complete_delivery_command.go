package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrCompleteDeliveryCommandIsNotConstructed is returned when the command
// was not created through its constructor.
var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a delivery code submission attempting to
// finish the handshake and mark the order Delivered.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor   account.Actor
	orderID kernel.UUID
	code    string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a delivery completion command.
// The submitted code is required but not otherwise validated here; matching
// happens against the stored code.
func NewCompleteDeliveryCommand(
	actor account.Actor, orderID kernel.UUID, code string,
) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setCode(code),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// Actor returns the authenticated actor submitting the code.
func (c CompleteDeliveryCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the order being completed.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Code returns the submitted delivery code.
func (c CompleteDeliveryCommand) Code() string {
	return c.code
}

func (c *CompleteDeliveryCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CompleteDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteDeliveryCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}
