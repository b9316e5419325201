package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrReportDriverLocationCommandIsNotConstructed is returned when the command
// was not created through its constructor.
var ErrReportDriverLocationCommandIsNotConstructed = errors.New(
	"ReportDriverLocationCommand must be created via NewReportDriverLocationCommand constructor",
)

// ReportDriverLocationCommand represents a driver position report for an
// order in delivery. Distance and ETA are display strings relayed verbatim;
// the optional message additionally goes to the customer by SMS.
type ReportDriverLocationCommand struct { //nolint:recvcheck //using for validation
	actor    account.Actor
	orderID  kernel.UUID
	position kernel.GeoPoint
	distance string
	eta      string
	message  string

	guard guard.ConstructorGuard
}

// NewReportDriverLocationCommand creates a driver location report command.
// distance, eta, and message are optional.
func NewReportDriverLocationCommand(
	actor account.Actor,
	orderID kernel.UUID,
	position kernel.GeoPoint,
	distance string,
	eta string,
	message string,
) (ReportDriverLocationCommand, error) {
	cmd := ReportDriverLocationCommand{
		distance: distance,
		eta:      eta,
		message:  message,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setPosition(position),
	); err != nil {
		return ReportDriverLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrReportDriverLocationCommandIsNotConstructed)
}

// Actor returns the authenticated actor reporting position.
func (c ReportDriverLocationCommand) Actor() account.Actor {
	return c.actor
}

// OrderID returns the order the report belongs to.
func (c ReportDriverLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Position returns the reported coordinate.
func (c ReportDriverLocationCommand) Position() kernel.GeoPoint {
	return c.position
}

// Distance returns the display distance string, possibly empty.
func (c ReportDriverLocationCommand) Distance() string {
	return c.distance
}

// ETA returns the display ETA string, possibly empty.
func (c ReportDriverLocationCommand) ETA() string {
	return c.eta
}

// Message returns the driver's free-form message, possibly empty.
func (c ReportDriverLocationCommand) Message() string {
	return c.message
}

func (c *ReportDriverLocationCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ReportDriverLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *ReportDriverLocationCommand) setPosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}

	c.position = position
	return nil
}
