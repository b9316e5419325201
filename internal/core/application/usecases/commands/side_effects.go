package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// notifications runs the side effects that follow a committed state change:
// live broadcasts and SMS pushes. They execute strictly after commit and are
// best effort. Each failure is logged on its own and swallowed; one failing
// channel never stops the others and never fails the command.
type notifications struct {
	restaurants ports.RestaurantRepository
	customers   ports.CustomerRepository
	broadcaster ports.EventBroadcaster
	notifier    ports.SMSNotifier
	logger      *slog.Logger
}

func newNotifications(
	restaurants ports.RestaurantRepository,
	customers ports.CustomerRepository,
	broadcaster ports.EventBroadcaster,
	notifier ports.SMSNotifier,
	logger *slog.Logger,
) notifications {
	return notifications{
		restaurants: restaurants,
		customers:   customers,
		broadcaster: broadcaster,
		notifier:    notifier,
		logger:      logger.With("component", "notifications"),
	}
}

// statusChanged pushes a status broadcast first, then the status SMS if the
// new status carries customer-facing copy.
func (n notifications) statusChanged(ctx context.Context, o *order.Order, status order.Status) {
	if err := n.broadcaster.Broadcast(ctx, ports.StatusEvent{Status: status.String()}); err != nil {
		n.logger.Error("status broadcast failed",
			"order_id", o.ID().String(), "status", status.String(), "error", err)
	}

	message, ok := n.statusMessage(ctx, o, status)
	if !ok {
		return
	}

	n.sms(ctx, o, message)
}

// deliveryCodeIssued sends the delivery code to the customer.
func (n notifications) deliveryCodeIssued(ctx context.Context, o *order.Order, code string) {
	n.sms(ctx, o, fmt.Sprintf("Your food delivery code is: %s", code))
}

// driverUpdate pushes a driver location broadcast and, when the driver
// attached a message, relays it to the customer by SMS.
func (n notifications) driverUpdate(ctx context.Context, o *order.Order, event ports.DriverUpdateEvent) {
	if err := n.broadcaster.Broadcast(ctx, event); err != nil {
		n.logger.Error("driver update broadcast failed",
			"order_id", o.ID().String(), "error", err)
	}

	if event.Message == "" {
		return
	}

	n.sms(ctx, o, fmt.Sprintf("Driver update: %s", event.Message))
}

// statusMessage returns the SMS copy for the given status. Only Preparing,
// OutForDelivery and Delivered notify the customer; all other transitions
// are broadcast-only.
func (n notifications) statusMessage(ctx context.Context, o *order.Order, status order.Status) (string, bool) {
	var format string
	switch status {
	case order.StatusPreparing:
		format = "Order accepted! %s is preparing your food."
	case order.StatusOutForDelivery:
		format = "Food on the way! Your driver has left %s. Track live on the app!"
	case order.StatusDelivered:
		format = "Delivered! Enjoy your meal from %s."
	default:
		return "", false
	}

	restaurant, err := n.restaurants.Get(ctx, o.RestaurantID())
	if err != nil {
		n.logger.Error("restaurant lookup for status SMS failed",
			"order_id", o.ID().String(), "restaurant_id", o.RestaurantID().String(), "error", err)
		return "", false
	}

	return fmt.Sprintf(format, restaurant.Name), true
}

func (n notifications) sms(ctx context.Context, o *order.Order, message string) {
	customer, err := n.customers.Get(ctx, o.CustomerID())
	if err != nil {
		n.logger.Error("customer lookup for SMS failed",
			"order_id", o.ID().String(), "customer_id", o.CustomerID().String(), "error", err)
		return
	}

	if err = n.notifier.Send(ctx, customer.Phone, message); err != nil {
		n.logger.Error("SMS send failed",
			"order_id", o.ID().String(), "error", err)
	}
}
