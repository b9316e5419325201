package ports

import (
	"context"
)

// EventDriverUpdate tags driver location broadcasts so clients can tell them
// apart from status pushes.
const EventDriverUpdate = "DRIVER_UPDATE"

// StatusEvent is the payload pushed to live subscribers when an order's
// status changes.
type StatusEvent struct {
	Status string `json:"status"`
}

// DriverUpdateEvent is the payload pushed to live subscribers when a driver
// reports position. Distance and Time are display strings relayed verbatim
// from the reporting client.
type DriverUpdateEvent struct {
	Event    string  `json:"event"`
	OrderID  string  `json:"order_id"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Distance string  `json:"distance"`
	Time     string  `json:"time"`
	Message  string  `json:"message"`
}

// EventBroadcaster fans an event out to every live subscriber. Delivery is
// best effort: callers treat failures as log-and-continue, never as command
// failures.
type EventBroadcaster interface {
	// Broadcast serializes event as JSON and sends it to all subscribers.
	Broadcast(ctx context.Context, event any) error
}
