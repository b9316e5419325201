package ports

import (
	"context"
)

// SMSNotifier abstracts the outbound SMS provider. Delivery is best effort:
// callers treat failures as log-and-continue, never as command failures.
type SMSNotifier interface {
	// Send delivers message to the given phone number.
	Send(ctx context.Context, phone string, message string) error
}
