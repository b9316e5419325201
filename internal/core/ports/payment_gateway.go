package ports

import (
	"context"
)

// Charge is a payment obligation created at the gateway before settlement.
// Reference is the gateway's identifier for the charge; the client pays
// against it and returns it, signed, at settlement.
type Charge struct {
	Reference string
	Amount    int64
	Currency  string
}

// PaymentGateway abstracts the external payment provider.
//
// Flow: CreateCharge during payment initiation, VerifySignature when the
// client reports a completed payment, Refund as compensation when commit
// fails after the money moved.
type PaymentGateway interface {
	// CreateCharge registers a charge for the given amount in minor currency
	// units. receipt is an opaque merchant-side correlation value.
	CreateCharge(ctx context.Context, amount int64, currency string, receipt string) (Charge, error)

	// VerifySignature checks the gateway's signature over the charge
	// reference and payment reference. Returns an error when the signature
	// does not prove a completed payment.
	VerifySignature(chargeRef, paymentRef, signature string) error

	// Refund returns the full captured amount of the given payment.
	Refund(ctx context.Context, paymentRef string, amount int64) error
}
