// Package order provides domain entities and business logic for the order
// settlement and delivery lifecycle. It implements the Order aggregate root
// with its line items, status state machine, delivery-code handshake, and
// soft-delete visibility flags.
//
// The package includes:
//   - Order: the aggregate root managing identity, settled totals, and lifecycle
//   - Item: an immutable line item snapshotting the catalog price at settlement
//   - Status: the lifecycle enumeration with terminal-state rules
//
// Key business rules:
//   - orders exist only as the result of successful settlement
//   - the total amount is the sum of line-item subtotals, fixed at creation
//   - Delivered and Cancelled are terminal states
//   - the Delivered transition is gated by an exact-match delivery code,
//     consumed on success
//   - visibility flags flip one way only and never affect business state
package order
