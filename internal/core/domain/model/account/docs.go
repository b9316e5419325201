// Package account provides the identity primitives used to gate operations
// in the food delivery system.
//
// The package includes:
//   - Role: a closed enumeration of CUSTOMER, OWNER, and DRIVER with one
//     authorization predicate per gated action
//   - Actor: the authenticated user performing a request
//
// Centralizing role checks here keeps authorization decisions out of
// transport handlers and makes them testable in isolation.
package account
