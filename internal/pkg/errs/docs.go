// Package errs provides standardized error types for the food delivery backend.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the error taxonomy of the order core:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a value lies outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found
//   - AuthorizationError: the actor may not perform the action
//   - PaymentFailedError: a payment gateway interaction failed
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Handlers map these classifications onto transport responses; the types
// themselves stay transport agnostic.
package errs
