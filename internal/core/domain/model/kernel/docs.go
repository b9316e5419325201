// Package kernel provides core domain primitives for the food delivery system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a value object for WGS84 coordinates with distance calculation
//   - Phone: a value object for E.164 phone numbers with prefix normalization
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
