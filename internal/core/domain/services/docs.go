// Package services contains domain services: operations that span aggregates
// or need data no single aggregate owns.
//
// PriceCalculator implements server-side cart pricing. It builds immutable
// line-item snapshots from a submitted cart and the current catalog prices,
// guaranteeing that client-supplied amounts never influence what is charged
// or committed.
package services
