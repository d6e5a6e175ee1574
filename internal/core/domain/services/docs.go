// Package services provides domain services that orchestrate business
// operations which don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CarrierAssigner: A domain service for picking the carrier, tracking
//     number, and cost/distance snapshot of a newly created shipment
//
// Domain services coordinate between aggregates and value objects,
// following Domain-Driven Design principles.
package services
