// Package shipment provides domain entities and business logic for the
// shipment lifecycle in the logistics engine. It implements the Shipment
// aggregate root with state transitions and an append-only tracking history.
//
// The package includes:
//   - Shipment: The aggregate root owning identity, carrier assignment, and lifecycle
//   - Status: A state machine that enforces valid shipment status transitions
//   - TrackingEvent: An immutable, timestamped milestone owned by its shipment
//   - ContactInfo: The sender/receiver contact snapshot fixed at creation
//
// Key business rules:
//   - Shipments must have a valid identifier, order reference, device snapshot,
//     carrier, and tracking number
//   - Status follows pending -> scheduled -> picked_up -> in_transit -> delivered,
//     with cancelled reachable from any non-terminal state
//   - The tracking history is never empty after creation, is append-only, and
//     its timestamps are non-decreasing
//   - Schedule and Cancel are idempotent: repeating them in their target state
//     is a no-op rather than a double transition
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
