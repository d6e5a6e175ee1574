// Package ports defines the contracts between the application core and its
// adapters: the durable persistence capability consumed by the Shipment
// Store and the store contract consumed by use cases.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

// ShipmentPersistence is the injected durable storage capability.
// The Store hydrates from Load once at construction and flushes the full
// snapshot with Save after every mutation.
//
// Save and Load are assumed atomic per invocation but not transactional
// across the store's read-modify-write sequence; the store layers its own
// per-shipment serialization on top.
type ShipmentPersistence interface {
	// Load returns every persisted shipment in its original insertion order.
	// Called once at process/session start.
	Load(ctx context.Context) ([]*shipment.Shipment, error)

	// Save persists the full shipment snapshot, replacing previous state.
	// Called after every mutation batch.
	Save(ctx context.Context, shipments []*shipment.Shipment) error
}
