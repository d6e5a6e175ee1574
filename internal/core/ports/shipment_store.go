package ports

import (
	"context"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// MutateFunc applies an in-place change to a shipment clone inside a store
// update. Returning an error aborts the update without replacing the record.
type MutateFunc func(*shipment.Shipment) error

// ShipmentStore is the contract of the canonical in-memory shipment
// collection. The store exclusively owns the records: all reads return
// defensive clones and all mutation happens by whole-record replacement
// through Add/UpdateByID/UpdateByOrderID, never by patching a returned
// value.
//
// Update methods serialize per shipment id, satisfying the requirement of
// at most one in-flight mutating operation per shipment. Reads may run
// unsynchronized against in-flight writes and observe either the pre- or
// post-mutation record, never a torn one.
type ShipmentStore interface {
	// Add inserts a new shipment and flushes the snapshot to persistence.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// UpdateByID clones the shipment with the given id, applies mutate,
	// replaces the record, and flushes. Returns the updated record.
	// Fails with errs.ObjectNotFoundError when the id is absent.
	UpdateByID(ctx context.Context, id kernel.UUID, mutate MutateFunc) (*shipment.Shipment, error)

	// UpdateByOrderID is UpdateByID keyed by order reference; under
	// duplicate order ids the newest active record is chosen.
	UpdateByOrderID(ctx context.Context, orderID string, mutate MutateFunc) (*shipment.Shipment, error)

	// GetByID returns a clone of the shipment with the given id.
	GetByID(id kernel.UUID) (*shipment.Shipment, error)

	// GetByOrderID returns a clone of the shipment referencing the order.
	// Under duplicate order ids the newest active (non-cancelled) record
	// wins, falling back to the newest overall.
	GetByOrderID(orderID string) (*shipment.Shipment, error)

	// GetByTrackingKey returns a clone of the shipment with the given
	// compound (trackingNumber, carrier) key.
	GetByTrackingKey(trackingNumber string, c carrier.Carrier) (*shipment.Shipment, error)

	// All returns clones of every shipment, newest-first.
	All() []*shipment.Shipment

	// AllInStatuses returns clones of shipments currently in any of the
	// given statuses, newest-first.
	AllInStatuses(statuses ...shipment.Status) []*shipment.Shipment
}
