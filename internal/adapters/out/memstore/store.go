// Package memstore implements the canonical in-memory Shipment Store.
//
// The store owns the deduplicated shipment collection keyed by id, hydrated
// from the injected persistence port at construction and flushed back after
// every mutation. Mutation is whole-record replacement: each update clones
// the current record, applies the change, and swaps the pointer, so readers
// never observe a partially-updated shipment.
//
// Updates are serialized per shipment id with a keyed mutex, which enforces
// the at-most-one-in-flight-mutation-per-id requirement without blocking
// unrelated shipments. A failed save is reported to the caller but the
// in-memory mutation is not rolled back; memory and durable state diverge
// until the next successful flush.
package memstore

import (
	"context"
	"sync"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/im7mortal/kmutex"
)

// Store is the in-memory shipment collection. It implements
// ports.ShipmentStore.
type Store struct {
	persistence ports.ShipmentPersistence

	// idLocks serializes mutations per shipment id.
	idLocks *kmutex.Kmutex

	// persistMu serializes snapshot flushes so saves land in mutation order.
	persistMu sync.Mutex

	// mu guards shipments and index.
	mu        sync.RWMutex
	shipments []*shipment.Shipment // insertion order, oldest first
	index     map[string]int       // shipment id -> position in shipments
}

// NewStore creates a store hydrated from the persistence port.
// Fails with errs.PersistenceError when loading fails and with a domain
// validation error when a loaded record was not properly restored.
func NewStore(ctx context.Context, persistence ports.ShipmentPersistence) (*Store, error) {
	loaded, err := persistence.Load(ctx)
	if err != nil {
		return nil, errs.NewPersistenceError("load", err)
	}

	store := &Store{
		persistence: persistence,
		idLocks:     kmutex.New(),
		shipments:   make([]*shipment.Shipment, 0, len(loaded)),
		index:       make(map[string]int, len(loaded)),
	}

	for _, aggregate := range loaded {
		if err := aggregate.Validate(); err != nil {
			return nil, err
		}
		store.index[aggregate.ID().String()] = len(store.shipments)
		store.shipments = append(store.shipments, aggregate)
	}

	return store, nil
}

// Add inserts or replaces the record with the aggregate's id and flushes
// the snapshot.
func (s *Store) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	s.idLocks.Lock(key)
	defer s.idLocks.Unlock(key)

	record := aggregate.Clone()

	s.mu.Lock()
	if pos, ok := s.index[key]; ok {
		s.shipments[pos] = record
	} else {
		s.index[key] = len(s.shipments)
		s.shipments = append(s.shipments, record)
	}
	s.mu.Unlock()

	return s.flush(ctx)
}

// UpdateByID clones the record with the given id, applies mutate, replaces
// the record, and flushes. Returns a clone of the updated record.
func (s *Store) UpdateByID(ctx context.Context, id kernel.UUID, mutate ports.MutateFunc) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return s.update(ctx, id.String(), func() (*shipment.Shipment, bool) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		if pos, ok := s.index[id.String()]; ok {
			return s.shipments[pos], true
		}
		return nil, false
	}, mutate, "shipmentId", id.String())
}

// UpdateByOrderID locates the newest active record for the order reference,
// then updates it under that record's id lock. Shipment ids and order
// references are immutable, so the id resolved before locking stays valid.
func (s *Store) UpdateByOrderID(ctx context.Context, orderID string, mutate ports.MutateFunc) (*shipment.Shipment, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	s.mu.RLock()
	current := s.findByOrderIDLocked(orderID)
	s.mu.RUnlock()

	if current == nil {
		return nil, errs.NewObjectNotFoundError("orderId", orderID)
	}

	return s.UpdateByID(ctx, current.ID(), mutate)
}

// update is the shared read-clone-mutate-replace sequence, serialized by
// the record's id lock.
func (s *Store) update(
	ctx context.Context,
	key string,
	lookup func() (*shipment.Shipment, bool),
	mutate ports.MutateFunc,
	missParam string,
	missID string,
) (*shipment.Shipment, error) {
	s.idLocks.Lock(key)
	defer s.idLocks.Unlock(key)

	current, ok := lookup()
	if !ok {
		return nil, errs.NewObjectNotFoundError(missParam, missID)
	}

	record := current.Clone()
	if err := mutate(record); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.shipments[s.index[key]] = record
	s.mu.Unlock()

	if err := s.flush(ctx); err != nil {
		return nil, err
	}
	return record.Clone(), nil
}

// GetByID returns a clone of the record with the given id.
func (s *Store) GetByID(id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if pos, ok := s.index[id.String()]; ok {
		return s.shipments[pos].Clone(), nil
	}
	return nil, errs.NewObjectNotFoundError("shipmentId", id.String())
}

// GetByOrderID returns a clone of the shipment referencing the order.
// Under duplicate order references the newest non-cancelled record wins,
// falling back to the newest overall.
func (s *Store) GetByOrderID(orderID string) (*shipment.Shipment, error) {
	if orderID == "" {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if found := s.findByOrderIDLocked(orderID); found != nil {
		return found.Clone(), nil
	}
	return nil, errs.NewObjectNotFoundError("orderId", orderID)
}

// GetByTrackingKey returns a clone of the record with the compound
// (trackingNumber, carrier) key.
func (s *Store) GetByTrackingKey(trackingNumber string, c carrier.Carrier) (*shipment.Shipment, error) {
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.shipments) - 1; i >= 0; i-- {
		record := s.shipments[i]
		if record.TrackingNumber() == trackingNumber && record.Carrier() == c {
			return record.Clone(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber)
}

// All returns clones of every record, newest-first.
func (s *Store) All() []*shipment.Shipment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*shipment.Shipment, 0, len(s.shipments))
	for i := len(s.shipments) - 1; i >= 0; i-- {
		result = append(result, s.shipments[i].Clone())
	}
	return result
}

// AllInStatuses returns clones of records currently in any of the given
// statuses, newest-first.
func (s *Store) AllInStatuses(statuses ...shipment.Status) []*shipment.Shipment {
	wanted := make(map[shipment.Status]struct{}, len(statuses))
	for _, status := range statuses {
		wanted[status] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*shipment.Shipment, 0)
	for i := len(s.shipments) - 1; i >= 0; i-- {
		if _, ok := wanted[s.shipments[i].Status()]; ok {
			result = append(result, s.shipments[i].Clone())
		}
	}
	return result
}

// findByOrderIDLocked scans newest-first for the order reference.
// Caller must hold mu.
func (s *Store) findByOrderIDLocked(orderID string) *shipment.Shipment {
	var newest *shipment.Shipment
	for i := len(s.shipments) - 1; i >= 0; i-- {
		record := s.shipments[i]
		if record.OrderID() != orderID {
			continue
		}
		if record.Status() != shipment.Cancelled {
			return record
		}
		if newest == nil {
			newest = record
		}
	}
	return newest
}

// flush writes the current snapshot through the persistence port.
func (s *Store) flush(ctx context.Context) error {
	s.mu.RLock()
	snapshot := make([]*shipment.Shipment, len(s.shipments))
	for i, record := range s.shipments {
		snapshot[i] = record.Clone()
	}
	s.mu.RUnlock()

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if err := s.persistence.Save(ctx, snapshot); err != nil {
		return errs.NewPersistenceError("save", err)
	}
	return nil
}
