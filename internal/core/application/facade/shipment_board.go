// Package facade provides the shipment board: a thin stateful view over
// the store that tracks which shipment is in focus and derives
// display-ready projections from the current record.
package facade

import (
	"sync"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
)

// etaLayout is the wall-date layout used for estimated delivery display.
const etaLayout = "2006-01-02"

// StatusView is the display projection of a lifecycle status.
type StatusView struct {
	Label string
	Color string
}

var statusViews = map[shipment.Status]StatusView{
	shipment.Pending:   {Label: "待安排", Color: "text-gray-500"},
	shipment.Scheduled: {Label: "已安排", Color: "text-blue-500"},
	shipment.PickedUp:  {Label: "已取货", Color: "text-blue-600"},
	shipment.InTransit: {Label: "运输中", Color: "text-green-500"},
	shipment.Delivered: {Label: "已送达", Color: "text-green-600"},
	shipment.Cancelled: {Label: "已取消", Color: "text-red-500"},
}

// StatusViewOf returns the label/color projection for the status.
// Unmapped statuses fall back to the pending view.
func StatusViewOf(status shipment.Status) StatusView {
	if view, ok := statusViews[status]; ok {
		return view
	}
	return statusViews[shipment.Pending]
}

// FormatETA renders an estimated delivery time as a wall date.
func FormatETA(eta time.Time) string {
	return eta.Format(etaLayout)
}

// ShipmentBoard tracks the shipment currently in focus. The board stores
// only the id; every read resolves the record from the store again, so a
// consumer holding a selection always observes the newest state.
//
// Example:
//
//	board := facade.NewShipmentBoard(store)
//	if err := board.Select(shipmentID); err != nil {
//	    return err
//	}
//
//	if record, ok := board.Selected(); ok {
//	    view := facade.StatusViewOf(record.Status())
//	    fmt.Printf("%s %s\n", view.Label, facade.FormatETA(record.EstimatedDeliveryTime()))
//	}
type ShipmentBoard struct {
	store ports.ShipmentStore

	mu           sync.RWMutex
	selectedID   kernel.UUID
	hasSelection bool
}

// NewShipmentBoard creates a board with no selection.
func NewShipmentBoard(store ports.ShipmentStore) *ShipmentBoard {
	return &ShipmentBoard{store: store}
}

// Select focuses the shipment with the given id.
// Fails with errs.ObjectNotFoundError when the id is absent, leaving the
// previous selection intact.
func (b *ShipmentBoard) Select(id kernel.UUID) error {
	if _, err := b.store.GetByID(id); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.selectedID = id
	b.hasSelection = true
	return nil
}

// Clear drops the current selection.
func (b *ShipmentBoard) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selectedID = kernel.UUID{}
	b.hasSelection = false
}

// Selected resolves the focused shipment from the store.
// Returns false when nothing is selected or the record disappeared.
func (b *ShipmentBoard) Selected() (*shipment.Shipment, bool) {
	b.mu.RLock()
	id, ok := b.selectedID, b.hasSelection
	b.mu.RUnlock()

	if !ok {
		return nil, false
	}

	record, err := b.store.GetByID(id)
	if err != nil {
		return nil, false
	}
	return record, true
}

// LatestEvent returns the newest tracking event of the focused shipment.
func (b *ShipmentBoard) LatestEvent() (shipment.TrackingEvent, bool) {
	record, ok := b.Selected()
	if !ok {
		return shipment.TrackingEvent{}, false
	}
	return record.LatestEvent(), true
}

// View returns the display projection of the focused shipment's status.
func (b *ShipmentBoard) View() (StatusView, bool) {
	record, ok := b.Selected()
	if !ok {
		return StatusView{}, false
	}
	return StatusViewOf(record.Status()), true
}
