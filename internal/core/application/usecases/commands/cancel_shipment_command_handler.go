package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
)

// CancelShipmentCommandHandler cancels a shipment. Cancellation is
// idempotent: repeating it on a cancelled shipment succeeds without a
// duplicate event. Cancelling a delivered shipment fails.
//
// Example:
//
//	handler := NewCancelShipmentCommandHandler(store, 800*time.Millisecond)
//	cmd, _ := NewCancelShipmentCommand(shipmentID)
//
//	ok, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("cancellation failed: %w", err)
//	}
type CancelShipmentCommandHandler struct {
	store   ports.ShipmentStore
	latency time.Duration
}

// NewCancelShipmentCommandHandler creates a handler for shipment
// cancellation. The latency window emulates the carrier cancellation round
// trip.
func NewCancelShipmentCommandHandler(store ports.ShipmentStore, latency time.Duration) CancelShipmentCommandHandler {
	return CancelShipmentCommandHandler{
		store:   store,
		latency: latency,
	}
}

// Handle processes the cancellation command.
// Returns true when the shipment ends up cancelled, whether or not this
// call performed the transition. Unknown ids and delivered shipments fail.
func (h *CancelShipmentCommandHandler) Handle(ctx context.Context, cmd CancelShipmentCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	if err := simulateLatency(ctx, h.latency); err != nil {
		return false, err
	}

	_, err := h.store.UpdateByID(ctx, cmd.ShipmentID(), func(record *shipment.Shipment) error {
		_, cancelErr := record.Cancel(time.Now())
		return cancelErr
	})
	if err != nil {
		return false, err
	}

	return true, nil
}
