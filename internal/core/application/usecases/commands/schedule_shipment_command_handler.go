package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
)

// ScheduleShipmentCommandHandler assigns a carrier to a pending shipment.
// Scheduling is idempotent: repeating it on an already-scheduled shipment
// returns the current record without appending a duplicate event.
//
// Example:
//
//	handler := NewScheduleShipmentCommandHandler(store, 800*time.Millisecond)
//	cmd, _ := NewScheduleShipmentCommand("order42", carrier.Huolala)
//
//	scheduled, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("scheduling failed: %w", err)
//	}
//	fmt.Printf("Shipment scheduled with %s", scheduled.CarrierName())
type ScheduleShipmentCommandHandler struct {
	store   ports.ShipmentStore
	latency time.Duration
}

// NewScheduleShipmentCommandHandler creates a handler for shipment
// scheduling. The latency window emulates the carrier dispatch round trip.
func NewScheduleShipmentCommandHandler(store ports.ShipmentStore, latency time.Duration) ScheduleShipmentCommandHandler {
	return ScheduleShipmentCommandHandler{
		store:   store,
		latency: latency,
	}
}

// Handle processes the scheduling command.
// Re-resolves the carrier display name from the directory, locates the
// order's shipment, and transitions it to scheduled. Returns the updated
// record, or errs.ObjectNotFoundError when no shipment references the order.
func (h *ScheduleShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd ScheduleShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	info, err := carrier.Resolve(cmd.Carrier())
	if err != nil {
		return nil, err
	}

	if err = simulateLatency(ctx, h.latency); err != nil {
		return nil, err
	}

	return h.store.UpdateByOrderID(ctx, cmd.OrderID(), func(record *shipment.Shipment) error {
		_, scheduleErr := record.Schedule(cmd.Carrier(), info.DisplayName, time.Now())
		return scheduleErr
	})
}
