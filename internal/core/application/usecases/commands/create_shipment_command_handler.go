package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
)

// CreateShipmentCommandHandler handles the business logic for opening a
// shipment. Picks a self-service carrier, generates a tracking number, and
// registers the shipment in pending status with its creation event.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(store, services.NewCarrierAssigner(), 800*time.Millisecond)
//	cmd, _ := NewCreateShipmentCommand("order42", "dev1", "PET-1200")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("shipment creation failed: %w", err)
//	}
//	// created is pending and awaiting vehicle assignment
type CreateShipmentCommandHandler struct {
	store    ports.ShipmentStore
	assigner services.CarrierAssigner
	latency  time.Duration
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
// The latency window emulates the carrier booking round trip; pass zero to
// disable it.
func NewCreateShipmentCommandHandler(
	store ports.ShipmentStore,
	assigner services.CarrierAssigner,
	latency time.Duration,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		store:    store,
		assigner: assigner,
		latency:  latency,
	}
}

// Handle processes the shipment creation command.
// Assigns a carrier and tracking number, builds the pending shipment with
// placeholder contacts, stores it, and returns the stored record.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := simulateLatency(ctx, h.latency); err != nil {
		return nil, err
	}

	assignment, err := h.assigner.Assign()
	if err != nil {
		return nil, err
	}

	created, err := shipment.NewShipment(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.DeviceID(),
		cmd.DeviceName(),
		assignment.Carrier,
		assignment.CarrierName,
		assignment.TrackingNumber,
		shipment.DefaultContactInfo(),
		assignment.Cost,
		assignment.Distance,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.store.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
