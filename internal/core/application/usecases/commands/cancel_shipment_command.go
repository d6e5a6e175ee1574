package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand represents a request to cancel a shipment by id.
//
// Example:
//
//	cmd, err := NewCancelShipmentCommand(shipmentID)
//	if err != nil {
//	    return fmt.Errorf("invalid cancel request: %w", err)
//	}
//
//	handler := NewCancelShipmentCommandHandler(store, 0)
//	ok, err := handler.Handle(ctx, cmd)
type CancelShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelShipmentCommand creates a command to cancel the shipment with
// the given id.
func NewCancelShipmentCommand(shipmentID kernel.UUID) (CancelShipmentCommand, error) {
	cancelCommand := CancelShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setShipmentID(shipmentID); err != nil {
		return CancelShipmentCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelShipmentCommandIsNotConstructed if validation fails.
func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

// ShipmentID returns the id of the shipment to cancel.
func (c CancelShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *CancelShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
