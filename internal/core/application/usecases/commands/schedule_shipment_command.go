package commands

import (
	"errors"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/pkg/guard"
)

var ErrScheduleShipmentCommandIsNotConstructed = errors.New(
	"ScheduleShipmentCommand must be created via NewScheduleShipmentCommand constructor",
)

// ScheduleShipmentCommand represents a request to assign a carrier to the
// shipment of an order. The display name is always re-resolved from the
// carrier directory, never taken from the caller.
//
// Example:
//
//	cmd, err := NewScheduleShipmentCommand("order42", carrier.Huolala)
//	if err != nil {
//	    return fmt.Errorf("invalid schedule request: %w", err)
//	}
//
//	handler := NewScheduleShipmentCommandHandler(store, 0)
//	scheduled, err := handler.Handle(ctx, cmd)
type ScheduleShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID string
	carrier carrier.Carrier

	guard guard.ConstructorGuard
}

// NewScheduleShipmentCommand creates a command to schedule an order's
// shipment with the given carrier. Validates that the order reference is
// present and the carrier is a known directory entry.
func NewScheduleShipmentCommand(orderID string, c carrier.Carrier) (ScheduleShipmentCommand, error) {
	scheduleCommand := ScheduleShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		scheduleCommand.setOrderID(orderID),
		scheduleCommand.setCarrier(c),
	); err != nil {
		return ScheduleShipmentCommand{}, err
	}

	return scheduleCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrScheduleShipmentCommandIsNotConstructed if validation fails.
func (c ScheduleShipmentCommand) Validate() error {
	return c.guard.Validate(ErrScheduleShipmentCommandIsNotConstructed)
}

// OrderID returns the business reference of the order to schedule.
func (c ScheduleShipmentCommand) OrderID() string {
	return c.orderID
}

// Carrier returns the carrier to assign.
func (c ScheduleShipmentCommand) Carrier() carrier.Carrier {
	return c.carrier
}

func (c *ScheduleShipmentCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *ScheduleShipmentCommand) setCarrier(assigned carrier.Carrier) error {
	if err := assigned.Validate(); err != nil {
		return err
	}

	c.carrier = assigned
	return nil
}
