package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrOrderIDIsRequired    = errors.New("order id is required")
	ErrDeviceIDIsRequired   = errors.New("device id is required")
	ErrDeviceNameIsRequired = errors.New("device name is required")
)

// CreateShipmentCommand represents a request to open a shipment for a placed
// equipment order. Carrier, tracking number, cost and distance are assigned
// by the handler, not supplied by the caller.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand("order42", "dev1", "PET-1200")
//	if err != nil {
//	    return fmt.Errorf("invalid shipment request: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(store, assigner, 0)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
//	fmt.Printf("Shipment %s opened with tracking %s", created.ID(), created.TrackingNumber())
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	deviceID   string
	deviceName string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to open a shipment.
// Validates that the order reference and device identity are present.
func NewCreateShipmentCommand(orderID, deviceID, deviceName string) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setOrderID(orderID),
		shipmentCommand.setDeviceID(deviceID),
		shipmentCommand.setDeviceName(deviceName),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// OrderID returns the business reference of the order being shipped.
func (c CreateShipmentCommand) OrderID() string {
	return c.orderID
}

// DeviceID returns the identifier of the shipped device.
func (c CreateShipmentCommand) DeviceID() string {
	return c.deviceID
}

// DeviceName returns the human-readable device model name.
func (c CreateShipmentCommand) DeviceName() string {
	return c.deviceName
}

func (c *CreateShipmentCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setDeviceID(deviceID string) error {
	if deviceID == "" {
		return ErrDeviceIDIsRequired
	}

	c.deviceID = deviceID
	return nil
}

func (c *CreateShipmentCommand) setDeviceName(deviceName string) error {
	if deviceName == "" {
		return ErrDeviceNameIsRequired
	}

	c.deviceName = deviceName
	return nil
}
