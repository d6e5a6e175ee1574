package shipment

import (
	"errors"

	"logistics/internal/pkg/errs"
)

// ContactInfo is the sender/receiver contact snapshot fixed at shipment
// creation. It is a simple value object, immutable after construction.
type ContactInfo struct {
	senderName      string
	senderPhone     string
	receiverName    string
	receiverPhone   string
	pickupAddress   string
	deliveryAddress string
}

// NewContactInfo creates a contact snapshot. All fields are required.
func NewContactInfo(senderName, senderPhone, receiverName, receiverPhone, pickupAddress, deliveryAddress string) (ContactInfo, error) {
	var joined error
	for _, field := range []struct {
		name  string
		value string
	}{
		{"senderName", senderName},
		{"senderPhone", senderPhone},
		{"receiverName", receiverName},
		{"receiverPhone", receiverPhone},
		{"pickupAddress", pickupAddress},
		{"deliveryAddress", deliveryAddress},
	} {
		if field.value == "" {
			joined = errors.Join(joined, errs.NewValueIsRequiredError(field.name))
		}
	}
	if joined != nil {
		return ContactInfo{}, joined
	}

	return ContactInfo{
		senderName:      senderName,
		senderPhone:     senderPhone,
		receiverName:    receiverName,
		receiverPhone:   receiverPhone,
		pickupAddress:   pickupAddress,
		deliveryAddress: deliveryAddress,
	}, nil
}

// DefaultContactInfo returns the placeholder contact snapshot assigned when
// a shipment is created without explicit contact details.
func DefaultContactInfo() ContactInfo {
	return ContactInfo{
		senderName:      "系统默认",
		senderPhone:     "138****1234",
		receiverName:    "系统默认",
		receiverPhone:   "139****5678",
		pickupAddress:   "默认发货地址",
		deliveryAddress: "默认收货地址",
	}
}

// SenderName returns the sender's name.
func (c ContactInfo) SenderName() string { return c.senderName }

// SenderPhone returns the sender's phone number.
func (c ContactInfo) SenderPhone() string { return c.senderPhone }

// ReceiverName returns the receiver's name.
func (c ContactInfo) ReceiverName() string { return c.receiverName }

// ReceiverPhone returns the receiver's phone number.
func (c ContactInfo) ReceiverPhone() string { return c.receiverPhone }

// PickupAddress returns the pickup address.
func (c ContactInfo) PickupAddress() string { return c.pickupAddress }

// DeliveryAddress returns the delivery address.
func (c ContactInfo) DeliveryAddress() string { return c.deliveryAddress }
