// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. It implements the snapshot persistence port:
// the whole shipment collection is written and read as one unit, with
// insertion order and event order preserved via explicit position columns.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Position records the original insertion order of the
// in-memory collection so that a reload observes the same ordering.
type ShipmentDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position              int       `gorm:"index"`
	OrderID               string    `gorm:"index"`
	DeviceID              string
	DeviceName            string
	Carrier               string `gorm:"index"`
	CarrierName           string
	TrackingNumber        string `gorm:"index"`
	Status                string `gorm:"index"`
	EstimatedDeliveryTime time.Time
	ActualDeliveryTime    *time.Time
	Contact               ContactDTO         `gorm:"embedded;embeddedPrefix:contact_"`
	Cost                  int
	Distance              int
	CreatedAt             time.Time          `gorm:"autoCreateTime:false"`
	UpdatedAt             time.Time          `gorm:"autoUpdateTime:false"`
	Events                []TrackingEventDTO `gorm:"foreignKey:ShipmentID;references:ID"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ContactDTO represents the embedded contact details within the shipment
// table.
type ContactDTO struct {
	SenderName      string
	SenderPhone     string
	ReceiverName    string
	ReceiverPhone   string
	PickupAddress   string
	DeliveryAddress string
}

// TrackingEventDTO represents one tracking history entry as a child row.
// Sequence preserves the append order within a shipment.
type TrackingEventDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	Sequence   int
	Timestamp  time.Time
	Location   string
	Note       string
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a shipment aggregate to its database representation.
// The position argument is the aggregate's index in the snapshot.
func fromDomain(aggregate *shipment.Shipment, position int) ShipmentDTO {
	contact := aggregate.ContactInfo()
	events := aggregate.TrackingEvents()

	dto := ShipmentDTO{
		ID:                    aggregate.ID().Bytes(),
		Position:              position,
		OrderID:               aggregate.OrderID(),
		DeviceID:              aggregate.DeviceID(),
		DeviceName:            aggregate.DeviceName(),
		Carrier:               aggregate.Carrier().String(),
		CarrierName:           aggregate.CarrierName(),
		TrackingNumber:        aggregate.TrackingNumber(),
		Status:                aggregate.Status().String(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		ActualDeliveryTime:    aggregate.ActualDeliveryTime(),
		Contact: ContactDTO{
			SenderName:      contact.SenderName(),
			SenderPhone:     contact.SenderPhone(),
			ReceiverName:    contact.ReceiverName(),
			ReceiverPhone:   contact.ReceiverPhone(),
			PickupAddress:   contact.PickupAddress(),
			DeliveryAddress: contact.DeliveryAddress(),
		},
		Cost:      aggregate.Cost(),
		Distance:  aggregate.Distance(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Events:    make([]TrackingEventDTO, 0, len(events)),
	}

	for i, event := range events {
		dto.Events = append(dto.Events, TrackingEventDTO{
			ID:         event.ID().Bytes(),
			ShipmentID: dto.ID,
			Sequence:   i,
			Timestamp:  event.Timestamp(),
			Location:   event.Location(),
			Note:       event.Note(),
		})
	}

	return dto
}

// toDomain converts a database DTO to a shipment aggregate.
// Reconstructs the complete aggregate including the event history using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assignedCarrier, err := carrier.FromString(dto.Carrier)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	contact, err := shipment.NewContactInfo(
		dto.Contact.SenderName,
		dto.Contact.SenderPhone,
		dto.Contact.ReceiverName,
		dto.Contact.ReceiverPhone,
		dto.Contact.PickupAddress,
		dto.Contact.DeliveryAddress,
	)
	if err != nil {
		return nil, err
	}

	events := make([]shipment.TrackingEvent, 0, len(dto.Events))
	for _, eventDTO := range dto.Events {
		eventID, idErr := kernel.UUIDFromBytes(eventDTO.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		event, eventErr := shipment.RestoreTrackingEvent(
			eventID,
			eventDTO.Timestamp,
			eventDTO.Location,
			eventDTO.Note,
		)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return shipment.RestoreShipment(
		id,
		dto.OrderID,
		dto.DeviceID,
		dto.DeviceName,
		assignedCarrier,
		dto.CarrierName,
		dto.TrackingNumber,
		status,
		dto.EstimatedDeliveryTime,
		dto.ActualDeliveryTime,
		events,
		contact,
		dto.Cost,
		dto.Distance,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
