package queries

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
)

// GetAllShipmentsQueryHandler builds the shipment list read model from the
// store's newest-first snapshot.
type GetAllShipmentsQueryHandler struct {
	store ports.ShipmentStore
}

// NewGetAllShipmentsQueryHandler creates a handler for shipment listing.
func NewGetAllShipmentsQueryHandler(store ports.ShipmentStore) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{store: store}
}

// Handle executes the listing query.
// Returns read models for every shipment, newest first.
func (h GetAllShipmentsQueryHandler) Handle(
	_ context.Context,
	query GetAllShipmentsQuery,
) ([]GetAllShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := h.store.All()
	responses := make([]GetAllShipmentsQueryResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toShipmentResponse(record))
	}

	return responses, nil
}

func toShipmentResponse(record *shipment.Shipment) GetAllShipmentsQueryResponse {
	events := record.TrackingEvents()
	response := GetAllShipmentsQueryResponse{
		ID:                    record.ID(),
		OrderID:               record.OrderID(),
		DeviceID:              record.DeviceID(),
		DeviceName:            record.DeviceName(),
		Carrier:               record.Carrier(),
		CarrierName:           record.CarrierName(),
		TrackingNumber:        record.TrackingNumber(),
		Status:                record.Status(),
		EstimatedDeliveryTime: record.EstimatedDeliveryTime(),
		ActualDeliveryTime:    record.ActualDeliveryTime(),
		Cost:                  record.Cost(),
		Distance:              record.Distance(),
		CreatedAt:             record.CreatedAt(),
		UpdatedAt:             record.UpdatedAt(),
		Events:                make([]TrackingEventQueryResponse, 0, len(events)),
	}
	for _, event := range events {
		response.Events = append(response.Events, TrackingEventQueryResponse{
			Timestamp: event.Timestamp(),
			Location:  event.Location(),
			Note:      event.Note(),
		})
	}

	return response
}
