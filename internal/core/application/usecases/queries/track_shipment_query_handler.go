package queries

import (
	"context"
	"errors"
	"time"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// Placeholder history returned for unknown tracking keys, imitating a
// carrier that has registered the waybill but not yet scanned the package.
const (
	placeholderLocation      = "unknown"
	placeholderNoteReceived  = "order information received"
	placeholderNoteInProcess = "shipment is being processed"
)

// TrackShipmentQueryHandler resolves tracking histories from the store.
// An unknown tracking key is not an error: the handler answers with a
// synthetic two-event history so callers always have something to render.
//
// Example:
//
//	handler := NewTrackShipmentQueryHandler(store)
//	query, _ := NewTrackShipmentQuery("HL1234567890", carrier.Huolala)
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("tracking lookup failed: %w", err)
//	}
type TrackShipmentQueryHandler struct {
	store ports.ShipmentStore
}

// NewTrackShipmentQueryHandler creates a handler for tracking lookups.
func NewTrackShipmentQueryHandler(store ports.ShipmentStore) TrackShipmentQueryHandler {
	return TrackShipmentQueryHandler{store: store}
}

// Handle executes the tracking lookup.
// Returns the shipment's full event history, or the synthetic placeholder
// history with Known=false when no shipment matches the key.
func (h TrackShipmentQueryHandler) Handle(
	_ context.Context,
	query TrackShipmentQuery,
) (TrackShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackShipmentQueryResponse{}, err
	}

	record, err := h.store.GetByTrackingKey(query.TrackingNumber(), query.Carrier())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return placeholderHistory(query), nil
		}
		return TrackShipmentQueryResponse{}, err
	}

	events := record.TrackingEvents()
	response := TrackShipmentQueryResponse{
		TrackingNumber: query.TrackingNumber(),
		Carrier:        query.Carrier(),
		Known:          true,
		Events:         make([]TrackingEventQueryResponse, 0, len(events)),
	}
	for _, event := range events {
		response.Events = append(response.Events, TrackingEventQueryResponse{
			Timestamp: event.Timestamp(),
			Location:  event.Location(),
			Note:      event.Note(),
		})
	}

	return response, nil
}

func placeholderHistory(query TrackShipmentQuery) TrackShipmentQueryResponse {
	now := time.Now()
	return TrackShipmentQueryResponse{
		TrackingNumber: query.TrackingNumber(),
		Carrier:        query.Carrier(),
		Known:          false,
		Events: []TrackingEventQueryResponse{
			{
				Timestamp: now.Add(-24 * time.Hour),
				Location:  placeholderLocation,
				Note:      placeholderNoteReceived,
			},
			{
				Timestamp: now.Add(-12 * time.Hour),
				Location:  placeholderLocation,
				Note:      placeholderNoteInProcess,
			},
		},
	}
}
