package queries

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// GetShipmentStatusQueryHandler resolves lifecycle statuses from the store.
// Unknown tracking keys default to pending with Found=false instead of
// failing, matching the behavior of carriers that report fresh waybills as
// pending before the first scan.
type GetShipmentStatusQueryHandler struct {
	store ports.ShipmentStore
}

// NewGetShipmentStatusQueryHandler creates a handler for status lookups.
func NewGetShipmentStatusQueryHandler(store ports.ShipmentStore) GetShipmentStatusQueryHandler {
	return GetShipmentStatusQueryHandler{store: store}
}

// Handle executes the status lookup.
func (h GetShipmentStatusQueryHandler) Handle(
	_ context.Context,
	query GetShipmentStatusQuery,
) (GetShipmentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	record, err := h.store.GetByTrackingKey(query.TrackingNumber(), query.Carrier())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return GetShipmentStatusQueryResponse{Status: shipment.Pending, Found: false}, nil
		}
		return GetShipmentStatusQueryResponse{}, err
	}

	return GetShipmentStatusQueryResponse{Status: record.Status(), Found: true}, nil
}
