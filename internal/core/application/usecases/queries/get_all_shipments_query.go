package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrGetAllShipmentsQueryIsNotConstructed = errors.New(
	"GetAllShipmentsQuery must be created via NewGetAllShipmentsQuery constructor",
)

// GetAllShipmentsQuery retrieves every shipment in the system, newest
// first. Used by dashboards listing active and historical shipments.
//
// Example:
//
//	query := NewGetAllShipmentsQuery()
//	handler := NewGetAllShipmentsQueryHandler(store)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list shipments: %w", err)
//	}
//	for _, s := range shipments {
//	    fmt.Printf("%s %s %s\n", s.TrackingNumber, s.CarrierName, s.Status)
//	}
type GetAllShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllShipmentsQuery creates a query to retrieve all shipments.
// This is a parameterless query that fetches the complete list.
func NewGetAllShipmentsQuery() GetAllShipmentsQuery {
	return GetAllShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllShipmentsQueryIsNotConstructed if validation fails.
func (q GetAllShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipmentsQueryIsNotConstructed)
}

// GetAllShipmentsQueryResponse represents one shipment in the list read
// model.
type GetAllShipmentsQueryResponse struct {
	ID                    kernel.UUID
	OrderID               string
	DeviceID              string
	DeviceName            string
	Carrier               carrier.Carrier
	CarrierName           string
	TrackingNumber        string
	Status                shipment.Status
	EstimatedDeliveryTime time.Time
	ActualDeliveryTime    *time.Time
	Cost                  int
	Distance              int
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Events                []TrackingEventQueryResponse
}
