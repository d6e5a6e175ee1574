package queries

import (
	"errors"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrGetShipmentStatusQueryIsNotConstructed = errors.New(
	"GetShipmentStatusQuery must be created via NewGetShipmentStatusQuery constructor",
)

// GetShipmentStatusQuery retrieves the current lifecycle status for a
// compound (trackingNumber, carrier) key.
//
// Example:
//
//	query, _ := NewGetShipmentStatusQuery("HL1234567890", carrier.Huolala)
//	handler := NewGetShipmentStatusQueryHandler(store)
//
//	status, _ := handler.Handle(ctx, query)
//	if !status.Found {
//	    fmt.Println("tracking key not registered, assuming pending")
//	}
type GetShipmentStatusQuery struct { //nolint:recvcheck //using for validation
	trackingNumber string
	carrier        carrier.Carrier

	guard guard.ConstructorGuard
}

// NewGetShipmentStatusQuery creates a status query for the given compound
// tracking key.
func NewGetShipmentStatusQuery(trackingNumber string, c carrier.Carrier) (GetShipmentStatusQuery, error) {
	statusQuery := GetShipmentStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusQuery.setTrackingNumber(trackingNumber),
		statusQuery.setCarrier(c),
	); err != nil {
		return GetShipmentStatusQuery{}, err
	}

	return statusQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentStatusQueryIsNotConstructed if validation fails.
func (q GetShipmentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentStatusQueryIsNotConstructed)
}

// TrackingNumber returns the carrier tracking number being queried.
func (q GetShipmentStatusQuery) TrackingNumber() string {
	return q.trackingNumber
}

// Carrier returns the carrier half of the compound tracking key.
func (q GetShipmentStatusQuery) Carrier() carrier.Carrier {
	return q.carrier
}

func (q *GetShipmentStatusQuery) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	q.trackingNumber = trackingNumber
	return nil
}

func (q *GetShipmentStatusQuery) setCarrier(c carrier.Carrier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	q.carrier = c
	return nil
}

// GetShipmentStatusQueryResponse is the status read model. Found reports
// whether a shipment actually matched the key; when it is false, Status
// carries the pending default rather than a recorded state.
type GetShipmentStatusQueryResponse struct {
	Status shipment.Status
	Found  bool
}
