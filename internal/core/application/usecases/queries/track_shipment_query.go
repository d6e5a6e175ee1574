// Package queries contains read operations for retrieving shipment state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models built from defensive copies of the
// store's records.
package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/pkg/guard"
)

var (
	ErrTrackShipmentQueryIsNotConstructed = errors.New(
		"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
	)
	ErrTrackingNumberIsRequired = errors.New("tracking number is required")
)

// TrackShipmentQuery retrieves the tracking history for a carrier tracking
// number. A shipment is addressed by the compound (trackingNumber, carrier)
// key; the same number under another carrier is a different shipment.
//
// Example:
//
//	query, err := NewTrackShipmentQuery("HL1234567890", carrier.Huolala)
//	if err != nil {
//	    return fmt.Errorf("invalid tracking request: %w", err)
//	}
//
//	handler := NewTrackShipmentQueryHandler(store)
//	history, _ := handler.Handle(ctx, query)
//	for _, event := range history.Events {
//	    fmt.Printf("%s %s: %s\n", event.Timestamp, event.Location, event.Note)
//	}
type TrackShipmentQuery struct { //nolint:recvcheck //using for validation
	trackingNumber string
	carrier        carrier.Carrier

	guard guard.ConstructorGuard
}

// NewTrackShipmentQuery creates a query for the tracking history of the
// given compound tracking key.
func NewTrackShipmentQuery(trackingNumber string, c carrier.Carrier) (TrackShipmentQuery, error) {
	trackQuery := TrackShipmentQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		trackQuery.setTrackingNumber(trackingNumber),
		trackQuery.setCarrier(c),
	); err != nil {
		return TrackShipmentQuery{}, err
	}

	return trackQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackShipmentQueryIsNotConstructed if validation fails.
func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// TrackingNumber returns the carrier tracking number being traced.
func (q TrackShipmentQuery) TrackingNumber() string {
	return q.trackingNumber
}

// Carrier returns the carrier half of the compound tracking key.
func (q TrackShipmentQuery) Carrier() carrier.Carrier {
	return q.carrier
}

func (q *TrackShipmentQuery) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return ErrTrackingNumberIsRequired
	}

	q.trackingNumber = trackingNumber
	return nil
}

func (q *TrackShipmentQuery) setCarrier(c carrier.Carrier) error {
	if err := c.Validate(); err != nil {
		return err
	}

	q.carrier = c
	return nil
}

// TrackingEventQueryResponse is one entry of a shipment's tracking history
// in the read model.
type TrackingEventQueryResponse struct {
	Timestamp time.Time
	Location  string
	Note      string
}

// TrackShipmentQueryResponse is the tracking history read model. Known is
// false when no shipment matched the key and the events are the synthetic
// placeholder history.
type TrackShipmentQueryResponse struct {
	TrackingNumber string
	Carrier        carrier.Carrier
	Known          bool
	Events         []TrackingEventQueryResponse
}
