package queries

import (
	"errors"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/pkg/guard"
)

var ErrGetCarrierOptionsQueryIsNotConstructed = errors.New(
	"GetCarrierOptionsQuery must be created via NewGetCarrierOptionsQuery constructor",
)

// GetCarrierOptionsQuery retrieves the carrier offers selectable when
// scheduling a shipment.
//
// Example:
//
//	query := NewGetCarrierOptionsQuery()
//	handler := NewGetCarrierOptionsQueryHandler()
//
//	options, _ := handler.Handle(ctx, query)
//	for _, option := range options {
//	    fmt.Printf("%s: ¥%.2f, %s\n", option.DisplayName, float64(option.BasePrice)/100, option.EstimatedTime)
//	}
type GetCarrierOptionsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCarrierOptionsQuery creates a query for the carrier options table.
func NewGetCarrierOptionsQuery() GetCarrierOptionsQuery {
	return GetCarrierOptionsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCarrierOptionsQueryIsNotConstructed if validation fails.
func (q GetCarrierOptionsQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierOptionsQueryIsNotConstructed)
}

// GetCarrierOptionsQueryResponse represents one selectable carrier offer.
type GetCarrierOptionsQueryResponse struct {
	Carrier       carrier.Carrier
	DisplayName   string
	Icon          string
	Description   string
	BasePrice     int
	EstimatedTime string
	Rating        float64
}
