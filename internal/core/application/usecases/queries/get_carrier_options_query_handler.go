package queries

import (
	"context"

	"logistics/internal/core/domain/model/carrier"
)

// GetCarrierOptionsQueryHandler serves the static carrier offer table,
// joined with directory display names and icons.
type GetCarrierOptionsQueryHandler struct{}

// NewGetCarrierOptionsQueryHandler creates a handler for carrier option
// lookups.
func NewGetCarrierOptionsQueryHandler() GetCarrierOptionsQueryHandler {
	return GetCarrierOptionsQueryHandler{}
}

// Handle executes the carrier options query.
// Returns the offers in display order.
func (h GetCarrierOptionsQueryHandler) Handle(
	_ context.Context,
	query GetCarrierOptionsQuery,
) ([]GetCarrierOptionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	options := carrier.Options()
	responses := make([]GetCarrierOptionsQueryResponse, 0, len(options))
	for _, option := range options {
		info, err := carrier.Resolve(option.Carrier)
		if err != nil {
			return nil, err
		}

		responses = append(responses, GetCarrierOptionsQueryResponse{
			Carrier:       option.Carrier,
			DisplayName:   info.DisplayName,
			Icon:          info.Icon,
			Description:   option.Description,
			BasePrice:     option.BasePrice,
			EstimatedTime: option.EstimatedTime,
			Rating:        option.Rating,
		})
	}

	return responses, nil
}
