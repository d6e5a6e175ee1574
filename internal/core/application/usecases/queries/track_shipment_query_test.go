package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/carrier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackShipmentQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query, err := queries.NewTrackShipmentQuery("HL1234567890", carrier.Huolala)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "HL1234567890", query.TrackingNumber())
		assert.Equal(t, carrier.Huolala, query.Carrier())
	})

	t.Run("should fail on empty tracking number", func(t *testing.T) {
		_, err := queries.NewTrackShipmentQuery("", carrier.Huolala)
		require.ErrorIs(t, err, queries.ErrTrackingNumberIsRequired)
	})

	t.Run("should fail on unknown carrier", func(t *testing.T) {
		_, err := queries.NewTrackShipmentQuery("HL1234567890", carrier.Unknown)
		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var query queries.TrackShipmentQuery
		require.ErrorIs(t, query.Validate(), queries.ErrTrackShipmentQueryIsNotConstructed)
	})
}
