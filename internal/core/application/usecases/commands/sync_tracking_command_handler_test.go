package commands_test

import (
	"errors"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSyncTrackingCommandHandler_Handle_AdvancesEachStatus(t *testing.T) {
	ctx := t.Context()
	now := time.Now()

	scheduled := pendingShipment(t, "order1")
	_, err := scheduled.Schedule(scheduled.Carrier(), scheduled.CarrierName(), now)
	require.NoError(t, err)

	pickedUp := pendingShipment(t, "order2")
	_, err = pickedUp.Schedule(pickedUp.Carrier(), pickedUp.CarrierName(), now)
	require.NoError(t, err)
	require.NoError(t, pickedUp.MarkPickedUp("上海市浦东新区", "loading complete", now))

	inTransit := pendingShipment(t, "order3")
	_, err = inTransit.Schedule(inTransit.Carrier(), inTransit.CarrierName(), now)
	require.NoError(t, err)
	require.NoError(t, inTransit.MarkPickedUp("上海市浦东新区", "loading complete", now))
	require.NoError(t, inTransit.MarkInTransit("江苏省苏州市", "transfer", now))

	active := []*shipment.Shipment{scheduled, pickedUp, inTransit}

	store := new(MockShipmentStore)
	store.On("AllInStatuses", []shipment.Status{shipment.Scheduled, shipment.PickedUp, shipment.InTransit}).
		Return(active).Once()
	for _, record := range active {
		record := record
		store.On("UpdateByID", mock.Anything, record.ID(), mock.AnythingOfType("ports.MutateFunc")).
			Run(func(args mock.Arguments) {
				mutate := args.Get(2).(ports.MutateFunc)
				require.NoError(t, mutate(record))
			}).
			Return(record, nil).Once()
	}

	h := commands.NewSyncTrackingCommandHandler(store)
	advanced, err := h.Handle(ctx, commands.NewSyncTrackingCommand())
	require.NoError(t, err)
	assert.Equal(t, 3, advanced)

	assert.Equal(t, shipment.PickedUp, scheduled.Status())
	assert.Equal(t, shipment.InTransit, pickedUp.Status())
	assert.Equal(t, shipment.Delivered, inTransit.Status())
	require.NotNil(t, inTransit.ActualDeliveryTime())
	store.AssertExpectations(t)
}

func TestSyncTrackingCommandHandler_Handle_EmptyBatch(t *testing.T) {
	ctx := t.Context()

	store := new(MockShipmentStore)
	store.On("AllInStatuses", []shipment.Status{shipment.Scheduled, shipment.PickedUp, shipment.InTransit}).
		Return([]*shipment.Shipment{}).Once()

	h := commands.NewSyncTrackingCommandHandler(store)
	advanced, err := h.Handle(ctx, commands.NewSyncTrackingCommand())
	require.NoError(t, err)
	assert.Zero(t, advanced)
}

func TestSyncTrackingCommandHandler_Handle_FailureDoesNotStopBatch(t *testing.T) {
	ctx := t.Context()
	now := time.Now()

	failing := pendingShipment(t, "order1")
	_, err := failing.Schedule(failing.Carrier(), failing.CarrierName(), now)
	require.NoError(t, err)

	healthy := pendingShipment(t, "order2")
	_, err = healthy.Schedule(healthy.Carrier(), healthy.CarrierName(), now)
	require.NoError(t, err)

	store := new(MockShipmentStore)
	store.On("AllInStatuses", []shipment.Status{shipment.Scheduled, shipment.PickedUp, shipment.InTransit}).
		Return([]*shipment.Shipment{failing, healthy}).Once()
	saveErr := errors.New("save failed")
	store.On("UpdateByID", mock.Anything, failing.ID(), mock.AnythingOfType("ports.MutateFunc")).
		Return(nil, saveErr).Once()
	store.On("UpdateByID", mock.Anything, healthy.ID(), mock.AnythingOfType("ports.MutateFunc")).
		Run(func(args mock.Arguments) {
			mutate := args.Get(2).(ports.MutateFunc)
			require.NoError(t, mutate(healthy))
		}).
		Return(healthy, nil).Once()

	h := commands.NewSyncTrackingCommandHandler(store)
	advanced, err := h.Handle(ctx, commands.NewSyncTrackingCommand())
	require.Error(t, err)
	assert.ErrorIs(t, err, saveErr)
	assert.Equal(t, 1, advanced)
	assert.Equal(t, shipment.PickedUp, healthy.Status())
	store.AssertExpectations(t)
}

func TestSyncTrackingCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SyncTrackingCommand{} // not constructed properly

	store := new(MockShipmentStore)
	h := commands.NewSyncTrackingCommandHandler(store)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	store.AssertNotCalled(t, "AllInStatuses", mock.Anything)
}
