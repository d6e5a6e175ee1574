package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	record := pendingShipment(t, "order42")
	cmd, _ := commands.NewCancelShipmentCommand(record.ID())

	store := new(MockShipmentStore)
	store.On("UpdateByID", mock.Anything, record.ID(), mock.AnythingOfType("ports.MutateFunc")).
		Run(func(args mock.Arguments) {
			mutate := args.Get(2).(ports.MutateFunc)
			require.NoError(t, mutate(record))
		}).
		Return(record, nil).Once()

	h := commands.NewCancelShipmentCommandHandler(store, 0)
	ok, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, shipment.Cancelled, record.Status())
	store.AssertExpectations(t)
}

func TestCancelShipmentCommandHandler_Handle_AlreadyCancelled(t *testing.T) {
	ctx := t.Context()
	record := pendingShipment(t, "order42")
	_, err := record.Cancel(time.Now())
	require.NoError(t, err)
	eventsBefore := len(record.TrackingEvents())
	cmd, _ := commands.NewCancelShipmentCommand(record.ID())

	store := new(MockShipmentStore)
	store.On("UpdateByID", mock.Anything, record.ID(), mock.AnythingOfType("ports.MutateFunc")).
		Run(func(args mock.Arguments) {
			mutate := args.Get(2).(ports.MutateFunc)
			require.NoError(t, mutate(record))
		}).
		Return(record, nil).Once()

	h := commands.NewCancelShipmentCommandHandler(store, 0)
	ok, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, record.TrackingEvents(), eventsBefore)
}

func TestCancelShipmentCommandHandler_Handle_Delivered(t *testing.T) {
	ctx := t.Context()
	now := time.Now()
	record := pendingShipment(t, "order42")
	_, err := record.Schedule(record.Carrier(), record.CarrierName(), now)
	require.NoError(t, err)
	require.NoError(t, record.MarkPickedUp("loc", "note", now))
	require.NoError(t, record.MarkInTransit("loc", "note", now))
	require.NoError(t, record.MarkDelivered("loc", "note", now))
	cmd, _ := commands.NewCancelShipmentCommand(record.ID())

	store := new(MockShipmentStore)
	store.On("UpdateByID", mock.Anything, record.ID(), mock.AnythingOfType("ports.MutateFunc")).
		Run(func(args mock.Arguments) {
			mutate := args.Get(2).(ports.MutateFunc)
			assert.Error(t, mutate(record))
		}).
		Return(nil, errs.NewValueIsInvalidError("status")).Once()

	h := commands.NewCancelShipmentCommandHandler(store, 0)
	ok, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.False(t, ok)
}

func TestCancelShipmentCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewCancelShipmentCommand(id)

	store := new(MockShipmentStore)
	store.On("UpdateByID", mock.Anything, id, mock.AnythingOfType("ports.MutateFunc")).
		Return(nil, errs.NewObjectNotFoundError("shipmentId", id.String())).Once()

	h := commands.NewCancelShipmentCommandHandler(store, 0)
	ok, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCancelShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelShipmentCommand{} // not constructed properly

	store := new(MockShipmentStore)
	h := commands.NewCancelShipmentCommandHandler(store, 0)
	ok, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.False(t, ok)
	store.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
}
