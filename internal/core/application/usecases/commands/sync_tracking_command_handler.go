package commands

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
)

// Waypoints reported by the simulated carrier feed. Locations are sampled
// per step; notes are fixed per lifecycle stage.
var (
	pickupLocations = []string{
		"上海市浦东新区", "上海市嘉定区", "北京市朝阳区", "广州市天河区",
	}
	transitLocations = []string{
		"江苏省苏州市", "浙江省嘉兴市", "安徽省合肥市", "江西省南昌市",
	}
	deliveryLocations = []string{
		"浙江省杭州市余杭区", "江苏省南京市江宁区", "四川省成都市武侯区",
	}
)

const (
	notePickedUp  = "loading complete, vehicle departed"
	noteInTransit = "vehicle arrived at transfer station"
	noteDelivered = "unloading complete, goods delivered"
)

// SyncTrackingCommandHandler advances every active shipment one lifecycle
// step: scheduled shipments are picked up, picked up shipments enter
// transit, in-transit shipments are delivered. Each step appends a
// carrier-style tracking event; delivery records the actual delivery time.
//
// This is how picked_up, in_transit, and delivered populate: they are fed
// by the periodic sync, not by caller requests.
type SyncTrackingCommandHandler struct {
	store ports.ShipmentStore
}

// NewSyncTrackingCommandHandler creates a handler for the tracking refresh.
func NewSyncTrackingCommandHandler(store ports.ShipmentStore) SyncTrackingCommandHandler {
	return SyncTrackingCommandHandler{
		store: store,
	}
}

// Handle processes the tracking refresh command.
// Returns the number of shipments advanced. A failing shipment does not
// stop the batch; failures are joined into the returned error.
func (h *SyncTrackingCommandHandler) Handle(ctx context.Context, cmd SyncTrackingCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	active := h.store.AllInStatuses(shipment.Scheduled, shipment.PickedUp, shipment.InTransit)

	advanced := 0
	var errSink []error
	for _, record := range active {
		if _, err := h.store.UpdateByID(ctx, record.ID(), advanceOneStep); err != nil {
			errSink = append(errSink, err)
			continue
		}
		advanced++
	}

	return advanced, errors.Join(errSink...)
}

// advanceOneStep applies the next lifecycle transition to the record.
// Records that progressed to a terminal state between listing and locking
// are left untouched.
func advanceOneStep(record *shipment.Shipment) error {
	now := time.Now()

	switch record.Status() {
	case shipment.Scheduled:
		return record.MarkPickedUp(sample(pickupLocations), notePickedUp, now)
	case shipment.PickedUp:
		return record.MarkInTransit(sample(transitLocations), noteInTransit, now)
	case shipment.InTransit:
		return record.MarkDelivered(sample(deliveryLocations), noteDelivered, now)
	default:
		return nil
	}
}

func sample(locations []string) string {
	return locations[rand.IntN(len(locations))] //nolint:gosec // it's ok
}
