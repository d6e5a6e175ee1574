package cmd

import (
	"context"
	"log/slog"

	"logistics/internal/adapters/out/memstore"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"
	"logistics/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config Config
	store  *memstore.Store
}

// NewCompositionRoot wires the persistence adapter and hydrates the store.
func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	repository := shipmentrepo.NewGormShipmentRepository(gormDB)

	store, err := memstore.NewStore(ctx, repository)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config: config,
		store:  store,
	}, nil
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(
		c.store,
		services.NewCarrierAssigner(),
		c.config.CarrierLatency,
	)
}

func (c *CompositionRoot) CreateScheduleShipmentCommandHandler() commands.ScheduleShipmentCommandHandler {
	return commands.NewScheduleShipmentCommandHandler(c.store, c.config.CarrierLatency)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	return commands.NewCancelShipmentCommandHandler(c.store, c.config.CarrierLatency)
}

func (c *CompositionRoot) CreateSyncTrackingCommandHandler() commands.SyncTrackingCommandHandler {
	return commands.NewSyncTrackingCommandHandler(c.store)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetShipmentStatusQueryHandler() queries.GetShipmentStatusQueryHandler {
	return queries.NewGetShipmentStatusQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetAllShipmentsQueryHandler() queries.GetAllShipmentsQueryHandler {
	return queries.NewGetAllShipmentsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetCarrierOptionsQueryHandler() queries.GetCarrierOptionsQueryHandler {
	return queries.NewGetCarrierOptionsQueryHandler()
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSyncTrackingCommandHandler(),
		c.config.TrackingSyncSchedule,
		logger,
	)
}
