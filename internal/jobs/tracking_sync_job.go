package jobs

import (
	"context"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TrackingSyncJob manages the scheduled carrier tracking refresh.
// Each run advances active shipments one lifecycle step, emulating the
// periodic polling of carrier tracking feeds.
type TrackingSyncJob struct {
	handler  commands.SyncTrackingCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTrackingSyncJob creates a new job for the tracking refresh.
// The schedule is a six-field cron expression with seconds resolution.
func NewTrackingSyncJob(
	handler commands.SyncTrackingCommandHandler,
	schedule string,
	logger *slog.Logger,
) *TrackingSyncJob {
	return &TrackingSyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "tracking_sync_job"),
	}
}

// Start begins the tracking sync job on its configured schedule.
func (j *TrackingSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewSyncTrackingCommand()

		advanced, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Tracking sync job failed", "error", handleErr)
			return
		}

		if advanced > 0 {
			j.logger.InfoContext(ctx, "Tracking sync advanced shipments", "count", advanced)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the tracking sync job.
func (j *TrackingSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking sync job stopped")
}
