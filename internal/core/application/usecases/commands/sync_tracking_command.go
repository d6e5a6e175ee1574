package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrSyncTrackingCommandIsNotConstructed = errors.New(
	"SyncTrackingCommand must be created via NewSyncTrackingCommand constructor",
)

// SyncTrackingCommand triggers a tracking refresh for all active shipments.
// This batch operation advances scheduled, picked up, and in-transit
// shipments one lifecycle step, emulating carrier tracking feeds.
//
// Example:
//
//	cmd := NewSyncTrackingCommand()
//	handler := NewSyncTrackingCommandHandler(store)
//
//	// Run periodically to simulate carrier progress
//	advanced, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Tracking sync failed: %v", err)
//	}
//	log.Printf("%d shipments advanced", advanced)
type SyncTrackingCommand struct {
	guard guard.ConstructorGuard
}

// NewSyncTrackingCommand creates a command to refresh tracking state.
// This is a parameterless command that processes all active shipments.
func NewSyncTrackingCommand() SyncTrackingCommand {
	command := SyncTrackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrSyncTrackingCommandIsNotConstructed if validation fails.
func (c *SyncTrackingCommand) Validate() error {
	return c.guard.Validate(ErrSyncTrackingCommandIsNotConstructed)
}
