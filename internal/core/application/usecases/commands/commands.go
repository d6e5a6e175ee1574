// Package commands contains business operations that modify shipment state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: constructor validation, simulated
// carrier latency, and a store mutation.
package commands

import (
	"context"
	"time"
)

// simulateLatency emulates the round trip to an external carrier API before
// a mutation is applied. A non-positive window returns immediately, which is
// how handlers are configured in tests.
func simulateLatency(ctx context.Context, window time.Duration) error {
	if window <= 0 {
		return nil
	}

	timer := time.NewTimer(window)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
