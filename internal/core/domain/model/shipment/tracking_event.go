package shipment

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// EventLocationSystem is the location tag for events the engine itself
// appends (creation, scheduling, cancellation), as opposed to locations
// reported by carrier tracking.
const EventLocationSystem = "system"

// TrackingEvent is one immutable, timestamped milestone within a shipment's
// history. Events are owned exclusively by their parent shipment, are never
// edited or removed once appended, and carry a free-text human description
// distinct from the shipment's enum status.
type TrackingEvent struct {
	id        kernel.UUID
	timestamp time.Time
	location  string
	note      string
}

// NewTrackingEvent creates a tracking event with a fresh identifier.
// Location and note must be non-empty; the timestamp must be set.
func NewTrackingEvent(timestamp time.Time, location, note string) (TrackingEvent, error) {
	var joined error
	if timestamp.IsZero() {
		joined = errors.Join(joined, errs.NewValueIsRequiredError("timestamp"))
	}
	if location == "" {
		joined = errors.Join(joined, errs.NewValueIsRequiredError("location"))
	}
	if note == "" {
		joined = errors.Join(joined, errs.NewValueIsRequiredError("note"))
	}
	if joined != nil {
		return TrackingEvent{}, joined
	}

	return TrackingEvent{
		id:        kernel.NewUUID(),
		timestamp: timestamp,
		location:  location,
		note:      note,
	}, nil
}

// RestoreTrackingEvent reconstructs an event from persistence, keeping its
// original identifier and timestamp.
func RestoreTrackingEvent(id kernel.UUID, timestamp time.Time, location, note string) (TrackingEvent, error) {
	if err := id.Validate(); err != nil {
		return TrackingEvent{}, err
	}
	restored := TrackingEvent{
		id:        id,
		timestamp: timestamp,
		location:  location,
		note:      note,
	}
	if timestamp.IsZero() || location == "" || note == "" {
		return TrackingEvent{}, errs.NewValueIsInvalidError("tracking event")
	}
	return restored, nil
}

// ID returns the event's unique identifier.
func (e TrackingEvent) ID() kernel.UUID {
	return e.id
}

// Timestamp returns when the milestone occurred.
func (e TrackingEvent) Timestamp() time.Time {
	return e.timestamp
}

// Location returns the free-text location of the milestone.
func (e TrackingEvent) Location() string {
	return e.location
}

// Note returns the human-readable description of the milestone.
func (e TrackingEvent) Note() string {
	return e.note
}

// IsEqual compares two events by identifier.
func (e TrackingEvent) IsEqual(other TrackingEvent) bool {
	return e.id.IsEqual(other.id)
}
