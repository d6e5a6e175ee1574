package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions so shipments
// follow the carrier delivery workflow.
//
// State transitions:
//
//	Pending ──> Scheduled ──> PickedUp ──> InTransit ──> Delivered
//	   │            │            │             │
//	   └────────────┴────────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transition leaves them.
// PickedUp, InTransit, and Delivered are reached by tracking sync rather
// than by direct caller operations.
//
// Status is a value object that validates state transitions and provides
// string tags for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status when a shipment is first created.
	// Shipments in this status are waiting for a carrier to be scheduled.
	Pending

	// Scheduled indicates a carrier has been assigned and pickup is awaited.
	Scheduled

	// PickedUp indicates the carrier has collected the goods.
	PickedUp

	// InTransit indicates the goods are moving toward the delivery address.
	InTransit

	// Delivered indicates the goods reached the receiver.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the shipment was cancelled before delivery.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string tags.
// The tags are the persisted/serialized representation.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Scheduled:     "scheduled",
		PickedUp:      "picked_up",
		InTransit:     "in_transit",
		Delivered:     "delivered",
		Cancelled:     "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Scheduled: "scheduled",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a persisted status tag back into a Status.
// Returns an error for tags that are not valid statuses; a raw string from
// storage must never be compared or used as a status without this step.
func StatusFromString(s string) (Status, error) {
	for status, tag := range getValidStatusStrings() {
		if tag == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status tag ("pending", "in_transit", ...).
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Schedule transitions the status to Scheduled.
//
// Valid transitions:
//   - Pending -> Scheduled (carrier assigned)
//
// Returns (0, error) from any other status; callers treat an
// already-Scheduled shipment as a no-op before reaching this point.
func (s Status) Schedule() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to schedule", s.String()),
		)
	}
	return Scheduled, nil
}

// PickUp transitions the status to PickedUp.
//
// Valid transitions:
//   - Scheduled -> PickedUp (carrier collected the goods)
func (s Status) PickUp() (Status, error) {
	if s != Scheduled {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to pick up", s.String()),
		)
	}
	return PickedUp, nil
}

// Transit transitions the status to InTransit.
//
// Valid transitions:
//   - PickedUp -> InTransit (vehicle departed)
func (s Status) Transit() (Status, error) {
	if s != PickedUp {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to transit", s.String()),
		)
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered (goods handed over)
//
// Delivered is a final state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from any non-terminal state. Cancelling a Delivered shipment is
// rejected; callers treat an already-Cancelled shipment as a no-op before
// reaching this point.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
