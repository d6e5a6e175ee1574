package shipment

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")
)

// Bounds for the randomized cost and distance snapshots fixed at creation.
const (
	MinCost     = 1000
	MaxCost     = 4000
	MinDistance = 100
	MaxDistance = 1100
)

// EstimatedDeliveryWindow is how far ahead of creation the estimated
// delivery time is set.
const EstimatedDeliveryWindow = 7 * 24 * time.Hour

// Milestone notes appended by the engine itself.
const (
	noteCreated   = "order created, awaiting vehicle assignment"
	noteScheduled = "carrier assigned, awaiting pickup"
	noteCancelled = "shipment cancelled"
)

// Shipment is the aggregate root for one logistics order: a single item's
// transit from pickup to delivery with a third-party carrier.
//
// Shipment maintains these invariants:
//   - trackingEvents is never empty after creation and is append-only
//   - event timestamps are non-decreasing in insertion order
//   - status transitions follow the Status state machine
//   - id, orderID, device snapshot, tracking number, cost, distance, and
//     contact info are immutable after creation
//   - updatedAt is refreshed on every mutating operation
//
// Private fields keep the aggregate encapsulated; mutation happens only
// through validated methods, and the Store replaces whole records.
type Shipment struct {
	// id is the unique identifier for the shipment
	id kernel.UUID

	// orderID references the external order this shipment fulfils
	orderID string

	// deviceID and deviceName snapshot the shipped item at creation time
	deviceID   string
	deviceName string

	// carrier is the assigned transport provider; carrierName is the
	// display name resolved from the directory at assignment time
	carrier     carrier.Carrier
	carrierName string

	// trackingNumber is the carrier-format identifier generated at creation
	trackingNumber string

	// status is the current lifecycle state
	status Status

	estimatedDeliveryTime time.Time
	actualDeliveryTime    *time.Time

	// trackingEvents is the append-only milestone history, insertion order
	// chronological
	trackingEvents []TrackingEvent

	// cost and distance are numeric snapshots fixed at creation
	cost     int
	distance int

	contactInfo ContactInfo

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the shipment was created via a constructor
	isConstructed bool
}

// NewShipment creates a shipment in Pending status with the creation seed
// event appended and the estimated delivery time set one delivery window
// ahead of now.
//
// All identifiers must be non-empty, the carrier must resolve in the
// directory, and cost/distance must lie within their bounds.
func NewShipment(
	id kernel.UUID,
	orderID, deviceID, deviceName string,
	assignedCarrier carrier.Carrier,
	carrierName string,
	trackingNumber string,
	contactInfo ContactInfo,
	cost, distance int,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        Pending,
		contactInfo:   contactInfo,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setDevice(deviceID, deviceName),
		s.setCarrier(assignedCarrier, carrierName),
		s.setTrackingNumber(trackingNumber),
		s.setCost(cost),
		s.setDistance(distance),
	); err != nil {
		return nil, err
	}

	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("now")
	}

	s.estimatedDeliveryTime = now.Add(EstimatedDeliveryWindow)
	s.createdAt = now
	s.updatedAt = now

	if err := s.appendEvent(now, EventLocationSystem, noteCreated); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence without applying
// creation-time side effects. The event history must be non-empty and must
// be supplied in its persisted insertion order.
func RestoreShipment(
	id kernel.UUID,
	orderID, deviceID, deviceName string,
	assignedCarrier carrier.Carrier,
	carrierName string,
	trackingNumber string,
	status Status,
	estimatedDeliveryTime time.Time,
	actualDeliveryTime *time.Time,
	trackingEvents []TrackingEvent,
	contactInfo ContactInfo,
	cost, distance int,
	createdAt, updatedAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		contactInfo:   contactInfo,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setDevice(deviceID, deviceName),
		s.setCarrier(assignedCarrier, carrierName),
		s.setTrackingNumber(trackingNumber),
		s.setCost(cost),
		s.setDistance(distance),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(trackingEvents) == 0 {
		return nil, errs.NewValueIsRequiredError("trackingEvents")
	}

	s.status = status
	s.estimatedDeliveryTime = estimatedDeliveryTime
	s.actualDeliveryTime = actualDeliveryTime
	s.trackingEvents = append([]TrackingEvent(nil), trackingEvents...)
	s.createdAt = createdAt
	s.updatedAt = updatedAt

	return s, nil
}

// Validate ensures the Shipment was constructed via NewShipment or
// RestoreShipment, preventing use of zero-value aggregates.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// OrderID returns the external order reference.
func (s *Shipment) OrderID() string { return s.orderID }

// DeviceID returns the shipped item's identifier snapshot.
func (s *Shipment) DeviceID() string { return s.deviceID }

// DeviceName returns the shipped item's name snapshot.
func (s *Shipment) DeviceName() string { return s.deviceName }

// Carrier returns the assigned transport provider.
func (s *Shipment) Carrier() carrier.Carrier { return s.carrier }

// CarrierName returns the display name resolved when the carrier was assigned.
// It is not re-resolved on later directory changes.
func (s *Shipment) CarrierName() string { return s.carrierName }

// TrackingNumber returns the carrier-format tracking identifier.
func (s *Shipment) TrackingNumber() string { return s.trackingNumber }

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status { return s.status }

// EstimatedDeliveryTime returns the delivery estimate fixed at creation.
func (s *Shipment) EstimatedDeliveryTime() time.Time { return s.estimatedDeliveryTime }

// ActualDeliveryTime returns when the shipment was delivered, or nil while
// the status has not reached Delivered.
func (s *Shipment) ActualDeliveryTime() *time.Time {
	if s.actualDeliveryTime == nil {
		return nil
	}
	t := *s.actualDeliveryTime
	return &t
}

// TrackingEvents returns a defensive copy of the milestone history in
// insertion (chronological) order.
func (s *Shipment) TrackingEvents() []TrackingEvent {
	return append([]TrackingEvent(nil), s.trackingEvents...)
}

// LatestEvent returns the most recently appended milestone. The history is
// never empty after construction.
func (s *Shipment) LatestEvent() TrackingEvent {
	return s.trackingEvents[len(s.trackingEvents)-1]
}

// Cost returns the cost snapshot fixed at creation.
func (s *Shipment) Cost() int { return s.cost }

// Distance returns the distance snapshot fixed at creation.
func (s *Shipment) Distance() int { return s.distance }

// ContactInfo returns the sender/receiver contact snapshot.
func (s *Shipment) ContactInfo() ContactInfo { return s.contactInfo }

// CreatedAt returns when the shipment was created.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns when the shipment was last mutated.
func (s *Shipment) UpdatedAt() time.Time { return s.updatedAt }

// Clone returns a deep copy of the shipment. The Store mutates aggregates
// by cloning the current record, applying the change, and replacing the
// whole record, so readers never observe a partially-updated shipment.
func (s *Shipment) Clone() *Shipment {
	clone := *s
	clone.trackingEvents = append([]TrackingEvent(nil), s.trackingEvents...)
	if s.actualDeliveryTime != nil {
		t := *s.actualDeliveryTime
		clone.actualDeliveryTime = &t
	}
	return &clone
}

// Schedule assigns the carrier, transitions Pending -> Scheduled, and
// appends the scheduling milestone.
//
// Scheduling an already-Scheduled shipment is a no-op returning changed ==
// false, so a caller retry after a timeout cannot double-transition the
// record. Terminal states reject the transition.
func (s *Shipment) Schedule(assignedCarrier carrier.Carrier, carrierName string, now time.Time) (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}
	if err := assignedCarrier.Validate(); err != nil {
		return false, err
	}
	if carrierName == "" {
		return false, errs.NewValueIsRequiredError("carrierName")
	}

	if s.status == Scheduled {
		return false, nil
	}

	newStatus, err := s.status.Schedule()
	if err != nil {
		return false, err
	}

	s.status = newStatus
	s.carrier = assignedCarrier
	s.carrierName = carrierName
	if err := s.appendEvent(now, EventLocationSystem, noteScheduled); err != nil {
		return false, err
	}
	s.updatedAt = now
	return true, nil
}

// Cancel transitions any non-terminal state to Cancelled and appends the
// cancellation milestone.
//
// Cancelling an already-Cancelled shipment is a no-op returning changed ==
// false; cancelling a Delivered shipment fails. Cancellation is terminal,
// not removal: the record stays in the collection.
func (s *Shipment) Cancel(now time.Time) (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}

	if s.status == Cancelled {
		return false, nil
	}

	newStatus, err := s.status.Cancel()
	if err != nil {
		return false, err
	}

	s.status = newStatus
	if err := s.appendEvent(now, EventLocationSystem, noteCancelled); err != nil {
		return false, err
	}
	s.updatedAt = now
	return true, nil
}

// MarkPickedUp records the carrier collecting the goods:
// Scheduled -> PickedUp with a carrier-reported milestone.
func (s *Shipment) MarkPickedUp(location, note string, now time.Time) error {
	newStatus, err := s.status.PickUp()
	if err != nil {
		return err
	}
	return s.applyTrackingUpdate(newStatus, location, note, now)
}

// MarkInTransit records the vehicle departing:
// PickedUp -> InTransit with a carrier-reported milestone.
func (s *Shipment) MarkInTransit(location, note string, now time.Time) error {
	newStatus, err := s.status.Transit()
	if err != nil {
		return err
	}
	return s.applyTrackingUpdate(newStatus, location, note, now)
}

// MarkDelivered records the handover: InTransit -> Delivered with a
// carrier-reported milestone. Sets the actual delivery time.
func (s *Shipment) MarkDelivered(location, note string, now time.Time) error {
	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}
	if err := s.applyTrackingUpdate(newStatus, location, note, now); err != nil {
		return err
	}
	t := now
	s.actualDeliveryTime = &t
	return nil
}

func (s *Shipment) applyTrackingUpdate(newStatus Status, location, note string, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.status = newStatus
	if err := s.appendEvent(now, location, note); err != nil {
		return err
	}
	s.updatedAt = now
	return nil
}

// appendEvent appends a milestone, clamping the timestamp to the latest
// existing event so the sequence stays non-decreasing under clock skew.
func (s *Shipment) appendEvent(now time.Time, location, note string) error {
	ts := now
	if n := len(s.trackingEvents); n > 0 {
		if last := s.trackingEvents[n-1].Timestamp(); ts.Before(last) {
			ts = last
		}
	}

	event, err := NewTrackingEvent(ts, location, note)
	if err != nil {
		return err
	}
	s.trackingEvents = append(s.trackingEvents, event)
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setDevice(deviceID, deviceName string) error {
	if deviceID == "" {
		return errs.NewValueIsRequiredError("deviceId")
	}
	if deviceName == "" {
		return errs.NewValueIsRequiredError("deviceName")
	}
	s.deviceID = deviceID
	s.deviceName = deviceName
	return nil
}

func (s *Shipment) setCarrier(assignedCarrier carrier.Carrier, carrierName string) error {
	if err := assignedCarrier.Validate(); err != nil {
		return err
	}
	if carrierName == "" {
		return errs.NewValueIsRequiredError("carrierName")
	}
	s.carrier = assignedCarrier
	s.carrierName = carrierName
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setCost(cost int) error {
	if cost < MinCost || cost > MaxCost {
		return errs.NewValueIsOutOfRangeError("cost", cost, MinCost, MaxCost)
	}
	s.cost = cost
	return nil
}

func (s *Shipment) setDistance(distance int) error {
	if distance < MinDistance || distance > MaxDistance {
		return errs.NewValueIsOutOfRangeError("distance", distance, MinDistance, MaxDistance)
	}
	s.distance = distance
	return nil
}

// String renders a short debug form.
func (s *Shipment) String() string {
	return fmt.Sprintf("shipment %s (order %s, %s, %s)", s.id, s.orderID, s.carrier, s.status)
}
