package services

import (
	"fmt"
	"math/rand/v2"

	"logistics/internal/core/domain/model/carrier"
	"logistics/internal/core/domain/model/shipment"
)

// trackingSuffixDigits is the length of the random numeric suffix appended
// to the carrier prefix when generating tracking numbers.
const trackingSuffixDigits = 10

// CarrierAssigner is a domain service that produces the creation-time
// assignment for a new shipment: the carrier, its directory display name,
// a carrier-format tracking number, and the randomized cost/distance
// snapshot.
//
// Carrier selection picks uniformly among the self-service subset of the
// directory. Tracking number uniqueness is best-effort: the suffix is
// random, not coordinated across concurrent creations.
//
// Example usage:
//
//	assigner := services.NewCarrierAssigner()
//	assignment, err := assigner.Assign()
//	if err != nil {
//	    return err
//	}
//	// assignment.Carrier, assignment.CarrierName, assignment.TrackingNumber...
type CarrierAssigner struct{}

// Assignment is the creation-time snapshot produced by the assigner.
type Assignment struct {
	Carrier        carrier.Carrier
	CarrierName    string
	TrackingNumber string
	Cost           int
	Distance       int
}

// NewCarrierAssigner creates a new CarrierAssigner instance.
func NewCarrierAssigner() CarrierAssigner {
	return CarrierAssigner{}
}

// Assign picks a self-service carrier, resolves its display name from the
// directory, and generates the tracking number and cost/distance snapshot.
func (a CarrierAssigner) Assign() (Assignment, error) {
	candidates := carrier.SelfService()
	chosen := candidates[rand.IntN(len(candidates))] //nolint:gosec // it's ok

	info, err := carrier.Resolve(chosen)
	if err != nil {
		return Assignment{}, err
	}

	return Assignment{
		Carrier:        chosen,
		CarrierName:    info.DisplayName,
		TrackingNumber: GenerateTrackingNumber(chosen),
		Cost:           randomInRange(shipment.MinCost, shipment.MaxCost),
		Distance:       randomInRange(shipment.MinDistance, shipment.MaxDistance),
	}, nil
}

// GenerateTrackingNumber builds a carrier-format tracking identifier by
// prefixing the carrier code to a fixed-width random numeric suffix.
func GenerateTrackingNumber(c carrier.Carrier) string {
	suffix := make([]byte, 0, trackingSuffixDigits)
	for range trackingSuffixDigits {
		suffix = append(suffix, byte('0'+rand.IntN(10))) //nolint:gosec // it's ok
	}
	return fmt.Sprintf("%s%s", c.TrackingPrefix(), suffix)
}

func randomInRange(minValue, maxValue int) int {
	return rand.IntN(maxValue-minValue+1) + minValue //nolint:gosec // it's ok
}
