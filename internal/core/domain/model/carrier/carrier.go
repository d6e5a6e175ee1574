package carrier

import (
	"errors"
	"fmt"

	"logistics/internal/pkg/errs"
)

// ErrUnknownCarrier is returned when a carrier identifier is not present in
// the directory. It is fatal to the operation that supplied the identifier.
var ErrUnknownCarrier = errors.New("unknown carrier")

// Carrier identifies a third-party transport provider.
//
// Carrier is a value object validated against the static directory below.
// The string form is the wire/persistence tag ("huolala", "sf", ...).
type Carrier int

const (
	// Unknown represents an invalid or undefined carrier.
	// This value (0) helps catch uninitialized Carrier values.
	Unknown Carrier = iota

	// Huolala is 货拉拉, same-city and intercity freight.
	Huolala

	// Yunmanman is 运满满, a nationwide freight platform.
	Yunmanman

	// STO is 申通快递, parcel delivery.
	STO

	// Yunda is 韵达快递, parcel delivery.
	Yunda

	// ZTO is 中通快递, parcel delivery.
	ZTO

	// SF is 顺丰速运, express delivery.
	SF
)

// Info holds the directory entry resolved for a carrier: the human-readable
// display name and the icon used by presentation code.
type Info struct {
	DisplayName string
	Icon        string
}

// getCarrierStrings returns a map of Carrier values to their string tags.
func getCarrierStrings() map[Carrier]string {
	return map[Carrier]string{
		Unknown:   "unknown",
		Huolala:   "huolala",
		Yunmanman: "yunmanman",
		STO:       "sto",
		Yunda:     "yunda",
		ZTO:       "zto",
		SF:        "sf",
	}
}

// getDirectory returns the static carrier directory. Display names are the
// providers' native names; icons follow the presentation layer's icon set.
func getDirectory() map[Carrier]Info {
	return map[Carrier]Info{
		Huolala:   {DisplayName: "货拉拉", Icon: "fa-truck"},
		Yunmanman: {DisplayName: "运满满", Icon: "fa-shipping-fast"},
		STO:       {DisplayName: "申通快递", Icon: "fa-box"},
		Yunda:     {DisplayName: "韵达快递", Icon: "fa-box-open"},
		ZTO:       {DisplayName: "中通快递", Icon: "fa-parcel"},
		SF:        {DisplayName: "顺丰速运", Icon: "fa-shipping-fast"},
	}
}

// getTrackingPrefixes returns the carrier-specific tracking number prefixes.
func getTrackingPrefixes() map[Carrier]string {
	return map[Carrier]string{
		Huolala:   "HL",
		Yunmanman: "YM",
		STO:       "ST",
		Yunda:     "YD",
		ZTO:       "ZT",
		SF:        "SF",
	}
}

// FromString parses a carrier string tag back into a Carrier.
// Returns ErrUnknownCarrier for tags not present in the directory.
func FromString(s string) (Carrier, error) {
	for c, tag := range getCarrierStrings() {
		if tag == s && c != Unknown {
			return c, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %s", ErrUnknownCarrier, s)
}

// String returns the carrier's string tag, or "unknown" for invalid values.
// This tag is what gets persisted and what external callers pass back in.
func (c Carrier) String() string {
	if tag, ok := getCarrierStrings()[c]; ok {
		return tag
	}
	return "unknown"
}

// Validate checks that the carrier is present in the directory.
// Unknown (0) and out-of-range values are invalid.
func (c Carrier) Validate() error {
	if _, ok := getDirectory()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("carrier", fmt.Errorf("%w: %d", ErrUnknownCarrier, c))
	}
	return nil
}

// Resolve looks up the directory entry for the carrier.
// Pure lookup: no side effects, no I/O. Fails with ErrUnknownCarrier when
// the identifier is not in the static table.
func Resolve(c Carrier) (Info, error) {
	info, ok := getDirectory()[c]
	if !ok {
		return Info{}, fmt.Errorf("%w: %d", ErrUnknownCarrier, c)
	}
	return info, nil
}

// TrackingPrefix returns the carrier-specific code prefixed to generated
// tracking numbers ("HL", "YM", ...).
func (c Carrier) TrackingPrefix() string {
	if p, ok := getTrackingPrefixes()[c]; ok {
		return p
	}
	return "XX"
}

// SelfService returns the restricted subset of carriers eligible for
// self-service shipment creation. New shipments are assigned a carrier from
// this list; the full directory remains available for explicit scheduling.
func SelfService() []Carrier {
	return []Carrier{Huolala, Yunmanman}
}
