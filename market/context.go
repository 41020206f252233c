package market

import (
	"time"

	"github.com/rustyeddy/valuation/instrument"
)

// ForwardCurve projects the forward level of a single underlier.
type ForwardCurve interface {
	// Forward returns the projected level at the given date.
	Forward(at time.Time) (float64, error)
}

// PricingContext is a read-only snapshot of the market as of a spot date.
// It is borrowed for the duration of one valuation or bump call and must
// not be mutated concurrently by another party during that window.
type PricingContext interface {
	// SpotDate returns the valuation anchor date.
	SpotDate() time.Time

	// Spot returns the current spot level for an identifier.
	Spot(id string) (float64, error)

	// ForwardCurve returns a forward curve for the instrument's underlier.
	// The curve must extend at least as far as asOf.
	ForwardCurve(inst instrument.Instrument, asOf time.Time) (ForwardCurve, error)
}
