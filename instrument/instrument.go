// Package instrument models the tradable instruments a valuation model
// prices. Instruments are immutable value objects; the same handle may sit
// in several portfolio slots or be shared across callers, so restatement
// always returns replacements rather than mutating in place.
package instrument

import (
	"time"

	"github.com/rustyeddy/valuation/fixings"
)

// Instrument is a shared, immutable handle on one priced position.
type Instrument interface {
	// ID returns the market identifier of the underlier whose spot,
	// curves and fixings this instrument observes.
	ID() string

	// FixingDates returns the future observation dates the instrument is
	// still sensitive to, in schedule order. Nil when fully observed.
	FixingDates() []time.Time

	// Fix reconciles the instrument with newly-known fixings. It returns
	// the (possibly simplified) replacement and whether anything changed.
	// Pure: the receiver is never modified.
	Fix(t *fixings.Table) (Instrument, bool, error)
}

// Holding is one weighted portfolio slot.
type Holding struct {
	Weight     float64
	Instrument Instrument
}

// Portfolio is an ordered sequence of holdings. Owned by the caller; the
// risk layer replaces its contents wholesale and never edits a slot.
type Portfolio []Holding
