package market

import (
	"fmt"
	"math"
	"time"

	"github.com/rustyeddy/valuation/instrument"
)

// Snapshot is a concrete PricingContext: a spot date, spot levels and zero
// curves keyed by underlier identifier. It doubles as the bumpable market
// state of a valuation model; all reads are plain lookups.
type Snapshot struct {
	spotDate time.Time
	spots    map[string]float64
	curves   map[string]*ZeroCurve
}

// NewSnapshot copies the supplied maps so callers cannot alias the
// snapshot's state.
func NewSnapshot(spotDate time.Time, spots map[string]float64, curves map[string]*ZeroCurve) *Snapshot {
	s := &Snapshot{
		spotDate: spotDate,
		spots:    make(map[string]float64, len(spots)),
		curves:   make(map[string]*ZeroCurve, len(curves)),
	}
	for id, level := range spots {
		s.spots[id] = level
	}
	for id, c := range curves {
		s.curves[id] = c
	}
	return s
}

func (s *Snapshot) SpotDate() time.Time { return s.spotDate }

func (s *Snapshot) Spot(id string) (float64, error) {
	level, ok := s.spots[id]
	if !ok {
		return 0, fmt.Errorf("no spot level for %q", id)
	}
	return level, nil
}

// ForwardCurve returns an equity-style forward curve for the instrument's
// underlier, anchored at the snapshot spot date. asOf marks how far the
// curve must extend; it may not precede the spot date.
func (s *Snapshot) ForwardCurve(inst instrument.Instrument, asOf time.Time) (ForwardCurve, error) {
	id := inst.ID()

	spot, ok := s.spots[id]
	if !ok {
		return nil, fmt.Errorf("no spot level for %q", id)
	}
	curve, ok := s.curves[id]
	if !ok {
		return nil, fmt.Errorf("no zero curve for %q", id)
	}
	if asOf.Before(s.spotDate) {
		return nil, fmt.Errorf("forward curve for %q: as-of %s before spot date %s",
			id, asOf.Format("2006-01-02"), s.spotDate.Format("2006-01-02"))
	}

	return &equityForward{base: s.spotDate, spot: spot, curve: curve}, nil
}

// BumpSpotDate advances the snapshot's spot date. Under StickyForward every
// spot level rolls along its own curve to the new date; under StickySpot
// levels are left where they are.
func (s *Snapshot) BumpSpotDate(to time.Time, dynamics SpotDynamics) error {
	if to.Before(s.spotDate) {
		return fmt.Errorf("bump spot date: %s before current spot date %s",
			to.Format("2006-01-02"), s.spotDate.Format("2006-01-02"))
	}

	switch dynamics {
	case StickyForward:
		t := YearFraction(s.spotDate, to)
		for id, level := range s.spots {
			curve, ok := s.curves[id]
			if !ok {
				return fmt.Errorf("bump spot date: no zero curve for %q", id)
			}
			s.spots[id] = level * math.Exp(curve.Rate(to)*t)
		}
	case StickySpot:
		// levels unchanged
	default:
		return fmt.Errorf("bump spot date: unknown dynamics %v", dynamics)
	}

	s.spotDate = to
	return nil
}

var _ PricingContext = (*Snapshot)(nil)
