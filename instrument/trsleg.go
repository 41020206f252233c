package instrument

import (
	"time"

	"github.com/rustyeddy/valuation/fixings"
)

// TotalReturnLeg is the equity leg of a total return swap: a schedule of
// reset dates on one underlier, of which some resets may already be
// observed. Restatement absorbs whatever subset of the pending resets a
// fixing table provides.
type TotalReturnLeg struct {
	Underlying Equity
	ResetDates []time.Time
	resets     map[time.Time]float64
}

// NewTotalReturnLeg builds a leg with the given schedule and any resets
// already known (may be nil).
func NewTotalReturnLeg(underlying Equity, schedule []time.Time, known map[time.Time]float64) TotalReturnLeg {
	leg := TotalReturnLeg{
		Underlying: underlying,
		ResetDates: append([]time.Time(nil), schedule...),
		resets:     make(map[time.Time]float64, len(known)),
	}
	for d, v := range known {
		leg.resets[d] = v
	}
	return leg
}

func (l TotalReturnLeg) ID() string { return l.Underlying.Symbol }

// FixingDates returns the reset dates not yet observed, in schedule order.
func (l TotalReturnLeg) FixingDates() []time.Time {
	var pending []time.Time
	for _, d := range l.ResetDates {
		if _, ok := l.resets[d]; !ok {
			pending = append(pending, d)
		}
	}
	return pending
}

// Reset returns the observed reset level for a date, if known.
func (l TotalReturnLeg) Reset(d time.Time) (float64, bool) {
	v, ok := l.resets[d]
	return v, ok
}

func (l TotalReturnLeg) Fix(t *fixings.Table) (Instrument, bool, error) {
	absorbed := make(map[time.Time]float64)
	for _, d := range l.FixingDates() {
		if v, ok := t.Value(l.ID(), d); ok {
			absorbed[d] = v
		}
	}
	if len(absorbed) == 0 {
		return l, false, nil
	}

	next := NewTotalReturnLeg(l.Underlying, l.ResetDates, l.resets)
	for d, v := range absorbed {
		next.resets[d] = v
	}
	return next, true, nil
}
