package instrument

import (
	"fmt"
	"time"

	"github.com/rustyeddy/valuation/fixings"
)

// Forward is a forward on an equity underlier with an absolute strike.
// Its strike is fully determined, so it carries no fixing dependencies.
type Forward struct {
	Underlying Equity
	Strike     float64
	Expiry     time.Time
}

func (f Forward) ID() string { return f.Underlying.Symbol }

func (f Forward) FixingDates() []time.Time { return nil }

func (f Forward) Fix(t *fixings.Table) (Instrument, bool, error) {
	return f, false, nil
}

// ForwardStarting is a forward whose strike is set as a fraction of the
// underlier's fixing on the start date. Once that fixing is known the
// instrument simplifies to a plain Forward, changing the portfolio's shape.
type ForwardStarting struct {
	Underlying     Equity
	StartDate      time.Time
	StrikeFraction float64
	Expiry         time.Time
}

func (f ForwardStarting) ID() string { return f.Underlying.Symbol }

func (f ForwardStarting) FixingDates() []time.Time {
	return []time.Time{f.StartDate}
}

func (f ForwardStarting) Fix(t *fixings.Table) (Instrument, bool, error) {
	level, ok := t.Value(f.ID(), f.StartDate)
	if !ok {
		return f, false, nil
	}
	if level <= 0 {
		return nil, false, fmt.Errorf("forward starting %s: non-positive start fixing %v on %s",
			f.ID(), level, f.StartDate.Format("2006-01-02"))
	}

	return Forward{
		Underlying: f.Underlying,
		Strike:     f.StrikeFraction * level,
		Expiry:     f.Expiry,
	}, true, nil
}
