package market

import (
	"fmt"
	"math"
	"sort"
	"time"
)

const daysPerYear = 365.0 // ACT/365F, the standard curve time axis

// YearFraction returns the ACT/365F year fraction between two dates.
func YearFraction(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24.0 / daysPerYear
}

// Pillar is one node of a zero curve: a date and a continuously
// compounded zero rate (e.g. 0.03 for 3%).
type Pillar struct {
	Date time.Time
	Rate float64
}

// ZeroCurve is a pillar-based zero rate curve. Rates are interpolated
// linearly in time between pillars and extrapolated flat beyond them.
type ZeroCurve struct {
	pillars []Pillar
}

// NewZeroCurve builds a curve from pillars. The input is copied and sorted
// by date; duplicate pillar dates are rejected.
func NewZeroCurve(pillars []Pillar) (*ZeroCurve, error) {
	if len(pillars) == 0 {
		return nil, fmt.Errorf("zero curve: no pillars")
	}

	ps := make([]Pillar, len(pillars))
	copy(ps, pillars)
	sort.Slice(ps, func(i, j int) bool { return ps[i].Date.Before(ps[j].Date) })

	for i := 1; i < len(ps); i++ {
		if ps[i].Date.Equal(ps[i-1].Date) {
			return nil, fmt.Errorf("zero curve: duplicate pillar date %s", ps[i].Date.Format("2006-01-02"))
		}
	}

	return &ZeroCurve{pillars: ps}, nil
}

// Rate returns the zero rate at the given date.
func (c *ZeroCurve) Rate(at time.Time) float64 {
	ps := c.pillars

	if !at.After(ps[0].Date) {
		return ps[0].Rate
	}
	last := ps[len(ps)-1]
	if !at.Before(last.Date) {
		return last.Rate
	}

	i := sort.Search(len(ps), func(i int) bool { return !ps[i].Date.Before(at) })
	lo, hi := ps[i-1], ps[i]

	span := hi.Date.Sub(lo.Date)
	w := float64(at.Sub(lo.Date)) / float64(span)
	return lo.Rate + (hi.Rate-lo.Rate)*w
}

// equityForward projects an underlier forward along its zero curve:
// F(d) = S * exp(z(d) * t(base, d)).
type equityForward struct {
	base  time.Time
	spot  float64
	curve *ZeroCurve
}

func (f *equityForward) Forward(at time.Time) (float64, error) {
	if at.Before(f.base) {
		return 0, fmt.Errorf("forward: date %s before curve base %s",
			at.Format("2006-01-02"), f.base.Format("2006-01-02"))
	}
	t := YearFraction(f.base, at)
	return f.spot * math.Exp(f.curve.Rate(at)*t), nil
}
