package instrument

import (
	"fmt"

	"github.com/rustyeddy/valuation/fixings"
)

// Restate rewrites a portfolio against a table of newly-known fixings. It
// returns a fresh portfolio in the same order, sharing the handles of any
// holdings the fixings did not touch. The input is never modified; on any
// failure no partial result is returned.
func Restate(p Portfolio, t *fixings.Table) (Portfolio, error) {
	out := make(Portfolio, 0, len(p))

	for _, h := range p {
		fixed, changed, err := h.Instrument.Fix(t)
		if err != nil {
			return nil, fmt.Errorf("restate %s: %w", h.Instrument.ID(), err)
		}
		if !changed {
			fixed = h.Instrument
		}
		out = append(out, Holding{Weight: h.Weight, Instrument: fixed})
	}

	return out, nil
}
