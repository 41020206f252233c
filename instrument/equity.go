package instrument

import (
	"time"

	"github.com/rustyeddy/valuation/fixings"
)

// Equity is a plain spot underlier. It has no fixing dependencies and
// never changes shape under restatement.
type Equity struct {
	Symbol   string
	Currency string
}

func (e Equity) ID() string { return e.Symbol }

func (e Equity) FixingDates() []time.Time { return nil }

func (e Equity) Fix(t *fixings.Table) (Instrument, bool, error) {
	return e, false, nil
}
