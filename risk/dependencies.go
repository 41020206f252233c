package risk

import (
	"time"

	"github.com/rustyeddy/valuation/instrument"
)

// Dependencies is the read-only dependency model of one valuation: which
// underliers the portfolio observes and which future fixing dates each is
// sensitive to. Iteration order is the order underliers were discovered in,
// so scans are deterministic.
type Dependencies struct {
	order       []string
	instruments map[string]instrument.Instrument
	fixings     map[string][]time.Time
	seen        map[string]map[time.Time]bool
}

func NewDependencies() *Dependencies {
	return &Dependencies{
		instruments: make(map[string]instrument.Instrument),
		fixings:     make(map[string][]time.Time),
		seen:        make(map[string]map[time.Time]bool),
	}
}

// Add registers an instrument and its pending fixing dates. The first
// instrument seen for an identifier keeps the slot; duplicate (id, date)
// pairs collapse.
func (d *Dependencies) Add(inst instrument.Instrument) {
	id := inst.ID()
	if _, ok := d.instruments[id]; !ok {
		d.order = append(d.order, id)
		d.instruments[id] = inst
		d.seen[id] = make(map[time.Time]bool)
	}
	for _, date := range inst.FixingDates() {
		if !d.seen[id][date] {
			d.seen[id][date] = true
			d.fixings[id] = append(d.fixings[id], date)
		}
	}
}

// IDs returns the underlier identifiers in discovery order.
func (d *Dependencies) IDs() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Instrument returns the instrument registered for an identifier.
func (d *Dependencies) Instrument(id string) (instrument.Instrument, bool) {
	inst, ok := d.instruments[id]
	return inst, ok
}

// Fixings returns the pending fixing dates for an identifier, in
// discovery order.
func (d *Dependencies) Fixings(id string) []time.Time {
	return d.fixings[id]
}

// Collect builds the dependency model for a portfolio.
func Collect(p instrument.Portfolio) *Dependencies {
	d := NewDependencies()
	for _, h := range p {
		d.Add(h.Instrument)
	}
	return d
}
