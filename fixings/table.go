// Package fixings holds realized market observations: the immutable fixing
// table consumed by portfolio restatement, and a sqlite-backed store of
// historical fixings.
package fixings

import (
	"fmt"
	"sort"
	"time"
)

// Fixing is one observed (or synthesized) market value for an identifier.
type Fixing struct {
	Date  time.Time
	Value float64
}

// Table is an immutable set of fixings anchored at a spot date. Within an
// identifier the fixings keep the order they were supplied in; the
// restatement contract receives them exactly as discovered.
type Table struct {
	spotDate time.Time
	series   map[string][]Fixing
	ids      []string
}

// FromMap builds a Table anchored at spotDate. Construction fails on a
// duplicate (id, date) pair, an empty identifier, or a fixing at or after
// the anchor date: fixings are by definition already observed.
func FromMap(spotDate time.Time, m map[string][]Fixing) (*Table, error) {
	t := &Table{
		spotDate: spotDate,
		series:   make(map[string][]Fixing, len(m)),
		ids:      make([]string, 0, len(m)),
	}

	for id, fxs := range m {
		if id == "" {
			return nil, fmt.Errorf("fixing table: empty identifier")
		}
		seen := make(map[time.Time]bool, len(fxs))
		series := make([]Fixing, 0, len(fxs))
		for _, f := range fxs {
			if !f.Date.Before(spotDate) {
				return nil, fmt.Errorf("fixing table: %s fixing at %s is not before spot date %s",
					id, f.Date.Format("2006-01-02"), spotDate.Format("2006-01-02"))
			}
			if seen[f.Date] {
				return nil, fmt.Errorf("fixing table: duplicate fixing for %s at %s",
					id, f.Date.Format("2006-01-02"))
			}
			seen[f.Date] = true
			series = append(series, f)
		}
		t.series[id] = series
		t.ids = append(t.ids, id)
	}

	sort.Strings(t.ids)
	return t, nil
}

// SpotDate returns the anchor date the table was built against.
func (t *Table) SpotDate() time.Time { return t.spotDate }

// IDs returns the identifiers with at least one fixing, sorted.
func (t *Table) IDs() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// Series returns a copy of the fixings for an identifier, in supply order.
func (t *Table) Series(id string) []Fixing {
	fxs, ok := t.series[id]
	if !ok {
		return nil
	}
	out := make([]Fixing, len(fxs))
	copy(out, fxs)
	return out
}

// Value looks up the fixing for an identifier at an exact date.
func (t *Table) Value(id string, at time.Time) (float64, bool) {
	for _, f := range t.series[id] {
		if f.Date.Equal(at) {
			return f.Value, true
		}
	}
	return 0, false
}

// Len returns the total number of fixings across all identifiers.
func (t *Table) Len() int {
	n := 0
	for _, fxs := range t.series {
		n += len(fxs)
	}
	return n
}
