package market

import (
	"fmt"
	"time"
)

// SpotDynamics selects how an as-yet-unobserved fixing is valued when the
// spot date moves past it. The rule set is fixed; switch exhaustively.
type SpotDynamics int

const (
	// StickyForward values the fixing off the forward curve anchored at
	// the new spot date, evaluated at the fixing date.
	StickyForward SpotDynamics = iota

	// StickySpot values the fixing at the current spot level of the
	// underlier.
	StickySpot
)

func (d SpotDynamics) String() string {
	switch d {
	case StickyForward:
		return "sticky_forward"
	case StickySpot:
		return "sticky_spot"
	}
	return fmt.Sprintf("SpotDynamics(%d)", int(d))
}

// ParseSpotDynamics maps a config string to a SpotDynamics value.
func ParseSpotDynamics(s string) (SpotDynamics, error) {
	switch s {
	case "sticky_forward":
		return StickyForward, nil
	case "sticky_spot":
		return StickySpot, nil
	}
	return 0, fmt.Errorf("unknown spot dynamics %q", s)
}

// SpotDateBump describes a move of the valuation spot date. Immutable;
// produced by the caller and consumed by the risk layer.
type SpotDateBump struct {
	spotDate time.Time
	dynamics SpotDynamics
}

func NewSpotDateBump(spotDate time.Time, dynamics SpotDynamics) SpotDateBump {
	return SpotDateBump{spotDate: spotDate, dynamics: dynamics}
}

// SpotDate returns the target spot date.
func (b SpotDateBump) SpotDate() time.Time { return b.spotDate }

// Dynamics returns the valuation rule for fixings overtaken by the move.
func (b SpotDateBump) Dynamics() SpotDynamics { return b.dynamics }

// BumpKind discriminates the generic Bump union.
type BumpKind int

const (
	BumpKindSpotDate BumpKind = iota
)

// Bump is the generic bump value handed to a bumpable valuation model.
// Only the spot-date kind is constructed by this subsystem.
type Bump struct {
	kind     BumpKind
	spotDate SpotDateBump
}

// NewBumpSpotDate wraps a spot date bump in the generic bump envelope.
func NewBumpSpotDate(b SpotDateBump) Bump {
	return Bump{kind: BumpKindSpotDate, spotDate: b}
}

func (b Bump) Kind() BumpKind         { return b.kind }
func (b Bump) SpotDate() SpotDateBump { return b.spotDate }
