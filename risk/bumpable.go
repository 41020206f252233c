package risk

import (
	"github.com/rustyeddy/valuation/market"
)

// Saveable is a scoped transactional handle on a bumpable model. Callers
// must release it on every exit path, typically via defer.
type Saveable interface {
	Close() error
}

// Bumpable is the contract a valuation model exposes to the bump layer.
// Access to a Bumpable is serialized by the caller: one bump at a time.
type Bumpable interface {
	// Dependencies returns the current dependency model, or fails if it
	// has not been built yet.
	Dependencies() (*Dependencies, error)

	// Context returns the current pricing context.
	Context() market.PricingContext

	// NewSaveable opens a scoped transactional region against the model.
	NewSaveable() Saveable

	// Bump applies a generic bump within the given region.
	Bump(b market.Bump, save Saveable) error
}
