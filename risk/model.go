package risk

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/rustyeddy/valuation/instrument"
	"github.com/rustyeddy/valuation/internal/id"
	"github.com/rustyeddy/valuation/market"
	"github.com/rustyeddy/valuation/pkg/logger"
)

// Model is a reference bumpable valuation model over a market snapshot.
// Dependencies are collected from the portfolio on Rebuild; a time bump
// that changes the portfolio's shape obliges the caller to Rebuild.
type Model struct {
	snap *market.Snapshot
	deps *Dependencies
}

func NewModel(snap *market.Snapshot) *Model {
	return &Model{snap: snap}
}

// Rebuild collects the dependency model for a portfolio. Call it after
// construction and again whenever a bump reports that a rebuild is
// required.
func (m *Model) Rebuild(p instrument.Portfolio) {
	m.deps = Collect(p)
}

func (m *Model) Dependencies() (*Dependencies, error) {
	if m.deps == nil {
		return nil, fmt.Errorf("dependency model not built; call Rebuild first")
	}
	return m.deps, nil
}

func (m *Model) Context() market.PricingContext { return m.snap }

func (m *Model) NewSaveable() Saveable {
	sp := &Savepoint{id: id.New(), model: m}
	logger.L().Debug("savepoint opened", zap.String("savepoint", sp.id))
	return sp
}

func (m *Model) Bump(b market.Bump, save Saveable) error {
	sp, ok := save.(*Savepoint)
	if !ok || sp.model != m {
		return fmt.Errorf("saveable does not belong to this model")
	}
	if sp.closed {
		return fmt.Errorf("saveable %s already released", sp.id)
	}

	switch b.Kind() {
	case market.BumpKindSpotDate:
		sdb := b.SpotDate()
		if err := m.snap.BumpSpotDate(sdb.SpotDate(), sdb.Dynamics()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported bump kind %d", b.Kind())
	}

	return nil
}

// Savepoint is the Saveable handle Model hands out. Nothing is persisted
// through it; it exists to bracket the bump and must be released exactly
// once.
type Savepoint struct {
	id     string
	model  *Model
	closed bool
}

// ID returns the savepoint's ULID.
func (s *Savepoint) ID() string { return s.id }

func (s *Savepoint) Close() error {
	if s.closed {
		return fmt.Errorf("savepoint %s already released", s.id)
	}
	s.closed = true
	logger.L().Debug("savepoint released", zap.String("savepoint", s.id))
	return nil
}

var _ Bumpable = (*Model)(nil)
