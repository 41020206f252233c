package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/valuation/instrument"
	"github.com/rustyeddy/valuation/market"
)

func testSnapshot(t *testing.T) *market.Snapshot {
	t.Helper()
	curve, err := market.NewZeroCurve([]market.Pillar{{Date: day(1), Rate: 0.02}})
	require.NoError(t, err)
	return market.NewSnapshot(day(10),
		map[string]float64{"EUR": 1.10, "BP": 450.0},
		map[string]*market.ZeroCurve{"EUR": curve, "BP": curve},
	)
}

func TestModelDependenciesRequireRebuild(t *testing.T) {
	t.Parallel()

	m := NewModel(testSnapshot(t))

	_, err := m.Dependencies()
	assert.Error(t, err)

	m.Rebuild(instrument.Portfolio{{Weight: 1, Instrument: instrument.Equity{Symbol: "EUR"}}})
	deps, err := m.Dependencies()
	require.NoError(t, err)
	assert.Equal(t, []string{"EUR"}, deps.IDs())
}

func TestModelBump(t *testing.T) {
	t.Parallel()

	t.Run("advances_spot_date", func(t *testing.T) {
		t.Parallel()
		m := NewModel(testSnapshot(t))
		save := m.NewSaveable()
		defer save.Close()

		bump := market.NewBumpSpotDate(market.NewSpotDateBump(day(15), market.StickySpot))
		require.NoError(t, m.Bump(bump, save))
		assert.True(t, m.Context().SpotDate().Equal(day(15)))
	})

	t.Run("rejects_foreign_saveable", func(t *testing.T) {
		t.Parallel()
		m := NewModel(testSnapshot(t))
		other := NewModel(testSnapshot(t))
		save := other.NewSaveable()
		defer save.Close()

		bump := market.NewBumpSpotDate(market.NewSpotDateBump(day(15), market.StickySpot))
		assert.Error(t, m.Bump(bump, save))
	})

	t.Run("rejects_released_saveable", func(t *testing.T) {
		t.Parallel()
		m := NewModel(testSnapshot(t))
		save := m.NewSaveable()
		require.NoError(t, save.Close())

		bump := market.NewBumpSpotDate(market.NewSpotDateBump(day(15), market.StickySpot))
		assert.Error(t, m.Bump(bump, save))
	})
}

func TestSavepointCloseOnce(t *testing.T) {
	t.Parallel()

	m := NewModel(testSnapshot(t))
	save := m.NewSaveable()

	sp, ok := save.(*Savepoint)
	require.True(t, ok)
	assert.NotEmpty(t, sp.ID())

	require.NoError(t, save.Close())
	assert.Error(t, save.Close())

	// Each savepoint gets its own identifier.
	other := m.NewSaveable().(*Savepoint)
	defer other.Close()
	assert.NotEqual(t, sp.ID(), other.ID())
}
