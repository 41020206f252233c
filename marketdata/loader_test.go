package marketdata

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/valuation/instrument"
)

func writeSnapshot(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marketdata.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	return path
}

func TestLoadSnapshot(t *testing.T) {
	t.Parallel()

	path := writeSnapshot(t, `
spot_date: "2026-01-10"
spots:
  EUR: "1.1032"
  BP: "450.25"
curves:
  EUR:
    pillars:
      - date: "2026-07-10"
        zero_rate: "0.031"
      - date: "2027-01-10"
        zero_rate: "0.034"
`)

	snap, err := LoadSnapshot(path)
	require.NoError(t, err)

	assert.True(t, snap.SpotDate().Equal(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)))

	level, err := snap.Spot("EUR")
	require.NoError(t, err)
	assert.InDelta(t, 1.1032, level, 1e-12)

	level, err = snap.Spot("BP")
	require.NoError(t, err)
	assert.InDelta(t, 450.25, level, 1e-12)

	curve, err := snap.ForwardCurve(instrument.Equity{Symbol: "EUR"}, snap.SpotDate())
	require.NoError(t, err)
	fwd, err := curve.Forward(snap.SpotDate())
	require.NoError(t, err)
	assert.InDelta(t, 1.1032, fwd, 1e-12, "zero-tenor forward equals spot")
}

func TestLoadSnapshotRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "bad_spot_date",
			doc: `
spot_date: "Jan 10"
spots:
  EUR: "1.10"
`,
		},
		{
			name: "bad_quote",
			doc: `
spot_date: "2026-01-10"
spots:
  EUR: "one point one"
`,
		},
		{
			name: "non_positive_quote",
			doc: `
spot_date: "2026-01-10"
spots:
  EUR: "-1.10"
`,
		},
		{
			name: "no_spots",
			doc: `
spot_date: "2026-01-10"
`,
		},
		{
			name: "bad_pillar_date",
			doc: `
spot_date: "2026-01-10"
spots:
  EUR: "1.10"
curves:
  EUR:
    pillars:
      - date: "soon"
        zero_rate: "0.03"
`,
		},
		{
			name: "bad_zero_rate",
			doc: `
spot_date: "2026-01-10"
spots:
  EUR: "1.10"
curves:
  EUR:
    pillars:
      - date: "2026-07-10"
        zero_rate: "three percent"
`,
		},
		{
			name: "empty_curve",
			doc: `
spot_date: "2026-01-10"
spots:
  EUR: "1.10"
curves:
  EUR:
    pillars: []
`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadSnapshot(writeSnapshot(t, tt.doc))
			assert.Error(t, err)
		})
	}

	t.Run("missing_file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadSnapshot(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
