package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/valuation/market"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid_sticky_forward",
			cfg:  Config{Snapshot: "./md.yaml", Dynamics: "sticky_forward"},
		},
		{
			name: "valid_sticky_spot_with_db",
			cfg:  Config{Snapshot: "./md.yaml", FixingsDB: "./fixings.db", Dynamics: "sticky_spot"},
		},
		{
			name:    "missing_snapshot",
			cfg:     Config{Dynamics: "sticky_spot"},
			wantErr: true,
		},
		{
			name:    "unknown_dynamics",
			cfg:     Config{Snapshot: "./md.yaml", Dynamics: "sticky_sideways"},
			wantErr: true,
		},
		{
			name:    "empty_dynamics",
			cfg:     Config{Snapshot: "./md.yaml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "valuation.yaml")
		doc := `
snapshot: ./marketdata.yaml
fixings_db: ./fixings.db
dynamics: sticky_spot
`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "./marketdata.yaml", cfg.Snapshot)
		assert.Equal(t, "./fixings.db", cfg.FixingsDB)

		dyn, err := cfg.SpotDynamics()
		require.NoError(t, err)
		assert.Equal(t, market.StickySpot, dyn)
	})

	t.Run("invalid_rejected", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "valuation.yaml")
		require.NoError(t, os.WriteFile(path, []byte("dynamics: nope\n"), 0644))

		_, err := LoadFromFile(path)
		assert.Error(t, err)
	})

	t.Run("missing_file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestDefault(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Default().Validate())
}
