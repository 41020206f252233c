package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2026, time.January, n, 0, 0, 0, 0, time.UTC)
}

func TestNewZeroCurve(t *testing.T) {
	t.Parallel()

	t.Run("no_pillars", func(t *testing.T) {
		t.Parallel()
		_, err := NewZeroCurve(nil)
		assert.Error(t, err)
	})

	t.Run("duplicate_dates", func(t *testing.T) {
		t.Parallel()
		_, err := NewZeroCurve([]Pillar{
			{Date: day(10), Rate: 0.01},
			{Date: day(10), Rate: 0.02},
		})
		assert.Error(t, err)
	})

	t.Run("unsorted_input", func(t *testing.T) {
		t.Parallel()
		c, err := NewZeroCurve([]Pillar{
			{Date: day(20), Rate: 0.04},
			{Date: day(10), Rate: 0.02},
		})
		require.NoError(t, err)
		assert.InDelta(t, 0.02, c.Rate(day(10)), 1e-12)
		assert.InDelta(t, 0.04, c.Rate(day(20)), 1e-12)
	})
}

func TestZeroCurveRate(t *testing.T) {
	t.Parallel()

	c, err := NewZeroCurve([]Pillar{
		{Date: day(10), Rate: 0.02},
		{Date: day(20), Rate: 0.04},
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		at       time.Time
		expected float64
	}{
		{"before_first_flat", day(1), 0.02},
		{"at_first", day(10), 0.02},
		{"midpoint_linear", day(15), 0.03},
		{"at_last", day(20), 0.04},
		{"after_last_flat", day(28), 0.04},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.expected, c.Rate(tt.at), 1e-12)
		})
	}
}

func TestYearFraction(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 5.0/365.0, YearFraction(day(10), day(15)), 1e-12)
	assert.InDelta(t, 0.0, YearFraction(day(10), day(10)), 1e-12)
}
