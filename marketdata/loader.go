// Package marketdata loads market snapshot documents into pricing
// contexts. Quoted levels are parsed as decimals at the boundary and
// converted to float64 exactly once, before any curve arithmetic.
package marketdata

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/valuation/market"
)

const dateFormat = "2006-01-02"

type snapshotFile struct {
	SpotDate string               `yaml:"spot_date"`
	Spots    map[string]string    `yaml:"spots"`
	Curves   map[string]curveFile `yaml:"curves"`
}

type curveFile struct {
	Pillars []pillarFile `yaml:"pillars"`
}

type pillarFile struct {
	Date     string `yaml:"date"`
	ZeroRate string `yaml:"zero_rate"`
}

// LoadSnapshot reads a YAML market snapshot from path.
func LoadSnapshot(path string) (*market.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var doc snapshotFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	spotDate, err := time.Parse(dateFormat, doc.SpotDate)
	if err != nil {
		return nil, fmt.Errorf("snapshot spot_date: %w", err)
	}
	if len(doc.Spots) == 0 {
		return nil, fmt.Errorf("snapshot has no spot levels")
	}

	spots := make(map[string]float64, len(doc.Spots))
	for id, quote := range doc.Spots {
		d, err := decimal.NewFromString(quote)
		if err != nil {
			return nil, fmt.Errorf("spot quote for %q: %w", id, err)
		}
		if d.Sign() <= 0 {
			return nil, fmt.Errorf("spot quote for %q: non-positive level %s", id, d)
		}
		spots[id] = d.InexactFloat64()
	}

	curves := make(map[string]*market.ZeroCurve, len(doc.Curves))
	for id, cf := range doc.Curves {
		pillars := make([]market.Pillar, 0, len(cf.Pillars))
		for _, pf := range cf.Pillars {
			date, err := time.Parse(dateFormat, pf.Date)
			if err != nil {
				return nil, fmt.Errorf("curve %q pillar date: %w", id, err)
			}
			rate, err := decimal.NewFromString(pf.ZeroRate)
			if err != nil {
				return nil, fmt.Errorf("curve %q zero rate at %s: %w", id, pf.Date, err)
			}
			pillars = append(pillars, market.Pillar{Date: date, Rate: rate.InexactFloat64()})
		}

		curve, err := market.NewZeroCurve(pillars)
		if err != nil {
			return nil, fmt.Errorf("curve %q: %w", id, err)
		}
		curves[id] = curve
	}

	return market.NewSnapshot(spotDate, spots, curves), nil
}
