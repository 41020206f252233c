package risk

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/valuation/fixings"
	"github.com/rustyeddy/valuation/instrument"
	"github.com/rustyeddy/valuation/market"
	"github.com/rustyeddy/valuation/pkg/logger"
)

// BumpTime shifts the valuation spot date, materializing any fixings the
// shift moves past. It has to live in risk rather than market because it
// affects all market data, not just one curve at a time.
type BumpTime struct {
	spotDateBump market.SpotDateBump

	// exFrom is the ex-dividend-from date. Stored for when dividend
	// bumping lands; no bump path reads it yet.
	exFrom time.Time
}

func NewBumpTime(spotDate, exFrom time.Time, dynamics market.SpotDynamics) *BumpTime {
	return &BumpTime{
		spotDateBump: market.NewSpotDateBump(spotDate, dynamics),
		exFrom:       exFrom,
	}
}

// Apply applies the time bump to the portfolio and model. If any fixings
// fall between the old and new spot dates the portfolio is restated
// against them and Apply returns true: the instrument set may have changed
// shape, and the caller must rebuild the model from scratch. Otherwise the
// spot date bump is applied to the model in place and Apply returns false.
//
// Failures leave the portfolio exactly as it was; the error wraps one of
// the Err* stage sentinels.
func (b *BumpTime) Apply(portfolio *instrument.Portfolio, model Bumpable) (modified bool, err error) {
	deps, err := model.Dependencies()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrDependency, err)
	}
	ctx := model.Context()

	oldSpot := ctx.SpotDate()
	newSpot := b.spotDateBump.SpotDate()
	if newSpot.Before(oldSpot) {
		return false, fmt.Errorf("%w: backward spot shift %s -> %s",
			ErrBumpApplication, oldSpot.Format("2006-01-02"), newSpot.Format("2006-01-02"))
	}

	modified, err = b.updateInstruments(portfolio, ctx, deps)
	if err != nil {
		return false, err
	}

	// With the instrument list intact we can shift the spot date on the
	// model directly. The saveable area only satisfies the bump calling
	// convention; nothing is saved through it, but it must be released on
	// every path out of here.
	if !modified {
		save := model.NewSaveable()
		defer func() {
			if cerr := save.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("%w: release saveable: %w", ErrBumpApplication, cerr)
			}
		}()

		bump := market.NewBumpSpotDate(b.spotDateBump)
		if err := model.Bump(bump, save); err != nil {
			return false, fmt.Errorf("%w: %w", ErrBumpApplication, err)
		}
	}

	return modified, nil
}

// updateInstruments scans the dependency model for fixings in
// [oldSpot, newSpot), values each one per the bump's spot dynamics, and if
// any were found restates the portfolio against them. Returns true when
// the portfolio was replaced.
func (b *BumpTime) updateInstruments(portfolio *instrument.Portfolio,
	ctx market.PricingContext, deps *Dependencies) (bool, error) {

	oldSpot := ctx.SpotDate()
	newSpot := b.spotDateBump.SpotDate()
	dynamics := b.spotDateBump.Dynamics()

	// Fixings before the old spot date are already baked into the
	// instrument list; fixings at or after the new spot date are still in
	// the future. Only the half-open window in between gets materialized.
	fixingMap := make(map[string][]fixings.Fixing)

	// Most portfolios have at most one fixing per underlier, but there is
	// no need to refetch the curve on every loop iteration either.
	curves := make(map[string]market.ForwardCurve)

	for _, uid := range deps.IDs() {
		inst, ok := deps.Instrument(uid)
		if !ok {
			return false, fmt.Errorf("%w: no instrument for %q", ErrDependency, uid)
		}

		for _, date := range deps.Fixings(uid) {
			if date.Before(oldSpot) || !date.Before(newSpot) {
				continue
			}

			var value float64
			switch dynamics {
			case market.StickyForward:
				curve, ok := curves[uid]
				if !ok {
					var err error
					curve, err = ctx.ForwardCurve(inst, newSpot)
					if err != nil {
						return false, fmt.Errorf("%w: forward curve for %q: %w", ErrResolution, uid, err)
					}
					curves[uid] = curve
				}
				v, err := curve.Forward(date)
				if err != nil {
					return false, fmt.Errorf("%w: forward for %q at %s: %w",
						ErrResolution, uid, date.Format("2006-01-02"), err)
				}
				value = v

			case market.StickySpot:
				v, err := ctx.Spot(uid)
				if err != nil {
					return false, fmt.Errorf("%w: spot for %q: %w", ErrResolution, uid, err)
				}
				value = v

			default:
				return false, fmt.Errorf("%w: unknown spot dynamics %v", ErrBumpApplication, dynamics)
			}

			fixingMap[uid] = append(fixingMap[uid], fixings.Fixing{Date: date, Value: value})
		}
	}

	if len(fixingMap) == 0 {
		return false, nil
	}

	table, err := fixings.FromMap(newSpot, fixingMap)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrConstruction, err)
	}

	replacement, err := instrument.Restate(*portfolio, table)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRestatement, err)
	}

	// All-or-nothing swap: nothing above mutated the portfolio, so a
	// failure anywhere leaves it untouched.
	*portfolio = (*portfolio)[:0]
	*portfolio = append(*portfolio, replacement...)

	logger.L().Debug("time bump restated portfolio",
		zap.Int("fixings", table.Len()),
		zap.Time("old_spot_date", oldSpot),
		zap.Time("new_spot_date", newSpot),
		zap.String("dynamics", dynamics.String()),
	)
	return true, nil
}
