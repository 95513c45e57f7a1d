package rebin

import "github.com/cwbudde/algo-rebin/dsp/grid"

// Regime selects how an axis is resampled.
type Regime int

const (
	// RegimeAuto picks a regime from the grid spacings.
	RegimeAuto Regime = iota
	// RegimeInterpolate linearly interpolates onto a finer output grid.
	RegimeInterpolate
	// RegimeBox integrates input pixels over coarser output bins.
	RegimeBox
)

// String returns the regime name.
func (r Regime) String() string {
	switch r {
	case RegimeAuto:
		return "auto"
	case RegimeInterpolate:
		return "interpolate"
	case RegimeBox:
		return "box"
	default:
		return "unknown"
	}
}

// SelectRegime returns the regime [Rebin1D] uses for out and in: interpolation
// when the first output spacing is smaller than the input spacing near out[0],
// box integration otherwise.
func SelectRegime(out, in grid.Grid) (Regime, error) {
	ix, err := validateGrids(out, in)
	if err != nil {
		return RegimeAuto, err
	}
	return selectRegime(out, ix), nil
}

func selectRegime(out grid.Grid, ix *grid.Indexer) Regime {
	if out.Step(0) < ix.SpacingNear(out[0]) {
		return RegimeInterpolate
	}
	return RegimeBox
}

func (c config) regimeFor(out grid.Grid, ix *grid.Indexer) Regime {
	if c.regime != RegimeAuto {
		return c.regime
	}
	return selectRegime(out, ix)
}
