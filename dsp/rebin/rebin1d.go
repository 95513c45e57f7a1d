package rebin

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-rebin/dsp/grid"
)

// Rebin1D resamples values sampled on in onto out and returns one value per
// output sample.
//
// Both grids must hold at least two strictly increasing samples and values
// must match in; otherwise ErrInvalidGrid or ErrShapeMismatch is returned and
// nothing is computed. Rebinning onto the input grid itself returns a copy of
// values.
func Rebin1D(out, in grid.Grid, values []float64, opts ...Option) ([]float64, error) {
	cfg := applyOptions(opts)

	ix, err := validateGrids(out, in)
	if err != nil {
		return nil, err
	}

	if len(values) != len(in) {
		return nil, fmt.Errorf("%w: %d values for input grid of %d", ErrShapeMismatch, len(values), len(in))
	}

	if out.Equal(in) {
		return slices.Clone(values), nil
	}

	if cfg.regimeFor(out, ix) == RegimeInterpolate {
		return interpolate1D(out, in, values, cfg)
	}

	return box1D(out, ix, values, cfg), nil
}

// RebinSeries resamples s onto out.
func RebinSeries(out grid.Grid, s Series, opts ...Option) (Series, error) {
	values, err := Rebin1D(out, s.Grid, s.Values, opts...)
	if err != nil {
		return Series{}, err
	}
	return Series{Grid: slices.Clone(out), Values: values}, nil
}

func interpolate1D(out, in grid.Grid, values []float64, cfg config) ([]float64, error) {
	lin, err := grid.NewLinear(in, values)
	if err != nil {
		return nil, fmt.Errorf("rebin: %w", err)
	}

	dst := make([]float64, len(out))
	p := newProgress(cfg.observer, StageInterpolate, len(out))

	forChunks(len(out), cfg.workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = lin.At(out[i])
			p.step()
		}
	})

	return dst, nil
}

func box1D(out grid.Grid, ix *grid.Indexer, values []float64, cfg config) []float64 {
	bins := gridBins(out, ix)
	dst := make([]float64, len(out))
	p := newProgress(cfg.observer, StageBox, len(out))

	slab := func(k int) []float64 { return values[k : k+1] }

	forChunks(len(bins), cfg.workers, func(lo, hi int) {
		var tmp [1]float64
		for i := lo; i < hi; i++ {
			integrate(dst[i:i+1], bins[i], slab, tmp[:])
			p.step()
		}
	})

	return dst
}
