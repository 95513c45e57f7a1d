package grid

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Indexer maps coordinates onto the fractional index space of a grid.
//
// Coordinates below the first sample map to 0 and coordinates above the last
// sample map to Len()-1.
type Indexer struct {
	grid Grid
	pl   interp.PiecewiseLinear
}

// NewIndexer validates g and prepares the coordinate -> index mapping.
func NewIndexer(g Grid) (*Indexer, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	idx := make([]float64, len(g))
	for i := range idx {
		idx[i] = float64(i)
	}

	ix := &Indexer{grid: g}
	if err := ix.pl.Fit(g, idx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGrid, err)
	}

	return ix, nil
}

// Grid returns the grid the indexer was built from.
func (ix *Indexer) Grid() Grid { return ix.grid }

// Index returns the fractional index of coordinate x.
func (ix *Indexer) Index(x float64) float64 {
	return ix.pl.Predict(x)
}

// Indices writes the fractional index of every xs[i] into dst and returns it.
// dst is reallocated when too short.
func (ix *Indexer) Indices(dst, xs []float64) []float64 {
	if cap(dst) < len(xs) {
		dst = make([]float64, len(xs))
	}
	dst = dst[:len(xs)]

	for i, x := range xs {
		dst[i] = ix.pl.Predict(x)
	}

	return dst
}

// Bracket returns the left node k and weight t such that x lies at
// (1-t)*g[k] + t*g[k+1]. t is exactly 0 when x falls on a node or outside the
// grid, in which case k is the node (or the clamped end) itself.
func (ix *Indexer) Bracket(x float64) (int, float64) {
	r := ix.pl.Predict(x)
	k := int(r)

	last := len(ix.grid) - 1
	if k >= last {
		return last, 0
	}

	return k, r - float64(k)
}

// SpacingNear returns the grid spacing at the node bracketing x from the left.
// The probe is clamped so it never reads past the last interval.
func (ix *Indexer) SpacingNear(x float64) float64 {
	k := int(ix.pl.Predict(x))
	if k > len(ix.grid)-2 {
		k = len(ix.grid) - 2
	}

	return ix.grid.Step(k)
}

// Linear evaluates a sampled series by piecewise-linear interpolation.
// Outside the grid the first or last value is held.
type Linear struct {
	pl interp.PiecewiseLinear
}

// NewLinear fits values sampled on g.
func NewLinear(g Grid, values []float64) (*Linear, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	if len(values) != len(g) {
		return nil, fmt.Errorf("%w: %d values for %d samples", ErrLengthMismatch, len(values), len(g))
	}

	l := &Linear{}
	if err := l.pl.Fit(g, values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGrid, err)
	}

	return l, nil
}

// At returns the interpolated value at x. At a grid node the sampled value is
// returned exactly.
func (l *Linear) At(x float64) float64 {
	return l.pl.Predict(x)
}

// Eval writes the interpolated value at every xs[i] into dst and returns it.
func (l *Linear) Eval(dst, xs []float64) []float64 {
	if cap(dst) < len(xs) {
		dst = make([]float64, len(xs))
	}
	dst = dst[:len(xs)]

	for i, x := range xs {
		dst[i] = l.pl.Predict(x)
	}

	return dst
}
