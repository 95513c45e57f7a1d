package rebin

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rebin/dsp/grid"
	"github.com/cwbudde/algo-rebin/internal/scratch"
)

// RebinCubeAxis0 resamples c along its band axis from in onto out. The result
// has len(out) bands and the spatial size of c.
//
// The regime is chosen once for the whole cube, as in [Rebin1D], and each
// output band is computed from whole input planes, so every spatial pixel sees
// exactly the arithmetic [Rebin1D] applies to a single spectrum. in must have
// one sample per band of c, otherwise ErrShapeMismatch is returned.
func RebinCubeAxis0(out, in grid.Grid, c *Cube, opts ...Option) (*Cube, error) {
	cfg := applyOptions(opts)

	ix, err := validateGrids(out, in)
	if err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.Bands != len(in) {
		return nil, fmt.Errorf("%w: input grid of %d for cube with %d bands", ErrShapeMismatch, len(in), c.Bands)
	}

	if out.Equal(in) {
		return c.clone(), nil
	}

	res, err := NewCube(len(out), c.Rows, c.Cols)
	if err != nil {
		return nil, err
	}

	if cfg.regimeFor(out, ix) == RegimeInterpolate {
		interpolateCube(res, out, ix, c, cfg)
	} else {
		boxCube(res, out, ix, c, cfg)
	}

	return res, nil
}

// interpolateCube blends the two input planes bracketing each output
// coordinate.
func interpolateCube(res *Cube, out grid.Grid, ix *grid.Indexer, c *Cube, cfg config) {
	p := newProgress(cfg.observer, StageInterpolate, len(out))

	forChunks(len(out), cfg.workers, func(lo, hi int) {
		buf := scratch.Get(c.PlaneSize())
		defer scratch.Put(buf)
		tmp := buf.Data()

		for j := lo; j < hi; j++ {
			dst := res.Slab(j)
			k, t := ix.Bracket(out[j])
			if t == 0 {
				copy(dst, c.Slab(k))
			} else {
				vecmath.ScaleBlock(dst, c.Slab(k), 1-t)
				vecmath.ScaleBlock(tmp, c.Slab(k+1), t)
				vecmath.AddBlockInPlace(dst, tmp)
			}
			p.step()
		}
	})
}

func boxCube(res *Cube, out grid.Grid, ix *grid.Indexer, c *Cube, cfg config) {
	bins := gridBins(out, ix)
	p := newProgress(cfg.observer, StageBox, len(out))

	forChunks(len(bins), cfg.workers, func(lo, hi int) {
		buf := scratch.Get(c.PlaneSize())
		defer scratch.Put(buf)

		for i := lo; i < hi; i++ {
			integrate(res.Slab(i), bins[i], c.Slab, buf.Data())
			p.step()
		}
	})
}
