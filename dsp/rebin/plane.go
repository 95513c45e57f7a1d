package rebin

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rebin/internal/scratch"
)

// Rebin2D resizes p to shape with a flux-conserving box filter.
//
// The box ratios yBox = p.Rows/shape.Rows and xBox = p.Cols/shape.Cols may be
// any positive values, so both shrinking and enlarging are supported. Rows are
// box-summed first, then columns, and the result is divided once by
// xBox*yBox: each output value is the mean flux per input pixel over its
// footprint, and a uniform input stays uniform. Resizing to p's own shape
// returns p's values.
//
// A non-positive output dimension yields ErrInvalidShape.
func Rebin2D(p *Plane, shape Shape, opts ...Option) (*Plane, error) {
	cfg := applyOptions(opts)

	if err := validateShape(shape); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	yBox := float64(p.Rows) / float64(shape.Rows)
	xBox := float64(p.Cols) / float64(shape.Cols)

	// Row pass: shape.Rows x p.Cols, then transposed to p.Cols x shape.Rows.
	rowsBuf := scratch.Get(shape.Rows * p.Cols)
	defer scratch.Put(rowsBuf)
	boxLines(rowsBuf.Data(), p, uniformBins(shape.Rows, yBox, p.Rows),
		newProgress(cfg.observer, StageRows, shape.Rows), cfg.workers)

	transBuf := scratch.Get(p.Cols * shape.Rows)
	defer scratch.Put(transBuf)
	transpose(transBuf.Data(), rowsBuf.Data(), shape.Rows, p.Cols)
	trans := &Plane{Rows: p.Cols, Cols: shape.Rows, Data: transBuf.Data()}

	// Column pass: shape.Cols x shape.Rows.
	colsBuf := scratch.Get(shape.Cols * shape.Rows)
	defer scratch.Put(colsBuf)
	boxLines(colsBuf.Data(), trans, uniformBins(shape.Cols, xBox, p.Cols),
		newProgress(cfg.observer, StageColumns, shape.Cols), cfg.workers)

	res, err := NewPlane(shape.Rows, shape.Cols)
	if err != nil {
		return nil, err
	}
	transpose(res.Data, colsBuf.Data(), shape.Cols, shape.Rows)
	vecmath.ScaleBlockInPlace(res.Data, 1/(xBox*yBox))

	return res, nil
}

// boxLines writes the un-normalised box sum of src's rows for every bin into
// consecutive lines of dst, each src.Cols long.
func boxLines(dst []float64, src *Plane, bins []bin, p *progress, workers int) {
	n := src.Cols

	forChunks(len(bins), workers, func(lo, hi int) {
		buf := scratch.Get(n)
		defer scratch.Put(buf)

		for i := lo; i < hi; i++ {
			accumulate(dst[i*n:(i+1)*n], bins[i], src.Row, buf.Data())
			p.step()
		}
	})
}
