package rebin

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rebin/dsp/grid"
)

// bin is the coverage of one output sample in input index space. Input pixel
// k covers [k, k+1).
type bin struct {
	start, stop  int     // first and last contributing input pixel
	frac1, frac2 float64 // fractions of start and stop lying outside the bin
	width        float64 // rstop - rstart
}

// newBin builds the bin spanning [rstart, rstop]; last is the highest valid
// input index. A stop index beyond last is clamped, which makes frac2
// negative and extrapolates the last pixel.
func newBin(rstart, rstop float64, last int) bin {
	istart := min(int(rstart), last)
	istop := min(int(rstop), last)

	b := bin{
		start: istart,
		stop:  istop,
		frac1: rstart - float64(istart),
		frac2: 1 - (rstop - float64(istop)),
		width: rstop - rstart,
	}

	// A stop on a pixel boundary excludes that pixel completely.
	if b.frac2 == 1 && b.stop > b.start {
		b.stop--
		b.frac2 = 0
	}

	return b
}

// gridBins maps the left edges out[i]-dx/2 onto input index space and turns
// consecutive edges into bins. The last bin reuses the previous bin's width.
func gridBins(out grid.Grid, ix *grid.Indexer) []bin {
	dx := out.Step(0)
	edges := make([]float64, len(out))
	for i, x := range out {
		edges[i] = ix.Index(x - 0.5*dx)
	}

	last := ix.Grid().Len() - 1
	n := len(out)
	bins := make([]bin, n)
	for i := range n - 1 {
		bins[i] = newBin(edges[i], edges[i+1], last)
	}
	bins[n-1] = newBin(edges[n-1], edges[n-1]+(edges[n-1]-edges[n-2]), last)

	return bins
}

// uniformBins splits n input pixels into count bins of box pixels each.
func uniformBins(count int, box float64, n int) []bin {
	bins := make([]bin, count)
	for i := range bins {
		rstart := float64(i) * box
		bins[i] = newBin(rstart, rstart+box, n-1)
	}
	return bins
}

// accumulate writes the raw box sum of b into dst: slabs start..stop summed,
// minus frac1 of the start slab and frac2 of the stop slab. slab(k) returns
// input slab k; tmp is scratch of len(dst).
func accumulate(dst []float64, b bin, slab func(int) []float64, tmp []float64) {
	if b.start == b.stop {
		vecmath.ScaleBlock(dst, slab(b.start), 1-b.frac1-b.frac2)
		return
	}

	copy(dst, slab(b.start))
	for k := b.start + 1; k <= b.stop; k++ {
		vecmath.AddBlockInPlace(dst, slab(k))
	}

	if b.frac1 != 0 {
		vecmath.ScaleBlock(tmp, slab(b.start), -b.frac1)
		vecmath.AddBlockInPlace(dst, tmp)
	}

	if b.frac2 != 0 {
		vecmath.ScaleBlock(tmp, slab(b.stop), -b.frac2)
		vecmath.AddBlockInPlace(dst, tmp)
	}
}

// integrate writes the width-normalised box mean of b into dst. A bin of zero
// width, which only occurs outside the input range, takes the clamped pixel.
func integrate(dst []float64, b bin, slab func(int) []float64, tmp []float64) {
	if b.width == 0 {
		copy(dst, slab(b.start))
		return
	}

	accumulate(dst, b, slab, tmp)
	vecmath.ScaleBlockInPlace(dst, 1/b.width)
}
