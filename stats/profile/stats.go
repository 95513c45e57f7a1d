// Package profile computes flux-weighted statistics of a sampled spectrum.
//
// Every sample i stands for a pixel of width Step(i) on its grid; the last
// pixel reuses the width of the one before it. This matches how the rebin
// package assigns flux, so the statistics of a spectrum and of its
// box-rebinned version can be compared directly.
package profile

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-rebin/dsp/grid"
)

// Stats holds flux-weighted statistics of a spectrum.
type Stats struct {
	SampleCount int
	Flux        float64 // sum of value times pixel width
	Mean        float64 // Flux divided by the grid span covered by the pixels
	Max         float64
	MaxAt       float64 // grid coordinate of Max
	Min         float64
	MinAt       float64
	Centroid    float64 // flux-weighted mean coordinate
	Spread      float64 // flux-weighted standard deviation around Centroid
}

// Calculate returns the statistics of values sampled on g.
// It fails when g is invalid or the lengths differ.
func Calculate(g grid.Grid, values []float64) (Stats, error) {
	w, err := widths(g, values)
	if err != nil {
		return Stats{}, err
	}

	var s Stats
	s.SampleCount = len(values)
	s.Flux = floats.Dot(values, w)
	s.Mean = s.Flux / floats.Sum(w)

	iMax := floats.MaxIdx(values)
	iMin := floats.MinIdx(values)
	s.Max, s.MaxAt = values[iMax], g[iMax]
	s.Min, s.MinAt = values[iMin], g[iMin]

	s.Centroid = centroid(g, values, w, s.Flux)
	s.Spread = spread(g, values, w, s.Centroid, s.Flux)

	return s, nil
}

// Flux returns the sum of value times pixel width.
func Flux(g grid.Grid, values []float64) (float64, error) {
	w, err := widths(g, values)
	if err != nil {
		return 0, err
	}
	return floats.Dot(values, w), nil
}

// Centroid returns the flux-weighted mean coordinate, or NaN when the
// total flux is zero.
func Centroid(g grid.Grid, values []float64) (float64, error) {
	w, err := widths(g, values)
	if err != nil {
		return 0, err
	}
	return centroid(g, values, w, floats.Dot(values, w)), nil
}

func centroid(g grid.Grid, values, w []float64, total float64) float64 {
	if total == 0 {
		return math.NaN()
	}
	var sum float64
	for i, v := range values {
		sum += g[i] * v * w[i]
	}
	return sum / total
}

func spread(g grid.Grid, values, w []float64, cent, total float64) float64 {
	if total == 0 || math.IsNaN(cent) {
		return math.NaN()
	}
	var sum float64
	for i, v := range values {
		d := g[i] - cent
		sum += d * d * v * w[i]
	}
	return math.Sqrt(math.Max(sum/total, 0))
}

// widths returns the pixel width of every sample.
func widths(g grid.Grid, values []float64) ([]float64, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if len(values) != len(g) {
		return nil, fmt.Errorf("%w: %d values on a %d-sample grid", grid.ErrLengthMismatch, len(values), len(g))
	}

	w := make([]float64, len(g))
	for i := range w {
		w[i] = g.Step(min(i, len(g)-2))
	}
	return w, nil
}
