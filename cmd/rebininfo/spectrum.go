package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-rebin/dsp/grid"
	"github.com/cwbudde/algo-rebin/dsp/rebin"
	"github.com/cwbudde/algo-rebin/stats/profile"
)

var errTooFewSamples = errors.New("need at least two samples")

func runSpectrum(o options, opts []rebin.Option) (report, error) {
	var (
		in     grid.Grid
		values []float64
		err    error
	)
	if o.in != "" {
		in, values, err = readSpectrumFile(o.in)
	} else {
		in, values, err = syntheticSpectrum(o.n)
	}
	if err != nil {
		return report{}, err
	}

	out, err := outputGrid(in, o.step)
	if err != nil {
		return report{}, err
	}

	regime, err := rebin.SelectRegime(out, in)
	if err != nil {
		return report{}, err
	}

	res, err := rebin.Rebin1D(out, in, values, opts...)
	if err != nil {
		return report{}, err
	}

	if o.plot != "" {
		if err := plotSpectrum(o.plot, in, values, out, res); err != nil {
			return report{}, fmt.Errorf("plot: %w", err)
		}
	}

	before, err := profile.Calculate(in, values)
	if err != nil {
		return report{}, err
	}
	after, err := profile.Calculate(out, res)
	if err != nil {
		return report{}, err
	}

	return report{
		mode:        "spectrum",
		regime:      regime.String(),
		inSize:      strconv.Itoa(len(in)),
		outSize:     strconv.Itoa(len(out)),
		inFlux:      before.Flux,
		outFlux:     after.Flux,
		inCentroid:  before.Centroid,
		outCentroid: after.Centroid,
	}, nil
}

// syntheticSpectrum is a flat continuum with three emission lines of
// decreasing width, sampled on a 1 nm grid starting at 400 nm.
func syntheticSpectrum(n int) (grid.Grid, []float64, error) {
	in, err := grid.Uniform(400, 1, n)
	if err != nil {
		return nil, nil, err
	}

	lines := []struct{ center, sigma, amp float64 }{
		{0.25, 6, 3},
		{0.5, 2, 5},
		{0.8, 0.7, 8},
	}

	values := make([]float64, n)
	for i, x := range in {
		v := 1.0
		for _, l := range lines {
			c := in[0] + l.center*(in[len(in)-1]-in[0])
			d := (x - c) / l.sigma
			v += l.amp * math.Exp(-0.5*d*d)
		}
		values[i] = v
	}
	return in, values, nil
}

func readSpectrumFile(path string) (grid.Grid, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return readSpectrum(f)
}

// readSpectrum parses "coordinate,value" records. A non-numeric first record
// is treated as a header; '#' starts a comment line.
func readSpectrum(r io.Reader) (grid.Grid, []float64, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var (
		xs, ys []float64
		line   int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		line++

		if len(rec) < 2 {
			return nil, nil, fmt.Errorf("record %d: want 2 fields, got %d", line, len(rec))
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if errX != nil || errY != nil {
			if line == 1 {
				continue
			}
			return nil, nil, fmt.Errorf("record %d: %w", line, errors.Join(errX, errY))
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	if len(xs) < 2 {
		return nil, nil, errTooFewSamples
	}
	g := grid.Grid(xs)
	if err := g.Validate(); err != nil {
		return nil, nil, err
	}
	return g, ys, nil
}

// outputGrid spans in with a uniform spacing. Zero step means four input
// pixels per output pixel.
func outputGrid(in grid.Grid, step float64) (grid.Grid, error) {
	if step == 0 {
		step = 4 * in.Step(0)
	}
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("invalid step %v", step)
	}

	span := in[len(in)-1] - in[0]
	n := int(math.Floor(span/step)) + 1
	if n < 2 {
		return nil, fmt.Errorf("step %v leaves fewer than two output samples", step)
	}
	return grid.Uniform(in[0], step, n)
}
