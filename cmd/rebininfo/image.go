package main

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rebin/dsp/rebin"
)

func runImage(o options, opts []rebin.Option) (report, error) {
	from, err := parseShape(o.size)
	if err != nil {
		return report{}, fmt.Errorf("-size: %w", err)
	}
	to, err := parseShape(o.to)
	if err != nil {
		return report{}, fmt.Errorf("-to: %w", err)
	}

	p, err := gaussianSpot(from)
	if err != nil {
		return report{}, err
	}

	res, err := rebin.Rebin2D(p, to, opts...)
	if err != nil {
		return report{}, err
	}

	// Rebin2D keeps the mean level, so the total scales with the pixel area.
	area := float64(from.Cols) / float64(to.Cols) * float64(from.Rows) / float64(to.Rows)

	return report{
		mode:        "image",
		regime:      rebin.RegimeBox.String(),
		inSize:      formatShape(from),
		outSize:     formatShape(to),
		inFlux:      p.Sum(),
		outFlux:     res.Sum() * area,
		inCentroid:  math.NaN(),
		outCentroid: math.NaN(),
	}, nil
}

func parseShape(s string) (rebin.Shape, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return rebin.Shape{}, fmt.Errorf("want WxH, got %q", s)
	}
	if w <= 0 || h <= 0 {
		return rebin.Shape{}, fmt.Errorf("non-positive shape %q", s)
	}
	return rebin.Shape{Cols: w, Rows: h}, nil
}

func formatShape(s rebin.Shape) string {
	return fmt.Sprintf("%dx%d", s.Cols, s.Rows)
}

// gaussianSpot draws an off-centre Gaussian on a faint background.
func gaussianSpot(s rebin.Shape) (*rebin.Plane, error) {
	p, err := rebin.NewPlane(s.Rows, s.Cols)
	if err != nil {
		return nil, err
	}

	cx := 0.4 * float64(s.Cols)
	cy := 0.6 * float64(s.Rows)
	sigma := 0.08 * float64(min(s.Cols, s.Rows))
	if sigma < 0.5 {
		sigma = 0.5
	}

	for r := range s.Rows {
		for c := range s.Cols {
			dx := (float64(c) + 0.5 - cx) / sigma
			dy := (float64(r) + 0.5 - cy) / sigma
			p.Set(r, c, 0.01+math.Exp(-0.5*(dx*dx+dy*dy)))
		}
	}
	return p, nil
}
