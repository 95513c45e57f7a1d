package main

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-rebin/dsp/grid"
)

// plotSpectrum writes the input and rebinned spectra as two lines on one plot.
func plotSpectrum(path string, in grid.Grid, values []float64, out grid.Grid, res []float64) error {
	p := plot.New()
	p.Title.Text = "Rebinned spectrum"
	p.X.Label.Text = "Coordinate"
	p.Y.Label.Text = "Value"

	series := []struct {
		label string
		g     grid.Grid
		v     []float64
		color color.Color
		width vg.Length
	}{
		{"input", in, values, color.RGBA{R: 150, G: 150, B: 150, A: 255}, vg.Points(1)},
		{"rebinned", out, res, color.RGBA{R: 200, G: 40, B: 40, A: 255}, vg.Points(1.5)},
	}

	for _, s := range series {
		pts := make(plotter.XYs, len(s.v))
		for i, v := range s.v {
			pts[i] = plotter.XY{X: s.g[i], Y: v}
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = s.color
		line.Width = s.width
		p.Add(line)
		p.Legend.Add(s.label, line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return p.Save(10*vg.Inch, 4*vg.Inch, path)
}
